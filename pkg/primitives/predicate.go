package primitives

// Predicate is a comparison opcode used by selection predicates and register
// comparisons.
type Predicate int

const (
	Equals Predicate = iota
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

func (p Predicate) String() string {
	switch p {
	case Equals:
		return "="

	case NotEqual:
		return "!="

	case LessThan:
		return "<"

	case LessThanOrEqual:
		return "<="

	case GreaterThan:
		return ">"

	case GreaterThanOrEqual:
		return ">="

	default:
		return "UNKNOWN"
	}
}

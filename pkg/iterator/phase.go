package iterator

// Phase tracks the lifecycle of a materializing operator: it drains its
// input(s) to EOF, then emits from its buffer, then is done. Modelled as an
// explicit state machine rather than a boolean and an index.
type Phase int

const (
	// PhaseDraining: the operator has not yet consumed its input(s).
	PhaseDraining Phase = iota
	// PhaseEmitting: the buffer is built; rows stream from the cursor.
	PhaseEmitting
	// PhaseDone: the buffer is exhausted; Next keeps returning false.
	PhaseDone
)

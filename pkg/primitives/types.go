package primitives

// ColumnID is a zero-based attribute index into a tuple. Columns are
// identified positionally; there is no name resolution in this engine.
type ColumnID int

// HashCode is the 64-bit hash of a register or a tuple.
type HashCode uint64

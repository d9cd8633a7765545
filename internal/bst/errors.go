package bst

// Error provides constant error strings to the tree operations.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrEmptyTree      = Error("tree is empty")
	ErrValueNotFound  = Error("value not found in the tree")
	ErrDuplicateValue = Error("value already exists in the tree, insertion ignored")
)

package console

// Error provides constant error strings to the console layer.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrInvalidInput = Error("input is not an integer")
)

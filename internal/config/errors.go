package config

// Error provides constant error strings to the configuration loader.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrUnknownLogLevel   = Error("unknown log level")
	ErrUnknownPromptMode = Error("unknown prompt mode")
)

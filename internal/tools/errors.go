package tools

// ErrorResult is the value a failed call resolves to. Available lists the
// valid choices when the failure was an unknown name.
type ErrorResult struct {
	Error     string   `json:"error"`
	Available []string `json:"available,omitempty"`
}

// Error carries an agent-facing message and the valid alternatives.
type Error struct {
	Message   string
	Available []string
	Err       error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

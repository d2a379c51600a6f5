package mclog

import "fmt"

// ParseError wraps an error returned by a Parser for one log line.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse line %q: %v", truncate(e.Line, 80), e.Err)
}

// Unwrap returns the parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when a settings file is malformed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

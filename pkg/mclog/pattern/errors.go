package pattern

import "fmt"

// ValidationError is a file-level problem, such as an unsupported version
// or an empty pattern list.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// PatternError is a problem with one entry of the pattern list.
type PatternError struct {
	Index   int    // position in the file, starting at 0
	ID      string // empty when the id itself is missing
	Field   string
	Message string
	Cause   error // e.g. the regexp compile error
}

func (e *PatternError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("pattern %q: %s: %s", e.ID, e.Field, e.Message)
	}
	return fmt.Sprintf("pattern[%d]: %s: %s", e.Index, e.Field, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *PatternError) Unwrap() error {
	return e.Cause
}

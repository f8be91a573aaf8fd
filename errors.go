package cashie

import "fmt"

// ValidationError reports malformed transaction, category, goal or profile
// input. The offending create or update is declined before the Store is
// mutated.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid input: " + e.Reason }

func errValidation(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ParseError reports a document that is not well formed or is missing a
// required collection. The import or load aborts and the live Store is left
// untouched.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse document: %s: %v", e.Reason, e.Err)
	}
	return "cannot parse document: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

func errParse(err error, format string, args ...any) error {
	return &ParseError{Reason: fmt.Sprintf(format, args...), Err: err}
}

// PersistenceError reports a failed read or write of the persisted document.
// The in-memory Store remains authoritative so the caller can retry the save
// or warn about unsaved changes.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cannot persist store to %q: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

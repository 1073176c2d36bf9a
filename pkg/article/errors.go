package article

import "fmt"

// InputReadError reports a dataset that could not be read or is not valid JSON.
type InputReadError struct {
	Source string
	Err    error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Source, e.Err)
}

func (e *InputReadError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a record that lacks one of the mapped keys.
// Index is the zero-based position of the record in its dataset.
type MissingFieldError struct {
	Source string
	Index  int
	Field  string
	Key    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: record %d: missing field %q (key %q)", e.Source, e.Index, e.Field, e.Key)
}

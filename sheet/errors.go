package sheet

import "fmt"

// LineError locates a parse failure in a sheet. Number is 1-based.
type LineError struct {
	Number int
	Text   string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Number, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

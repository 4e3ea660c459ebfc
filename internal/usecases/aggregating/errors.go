package aggregating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRecord        = errors.New("invalid sale record")
	ErrUnrecognizedFuelType = errors.New("unrecognized fuel type")
)

// RecordError identifica o registro que violou as restrições de campo
type RecordError struct {
	Index int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("registro %d, campo %s: %v", e.Index, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func invalidRecord(index int, field string, format string, args ...any) error {
	return &RecordError{
		Index: index,
		Field: field,
		Err:   fmt.Errorf("%w: %s", ErrInvalidRecord, fmt.Sprintf(format, args...)),
	}
}

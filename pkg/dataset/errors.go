package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHeader is returned when CSV input has no header row.
	ErrMissingHeader = errors.New("missing header row")

	// ErrInvalidCSV is returned when CSV input cannot be parsed, ragged
	// rows included.
	ErrInvalidCSV = errors.New("invalid csv input")

	// ErrUnknownColumn is returned when a check names a column the table
	// does not have.
	ErrUnknownColumn = errors.New("unknown column")
)

func unknownColumn(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyFile          = errors.New("file has no data rows")
	ErrMissingColumn      = errors.New("missing required column")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidValue       = errors.New("invalid value")
	ErrYearsNotIncreasing = errors.New("years are not strictly increasing")
	ErrDuplicateLake      = errors.New("duplicate lake name")
	ErrShapeMismatch      = errors.New("grid shape mismatch")
	ErrUnknownSelection   = errors.New("unknown selection")
)

// DataLoadError reports that the data bundle could not be assembled. It is
// the only data error kind: a single failing file invalidates the dashboard.
type DataLoadError struct {
	File string
	Err  error
}

func (e *DataLoadError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("load dashboard data: %v", e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.File, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// IsDataLoadError reports whether err is or wraps a DataLoadError.
func IsDataLoadError(err error) bool {
	var dle *DataLoadError
	return errors.As(err, &dle)
}

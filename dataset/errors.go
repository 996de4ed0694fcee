package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/isomap/core"
)

var (
	// ErrUnsupportedFormat is returned by LoadFile for an unknown extension.
	ErrUnsupportedFormat = fmt.Errorf("dataset: unsupported file format: %w", core.ErrInvalidParameter)

	// ErrMalformedRecord is returned when a record holds a non-numeric field
	// or a row length differs from the first row.
	ErrMalformedRecord = fmt.Errorf("dataset: malformed record: %w", core.ErrInvalidParameter)

	// ErrBadSampleSize is returned by Subsample and SwissRoll for n < 1.
	ErrBadSampleSize = fmt.Errorf("dataset: sample size must be ≥ 1: %w", core.ErrInvalidParameter)

	// errNoData marks an input without a single numeric row.
	errNoData = errors.New("dataset: no numeric rows")
)

// noData wraps errNoData so it also matches core.ErrEmptyInput.
func noData(op string) error {
	return fmt.Errorf("%s: %w: %w", op, errNoData, core.ErrEmptyInput)
}

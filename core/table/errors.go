package table

import "errors"

var (
	// ErrDataFrameTooLarge is returned under the Reject policy when a dataset
	// has more rows than the configured limit.
	ErrDataFrameTooLarge = errors.New("dataset exceeds the render row limit")
	ErrInvalidLimit      = errors.New("render limit must be positive")
)

package dataset

import "errors"

var (
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrColumnLength    = errors.New("columns must have equal length")
	ErrColumnNotFound  = errors.New("column not found")
	ErrUnknownLocale   = errors.New("unknown locale")
)

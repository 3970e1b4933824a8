package message

import "errors"

var (
	ErrInvalidBlock     = errors.New("invalid content block")
	ErrIndexOutOfRange  = errors.New("insert index out of range")
	ErrHeaderNotSet     = errors.New("message header must be set first")
	ErrHeaderAlreadySet = errors.New("message header already set")
	ErrFinalized        = errors.New("message already finalized")
)

package teams

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid teams configuration")
	ErrSendFailed    = errors.New("failed to send teams message")
)

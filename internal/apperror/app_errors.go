package apperror

import "errors"

var (
	ErrOutOfRange          = errors.New("cell is out of range")
	ErrColumnFull          = errors.New("column is full")
	ErrInputClosed         = errors.New("input is closed")
	ErrUnexpectedAnswer    = errors.New("unexpected answer")
	ErrInvalidConfig       = errors.New("invalid config")
	ErrPlayersNotDistinct  = errors.New("players must have distinct marks")
	ErrEmptyAcceptedValues = errors.New("accepted values are empty")
)

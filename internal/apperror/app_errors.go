package apperror

import "errors"

var (
	ErrQuit             = errors.New("quit requested")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid command arguments")
)

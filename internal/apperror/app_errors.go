package apperror

import "errors"

var (
	ErrInvalidInput = errors.New("invalid move input")
	ErrInputClosed  = errors.New("input stream is closed")
)

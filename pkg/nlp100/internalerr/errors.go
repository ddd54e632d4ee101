package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrParse         = errors.New("parse error")
	ErrRemote        = errors.New("remote call failed")
	ErrInvalidConfig = errors.New("invalid configuration")
)

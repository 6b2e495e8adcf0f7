package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrInvalidIdentifier  = fmt.Errorf("invalid identifier")
	ErrUnknownCasemapping = fmt.Errorf("unknown casemapping")
	ErrEmptyHostmask      = fmt.Errorf("empty hostmask")
)

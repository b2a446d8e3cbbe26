package exceptions

import (
	"errors"
	"fmt"
)

type Exception interface {
	error
	Cause() error
}

func New(message ...any) error {
	return errors.New(fmt.Sprint(message...))
}

// Cause wraps cause with a message built from message. The result unwraps to cause.
func Cause(cause error, message ...any) error {
	if cause == nil {
		panic("cause on a nil error")
	}
	return &causeError{fmt.Sprint(message...), cause}
}

// Cause1 tags cause with err, both stay reachable through errors.Is and errors.As.
func Cause1(err error, cause error) error {
	if cause == nil {
		panic("cause on a nil error")
	}
	return &causeError1{err, cause}
}

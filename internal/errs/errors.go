package errs

import (
	"errors"
	"fmt"
	"net/http"

	goerrors "github.com/go-errors/errors"
)

type Code string

const (
	CodeValidation Code = "VALIDATION"
	CodeNotFound   Code = "NOT_FOUND"
	CodeInternal   Code = "INTERNAL"
)

// Error is the error contract shared by the store, the query layer and the
// HTTP handlers. Troubleshooting carries user-facing recovery hints for
// errors the presentation layer shows directly (for example a corrupt
// profile config file).
type Error struct {
	Code            Code
	Op              string // operation name, ex: "store.CreateApplication"
	Message         string
	Err             error
	Stack           []byte
	Troubleshooting []string
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) StackTrace() []byte { return e.Stack }

func New(code Code, op, message string, err error) *Error {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &Error{
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func Validation(op, message string) *Error {
	return New(CodeValidation, op, message, nil)
}

func NotFound(op, message string) *Error {
	return New(CodeNotFound, op, message, nil)
}

func Internal(op, message string, err error) *Error {
	return New(CodeInternal, op, message, err)
}

// WithTroubleshooting attaches recovery hints and returns the same error.
func (e *Error) WithTroubleshooting(steps ...string) *Error {
	e.Troubleshooting = steps
	return e
}

func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func IsValidation(err error) bool { return IsCode(err, CodeValidation) }
func IsNotFound(err error) bool   { return IsCode(err, CodeNotFound) }

// HTTPStatus maps an error to the status code the API surface returns.
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		switch e.Code {
		case CodeValidation:
			return http.StatusBadRequest
		case CodeNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

package apperr

import (
	"errors"
	"fmt"
	"net/http"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeConfig       ErrorType = "CONFIG"
	ErrTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrTypeInvalidInput ErrorType = "INVALID_INPUT"
	ErrTypeNotFound     ErrorType = "NOT_FOUND"
	ErrTypeRateLimit    ErrorType = "RATE_LIMIT"
	ErrTypeUpstream     ErrorType = "UPSTREAM"
	ErrTypePersistence  ErrorType = "PERSISTENCE"
	ErrTypeInternal     ErrorType = "INTERNAL"
)

// DomainError is the error every service returns across the HTTP boundary.
// Message is safe to show to clients; Details carries diagnostics such as a
// provider error payload.
type DomainError struct {
	Type    ErrorType
	Message string
	Details any
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

// WithDetails attaches a client-visible diagnostic payload.
func (e *DomainError) WithDetails(details any) *DomainError {
	e.Details = details
	return e
}

// HTTPStatus maps the error type onto a response code.
func (e *DomainError) HTTPStatus() int {
	switch e.Type {
	case ErrTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrTypeInvalidInput:
		return http.StatusBadRequest
	case ErrTypeNotFound:
		return http.StatusNotFound
	case ErrTypeRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func New(errType ErrorType, message string, err error) *DomainError {
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

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func Config(message string) *DomainError {
	return New(ErrTypeConfig, message, nil)
}

func Unauthorized(message string, err error) *DomainError {
	return New(ErrTypeUnauthorized, message, err)
}

func InvalidInput(message string, err error) *DomainError {
	return New(ErrTypeInvalidInput, message, err)
}

func NotFound(message string, err error) *DomainError {
	return New(ErrTypeNotFound, message, err)
}

func RateLimit(message string, err error) *DomainError {
	return New(ErrTypeRateLimit, message, err)
}

func Upstream(message string, err error) *DomainError {
	return New(ErrTypeUpstream, message, err)
}

func Persistence(message string, err error) *DomainError {
	return New(ErrTypePersistence, message, err)
}

func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}

// As unwraps err into a DomainError. Anything else becomes an Internal error
// so callers always get a status and a message.
func As(err error) *DomainError {
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return Internal("Server error.", err)
}

// Is reports whether err is a DomainError of the given type.
func Is(err error, errType ErrorType) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Type == errType
}

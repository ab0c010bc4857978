package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

func (s ErrorType) String() string {
	return strings.ToLower(string(s))
}

const (
	ErrInternalError   ErrorType = "Internal Error"
	ErrNotFound        ErrorType = "Not Found"
	ErrAlreadyExists   ErrorType = "Resource Already Exists"
	ErrInvalidArgument ErrorType = "Invalid Argument"
	ErrFailedPrecond   ErrorType = "Failed Precondition"
	ErrUnauthenticated ErrorType = "Unauthenticated"
	ErrPermission      ErrorType = "Permission Denied"
)

type DomainError struct {
	ErrorType  ErrorType
	Entity     string
	Message    string
	WrappedErr error
}

func NewError(errType ErrorType, entity string, msg string) *DomainError {
	return &DomainError{
		Entity:     entity,
		ErrorType:  errType,
		Message:    msg,
		WrappedErr: nil,
	}
}

func NewInternalError(entity string, msg string, err error) *DomainError {
	return &DomainError{
		Entity:     entity,
		ErrorType:  ErrInternalError,
		Message:    msg,
		WrappedErr: err,
	}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%v for entity %v: %v",
		e.ErrorType.String(), e.Entity, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.WrappedErr
}

// IsType reports whether err carries a DomainError of the given type
func IsType(err error, errType ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.ErrorType == errType
	}
	return false
}

// FromCode maps a connect error code, falling back to the http status when
// the code is empty or unknown.
func FromCode(code string, httpStatus int, entity, msg string) *DomainError {
	errType := ErrInternalError
	switch code {
	case "not_found":
		errType = ErrNotFound
	case "already_exists":
		errType = ErrAlreadyExists
	case "invalid_argument", "out_of_range":
		errType = ErrInvalidArgument
	case "failed_precondition":
		errType = ErrFailedPrecond
	case "unauthenticated":
		errType = ErrUnauthenticated
	case "permission_denied":
		errType = ErrPermission
	default:
		errType = fromStatus(httpStatus)
	}
	return NewError(errType, entity, msg)
}

func fromStatus(httpStatus int) ErrorType {
	switch httpStatus {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrAlreadyExists
	case http.StatusBadRequest:
		return ErrInvalidArgument
	case http.StatusPreconditionFailed:
		return ErrFailedPrecond
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrPermission
	}
	return ErrInternalError
}

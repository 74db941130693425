package service

import (
	"errors"
	"fmt"
)

const (
	ErrInternalServerError = "internal_server_error"
	ErrBadParameter        = "bad_parameter"
	ErrEntityNotFound      = "entity_not_found"
	ErrUnauthenticated     = "unauthenticated"
)

// DirectoryError is the error taxonomy of the directory: a stable code for
// transport mapping, a human-readable message, and the wrapped cause.
type DirectoryError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Inner   error  `json:"-"`
}

func (e DirectoryError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e DirectoryError) Unwrap() error { return e.Inner }

// ToDirectoryError extracts a DirectoryError from err's chain, or nil.
func ToDirectoryError(err error) *DirectoryError {
	var e DirectoryError
	if errors.As(err, &e) {
		return &e
	}
	return nil
}

func NewBadParameterError(message string, inner error) DirectoryError {
	return DirectoryError{Code: ErrBadParameter, Message: message, Inner: inner}
}

func IsBadParameter(err error) bool {
	var e DirectoryError
	return errors.As(err, &e) && e.Code == ErrBadParameter
}

func NewEntityNotFoundError(message string, inner error) DirectoryError {
	return DirectoryError{Code: ErrEntityNotFound, Message: message, Inner: inner}
}

func IsEntityNotFound(err error) bool {
	var e DirectoryError
	return errors.As(err, &e) && e.Code == ErrEntityNotFound
}

func NewInternalServerError(message string, inner error) DirectoryError {
	return DirectoryError{Code: ErrInternalServerError, Message: message, Inner: inner}
}

func IsInternalServerError(err error) bool {
	var e DirectoryError
	return errors.As(err, &e) && e.Code == ErrInternalServerError
}

func NewUnauthenticatedError(message string, inner error) DirectoryError {
	return DirectoryError{Code: ErrUnauthenticated, Message: message, Inner: inner}
}

func IsUnauthenticated(err error) bool {
	var e DirectoryError
	return errors.As(err, &e) && e.Code == ErrUnauthenticated
}

// Package apperr carries domain failures as (message, statusCode) pairs
// so the terminal HTTP error writer can map them without inspecting
// handler internals.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindUnclassified Kind = iota
	KindValidation
	KindEmptyResult
	KindNotFound
	KindCreationFailed
)

type Error struct {
	Kind       Kind
	Message    string
	StatusCode int

	// Fields holds per-field validation messages, nil for other kinds.
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, StatusCode: http.StatusBadRequest, Fields: fields}
}

func EmptyResult(message string) *Error {
	return &Error{Kind: KindEmptyResult, Message: message, StatusCode: http.StatusBadRequest}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, StatusCode: http.StatusBadRequest}
}

func CreationFailed(message string) *Error {
	return &Error{Kind: KindCreationFailed, Message: message, StatusCode: http.StatusBadRequest}
}

// As unwraps err to a domain *Error, nil if the failure is unclassified.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

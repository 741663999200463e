// Package domainerrors defines the error taxonomy surfaced over HTTP.
// Services return these; the transport layer maps codes to status codes and
// JSON envelopes without inspecting error strings.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code identifies a class of failure. The string value is what API clients see.
type Code string

const (
	// CodeBadRequest covers missing or malformed input. Safe to retry after
	// correcting the request.
	CodeBadRequest Code = "bad_request"
	// CodeUnauthorizedIssuer means the issuer wallet is not in the registry.
	CodeUnauthorizedIssuer Code = "unauthorized_issuer"
	// CodeNotFound means the referenced certificate, property, or wallet has
	// no matching record.
	CodeNotFound Code = "not_found"
	// CodeInternal covers storage and ledger failures. Descriptions are not
	// exposed to clients for this code.
	CodeInternal Code = "internal_error"
)

// Error carries a code plus a human-readable description.
type Error struct {
	Code        Code
	Description string
}

func (e *Error) Error() string {
	if e.Description == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Description
}

// New constructs a domain error with the given code and description.
func New(code Code, description string) *Error {
	return &Error{Code: code, Description: description}
}

// Is reports whether err is (or wraps) a domain error with the given code.
func Is(err error, code Code) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == code
}

// ToHTTPStatus maps an error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorizedIssuer:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

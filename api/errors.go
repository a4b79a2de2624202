package api

import "net/http"

// Error is the failure half of every handler result. The status code is
// resolved by the handler itself so the dispatcher stays a dumb pipe.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errValidation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// errAuth deliberately reports every auth failure the same way so a
// caller can't tell a missing token from an expired one or from a
// token owned by someone else.
func errAuth() *Error {
	return &Error{Status: http.StatusForbidden, Message: "Missing required token in header, or token is invalid"}
}

func errNotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// errConflict reports a duplicate resource. The original API used 400
// rather than 409 for this and callers depend on it.
func errConflict(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func errQuotaExceeded(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func errMethodNotAllowed() *Error {
	return &Error{Status: http.StatusMethodNotAllowed}
}

func errInternal(msg string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msg}
}

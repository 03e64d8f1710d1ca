// Package apperror defines the error taxonomy shared by services and the
// HTTP layer. Services are the single place storage failures get
// classified; anything that reaches the transport unclassified is
// rendered as an internal error.
package apperror

import "strings"

// Kind classifies a client-visible failure.
type Kind string

const (
	KindInvalidInput     Kind = "invalid_input"
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindInvalidOperation Kind = "invalid_operation"
	KindInternal         Kind = "internal"
)

// Error is a classified, client-visible failure.
type Error struct {
	Kind     Kind
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

// New creates an Error of the given kind.
func New(kind Kind, messages ...string) *Error {
	return &Error{Kind: kind, Messages: messages}
}

// NewInvalidInput reports malformed input, e.g. a non-numeric identifier.
func NewInvalidInput(message string) *Error {
	return New(KindInvalidInput, message)
}

// NewUnauthorized reports a request with no usable credential.
func NewUnauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

// NewForbidden reports a credential that is present but insufficient.
func NewForbidden(message string) *Error {
	return New(KindForbidden, message)
}

// NewNotFound reports an absent resource.
func NewNotFound(message string) *Error {
	return New(KindNotFound, message)
}

// NewConflict reports a uniqueness violation.
func NewConflict(message string) *Error {
	return New(KindConflict, message)
}

// NewInvalidOperation reports a structurally impossible operation,
// e.g. following yourself.
func NewInvalidOperation(message string) *Error {
	return New(KindInvalidOperation, message)
}

// NewInternal reports an unexpected failure with a generic message.
// Raw storage error text never reaches the client.
func NewInternal() *Error {
	return New(KindInternal, "Internal server error")
}

// NewInvalidCredentials reports a failed login. Unknown email and wrong
// password produce this same error so neither half is revealed.
func NewInvalidCredentials() *Error {
	return New(KindUnauthorized, "Invalid email or password")
}

// NewMissingToken reports a request without an authentication token.
func NewMissingToken() *Error {
	return New(KindUnauthorized, "Authentication token required")
}

// NewInvalidToken reports a malformed, forged or expired token.
func NewInvalidToken() *Error {
	return New(KindForbidden, "Invalid or expired token")
}

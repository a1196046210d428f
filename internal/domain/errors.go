package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation     ErrKind = "validation"     // 400
	KindAuth           ErrKind = "auth"           // 401
	KindNotFound       ErrKind = "not_found"      // 404
	KindConflict       ErrKind = "conflict"       // 409
	KindUpstream       ErrKind = "upstream"       // 502
	KindInfrastructure ErrKind = "infrastructure" // 503
	KindInternal       ErrKind = "internal"       // 500
)

// Stable codes the services branch on. Do not change casually.
const (
	CodeAccountNotFound = "account_not_found"
	CodeNotInRoster     = "not_in_roster"
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (avoid leaking sensitive details)
// - Meta: optional details (field, reason, etc.)
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Meta    map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func WithMeta(err *Error, meta map[string]string) *Error {
	err.Meta = meta
	return err
}

func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "invalid JSON body", cause)
}

func ErrMissingField(field string) *Error {
	return WithMeta(New(KindValidation, "missing_field", "missing required field"), map[string]string{
		"field": field,
	})
}

func ErrInvalidField(field, reason string) *Error {
	return WithMeta(New(KindValidation, "invalid_field", "invalid field"), map[string]string{
		"field":  field,
		"reason": reason,
	})
}

func ErrWeakPassword(reason string) *Error {
	return WithMeta(New(KindValidation, "weak_password", "password does not meet requirements"), map[string]string{
		"reason": reason,
	})
}

// The email/DNI pair does not match the institutional roster.
func ErrIdentityMismatch() *Error {
	return New(KindValidation, "identity_mismatch", "email and DNI do not match")
}

func ErrNotInRoster() *Error {
	return New(KindValidation, CodeNotInRoster, "email not found in roster")
}

func ErrInvalidTestKind(kind string) *Error {
	return WithMeta(New(KindValidation, "invalid_test_kind", "invalid test kind"), map[string]string{
		"kind": kind,
	})
}

// ----------------------
// Auth errors (401)
// ----------------------

// IMPORTANT: use this for every login failure to avoid account enumeration.
func ErrInvalidCredentials() *Error {
	return New(KindAuth, "invalid_credentials", "invalid email or password")
}

func ErrTokenMissing() *Error {
	return New(KindAuth, "token_missing", "no token provided")
}

func ErrTokenInvalid() *Error {
	return New(KindAuth, "token_invalid", "invalid token")
}

func ErrTokenExpired() *Error {
	return New(KindAuth, "token_expired", "token is expired")
}

// ----------------------
// Not Found (404)
// ----------------------

func ErrAccountNotFound() *Error {
	return New(KindNotFound, CodeAccountNotFound, "account not registered")
}

// ----------------------
// Conflict (409)
// ----------------------

func ErrAccountAlreadyExists() *Error {
	return New(KindConflict, "account_already_exists", "account already registered")
}

func ErrAccountDisabled() *Error {
	return New(KindConflict, "account_disabled", "account disabled")
}

// ----------------------
// Upstream (502)
// ----------------------

func ErrUpstreamWriteFailed(cause error) *Error {
	return Wrap(KindUpstream, "upstream_write_failed", "could not update progress in external system", cause)
}

func ErrUpstreamUnavailable(cause error) *Error {
	return Wrap(KindUpstream, "upstream_unavailable", "external progress system unavailable", cause)
}

// ----------------------
// Infrastructure / internal (5xx)
// ----------------------

func ErrDBUnavailable(cause error) *Error {
	return Wrap(KindInfrastructure, "db_unavailable", "database unavailable", cause)
}

func ErrCacheUnavailable(cause error) *Error {
	return Wrap(KindInfrastructure, "cache_unavailable", "cache unavailable", cause)
}

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "password hashing failed", cause)
}

func ErrTokenSignFailed(cause error) *Error {
	return Wrap(KindInternal, "token_sign_failed", "token signing failed", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "internal error", cause)
}

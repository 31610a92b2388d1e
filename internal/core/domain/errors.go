package domain

import "errors"

// ErrorKind classifies a domain failure. The HTTP boundary owns the mapping
// from kind to status code.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidInput
	KindInvalidID
	KindNotFound
	KindInvalidCredential
	KindSchemaViolation
	KindUnauthorized
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindInvalidID:
		return "invalid_id"
	case KindNotFound:
		return "not_found"
	case KindInvalidCredential:
		return "invalid_credential"
	case KindSchemaViolation:
		return "schema_violation"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a domain failure tagged with its kind and a caller-facing message.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewError builds a tagged domain error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds a tagged domain error carrying an underlying cause.
func Wrap(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// WithMessage returns a new error of e's kind carrying a caller-facing message.
func (e *Error) WithMessage(message string) *Error {
	return &Error{Kind: e.Kind, Message: message}
}

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is regardless of the concrete message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels, one per kind. Construction sites derive from them with
// WithMessage; callers test with errors.Is.
var (
	ErrInvalidInput      = NewError(KindInvalidInput, "invalid input")
	ErrInvalidID         = NewError(KindInvalidID, "invalid id")
	ErrNotFound          = NewError(KindNotFound, "not found")
	ErrInvalidCredential = NewError(KindInvalidCredential, "invalid credential")
	ErrSchemaViolation   = NewError(KindSchemaViolation, "schema violation")
	ErrUnauthorized      = NewError(KindUnauthorized, "unauthorized")
	ErrConflict          = NewError(KindConflict, "conflict")
)

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

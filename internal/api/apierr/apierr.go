// Package apierr defines the canonical failure taxonomy for the gateway and
// the deterministic translations into it (from gRPC status codes) and out of
// it (to HTTP statuses). Every request-level failure, regardless of which
// protocol produced it, is classified as exactly one Kind.
package apierr

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies a request-level failure.
type Kind int

const (
	// KindBusiness marks an operation that was understood and authenticated
	// but refused by a domain rule. It travels on a 200 transport status so
	// clients separate "refused by policy" from "the system is broken"; the
	// envelope code carries the real signal.
	KindBusiness Kind = iota
	KindNotFound
	KindMethodNotAllowed
	KindUnauthenticated
	KindValidation
	KindInternal
)

// HTTPStatus returns the fixed transport status for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindBusiness:
		return http.StatusOK
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified request failure. Code, when non-zero, overrides the
// default -1 envelope code for business rejections.
type Error struct {
	Kind    Kind
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

// EnvelopeCode returns the code rendered into the response envelope.
func (e *Error) EnvelopeCode() int {
	if e.Code != 0 {
		return e.Code
	}
	return -1
}

// Business rejects an otherwise valid operation by domain rule.
func Business(message string) *Error {
	return &Error{Kind: KindBusiness, Message: message}
}

// NotFound reports an absent resource.
func NotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "not found"}
}

// MethodNotAllowed reports an unsupported operation on the route.
func MethodNotAllowed() *Error {
	return &Error{Kind: KindMethodNotAllowed, Message: "method not allowed"}
}

// Unauthenticated reports a missing, malformed or invalid credential.
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// Validation reports malformed or rule-violating input.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Internal reports an unexpected failure. The rendered message is always the
// generic one; the real cause belongs in the log, not the response.
func Internal() *Error {
	return &Error{Kind: KindInternal, Message: "internal server error"}
}

// FromRPC translates a backend call error into the taxonomy through a fixed
// table over the gRPC status space. Codes outside the table, including any
// future ones, land in the internal bucket so no raw backend detail leaks.
// Returns nil when err is nil.
func FromRPC(err error) *Error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.NotFound:
		return NotFound()
	case codes.InvalidArgument, codes.AlreadyExists, codes.FailedPrecondition, codes.OutOfRange:
		return Validation(st.Message())
	case codes.Unauthenticated, codes.PermissionDenied:
		return Unauthenticated(st.Message())
	case codes.Unimplemented:
		return MethodNotAllowed()
	default:
		return Internal()
	}
}

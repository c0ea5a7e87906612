package apierr

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestKindHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindBusiness:         http.StatusOK,
		KindNotFound:         http.StatusNotFound,
		KindMethodNotAllowed: http.StatusMethodNotAllowed,
		KindUnauthenticated:  http.StatusUnauthorized,
		KindValidation:       http.StatusBadRequest,
		KindInternal:         http.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := kind.HTTPStatus(); got != want {
			t.Errorf("Kind(%d).HTTPStatus() = %d, want %d", kind, got, want)
		}
	}
}

func TestEnvelopeCode(t *testing.T) {
	if got := Business("x").EnvelopeCode(); got != -1 {
		t.Errorf("default envelope code = %d, want -1", got)
	}
	e := &Error{Kind: KindBusiness, Code: 4001, Message: "x"}
	if got := e.EnvelopeCode(); got != 4001 {
		t.Errorf("custom envelope code = %d, want 4001", got)
	}
}

// TestFromRPCTable walks the entire standard status code space: every code
// maps to exactly one kind, with unmapped codes landing in the internal
// bucket.
func TestFromRPCTable(t *testing.T) {
	want := map[codes.Code]Kind{
		codes.NotFound:           KindNotFound,
		codes.InvalidArgument:    KindValidation,
		codes.AlreadyExists:      KindValidation,
		codes.FailedPrecondition: KindValidation,
		codes.OutOfRange:         KindValidation,
		codes.Unauthenticated:    KindUnauthenticated,
		codes.PermissionDenied:   KindUnauthenticated,
		codes.Unimplemented:      KindMethodNotAllowed,
	}

	// codes.Unauthenticated is the numerically largest standard code.
	for c := codes.Code(1); c <= codes.Unauthenticated; c++ {
		err := status.Error(c, "backend detail")
		got := FromRPC(err)
		if got == nil {
			t.Fatalf("code %v: expected a translated error", c)
		}

		expected, mapped := want[c]
		if !mapped {
			expected = KindInternal
		}
		if got.Kind != expected {
			t.Errorf("code %v: kind = %v, want %v", c, got.Kind, expected)
		}
	}
}

func TestFromRPCUnknownFutureCode(t *testing.T) {
	got := FromRPC(status.Error(codes.Code(999), "from the future"))
	if got.Kind != KindInternal {
		t.Fatalf("kind = %v, want KindInternal", got.Kind)
	}
	if got.Message != "internal server error" {
		t.Fatalf("message = %q, backend detail must not leak", got.Message)
	}
}

func TestFromRPCNonStatusError(t *testing.T) {
	got := FromRPC(errors.New("plain error"))
	if got.Kind != KindInternal {
		t.Fatalf("kind = %v, want KindInternal", got.Kind)
	}
}

func TestFromRPCNil(t *testing.T) {
	if got := FromRPC(nil); got != nil {
		t.Fatalf("FromRPC(nil) = %v, want nil", got)
	}
}

func TestFromRPCKeepsMessageForClientFacingKinds(t *testing.T) {
	got := FromRPC(status.Error(codes.AlreadyExists, "user already exists"))
	if got.Message != "user already exists" {
		t.Fatalf("message = %q, want the status message", got.Message)
	}
}

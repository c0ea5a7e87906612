package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/account-system/internal/api/apierr"
	"github.com/accounthub/account-system/internal/auth"
)

func newTestManager() *auth.TokenManager {
	return auth.NewTokenManager(auth.TokenConfig{
		Secret:   "middleware-test-secret",
		Audience: "test-aud",
		Issuer:   "test-iss",
	})
}

// invoke runs the gate against a request carrying the given Authorization
// header and reports the error plus whatever principal the next handler saw.
func invoke(t *testing.T, tokens *auth.TokenManager, header string) (error, *auth.Principal, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/profile", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *auth.Principal
	var reached bool
	next := func(c echo.Context) error {
		reached = true
		if p, ok := auth.PrincipalFrom(c.Request().Context()); ok {
			seen = &p
		}
		return nil
	}

	err := Auth(tokens)(next)(c)
	return err, seen, reached
}

func TestAuthMissingHeader(t *testing.T) {
	err, _, reached := invoke(t, newTestManager(), "")
	if reached {
		t.Fatal("handler ran without a credential")
	}
	ae := asAPIError(t, err)
	if ae.Kind != apierr.KindUnauthenticated {
		t.Fatalf("kind = %v, want KindUnauthenticated", ae.Kind)
	}
	if ae.Message != "missing authorization header" {
		t.Fatalf("message = %q", ae.Message)
	}
}

func TestAuthWrongScheme(t *testing.T) {
	err, _, reached := invoke(t, newTestManager(), "Token abc123")
	if reached {
		t.Fatal("handler ran with a non-bearer credential")
	}
	ae := asAPIError(t, err)
	if ae.Message != "authorization header must use the Bearer scheme" {
		t.Fatalf("message = %q", ae.Message)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	err, _, reached := invoke(t, newTestManager(), "Bearer not.a.token")
	if reached {
		t.Fatal("handler ran with an unverifiable token")
	}
	ae := asAPIError(t, err)
	if ae.Kind != apierr.KindUnauthenticated {
		t.Fatalf("kind = %v, want KindUnauthenticated", ae.Kind)
	}
	if !strings.HasPrefix(ae.Message, "not signed in or session expired") {
		t.Fatalf("message = %q", ae.Message)
	}
}

func TestAuthForeignToken(t *testing.T) {
	// Signed by a manager with a different secret.
	other := auth.NewTokenManager(auth.TokenConfig{Secret: "someone-else"})
	token, err := other.Issue(auth.Principal{ID: 7, Username: "mallory", Identity: auth.IdentityAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	gateErr, _, reached := invoke(t, newTestManager(), "Bearer "+token)
	if reached {
		t.Fatal("handler ran with a foreign token")
	}
	ae := asAPIError(t, gateErr)
	if ae.Kind != apierr.KindUnauthenticated {
		t.Fatalf("kind = %v, want KindUnauthenticated", ae.Kind)
	}
}

func TestAuthValidToken(t *testing.T) {
	tokens := newTestManager()
	token, err := tokens.Issue(auth.Principal{ID: 42, Username: "alice", Identity: auth.IdentityVip})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	gateErr, seen, reached := invoke(t, tokens, "Bearer "+token)
	if gateErr != nil {
		t.Fatalf("unexpected error: %v", gateErr)
	}
	if !reached {
		t.Fatal("handler never ran")
	}
	if seen == nil {
		t.Fatal("no principal in request context")
	}
	if seen.ID != 42 || seen.Username != "alice" || seen.Identity != auth.IdentityVip {
		t.Fatalf("principal = %+v", *seen)
	}
}

func asAPIError(t *testing.T, err error) *apierr.Error {
	t.Helper()
	ae, ok := err.(*apierr.Error)
	if !ok {
		t.Fatalf("error type = %T, want *apierr.Error", err)
	}
	return ae
}

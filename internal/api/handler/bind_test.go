package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/account-system/internal/api/apierr"
)

func TestBindValidatedBody(t *testing.T) {
	c, _ := newHandlerContext(t, `{"username":"alice","password":"secret99"}`)

	req, err := BindValidated[registerRequest](c, SourceBody)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if req.Username != "alice" || req.Password != "secret99" {
		t.Fatalf("bound value = %+v", *req)
	}
}

func TestBindValidatedAggregatesViolations(t *testing.T) {
	// Username too short and password missing: both must appear in one message.
	c, _ := newHandlerContext(t, `{"username":"a"}`)

	_, err := BindValidated[registerRequest](c, SourceBody)
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("error type = %T", err)
	}
	if ae.Kind != apierr.KindValidation {
		t.Fatalf("kind = %v", ae.Kind)
	}
	if !strings.Contains(ae.Message, "username") || !strings.Contains(ae.Message, "password") {
		t.Fatalf("message %q does not name both violations", ae.Message)
	}
	if !strings.Contains(ae.Message, "; ") {
		t.Fatalf("message %q is not an aggregate", ae.Message)
	}
}

func TestBindValidatedRejectsColonInUsername(t *testing.T) {
	c, _ := newHandlerContext(t, `{"username":"al:ce","password":"secret99"}`)

	_, err := BindValidated[registerRequest](c, SourceBody)
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("error type = %T", err)
	}
	if !strings.Contains(ae.Message, "forbidden character") {
		t.Fatalf("message = %q", ae.Message)
	}
}

// The exclusion set is exactly the colon; usernames spelled with ordinary
// letters and digits must pass on length alone.
func TestBindValidatedUsernameCharacters(t *testing.T) {
	for _, username := range []string{"Maxwell", "Alice", "alice3", "u0ser", "x"} {
		c, _ := newHandlerContext(t, `{"username":"`+username+`","password":"secret99"}`)

		req, err := BindValidated[registerRequest](c, SourceBody)
		if len(username) < 2 {
			if err == nil {
				t.Errorf("username %q: short name accepted", username)
			}
			continue
		}
		if err != nil {
			t.Errorf("username %q: rejected: %v", username, err)
			continue
		}
		if req.Username != username {
			t.Errorf("username %q: bound as %q", username, req.Username)
		}
	}
}

func TestBindValidatedMalformedBody(t *testing.T) {
	c, _ := newHandlerContext(t, `{"username":`)

	_, err := BindValidated[registerRequest](c, SourceBody)
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("error type = %T", err)
	}
	if ae.Kind != apierr.KindValidation {
		t.Fatalf("kind = %v, want KindValidation", ae.Kind)
	}
}

func TestBindValidatedQuery(t *testing.T) {
	type pageQuery struct {
		Page int `query:"page" validate:"min=1"`
	}

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, "/?page=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	q, err := BindValidated[pageQuery](c, SourceQuery)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if q.Page != 3 {
		t.Fatalf("page = %d", q.Page)
	}
}

func TestBindValidatedPath(t *testing.T) {
	type userPath struct {
		ID int32 `param:"id" validate:"required"`
	}

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	p, err := BindValidated[userPath](c, SourcePath)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if p.ID != 42 {
		t.Fatalf("id = %d", p.ID)
	}
}

package handler

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/account-system/internal/api/apierr"
)

// Source selects which part of the request a type binds from.
type Source int

const (
	SourceBody Source = iota
	SourceQuery
	SourcePath
)

// BindValidated binds one request location into T, then runs the validation
// rules declared on T, aggregating every violated rule into a single
// message. Bind failures (malformed encoding, wrong types) and rule
// failures surface as the same validation error; a handler never sees a
// partially valid value.
//
// One generic implementation covers all three locations, instantiated per
// call site instead of duplicating the bind-then-validate sequence.
func BindValidated[T any](c echo.Context, src Source) (*T, error) {
	v := new(T)
	binder := new(echo.DefaultBinder)

	var err error
	switch src {
	case SourcePath:
		err = binder.BindPathParams(c, v)
	case SourceQuery:
		err = binder.BindQueryParams(c, v)
	default:
		err = binder.BindBody(c, v)
	}
	if err != nil {
		return nil, apierr.Validation(bindMessage(err))
	}

	if err := c.Validate(v); err != nil {
		return nil, apierr.Validation(bindMessage(err))
	}
	return v, nil
}

// bindMessage flattens echo's bind rejections to their message text so the
// envelope carries a readable reason instead of a wrapped HTTP error.
func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprintf("%v", he.Message)
	}
	return err.Error()
}

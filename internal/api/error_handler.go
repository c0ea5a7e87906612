package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/accounthub/account-system/internal/api/apierr"
	"github.com/accounthub/account-system/internal/api/metrics"
	"github.com/accounthub/account-system/internal/api/response"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders every failure as the {code, message} envelope.
//   - Maps classified errors to their fixed transport status; business
//     rejections keep a 200 transport status with an error envelope.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		ae := classify(err)
		if ae.Kind == apierr.KindInternal {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}
		metrics.RequestErrorsTotal.WithLabelValues(kindLabel(ae.Kind)).Inc()

		_ = c.JSON(ae.Kind.HTTPStatus(), response.ErrWithCode(ae.EnvelopeCode(), ae.Message))
	}
}

// classify normalises anything a handler or echo itself can return into the
// taxonomy. Echo's router errors (404, 405) and bind failures arrive as
// *echo.HTTPError; everything unclassified is an internal error.
func classify(err error) *apierr.Error {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		return ae
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := fmt.Sprintf("%v", he.Message)
		switch he.Code {
		case http.StatusNotFound:
			return apierr.NotFound()
		case http.StatusMethodNotAllowed:
			return apierr.MethodNotAllowed()
		case http.StatusUnauthorized:
			return apierr.Unauthenticated(msg)
		case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
			return apierr.Validation(msg)
		}
	}

	return apierr.Internal()
}

func kindLabel(k apierr.Kind) string {
	switch k {
	case apierr.KindBusiness:
		return "business"
	case apierr.KindNotFound:
		return "not_found"
	case apierr.KindMethodNotAllowed:
		return "method_not_allowed"
	case apierr.KindUnauthenticated:
		return "unauthenticated"
	case apierr.KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

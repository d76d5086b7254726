package handler

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "pcosrisk/internal/errors"
)

// httpError maps a service error to an echo error carrying an ErrorResponse.
// Authentication failures also get the bearer challenge header.
func httpError(c echo.Context, err error) *echo.HTTPError {
	mapped := apperrors.MapErrorToHTTP(err)
	if mapped.StatusCode == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
}

// Unauthorized is the uniform 401 returned for any credential or token problem.
func Unauthorized(c echo.Context) *echo.HTTPError {
	return httpError(c, apperrors.ErrAuthFailure)
}

func badRequest(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		Error: message,
		Code:  "VALIDATION_ERROR",
	})
}

// bindAndValidate decodes the request body into req and runs struct validation.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error())
	}
	return nil
}

// ErrorHandler renders every error as an ErrorResponse. Errors that are not
// already *echo.HTTPError go through MapErrorToHTTP.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !stderrors.As(err, &he) {
		he = httpError(c, err)
	}

	body := he.Message
	if msg, ok := body.(string); ok {
		body = apperrors.ErrorResponse{Error: msg, Code: statusCode(he.Code)}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(he.Code)
		return
	}
	_ = c.JSON(he.Code, body)
}

// statusCode turns an HTTP status into an error code, e.g. 404 -> NOT_FOUND.
func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"

	"github.com/iliyamo/school-admin/internal/model"
	"github.com/iliyamo/school-admin/internal/repository"
	"github.com/iliyamo/school-admin/internal/validation"
)

var errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "invalid body")

// HTTPErrorHandler turns handler errors into JSON bodies of the form
// {"error": "..."}; validation failures add a "fields" map.
func HTTPErrorHandler(err error, c echo.Context) {
	// Middleware may already have rendered this error.
	if c.Response().Committed {
		return
	}
	code, body := errorResponse(err)
	if code == http.StatusInternalServerError {
		c.Logger().Errorf("request %s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

func errorResponse(err error) (int, echo.Map) {
	var (
		he  *echo.HTTPError
		ve  *validation.Error
		nfe *repository.NotFoundError
	)
	switch cause := pkgerrors.Cause(err); {
	case errors.As(cause, &ve):
		return http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": ve.Fields}
	case errors.As(cause, &nfe):
		return http.StatusNotFound, echo.Map{"error": nfe.Error()}
	case errors.Is(cause, repository.ErrPublishLimit):
		return http.StatusConflict, echo.Map{"error": model.PublishLimitMessage}
	case errors.As(cause, &he):
		if inner, ok := he.Internal.(*echo.HTTPError); ok {
			he = inner
		}
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		return he.Code, echo.Map{"error": msg}
	default:
		return http.StatusInternalServerError, echo.Map{"error": http.StatusText(http.StatusInternalServerError)}
	}
}

package handler

import (
	"net/http"
	"strconv"

	"skillhub/internal/domain/pagination"
	"skillhub/internal/domain/result"
	"skillhub/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// respondEither is the single place where use case results meet the
// transport: infrastructure errors become an opaque 500, Left arms are
// mapped through apierror.FromFault, Right arms serialize as-is.
func respondEither[T any](c echo.Context, status int, e result.Either[T], err error) error {
	if err != nil {
		log.Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}

	if e.IsLeft() {
		apierr := apierror.FromFault(e.Err())
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(status, e.Value())
}

// respondNoContent is respondEither for use cases succeeding without
// a payload.
func respondNoContent(c echo.Context, e result.Either[result.Unit], err error) error {
	if err != nil {
		log.Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}

	if e.IsLeft() {
		apierr := apierror.FromFault(e.Err())
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func parseIDParam(c echo.Context, name string) (int64, apierror.ErrorResponse) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.NewInvalidParamTypeError(name, "int64")
	}
	return id, nil
}

func parsePageQuery(c echo.Context) (pagination.PageQuery, apierror.ErrorResponse) {
	q := pagination.PageQuery{
		AfterCursor:  c.QueryParam("after"),
		BeforeCursor: c.QueryParam("before"),
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return q, apierror.NewInvalidParamTypeError("limit", "int")
		}
		q.Limit = limit
	}

	// Reject malformed cursors here so the storage layer never sees them.
	for _, cursor := range []string{q.AfterCursor, q.BeforeCursor} {
		if cursor == "" {
			continue
		}
		if _, err := pagination.DecodeCursor(cursor); err != nil {
			return q, apierror.InvalidCursorError
		}
	}
	return q.Normalized(), nil
}

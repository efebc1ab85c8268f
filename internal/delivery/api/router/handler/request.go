// Package handler holds the HTTP handlers of the storefront API.
package handler

import (
	"strconv"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// bindRequest binds and validates req. Validation errors are rendered by the
// central error handler with their field details.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// pagination reads limit and offset; absent values are zero.
func pagination(c echo.Context) (limit, offset int, err error) {
	err = echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError()
	if err != nil {
		return 0, 0, domainerrors.ErrValidationFailed.WithDetails("limit and offset must be integers")
	}

	return limit, offset, nil
}

// dateRange reads from and to as RFC 3339 timestamps or plain dates. A plain
// "to" date includes the whole day.
func dateRange(c echo.Context) (entity.DateRange, error) {
	var r entity.DateRange
	var err error
	if r.From, err = parseTime(c.QueryParam("from"), false); err != nil {
		return r, domainerrors.ErrValidationFailed.WithDetails("from: " + err.Error())
	}
	if r.To, err = parseTime(c.QueryParam("to"), true); err != nil {
		return r, domainerrors.ErrValidationFailed.WithDetails("to: " + err.Error())
	}

	return r, nil
}

func parseTime(value string, endOfDay bool) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1)
	}

	return t, nil
}

func contentDisposition(filename string) string {
	return "inline; filename=" + strconv.Quote(filename)
}

// SPDX-License-Identifier: GPL-3.0-only

package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// EchoErrorHandler serializes every error reaching the transport boundary as
// {"message": ...} with the status hint the error carries.
func EchoErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *Error
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		message = appErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	default:
		c.Logger().Error("Unhandled error: ", err)
	}

	if status >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if jsonErr := c.JSON(status, map[string]string{"message": message}); jsonErr != nil {
		c.Logger().Error("Failed to write error response: ", jsonErr)
	}
}

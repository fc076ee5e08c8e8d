package middleware

import (
	"net/http"
	"strings"

	"github.com/Padmajasharma/Bookshow/pkg/logger"
	"github.com/labstack/echo/v4"
)

// ErrorHandler maps uncaught errors to responses. Validation and auth
// failures are handled inside handlers; anything arriving here is either an
// echo.HTTPError raised deliberately or a persistence fault, which becomes a
// generic 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	} else {
		logger.Errorf("request failed: %v", err)
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		_ = c.JSON(code, map[string]string{"message": msg})
		return
	}
	_ = c.String(code, msg)
}

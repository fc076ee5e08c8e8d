package handler

import (
	"github.com/Padmajasharma/Bookshow/internal/middleware"
	"github.com/Padmajasharma/Bookshow/internal/session"
	"github.com/labstack/echo/v4"
)

// pageData decorates template data with the request identity and any pending
// flash messages.
func pageData(c echo.Context, sess *session.Manager, data echo.Map) echo.Map {
	if data == nil {
		data = echo.Map{}
	}
	data["Identity"] = middleware.CurrentIdentity(c)
	data["Flashes"] = sess.Flashes(c)
	return data
}

package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses the :id path segment as an integer. A non-numeric id
// addresses no record and behaves exactly like a missing one, so callers
// translate ok=false into their collection's not-found error rather than a
// parse failure.
func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

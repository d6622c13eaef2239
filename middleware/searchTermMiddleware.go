package middleware

import (
	"net/http"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a `term` HTTP query parameter was provided
for literature searches
*/
func MandateSearchTermAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		termQP := c.QueryParam("term")
		if len(termQP) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'term' query parameter for querying!")
		}

		return next(c)
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a valid `hgvs` HTTP query parameter was provided
*/
func MandateHgvsAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// check for hgvs query parameter
		hgvsQP := c.QueryParam("hgvs")
		if len(hgvsQP) == 0 {
			// if no notation was provided return an error
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'hgvs' query parameter for querying!")
		}

		// verify : transcript-relative notation carries a ':' between
		// the reference sequence and the variant change
		if !strings.Contains(hgvsQP, ":") {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid 'hgvs' query parameter! Expected something like 'NM_000516.7:c.601C>T'")
		}

		return next(c)
	}
}

package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a `mask` HTTP query parameter,
if provided, is a valid boolean
*/
func ValidateOptionalMaskAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		maskQP := c.QueryParam("mask")
		if len(maskQP) > 0 {
			if _, conversionErr := strconv.ParseBool(maskQP); conversionErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Error converting 'mask' query parameter! Check your input")
			}
		}

		return next(c)
	}
}

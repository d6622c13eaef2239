package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a `distance` HTTP query parameter,
if provided, is a positive integer (flanking window in basepairs
for splice-impact predictions)
*/
func ValidateOptionalDistanceAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		distanceQP := c.QueryParam("distance")
		if len(distanceQP) > 0 {
			distance, conversionErr := strconv.Atoi(distanceQP)
			if conversionErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Error converting 'distance' query parameter! Check your input")
			}

			if distance <= 0 {
				return echo.NewHTTPError(http.StatusBadRequest, "Please provide a 'distance' greater than 0!")
			}
		}

		return next(c)
	}
}

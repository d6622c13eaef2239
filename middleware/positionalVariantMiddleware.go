package middleware

import (
	"fmt"
	"net/http"

	"svid/api/models/constants/chromosome"
	"svid/api/services/normalization"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a valid positional `variant` HTTP query
parameter ("chr-pos-ref-alt") was provided
*/
func MandatePositionalVariantAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// check for variant query parameter
		variantQP := c.QueryParam("variant")
		if len(variantQP) == 0 {
			// if no variant was provided return an error
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'variant' query parameter for querying!")
		}

		// verify : format errors surface to the caller directly
		// rather than being guessed at
		parsedVariant, parseErr := normalization.ParsePositionalVariant(variantQP)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, parseErr.Error())
		}

		if !chromosome.IsValidHumanChromosome(parsedVariant.Chromosome) {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid chromosome '%s' in 'variant' query parameter!", parsedVariant.Chromosome))
		}

		return next(c)
	}
}

package middleware

import (
	"net/http"

	assid "svid/api/models/constants/assembly-id"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure an `assemblyId` HTTP query parameter,
if provided, is valid (a missing parameter falls back to hg38
downstream)
*/
func ValidateOptionalAssemblyIdAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		assemblyIdQP := c.QueryParam("assemblyId")
		if len(assemblyIdQP) > 0 && !assid.IsKnownAssemblyId(assemblyIdQP) {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown assemblyId! Use one of 'hg38', 'hg19'")
		}

		return next(c)
	}
}

package middleware

import (
	"net/http"

	am "svid/api/models/constants/annotation-mode"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure an `annotationMode` HTTP query parameter,
if provided, is valid (a missing parameter falls back to 'somatic'
downstream)
*/
func ValidateOptionalAnnotationModeAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		annotationModeQP := c.QueryParam("annotationMode")
		if len(annotationModeQP) > 0 && !am.IsKnownAnnotationMode(annotationModeQP) {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown annotationMode! Use one of 'somatic', 'germline'")
		}

		return next(c)
	}
}

package mvc

import (
	"strconv"

	"svid/api/contexts"
	"svid/api/models"
	"svid/api/models/constants"
	am "svid/api/models/constants/annotation-mode"
	assid "svid/api/models/constants/assembly-id"
	"svid/api/services/aggregation"

	"github.com/labstack/echo"
)

func RetrieveCommonElements(c echo.Context) (*models.Config, *aggregation.AggregationService) {
	gc := c.(*contexts.SvidContext)
	return gc.Config, gc.AggregationService
}

// RetrieveAnnotationConfiguration gathers the optional per-request
// configuration shared by several adapters, falling back to the
// configured defaults (genome build hg38, splice-impact distance and
// masking from config, somatic annotation mode).
func RetrieveAnnotationConfiguration(c echo.Context) (constants.AssemblyId, int, bool, constants.AnnotationMode) {
	cfg := c.(*contexts.SvidContext).Config

	assembly := assid.Hg38
	assemblyIdQP := c.QueryParam("assemblyId")
	if len(assemblyIdQP) > 0 && assid.IsKnownAssemblyId(assemblyIdQP) {
		assembly = assid.CastToAssemblyId(assemblyIdQP)
	}

	distance := cfg.SpliceAi.DefaultDistance
	distanceQP := c.QueryParam("distance")
	if len(distanceQP) > 0 {
		if parsedDistance, distanceErr := strconv.Atoi(distanceQP); distanceErr == nil && parsedDistance > 0 {
			distance = parsedDistance
		}
	}

	mask := cfg.SpliceAi.DefaultMask
	maskQP := c.QueryParam("mask")
	if len(maskQP) > 0 {
		if parsedMask, maskErr := strconv.ParseBool(maskQP); maskErr == nil {
			mask = parsedMask
		}
	}

	annotationMode := am.Somatic
	annotationModeQP := c.QueryParam("annotationMode")
	if len(annotationModeQP) > 0 && am.IsKnownAnnotationMode(annotationModeQP) {
		annotationMode = am.CastToAnnotationMode(annotationModeQP)
	}

	return assembly, distance, mask, annotationMode
}

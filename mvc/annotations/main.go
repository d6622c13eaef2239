package annotations

import (
	"fmt"
	"net/http"
	"time"

	"svid/api/models/dtos"
	serviceErrors "svid/api/models/dtos/errors"
	"svid/api/mvc"
	"svid/api/services/normalization"

	"github.com/labstack/echo"
)

func SpliceAiGetByVariant(c echo.Context) error {
	fmt.Printf("[%s] - SpliceAiGetByVariant hit!\n", time.Now())
	_, aggregationService := mvc.RetrieveCommonElements(c)
	assembly, distance, mask, _ := mvc.RetrieveAnnotationConfiguration(c)

	variant, parseErr := normalization.ParsePositionalVariant(c.QueryParam("variant"))
	if parseErr != nil {
		return c.JSON(http.StatusBadRequest, serviceErrors.CreateSimpleBadRequest(parseErr.Error()))
	}

	return c.JSON(http.StatusOK, aggregationService.SpliceAi.GetSpliceImpact(variant, assembly, distance, mask))
}

func ClinVarGetByHgvs(c echo.Context) error {
	fmt.Printf("[%s] - ClinVarGetByHgvs hit!\n", time.Now())
	_, aggregationService := mvc.RetrieveCommonElements(c)

	return c.JSON(http.StatusOK, aggregationService.ClinVar.GetClassification(c.QueryParam("hgvs")))
}

func LiteratureSearchByTerm(c echo.Context) error {
	fmt.Printf("[%s] - LiteratureSearchByTerm hit!\n", time.Now())
	_, aggregationService := mvc.RetrieveCommonElements(c)

	return c.JSON(http.StatusOK, aggregationService.PubMed.SearchLiterature(c.QueryParam("term")))
}

func VarSomeGetUrlByVariant(c echo.Context) error {
	fmt.Printf("[%s] - VarSomeGetUrlByVariant hit!\n", time.Now())
	_, aggregationService := mvc.RetrieveCommonElements(c)
	assembly, _, _, annotationMode := mvc.RetrieveAnnotationConfiguration(c)

	variantQP := c.QueryParam("variant")
	if len(variantQP) == 0 {
		return c.JSON(http.StatusBadRequest, serviceErrors.CreateSimpleBadRequest("Missing 'variant' query parameter for querying!"))
	}

	return c.JSON(http.StatusOK, aggregationService.VarSome.GetToolUrl(variantQP, assembly, annotationMode))
}

func RevelGetByVariant(c echo.Context) error {
	fmt.Printf("[%s] - RevelGetByVariant hit!\n", time.Now())
	_, aggregationService := mvc.RetrieveCommonElements(c)

	variant, parseErr := normalization.ParsePositionalVariant(c.QueryParam("variant"))
	if parseErr != nil {
		return c.JSON(http.StatusBadRequest, serviceErrors.CreateSimpleBadRequest(parseErr.Error()))
	}

	return c.JSON(http.StatusOK, aggregationService.DbNsfp.GetPathogenicityScores(variant))
}

func GnomAdGetByHgvs(c echo.Context) error {
	fmt.Printf("[%s] - GnomAdGetByHgvs hit!\n", time.Now())
	_, aggregationService := mvc.RetrieveCommonElements(c)

	return c.JSON(http.StatusOK, aggregationService.GnomAd.GetPopulationFrequency(c.QueryParam("hgvs")))
}

func EnsemblFunctionalGetByHgvs(c echo.Context) error {
	fmt.Printf("[%s] - EnsemblFunctionalGetByHgvs hit!\n", time.Now())
	_, aggregationService := mvc.RetrieveCommonElements(c)

	return c.JSON(http.StatusOK, aggregationService.Ensembl.GetFunctionalPrediction(c.QueryParam("hgvs")))
}

func EnsemblSummaryGetByHgvs(c echo.Context) error {
	fmt.Printf("[%s] - EnsemblSummaryGetByHgvs hit!\n", time.Now())
	_, aggregationService := mvc.RetrieveCommonElements(c)

	return c.JSON(http.StatusOK, aggregationService.Ensembl.GetVariantEffectSummary(c.QueryParam("hgvs")))
}

func EnsemblCoordinatesGetByHgvs(c echo.Context) error {
	fmt.Printf("[%s] - EnsemblCoordinatesGetByHgvs hit!\n", time.Now())
	_, aggregationService := mvc.RetrieveCommonElements(c)

	return c.JSON(http.StatusOK, aggregationService.Ensembl.GetGenomicCoordinates(c.QueryParam("hgvs")))
}

// VariantsNormalize surfaces the identifier normalizer standalone :
// derive whichever representations can be derived locally from the
// provided notation(s), without any upstream round trip.
func VariantsNormalize(c echo.Context) error {
	fmt.Printf("[%s] - VariantsNormalize hit!\n", time.Now())

	hgvsQP := c.QueryParam("hgvs")
	variantQP := c.QueryParam("variant")

	if len(hgvsQP) == 0 && len(variantQP) == 0 {
		return c.JSON(http.StatusBadRequest, serviceErrors.CreateSimpleBadRequest("Provide an 'hgvs' or a positional 'variant' query parameter!"))
	}

	response := dtos.NormalizedVariantResponse{}

	if len(hgvsQP) > 0 {
		response.Hgvs = hgvsQP
		response.VariantChange = normalization.ExtractVariantChange(hgvsQP)
	}

	if len(variantQP) > 0 {
		parsedVariant, parseErr := normalization.ParsePositionalVariant(variantQP)
		if parseErr != nil {
			return c.JSON(http.StatusBadRequest, serviceErrors.CreateSimpleBadRequest(parseErr.Error()))
		}
		response.Positional = &parsedVariant
	}

	return c.JSON(http.StatusOK, response)
}

package pages

import (
	"fmt"
	"net/http"
	"time"

	serviceErrors "svid/api/models/dtos/errors"
	"svid/api/mvc"
	"svid/api/services/aggregation"
	"svid/api/services/normalization"

	"svid/api/models/constants/page"

	"github.com/labstack/echo"
)

/*
	One handler per dashboard page ; each assembles the page's
	inputs into a PageQuery and hands it to the aggregator, which
	invokes that page's sources sequentially.
*/

func GetSummaryPage(c echo.Context) error {
	fmt.Printf("[%s] - GetSummaryPage hit!\n", time.Now())
	_, aggregationService := mvc.RetrieveCommonElements(c)
	assembly, distance, mask, annotationMode := mvc.RetrieveAnnotationConfiguration(c)

	query := aggregation.PageQuery{
		Hgvs:           c.QueryParam("hgvs"),
		GeneVariant:    c.QueryParam("geneVariant"),
		AssemblyId:     assembly,
		Distance:       distance,
		Mask:           mask,
		AnnotationMode: annotationMode,
	}

	return c.JSON(http.StatusOK, aggregationService.AssembleReport(page.Summary, query))
}

func GetInSilicoPage(c echo.Context) error {
	fmt.Printf("[%s] - GetInSilicoPage hit!\n", time.Now())
	_, aggregationService := mvc.RetrieveCommonElements(c)
	assembly, distance, mask, annotationMode := mvc.RetrieveAnnotationConfiguration(c)

	variant, parseErr := normalization.ParsePositionalVariant(c.QueryParam("variant"))
	if parseErr != nil {
		return c.JSON(http.StatusBadRequest, serviceErrors.CreateSimpleBadRequest(parseErr.Error()))
	}

	query := aggregation.PageQuery{
		Hgvs:           c.QueryParam("hgvs"),
		Positional:     &variant,
		AssemblyId:     assembly,
		Distance:       distance,
		Mask:           mask,
		AnnotationMode: annotationMode,
	}

	return c.JSON(http.StatusOK, aggregationService.AssembleReport(page.InSilico, query))
}

func GetFrequencyPage(c echo.Context) error {
	fmt.Printf("[%s] - GetFrequencyPage hit!\n", time.Now())
	_, aggregationService := mvc.RetrieveCommonElements(c)

	query := aggregation.PageQuery{
		Hgvs: c.QueryParam("hgvs"),
	}

	return c.JSON(http.StatusOK, aggregationService.AssembleReport(page.Frequency, query))
}

func GetLiteraturePage(c echo.Context) error {
	fmt.Printf("[%s] - GetLiteraturePage hit!\n", time.Now())
	_, aggregationService := mvc.RetrieveCommonElements(c)

	query := aggregation.PageQuery{
		SearchTerm: c.QueryParam("term"),
	}

	return c.JSON(http.StatusOK, aggregationService.AssembleReport(page.Literature, query))
}

package aggregation

import (
	"fmt"
	"time"

	"svid/api/models"
	"svid/api/models/constants"
	"svid/api/models/constants/page"
	rs "svid/api/models/constants/result-status"
	"svid/api/models/constants/source"
	"svid/api/models/dtos"
	"svid/api/services/clinvar"
	"svid/api/services/dbnsfp"
	"svid/api/services/ensembl"
	"svid/api/services/gnomad"
	"svid/api/services/pubmed"
	"svid/api/services/spliceai"
	"svid/api/services/varsome"

	"github.com/google/uuid"
)

type (
	AggregationService struct {
		Config *models.Config

		SpliceAi *spliceai.SpliceAiService
		ClinVar  *clinvar.ClinVarService
		PubMed   *pubmed.PubMedService
		VarSome  *varsome.VarSomeService
		DbNsfp   *dbnsfp.DbNsfpService
		Ensembl  *ensembl.EnsemblService
		GnomAd   *gnomad.GnomAdService
	}

	// PageQuery carries every input a dashboard page may need ;
	// each page only reads the fields its sources require.
	PageQuery struct {
		Hgvs        string
		Positional  *models.PositionalVariant
		GeneVariant string // "gene:positionRef>Alt", varsome's notation
		SearchTerm  string

		AssemblyId     constants.AssemblyId
		Distance       int
		Mask           bool
		AnnotationMode constants.AnnotationMode
	}
)

func NewAggregationService(cfg *models.Config) *AggregationService {
	ensemblService := ensembl.NewEnsemblService(cfg)

	return &AggregationService{
		Config:   cfg,
		SpliceAi: spliceai.NewSpliceAiService(cfg),
		ClinVar:  clinvar.NewClinVarService(cfg),
		PubMed:   pubmed.NewPubMedService(cfg),
		VarSome:  varsome.NewVarSomeService(cfg),
		DbNsfp:   dbnsfp.NewDbNsfpService(cfg),
		Ensembl:  ensemblService,
		GnomAd:   gnomad.NewGnomAdService(cfg, ensemblService),
	}
}

// SourcesForPage lists which sources a dashboard page invokes ;
// not every page invokes every adapter.
func SourcesForPage(dashboardPage constants.DashboardPage) []constants.SourceName {
	switch dashboardPage {
	case page.Summary:
		return []constants.SourceName{source.EnsemblSummary, source.EnsemblCoordinates, source.ClinVar, source.VarSome}
	case page.InSilico:
		return []constants.SourceName{source.SpliceAi, source.Revel, source.EnsemblFunctional}
	case page.Frequency:
		return []constants.SourceName{source.GnomAd}
	case page.Literature:
		return []constants.SourceName{source.PubMed}
	default:
		return []constants.SourceName{}
	}
}

// AssembleReport walks the page's routing table and invokes each
// source sequentially, in dependency order where one exists
// (coordinate resolution happens inside the population-frequency
// adapter, ahead of the frequency query). A later source's failure
// never discards results already collected : every source the table
// names lands in the report with its own status marker, a missing
// input included.
func (a *AggregationService) AssembleReport(dashboardPage constants.DashboardPage, query PageQuery) dtos.AggregatedReport {
	report := dtos.AggregatedReport{
		QueryId:     uuid.New(),
		Page:        dashboardPage,
		GeneratedAt: time.Now(),
		Results:     map[constants.SourceName]interface{}{},
	}

	for _, sourceName := range SourcesForPage(dashboardPage) {
		report.Results[sourceName] = a.invokeSource(sourceName, query)
	}

	return report
}

// invokeSource dispatches one source invocation ; a source whose
// required input is absent from the query yields an incomplete-data
// marker rather than vanishing from the report.
func (a *AggregationService) invokeSource(sourceName constants.SourceName, query PageQuery) interface{} {
	switch sourceName {
	case source.SpliceAi:
		if query.Positional == nil {
			return dtos.SpliceImpactResponse{Status: rs.IncompleteData, Message: "no positional variant provided"}
		}
		return a.SpliceAi.GetSpliceImpact(*query.Positional, query.AssemblyId, query.Distance, query.Mask)

	case source.ClinVar:
		return a.ClinVar.GetClassification(query.Hgvs)

	case source.PubMed:
		return a.PubMed.SearchLiterature(query.SearchTerm)

	case source.VarSome:
		if query.GeneVariant == "" {
			return dtos.ExternalToolUrlResponse{Status: rs.IncompleteData, Message: "no gene-notation variant provided for the deep link"}
		}
		return a.VarSome.GetToolUrl(query.GeneVariant, query.AssemblyId, query.AnnotationMode)

	case source.Revel:
		if query.Positional == nil {
			return dtos.PathogenicityScoreResponse{Status: rs.IncompleteData, Message: "no positional variant provided"}
		}
		return a.DbNsfp.GetPathogenicityScores(*query.Positional)

	case source.GnomAd:
		return a.GnomAd.GetPopulationFrequency(query.Hgvs)

	case source.EnsemblFunctional:
		return a.Ensembl.GetFunctionalPrediction(query.Hgvs)

	case source.EnsemblSummary:
		return a.Ensembl.GetVariantEffectSummary(query.Hgvs)

	case source.EnsemblCoordinates:
		return a.Ensembl.GetGenomicCoordinates(query.Hgvs)

	default:
		return dtos.GeneralError{Message: fmt.Sprintf("unroutable source '%s'", sourceName)}
	}
}

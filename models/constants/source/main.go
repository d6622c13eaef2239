package source

import (
	"svid/api/models/constants"
)

const (
	SpliceAi constants.SourceName = "spliceai"
	ClinVar  constants.SourceName = "clinvar"
	PubMed   constants.SourceName = "pubmed"
	VarSome  constants.SourceName = "varsome"
	Revel    constants.SourceName = "revel"
	GnomAd   constants.SourceName = "gnomad"

	// three projections over the same upstream fetch
	EnsemblFunctional  constants.SourceName = "ensembl-functional"
	EnsemblSummary     constants.SourceName = "ensembl-summary"
	EnsemblCoordinates constants.SourceName = "ensembl-coordinates"
)

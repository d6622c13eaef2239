package dtos

import (
	"time"

	"svid/api/models"
	"svid/api/models/constants"

	"github.com/google/uuid"
)

/*
	One DTO per annotation source. External data is never
	guaranteed complete : optionally-present fields are pointers
	or carry omitempty, and every DTO carries the typed status
	marker the presentation layer branches on.
*/

// -- SpliceAI
type SpliceImpactResponse struct {
	Status  constants.ResultStatus `json:"status"`
	Message string                 `json:"message,omitempty"`

	Variant string             `json:"variant,omitempty"`
	Scores  []SpliceScoreGroup `json:"scores,omitempty"`
}

type SpliceScoreGroup struct {
	Allele string `json:"allele,omitempty"`
	Symbol string `json:"symbol,omitempty"`

	// delta-score probabilities, each in [0,1]
	AcceptorGain *float64 `json:"acceptorGain,omitempty"`
	AcceptorLoss *float64 `json:"acceptorLoss,omitempty"`
	DonorGain    *float64 `json:"donorGain,omitempty"`
	DonorLoss    *float64 `json:"donorLoss,omitempty"`
}

// -- ClinVar
type ClinicalClassificationResponse struct {
	Status  constants.ResultStatus `json:"status"`
	Message string                 `json:"message,omitempty"`

	RecordId       string `json:"recordId,omitempty"`
	Classification string `json:"classification,omitempty"`
	ReviewStatus   string `json:"reviewStatus,omitempty"`
	Url            string `json:"url,omitempty"`
}

// -- PubMed
type LiteratureSearchResponse struct {
	Status  constants.ResultStatus `json:"status"`
	Message string                 `json:"message,omitempty"`

	Term  string           `json:"term,omitempty"`
	Links []LiteratureLink `json:"links,omitempty"`
}

type LiteratureLink struct {
	Title string `json:"title"`
	Url   string `json:"url"`
}

// -- VarSome
type ExternalToolUrlResponse struct {
	Status  constants.ResultStatus `json:"status"`
	Message string                 `json:"message,omitempty"`

	Url string `json:"url,omitempty"`
}

// -- dbNSFP / REVEL
type PathogenicityScoreResponse struct {
	Status  constants.ResultStatus `json:"status"`
	Message string                 `json:"message,omitempty"`

	// header-cell text to row-cell text, positionally aligned
	Record map[string]string `json:"record,omitempty"`
}

// -- Ensembl VEP projections
type FunctionalPredictionResponse struct {
	Status  constants.ResultStatus `json:"status"`
	Message string                 `json:"message,omitempty"`

	SiftPrediction     string `json:"siftPrediction,omitempty"`
	PolyphenPrediction string `json:"polyphenPrediction,omitempty"`
}

type VariantEffectSummaryResponse struct {
	Status  constants.ResultStatus `json:"status"`
	Message string                 `json:"message,omitempty"`

	GeneSymbol            string `json:"geneSymbol,omitempty"`
	AssemblyName          string `json:"assemblyName,omitempty"`
	Chromosome            string `json:"chromosome,omitempty"`
	Start                 *int   `json:"start,omitempty"`
	End                   *int   `json:"end,omitempty"`
	MostSevereConsequence string `json:"mostSevereConsequence,omitempty"`
	ProteinStart          *int   `json:"proteinStart,omitempty"`
	ProteinEnd            *int   `json:"proteinEnd,omitempty"`
	AminoAcids            string `json:"aminoAcids,omitempty"`
}

type GenomicCoordinatesResponse struct {
	Status  constants.ResultStatus `json:"status"`
	Message string                 `json:"message,omitempty"`

	Chromosome    string `json:"chromosome,omitempty"`
	Start         *int   `json:"start,omitempty"`
	VariantChange string `json:"variantChange,omitempty"`

	// canonical "{chromosome}-{start}-{ref}-{alt}" key for
	// services keyed by genomic position
	PositionalKey string `json:"positionalKey,omitempty"`
}

// -- gnomAD
type PopulationFrequencyResponse struct {
	Status  constants.ResultStatus `json:"status"`
	Message string                 `json:"message,omitempty"`

	VariantKey string           `json:"variantKey,omitempty"`
	Genome     *CohortFrequency `json:"genome,omitempty"`
	Exome      *CohortFrequency `json:"exome,omitempty"`
	Url        string           `json:"url,omitempty"`
}

type CohortFrequency struct {
	AlleleCount  int `json:"alleleCount"`
	AlleleNumber int `json:"alleleNumber"`

	// nil when the allele number is zero (frequency undefined)
	AlleleFrequency *float64 `json:"alleleFrequency,omitempty"`
}

// -- Normalizer
type NormalizedVariantResponse struct {
	Hgvs          string                    `json:"hgvs,omitempty"`
	Positional    *models.PositionalVariant `json:"positional,omitempty"`
	VariantChange string                    `json:"variantChange,omitempty"`
}

// -- Aggregator
type AggregatedReport struct {
	QueryId     uuid.UUID               `json:"queryId"`
	Page        constants.DashboardPage `json:"page"`
	GeneratedAt time.Time               `json:"generatedAt"`

	// one entry per invoked source ; entries never disappear on
	// failure, they carry the per-source status marker instead
	Results map[constants.SourceName]interface{} `json:"results"`
}

// -- Monitoring
type SourceReachability struct {
	Url       string    `json:"url"`
	Reachable bool      `json:"reachable"`
	LatencyMs int64     `json:"latencyMs"`
	CheckedAt time.Time `json:"checkedAt"`
	Message   string    `json:"message,omitempty"`
}

// -- Errors
type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}

package ensembl

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"svid/api/models"
	"svid/api/models/constants"
	rs "svid/api/models/constants/result-status"
	"svid/api/models/dtos"
	"svid/api/services/normalization"
	"svid/api/utils"

	"github.com/Jeffail/gabs"
	"github.com/mitchellh/mapstructure"
)

type (
	EnsemblService struct {
		Config *models.Config
		Client *http.Client
	}

	// fields projected out of the top-level vep record
	vepRecord struct {
		AssemblyName          string `mapstructure:"assembly_name"`
		SeqRegionName         string `mapstructure:"seq_region_name"`
		Start                 *int   `mapstructure:"start"`
		End                   *int   `mapstructure:"end"`
		MostSevereConsequence string `mapstructure:"most_severe_consequence"`
	}

	// fields projected out of the first transcript consequence
	vepTranscriptConsequence struct {
		GeneSymbol         string `mapstructure:"gene_symbol"`
		SiftPrediction     string `mapstructure:"sift_prediction"`
		PolyphenPrediction string `mapstructure:"polyphen_prediction"`
		ProteinStart       *int   `mapstructure:"protein_start"`
		ProteinEnd         *int   `mapstructure:"protein_end"`
		AminoAcids         string `mapstructure:"amino_acids"`
	}

	vepFetchResult struct {
		status      constants.ResultStatus
		message     string
		record      vepRecord
		consequence vepTranscriptConsequence
	}
)

func NewEnsemblService(cfg *models.Config) *EnsemblService {
	return &EnsemblService{
		Config: cfg,
		Client: utils.CreateHttpClient(cfg),
	}
}

// fetchFirstConsequence is the single request/parse path shared by
// all three projections below : one vep call, decode the first
// record and its first transcript consequence, and let each caller
// select the fields it cares about.
func (s *EnsemblService) fetchFirstConsequence(hgvs string) vepFetchResult {
	requestUrl := fmt.Sprintf("%s/vep/human/hgvs/%s?", s.Config.Ensembl.Url, url.PathEscape(hgvs))

	request, _ := http.NewRequest("GET", requestUrl, nil)
	request.Header.Set("Content-Type", "application/json")

	response, responseErr := s.Client.Do(request)
	if responseErr != nil {
		fmt.Printf("[%s] - Ensembl VEP request failed : %v\n", time.Now(), responseErr)
		return vepFetchResult{status: rs.Unavailable, message: responseErr.Error()}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return vepFetchResult{
			status:  rs.Unavailable,
			message: fmt.Sprintf("request failed with status code %d", response.StatusCode),
		}
	}

	body, bodyErr := io.ReadAll(response.Body)
	if bodyErr != nil {
		return vepFetchResult{status: rs.Unavailable, message: bodyErr.Error()}
	}

	jsonParsed, parseErr := gabs.ParseJSON(body)
	if parseErr != nil {
		return vepFetchResult{status: rs.IncompleteData, message: parseErr.Error()}
	}

	records, recordsErr := jsonParsed.Children()
	if recordsErr != nil || len(records) == 0 {
		return vepFetchResult{
			status:  rs.IncompleteData,
			message: "not enough information in the response",
		}
	}

	consequences, consequencesErr := records[0].Path("transcript_consequences").Children()
	if consequencesErr != nil || len(consequences) == 0 {
		return vepFetchResult{
			status:  rs.IncompleteData,
			message: "no transcript consequences in the response",
		}
	}

	result := vepFetchResult{status: rs.Available}
	if decodeErr := mapstructure.Decode(records[0].Data(), &result.record); decodeErr != nil {
		return vepFetchResult{status: rs.IncompleteData, message: decodeErr.Error()}
	}
	if decodeErr := mapstructure.Decode(consequences[0].Data(), &result.consequence); decodeErr != nil {
		return vepFetchResult{status: rs.IncompleteData, message: decodeErr.Error()}
	}

	return result
}

// GetFunctionalPrediction projects the sift / polyphen predictions.
func (s *EnsemblService) GetFunctionalPrediction(hgvs string) dtos.FunctionalPredictionResponse {
	fetched := s.fetchFirstConsequence(hgvs)
	if fetched.status != rs.Available {
		return dtos.FunctionalPredictionResponse{Status: fetched.status, Message: fetched.message}
	}

	return dtos.FunctionalPredictionResponse{
		Status:             rs.Available,
		SiftPrediction:     fetched.consequence.SiftPrediction,
		PolyphenPrediction: fetched.consequence.PolyphenPrediction,
	}
}

// GetVariantEffectSummary projects the gene / assembly / coordinate /
// consequence-severity fields for the summary page.
func (s *EnsemblService) GetVariantEffectSummary(hgvs string) dtos.VariantEffectSummaryResponse {
	fetched := s.fetchFirstConsequence(hgvs)
	if fetched.status != rs.Available {
		return dtos.VariantEffectSummaryResponse{Status: fetched.status, Message: fetched.message}
	}

	return dtos.VariantEffectSummaryResponse{
		Status:                rs.Available,
		GeneSymbol:            fetched.consequence.GeneSymbol,
		AssemblyName:          fetched.record.AssemblyName,
		Chromosome:            fetched.record.SeqRegionName,
		Start:                 fetched.record.Start,
		End:                   fetched.record.End,
		MostSevereConsequence: fetched.record.MostSevereConsequence,
		ProteinStart:          fetched.consequence.ProteinStart,
		ProteinEnd:            fetched.consequence.ProteinEnd,
		AminoAcids:            fetched.consequence.AminoAcids,
	}
}

// GetGenomicCoordinates projects the chromosome and start position
// and derives the canonical positional key used by services keyed
// on genomic position (population-frequency lookups in particular).
func (s *EnsemblService) GetGenomicCoordinates(hgvs string) dtos.GenomicCoordinatesResponse {
	fetched := s.fetchFirstConsequence(hgvs)
	if fetched.status != rs.Available {
		return dtos.GenomicCoordinatesResponse{Status: fetched.status, Message: fetched.message}
	}

	variantChange := normalization.ExtractVariantChange(hgvs)

	if fetched.record.SeqRegionName == "" || fetched.record.Start == nil {
		return dtos.GenomicCoordinatesResponse{
			Status:        rs.IncompleteData,
			Message:       "response is missing the genomic coordinates",
			VariantChange: variantChange,
		}
	}

	return dtos.GenomicCoordinatesResponse{
		Status:        rs.Available,
		Chromosome:    fetched.record.SeqRegionName,
		Start:         fetched.record.Start,
		VariantChange: variantChange,
		PositionalKey: normalization.PositionalKey(fetched.record.SeqRegionName, *fetched.record.Start, variantChange),
	}
}

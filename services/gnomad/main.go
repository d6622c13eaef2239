package gnomad

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"svid/api/models"
	rs "svid/api/models/constants/result-status"
	"svid/api/models/dtos"
	"svid/api/services/ensembl"
	"svid/api/utils"

	"github.com/Jeffail/gabs"
	"github.com/mitchellh/mapstructure"
)

const variantDetailsQuery = `
	query VariantDetails($datasetId: DatasetId!, $variantId: String!) {
		variant(dataset: $datasetId, variantId: $variantId) {
			pos
			ref
			alt
			rsid
			genome {
				ac
				an
			}
			exome {
				ac
				an
			}
		}
	}
`

type (
	GnomAdService struct {
		Config  *models.Config
		Client  *http.Client
		Ensembl *ensembl.EnsemblService
	}

	cohortCounts struct {
		Ac int `mapstructure:"ac"`
		An int `mapstructure:"an"`
	}
)

func NewGnomAdService(cfg *models.Config, ensemblService *ensembl.EnsemblService) *GnomAdService {
	return &GnomAdService{
		Config:  cfg,
		Client:  utils.CreateHttpClient(cfg),
		Ensembl: ensemblService,
	}
}

// GetPopulationFrequency resolves the variant's genomic coordinates
// through the vep coordinates projection first (the population
// database is keyed by position, not by hgvs), then runs one
// structured query for the genome and exome cohort allele counts.
func (s *GnomAdService) GetPopulationFrequency(hgvs string) dtos.PopulationFrequencyResponse {
	coordinates := s.Ensembl.GetGenomicCoordinates(hgvs)
	if coordinates.Status != rs.Available {
		return dtos.PopulationFrequencyResponse{
			Status:  coordinates.Status,
			Message: fmt.Sprintf("coordinate resolution failed : %s", coordinates.Message),
		}
	}

	variantKey := coordinates.PositionalKey

	payload, _ := json.Marshal(map[string]interface{}{
		"query": variantDetailsQuery,
		"variables": map[string]string{
			"datasetId": s.Config.GnomAd.Dataset,
			"variantId": variantKey,
		},
	})

	response, responseErr := s.Client.Post(s.Config.GnomAd.ApiUrl, "application/json", bytes.NewReader(payload))
	if responseErr != nil {
		fmt.Printf("[%s] - gnomAD request failed : %v\n", time.Now(), responseErr)
		return dtos.PopulationFrequencyResponse{Status: rs.Unavailable, Message: responseErr.Error(), VariantKey: variantKey}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return dtos.PopulationFrequencyResponse{
			Status:     rs.Unavailable,
			Message:    fmt.Sprintf("request failed with status code %d", response.StatusCode),
			VariantKey: variantKey,
		}
	}

	body, bodyErr := io.ReadAll(response.Body)
	if bodyErr != nil {
		return dtos.PopulationFrequencyResponse{Status: rs.Unavailable, Message: bodyErr.Error(), VariantKey: variantKey}
	}

	jsonParsed, parseErr := gabs.ParseJSON(body)
	if parseErr != nil {
		return dtos.PopulationFrequencyResponse{Status: rs.IncompleteData, Message: parseErr.Error(), VariantKey: variantKey}
	}

	if !jsonParsed.ExistsP("data.variant") || jsonParsed.Path("data.variant").Data() == nil {
		return dtos.PopulationFrequencyResponse{
			Status:     rs.NotFound,
			Message:    "variant not present in the population database",
			VariantKey: variantKey,
		}
	}

	return dtos.PopulationFrequencyResponse{
		Status:     rs.Available,
		VariantKey: variantKey,
		Genome:     decodeCohort(jsonParsed.Path("data.variant.genome")),
		Exome:      decodeCohort(jsonParsed.Path("data.variant.exome")),
		Url:        fmt.Sprintf("%s/variant/%s", s.Config.GnomAd.LinkUrl, variantKey),
	}
}

// decodeCohort maps one cohort's {ac, an} record to a frequency
// entry ; a missing cohort yields nil rather than a zeroed record.
func decodeCohort(container *gabs.Container) *dtos.CohortFrequency {
	if container == nil || container.Data() == nil {
		return nil
	}

	var counts cohortCounts
	if decodeErr := mapstructure.Decode(container.Data(), &counts); decodeErr != nil {
		return nil
	}

	return &dtos.CohortFrequency{
		AlleleCount:     counts.Ac,
		AlleleNumber:    counts.An,
		AlleleFrequency: AlleleFrequency(counts.Ac, counts.An),
	}
}

// AlleleFrequency is count/total exactly ; a zero total means the
// frequency is undefined (nil), never a division error.
func AlleleFrequency(alleleCount int, alleleNumber int) *float64 {
	if alleleNumber == 0 {
		return nil
	}

	frequency := float64(alleleCount) / float64(alleleNumber)
	return &frequency
}

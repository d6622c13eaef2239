package spliceai

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"svid/api/models"
	"svid/api/models/constants"
	assemblyId "svid/api/models/constants/assembly-id"
	rs "svid/api/models/constants/result-status"
	"svid/api/models/dtos"
	"svid/api/utils"

	"github.com/Jeffail/gabs"
)

type (
	SpliceAiService struct {
		Config *models.Config
		Client *http.Client
	}
)

func NewSpliceAiService(cfg *models.Config) *SpliceAiService {
	return &SpliceAiService{
		Config: cfg,
		Client: utils.CreateHttpClient(cfg),
	}
}

// GetSpliceImpact issues one read request against the SpliceAI lookup
// service for a positional variant and projects the four delta-score
// probabilities out of each returned score group.
func (s *SpliceAiService) GetSpliceImpact(variant models.PositionalVariant, assembly constants.AssemblyId, distance int, mask bool) dtos.SpliceImpactResponse {
	maskFlag := 0
	if mask {
		maskFlag = 1
	}

	requestUrl := fmt.Sprintf("%s?hg=%d&distance=%d&mask=%d&variant=%s",
		s.Config.SpliceAi.Url, assemblyId.HgVersionNumber(assembly), distance, maskFlag, variant.String())

	response, responseErr := s.Client.Get(requestUrl)
	if responseErr != nil {
		fmt.Printf("[%s] - SpliceAI request failed : %v\n", time.Now(), responseErr)
		return dtos.SpliceImpactResponse{Status: rs.Unavailable, Message: responseErr.Error()}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return dtos.SpliceImpactResponse{
			Status:  rs.Unavailable,
			Message: fmt.Sprintf("request failed with status code %d", response.StatusCode),
		}
	}

	body, bodyErr := io.ReadAll(response.Body)
	if bodyErr != nil {
		return dtos.SpliceImpactResponse{Status: rs.Unavailable, Message: bodyErr.Error()}
	}

	jsonParsed, parseErr := gabs.ParseJSON(body)
	if parseErr != nil {
		return dtos.SpliceImpactResponse{Status: rs.IncompleteData, Message: parseErr.Error()}
	}

	scoreGroups, childrenErr := jsonParsed.Path("scores").Children()
	if childrenErr != nil || len(scoreGroups) == 0 {
		return dtos.SpliceImpactResponse{
			Status:  rs.IncompleteData,
			Message: "no 'scores' present in the response",
		}
	}

	scores := make([]dtos.SpliceScoreGroup, 0, len(scoreGroups))
	for _, group := range scoreGroups {
		scores = append(scores, dtos.SpliceScoreGroup{
			Allele:       stringAt(group, "ALLELE"),
			Symbol:       stringAt(group, "SYMBOL"),
			AcceptorGain: scoreAt(group, "DS_AG"),
			AcceptorLoss: scoreAt(group, "DS_AL"),
			DonorGain:    scoreAt(group, "DS_DG"),
			DonorLoss:    scoreAt(group, "DS_DL"),
		})
	}

	return dtos.SpliceImpactResponse{
		Status:  rs.Available,
		Variant: variant.String(),
		Scores:  scores,
	}
}

func stringAt(container *gabs.Container, key string) string {
	if value, ok := container.Path(key).Data().(string); ok {
		return value
	}
	return ""
}

func scoreAt(container *gabs.Container, key string) *float64 {
	if value, ok := container.Path(key).Data().(float64); ok {
		return &value
	}
	return nil
}

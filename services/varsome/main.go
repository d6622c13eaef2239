package varsome

import (
	"fmt"
	"net/http"
	"time"

	"svid/api/models"
	"svid/api/models/constants"
	rs "svid/api/models/constants/result-status"
	"svid/api/models/dtos"
	"svid/api/utils"
)

type (
	VarSomeService struct {
		Config *models.Config
		Client *http.Client
	}
)

func NewVarSomeService(cfg *models.Config) *VarSomeService {
	return &VarSomeService{
		Config: cfg,
		Client: utils.CreateHttpClient(cfg),
	}
}

// GetToolUrl constructs the deep link for a "gene:positionRef>Alt"
// variant and issues one request purely to validate reachability ;
// the constructed url itself is the result.
func (s *VarSomeService) GetToolUrl(variant string, assembly constants.AssemblyId, mode constants.AnnotationMode) dtos.ExternalToolUrlResponse {
	toolUrl := fmt.Sprintf("%s/variant/%s/%s?annotation-mode=%s",
		s.Config.VarSome.Url, assembly, variant, mode)

	response, responseErr := s.Client.Get(toolUrl)
	if responseErr != nil {
		fmt.Printf("[%s] - VarSome request failed : %v\n", time.Now(), responseErr)
		return dtos.ExternalToolUrlResponse{Status: rs.Unavailable, Message: responseErr.Error()}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return dtos.ExternalToolUrlResponse{
			Status:  rs.Unavailable,
			Message: fmt.Sprintf("request failed with status code %d", response.StatusCode),
		}
	}

	return dtos.ExternalToolUrlResponse{
		Status: rs.Available,
		Url:    toolUrl,
	}
}

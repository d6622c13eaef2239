package clinvar

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"svid/api/models"
	rs "svid/api/models/constants/result-status"
	"svid/api/models/dtos"
	"svid/api/utils"
)

type (
	ClinVarService struct {
		Config *models.Config
		Client *http.Client
	}
)

func NewClinVarService(cfg *models.Config) *ClinVarService {
	return &ClinVarService{
		Config: cfg,
		Client: utils.CreateHttpClient(cfg),
	}
}

// GetClassification performs the two sequential eutils calls :
// esearch resolves the free-text variant query to a unique record id,
// esummary fetches that record's classification and review status.
// The two stages fail distinctly (not-found vs no-classification).
func (s *ClinVarService) GetClassification(variant string) dtos.ClinicalClassificationResponse {
	// Step 1 : resolve the variant to a clinvar record id
	searchUrl := fmt.Sprintf("%s/esearch.fcgi?db=clinvar&term=%s",
		s.Config.ClinVar.EutilsUrl, url.QueryEscape(variant))

	searchBody, searchErr := s.getBody(searchUrl)
	if searchErr != nil {
		fmt.Printf("[%s] - ClinVar esearch failed : %v\n", time.Now(), searchErr)
		return dtos.ClinicalClassificationResponse{Status: rs.Unavailable, Message: searchErr.Error()}
	}

	recordId, idFound := firstElementText(searchBody, "Id")
	if !idFound {
		return dtos.ClinicalClassificationResponse{
			Status:  rs.NotFound,
			Message: "variant not found in the clinvar search index",
		}
	}

	// Step 2 : fetch the summary document for that record id
	summaryUrl := fmt.Sprintf("%s/esummary.fcgi?db=clinvar&id=%s",
		s.Config.ClinVar.EutilsUrl, recordId)

	summaryBody, summaryErr := s.getBody(summaryUrl)
	if summaryErr != nil {
		fmt.Printf("[%s] - ClinVar esummary failed : %v\n", time.Now(), summaryErr)
		return dtos.ClinicalClassificationResponse{Status: rs.Unavailable, Message: summaryErr.Error()}
	}

	classification, classificationFound := firstElementText(summaryBody, "description")
	if !classificationFound {
		return dtos.ClinicalClassificationResponse{
			Status:   rs.NoClassification,
			RecordId: recordId,
			Message:  "no clinical significance recorded for this variant",
		}
	}

	reviewStatus, _ := firstElementText(summaryBody, "review_status")

	return dtos.ClinicalClassificationResponse{
		Status:         rs.Available,
		RecordId:       recordId,
		Classification: classification,
		ReviewStatus:   reviewStatus,
		Url:            fmt.Sprintf("%s/%s", s.Config.ClinVar.RecordLinkUrl, recordId),
	}
}

func (s *ClinVarService) getBody(requestUrl string) ([]byte, error) {
	response, responseErr := s.Client.Get(requestUrl)
	if responseErr != nil {
		return nil, responseErr
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status code %d", response.StatusCode)
	}

	return io.ReadAll(response.Body)
}

// firstElementText scans an xml document for the first element with
// the given local name and returns its trimmed character data.
func firstElementText(document []byte, elementName string) (string, bool) {
	decoder := xml.NewDecoder(bytes.NewReader(document))

	var insideTarget bool
	for {
		token, tokenErr := decoder.Token()
		if tokenErr != nil {
			// io.EOF or malformed xml : either way, no element found
			return "", false
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == elementName {
				insideTarget = true
			}
		case xml.CharData:
			if insideTarget {
				text := strings.TrimSpace(string(t))
				if text != "" {
					return text, true
				}
			}
		case xml.EndElement:
			if t.Name.Local == elementName {
				insideTarget = false
			}
		}
	}
}

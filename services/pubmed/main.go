package pubmed

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"svid/api/models"
	rs "svid/api/models/constants/result-status"
	"svid/api/models/dtos"
	"svid/api/utils"

	"golang.org/x/net/html"
)

type (
	PubMedService struct {
		Config *models.Config
		Client *http.Client
	}
)

func NewPubMedService(cfg *models.Config) *PubMedService {
	return &PubMedService{
		Config: cfg,
		Client: utils.CreateHttpClient(cfg),
	}
}

// SearchLiterature runs one search-page request and scrapes the
// result-title anchors into (title, url) pairs. A successful search
// with zero matches is the empty-result sentinel, distinct from a
// transport failure.
func (s *PubMedService) SearchLiterature(term string) dtos.LiteratureSearchResponse {
	searchTerm := strings.ReplaceAll(term, " ", "+")
	requestUrl := fmt.Sprintf("%s/?term=%s", s.Config.PubMed.Url, searchTerm)

	response, responseErr := s.Client.Get(requestUrl)
	if responseErr != nil {
		fmt.Printf("[%s] - PubMed request failed : %v\n", time.Now(), responseErr)
		return dtos.LiteratureSearchResponse{Status: rs.Unavailable, Message: responseErr.Error()}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return dtos.LiteratureSearchResponse{
			Status:  rs.Unavailable,
			Message: fmt.Sprintf("request failed with status code %d", response.StatusCode),
		}
	}

	document, parseErr := html.Parse(response.Body)
	if parseErr != nil {
		return dtos.LiteratureSearchResponse{Status: rs.Unavailable, Message: parseErr.Error()}
	}

	links := collectResultLinks(document, s.Config.PubMed.Url)
	if len(links) == 0 {
		return dtos.LiteratureSearchResponse{
			Status:  rs.EmptyResult,
			Term:    term,
			Message: "No search results found.",
		}
	}

	return dtos.LiteratureSearchResponse{
		Status: rs.Available,
		Term:   term,
		Links:  links,
	}
}

// collectResultLinks walks the parsed document for anchors marked
// with the result-title class, preserving document order.
func collectResultLinks(node *html.Node, baseUrl string) []dtos.LiteratureLink {
	var links []dtos.LiteratureLink

	if node.Type == html.ElementNode && node.Data == "a" {
		var href, class string
		for _, attribute := range node.Attr {
			switch attribute.Key {
			case "href":
				href = attribute.Val
			case "class":
				class = attribute.Val
			}
		}

		if utils.HasCssClass(class, "docsum-title") && href != "" {
			links = append(links, dtos.LiteratureLink{
				Title: strings.TrimSpace(innerText(node)),
				Url:   baseUrl + href,
			})
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		links = append(links, collectResultLinks(child, baseUrl)...)
	}

	return links
}

func innerText(node *html.Node) string {
	if node.Type == html.TextNode {
		return node.Data
	}

	var text strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		text.WriteString(innerText(child))
	}
	return text.String()
}

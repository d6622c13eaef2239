package dbnsfp

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"svid/api/models"
	rs "svid/api/models/constants/result-status"
	"svid/api/models/dtos"
	"svid/api/utils"

	"golang.org/x/net/html"
)

// column set primed into the remote session before the query ;
// the REVEL score columns ride along with the basic variant info
const selectedColumns = "chr, pos, ref, alt, aaref, aaalt, rs_dbSNP, hg19_chr, hg19_pos, hg18_chr, hg18_pos, aapos, genename, Ensembl_geneid, Ensembl_transcriptid, Ensembl_proteinid, REVEL_score, REVEL_rankscore"

type (
	DbNsfpService struct {
		Config *models.Config
	}
)

func NewDbNsfpService(cfg *models.Config) *DbNsfpService {
	return &DbNsfpService{
		Config: cfg,
	}
}

// GetPathogenicityScores runs the two-step primed-session protocol :
// one form post selects the columns the server will render (the
// upstream keys that selection to the session), a second form post
// submits the actual variant query. The session lives in a cookie jar
// scoped to this single call, and the priming response status is
// verified rather than discarded blindly.
func (s *DbNsfpService) GetPathogenicityScores(variant models.PositionalVariant) dtos.PathogenicityScoreResponse {
	jar, _ := cookiejar.New(nil)
	client := utils.CreateHttpClient(s.Config)
	client.Jar = jar

	// Step 1 : prime the server-side column selection
	selectForm := url.Values{
		"range":            {"hg38"},
		"selectBasicInfoA": {selectedColumns},
	}

	selectResponse, selectErr := client.PostForm(s.Config.DbNsfp.Url+"/aSelect", selectForm)
	if selectErr != nil {
		fmt.Printf("[%s] - dbNSFP column selection failed : %v\n", time.Now(), selectErr)
		return dtos.PathogenicityScoreResponse{Status: rs.Unavailable, Message: selectErr.Error()}
	}
	selectResponse.Body.Close()

	if selectResponse.StatusCode != http.StatusOK {
		return dtos.PathogenicityScoreResponse{
			Status:  rs.Unavailable,
			Message: fmt.Sprintf("column selection priming failed with status code %d", selectResponse.StatusCode),
		}
	}

	// Step 2 : submit the variant query against the primed session
	queryForm := url.Values{
		"chr":                  {variant.Chromosome},
		"pos":                  {variant.Position},
		"ref":                  {variant.Reference},
		"alt":                  {variant.Alternate},
		"aaref":                {""},
		"aaalt":                {""},
		"Ensembl_transcriptid": {""},
	}

	queryResponse, queryErr := client.PostForm(s.Config.DbNsfp.Url+"/SingleQuery", queryForm)
	if queryErr != nil {
		fmt.Printf("[%s] - dbNSFP query failed : %v\n", time.Now(), queryErr)
		return dtos.PathogenicityScoreResponse{Status: rs.Unavailable, Message: queryErr.Error()}
	}
	defer queryResponse.Body.Close()

	if queryResponse.StatusCode != http.StatusOK {
		return dtos.PathogenicityScoreResponse{
			Status:  rs.Unavailable,
			Message: fmt.Sprintf("request failed with status code %d", queryResponse.StatusCode),
		}
	}

	document, parseErr := html.Parse(queryResponse.Body)
	if parseErr != nil {
		return dtos.PathogenicityScoreResponse{Status: rs.Unavailable, Message: parseErr.Error()}
	}

	table := findFirstElement(document, "table")
	if table == nil {
		return dtos.PathogenicityScoreResponse{
			Status:  rs.NoData,
			Message: "no score table present in the response",
		}
	}

	headers := collectHeaderTexts(table)
	rows := collectRows(table, headers)

	// the first row duplicates the headers ; drop it
	if len(rows) > 0 {
		rows = rows[1:]
	}

	if len(rows) == 0 {
		return dtos.PathogenicityScoreResponse{
			Status:  rs.NoData,
			Message: "no data rows for this variant",
		}
	}

	return dtos.PathogenicityScoreResponse{
		Status: rs.Available,
		Record: rows[0],
	}
}

func findFirstElement(node *html.Node, elementName string) *html.Node {
	if node.Type == html.ElementNode && node.Data == elementName {
		return node
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findFirstElement(child, elementName); found != nil {
			return found
		}
	}
	return nil
}

// collectHeaderTexts gathers the text of every header cell marked
// with the upstream's header class, in document order.
func collectHeaderTexts(table *html.Node) []string {
	var headers []string

	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "th" {
			for _, attribute := range node.Attr {
				if attribute.Key == "class" && utils.HasCssClass(attribute.Val, "w3-blue") {
					headers = append(headers, strings.TrimSpace(innerText(node)))
				}
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(table)

	return headers
}

// collectRows pairs each tr's cells positionally with the header
// texts, one mapping per row ; extra cells past the headers are
// dropped, mirroring how the upstream renders the table.
func collectRows(table *html.Node, headers []string) []map[string]string {
	var rows []map[string]string

	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "tr" {
			cells := collectCellTexts(node)
			row := map[string]string{}
			for i, cell := range cells {
				if i >= len(headers) {
					break
				}
				row[headers[i]] = cell
			}
			rows = append(rows, row)
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(table)

	return rows
}

func collectCellTexts(row *html.Node) []string {
	var cells []string

	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && (node.Data == "td" || node.Data == "th") {
			cells = append(cells, strings.TrimSpace(innerText(node)))
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(row)

	return cells
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

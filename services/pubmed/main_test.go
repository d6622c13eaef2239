package pubmed

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"svid/api/models"
	rs "svid/api/models/constants/result-status"

	"github.com/stretchr/testify/assert"
)

const resultsPageFixture = `<html><body>
	<div class="docsum-content">
		<a class="docsum-title" href="/38123456/">POT1 and telomere maintenance</a>
	</div>
	<div class="docsum-content">
		<a class="docsum-title" href="/37999999/">
			Germline POT1 variants in melanoma
		</a>
	</div>
	<a class="unrelated-link" href="/ignore/">not a result</a>
</body></html>`

const emptyPageFixture = `<html><body>
	<div class="no-results">Your search yielded no results</div>
</body></html>`

func newTestService(url string) *PubMedService {
	cfg := &models.Config{}
	cfg.PubMed.Url = url
	return NewPubMedService(cfg)
}

func TestSearchLiterature(t *testing.T) {
	t.Run("should return ordered title and url pairs for result anchors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// spaces become '+' in the search term
			assert.Equal(t, "POT1 variant", r.URL.Query().Get("term"))
			fmt.Fprint(w, resultsPageFixture)
		}))
		defer server.Close()

		result := newTestService(server.URL).SearchLiterature("POT1 variant")

		assert.Equal(t, rs.Available, result.Status)
		assert.Len(t, result.Links, 2)
		assert.Equal(t, "POT1 and telomere maintenance", result.Links[0].Title)
		assert.Equal(t, server.URL+"/38123456/", result.Links[0].Url)
		assert.Equal(t, "Germline POT1 variants in melanoma", result.Links[1].Title)
	})

	t.Run("should distinguish zero results from transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, emptyPageFixture)
		}))
		defer server.Close()

		result := newTestService(server.URL).SearchLiterature("zzzz-no-such-gene")

		// successful response, zero anchors : the sentinel, not a failure
		assert.Equal(t, rs.EmptyResult, result.Status)
		assert.Equal(t, "No search results found.", result.Message)
		assert.Empty(t, result.Links)
	})

	t.Run("should return unavailable on non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		result := newTestService(server.URL).SearchLiterature("POT1")

		assert.Equal(t, rs.Unavailable, result.Status)
	})
}

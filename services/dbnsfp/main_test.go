package dbnsfp

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"svid/api/models"
	rs "svid/api/models/constants/result-status"

	"github.com/stretchr/testify/assert"
)

const scoreTableFixture = `<html><body><table class="w3-table">
	<tr>
		<th class="w3-blue">chr</th>
		<th class="w3-blue">pos</th>
		<th class="w3-blue">REVEL_score</th>
	</tr>
	<tr>
		<td>7</td>
		<td>124842898</td>
		<td>0.932</td>
	</tr>
</table></body></html>`

const headerOnlyTableFixture = `<html><body><table class="w3-table">
	<tr>
		<th class="w3-blue">chr</th>
		<th class="w3-blue">pos</th>
		<th class="w3-blue">REVEL_score</th>
	</tr>
</table></body></html>`

func newTestService(url string) *DbNsfpService {
	cfg := &models.Config{}
	cfg.DbNsfp.Url = url
	return NewDbNsfpService(cfg)
}

func testVariant() models.PositionalVariant {
	return models.PositionalVariant{Chromosome: "7", Position: "124842898", Reference: "G", Alternate: "T"}
}

func TestGetPathogenicityScores(t *testing.T) {
	t.Run("should pair header cells with row cells and exclude the duplicated header row", func(t *testing.T) {
		var primed bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/aSelect":
				primed = true
				assert.Equal(t, "hg38", r.FormValue("range"))
			case "/SingleQuery":
				// the priming call must have come first
				assert.True(t, primed)
				assert.Equal(t, "7", r.FormValue("chr"))
				assert.Equal(t, "124842898", r.FormValue("pos"))
				assert.Equal(t, "G", r.FormValue("ref"))
				assert.Equal(t, "T", r.FormValue("alt"))
				fmt.Fprint(w, scoreTableFixture)
			}
		}))
		defer server.Close()

		result := newTestService(server.URL).GetPathogenicityScores(testVariant())

		assert.Equal(t, rs.Available, result.Status)
		assert.Equal(t, map[string]string{
			"chr":         "7",
			"pos":         "124842898",
			"REVEL_score": "0.932",
		}, result.Record)
	})

	t.Run("should return no-data when only the header row remains", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/SingleQuery" {
				fmt.Fprint(w, headerOnlyTableFixture)
			}
		}))
		defer server.Close()

		result := newTestService(server.URL).GetPathogenicityScores(testVariant())

		assert.Equal(t, rs.NoData, result.Status)
		assert.Nil(t, result.Record)
	})

	t.Run("should return unavailable when the priming call fails", func(t *testing.T) {
		var queried bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/aSelect":
				w.WriteHeader(http.StatusInternalServerError)
			case "/SingleQuery":
				queried = true
			}
		}))
		defer server.Close()

		result := newTestService(server.URL).GetPathogenicityScores(testVariant())

		// the session dependency is explicit : no query without priming
		assert.Equal(t, rs.Unavailable, result.Status)
		assert.False(t, queried)
	})
}

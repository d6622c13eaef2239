package spliceai

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"svid/api/models"
	assemblyId "svid/api/models/constants/assembly-id"
	rs "svid/api/models/constants/result-status"

	"github.com/stretchr/testify/assert"
)

const scoresFixture = `{
	"variant": "8-140300616-T-G",
	"scores": [
		{"ALLELE": "G", "SYMBOL": "TRAPPC9", "DS_AG": 0.01, "DS_AL": 0.0, "DS_DG": 0.93, "DS_DL": 0.29}
	]
}`

func newTestConfig(url string) *models.Config {
	cfg := &models.Config{}
	cfg.SpliceAi.Url = url
	cfg.SpliceAi.DefaultDistance = 500
	cfg.SpliceAi.DefaultMask = true
	return cfg
}

func TestGetSpliceImpact(t *testing.T) {
	t.Run("should return four delta scores each between 0 and 1 for default configuration", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// default configuration : latest build, distance 500, masking enabled
			assert.Equal(t, "38", r.URL.Query().Get("hg"))
			assert.Equal(t, "500", r.URL.Query().Get("distance"))
			assert.Equal(t, "1", r.URL.Query().Get("mask"))
			assert.Equal(t, "8-140300616-T-G", r.URL.Query().Get("variant"))

			fmt.Fprint(w, scoresFixture)
		}))
		defer server.Close()

		svc := NewSpliceAiService(newTestConfig(server.URL))

		result := svc.GetSpliceImpact(models.PositionalVariant{
			Chromosome: "8", Position: "140300616", Reference: "T", Alternate: "G",
		}, assemblyId.Hg38, 500, true)

		assert.Equal(t, rs.Available, result.Status)
		assert.Len(t, result.Scores, 1)

		group := result.Scores[0]
		assert.Equal(t, "G", group.Allele)

		for _, score := range []*float64{group.AcceptorGain, group.AcceptorLoss, group.DonorGain, group.DonorLoss} {
			assert.NotNil(t, score)
			assert.GreaterOrEqual(t, *score, 0.0)
			assert.LessOrEqual(t, *score, 1.0)
		}
	})

	t.Run("should return unavailable on non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		svc := NewSpliceAiService(newTestConfig(server.URL))
		result := svc.GetSpliceImpact(models.PositionalVariant{Chromosome: "8", Position: "1", Reference: "T", Alternate: "G"}, assemblyId.Hg38, 500, true)

		assert.Equal(t, rs.Unavailable, result.Status)
	})

	t.Run("should return incomplete-data when no scores are present", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"variant": "8-1-T-G", "scores": []}`)
		}))
		defer server.Close()

		svc := NewSpliceAiService(newTestConfig(server.URL))
		result := svc.GetSpliceImpact(models.PositionalVariant{Chromosome: "8", Position: "1", Reference: "T", Alternate: "G"}, assemblyId.Hg38, 500, true)

		assert.Equal(t, rs.IncompleteData, result.Status)
	})
}

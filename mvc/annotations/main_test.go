package annotations

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"svid/api/contexts"
	"svid/api/models"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func TestVariantsNormalize(t *testing.T) {
	cfg := &models.Config{}

	setUpEcho := func(path string) (*contexts.SvidContext, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		gc := &contexts.SvidContext{
			Context:            c,
			Config:             cfg,
			AggregationService: nil,
			MonitoringService:  nil,
		}
		return gc, rec
	}

	getJsonBody := func(rec *httptest.ResponseRecorder) map[string]interface{} {
		// - extract body bytes from response
		body, _ := io.ReadAll(rec.Body)
		// - unmarshal or decode the JSON to a declared empty interface.
		var bodyJson map[string]interface{}
		json.Unmarshal(body, &bodyJson)

		return bodyJson
	}

	t.Run("should derive the variant change from hgvs", func(t *testing.T) {
		gc, rec := setUpEcho("/variants/normalize?hgvs=NM_000516.7:c.601C%3ET")

		VariantsNormalize(gc)

		assert.Equal(t, http.StatusOK, rec.Code)

		body := getJsonBody(rec)
		assert.Equal(t, "NM_000516.7:c.601C>T", body["hgvs"])
		assert.Equal(t, "C-T", body["variantChange"])
	})

	t.Run("should split a positional variant into its four components", func(t *testing.T) {
		gc, rec := setUpEcho("/variants/normalize?variant=8-140300616-T-G")

		VariantsNormalize(gc)

		assert.Equal(t, http.StatusOK, rec.Code)

		positional := getJsonBody(rec)["positional"].(map[string]interface{})
		assert.Equal(t, "8", positional["chromosome"])
		assert.Equal(t, "140300616", positional["position"])
		assert.Equal(t, "T", positional["reference"])
		assert.Equal(t, "G", positional["alternate"])
	})

	t.Run("should surface a format error rather than guess", func(t *testing.T) {
		gc, rec := setUpEcho("/variants/normalize?variant=not-a-variant")

		VariantsNormalize(gc)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should require at least one notation", func(t *testing.T) {
		gc, rec := setUpEcho("/variants/normalize")

		VariantsNormalize(gc)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

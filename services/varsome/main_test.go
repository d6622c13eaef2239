package varsome

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"svid/api/models"
	am "svid/api/models/constants/annotation-mode"
	assemblyId "svid/api/models/constants/assembly-id"
	rs "svid/api/models/constants/result-status"

	"github.com/stretchr/testify/assert"
)

func newTestService(url string) *VarSomeService {
	cfg := &models.Config{}
	cfg.VarSome.Url = url
	return NewVarSomeService(cfg)
}

func TestGetToolUrl(t *testing.T) {
	t.Run("should return the constructed deep link when reachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/variant/hg38/TP53:R175H", r.URL.Path)
			assert.Equal(t, "somatic", r.URL.Query().Get("annotation-mode"))
			fmt.Fprint(w, "<html>varsome</html>")
		}))
		defer server.Close()

		result := newTestService(server.URL).GetToolUrl("TP53:R175H", assemblyId.Hg38, am.Somatic)

		assert.Equal(t, rs.Available, result.Status)
		assert.Equal(t, fmt.Sprintf("%s/variant/hg38/TP53:R175H?annotation-mode=somatic", server.URL), result.Url)
	})

	t.Run("should return unavailable on non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		result := newTestService(server.URL).GetToolUrl("TP53:R175H", assemblyId.Hg38, am.Germline)

		assert.Equal(t, rs.Unavailable, result.Status)
		assert.Empty(t, result.Url)
	})
}

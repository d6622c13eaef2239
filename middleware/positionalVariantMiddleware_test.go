package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func TestMandatePositionalVariantAttribute(t *testing.T) {
	e := echo.New()
	e.GET("/annotated", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, MandatePositionalVariantAttribute)

	serve := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("should accept a well-formed chr-pos-ref-alt variant", func(t *testing.T) {
		rec := serve("/annotated?variant=8-140300616-T-G")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject a missing variant", func(t *testing.T) {
		rec := serve("/annotated")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject a variant without exactly four fields", func(t *testing.T) {
		rec := serve("/annotated?variant=8-140300616-T")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject a variant on an unknown chromosome", func(t *testing.T) {
		rec := serve("/annotated?variant=99-140300616-T-G")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

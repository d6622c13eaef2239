package api

import (
	"fmt"
	"testing"

	"svid/api/models/constants/source"
	"svid/api/models/dtos"
	"svid/api/tests/common"
	"svid/api/utils"

	"github.com/stretchr/testify/assert"

	. "github.com/ahmetb/go-linq"
)

func TestServiceInfo(t *testing.T) {
	cfg := common.InitConfig()
	if waitErr := common.WaitForApi(cfg); waitErr != nil {
		t.Skipf("api not reachable at %s : %v", cfg.Api.Url, waitErr)
	}

	serviceInfoJson := utils.GetRequestReturnStuff[map[string]interface{}](fmt.Sprintf(common.ServiceInfoPath, cfg.Api.Url))

	assert.NotEmpty(t, serviceInfoJson["id"])
	assert.NotEmpty(t, serviceInfoJson["name"])
	assert.NotEmpty(t, serviceInfoJson["version"])
}

func TestNormalizeVariant(t *testing.T) {
	cfg := common.InitConfig()
	if waitErr := common.WaitForApi(cfg); waitErr != nil {
		t.Skipf("api not reachable at %s : %v", cfg.Api.Url, waitErr)
	}

	dto := utils.GetRequestReturnStuff[dtos.NormalizedVariantResponse](
		fmt.Sprintf(common.NormalizePathWithQueryString, cfg.Api.Url, "?hgvs=NM_000516.7:c.601C%3ET&variant=8-140300616-T-G"))

	assert.Equal(t, "C-T", dto.VariantChange)
	assert.NotNil(t, dto.Positional)
	assert.Equal(t, "8", dto.Positional.Chromosome)
	assert.Equal(t, "140300616", dto.Positional.Position)
}

func TestLiteraturePage(t *testing.T) {
	cfg := common.InitConfig()
	if waitErr := common.WaitForApi(cfg); waitErr != nil {
		t.Skipf("api not reachable at %s : %v", cfg.Api.Url, waitErr)
	}

	report := utils.GetRequestReturnStuff[dtos.AggregatedReport](
		fmt.Sprintf(common.LiteraturePagePathWithQueryString, cfg.Api.Url, "?term=MYC"))

	assert.Equal(t, "literature", string(report.Page))
	assert.Contains(t, report.Results, source.PubMed)
}

func TestSpliceAiAnnotation(t *testing.T) {
	cfg := common.InitConfig()
	if waitErr := common.WaitForApi(cfg); waitErr != nil {
		t.Skipf("api not reachable at %s : %v", cfg.Api.Url, waitErr)
	}

	dto := utils.GetRequestReturnStuff[dtos.SpliceImpactResponse](
		fmt.Sprintf(common.SpliceAiPathWithQueryString, cfg.Api.Url, "?variant=8-140300616-T-G"))

	// the upstream may be up or down ; either way a typed status comes back
	assert.NotEmpty(t, string(dto.Status))
}

func TestEnsemblSummaryAnnotation(t *testing.T) {
	cfg := common.InitConfig()
	if waitErr := common.WaitForApi(cfg); waitErr != nil {
		t.Skipf("api not reachable at %s : %v", cfg.Api.Url, waitErr)
	}

	dto := utils.GetRequestReturnStuff[dtos.VariantEffectSummaryResponse](
		fmt.Sprintf(common.EnsemblSummaryPathWithQueryString, cfg.Api.Url, "?hgvs=NM_000516.7:c.601C%3ET"))

	assert.NotEmpty(t, string(dto.Status))
}

func TestSourcesOverview(t *testing.T) {
	cfg := common.InitConfig()
	if waitErr := common.WaitForApi(cfg); waitErr != nil {
		t.Skipf("api not reachable at %s : %v", cfg.Api.Url, waitErr)
	}

	overview := utils.GetRequestReturnStuff[map[string]dtos.SourceReachability](fmt.Sprintf(common.SourcesOverviewPath, cfg.Api.Url))

	// when monitoring is enabled, every probed source carries a url
	From(overview).ForEachT(func(kv KeyValue) {
		reachability := kv.Value.(dtos.SourceReachability)
		assert.NotEmpty(t, reachability.Url)
	})
}

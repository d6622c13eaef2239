package common

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"path"
	"runtime"
	"time"

	"svid/api/models"

	"github.com/cenkalti/backoff"
	yaml "gopkg.in/yaml.v2"
)

const (
	ServiceInfoPath                   string = "%s/service-info"
	NormalizePathWithQueryString      string = "%s/variants/normalize%s"
	SourcesOverviewPath               string = "%s/sources/overview"
	LiteraturePagePathWithQueryString string = "%s/pages/literature%s"
	SpliceAiPathWithQueryString       string = "%s/annotations/spliceai%s"
	EnsemblSummaryPathWithQueryString string = "%s/annotations/ensembl/summary%s"
)

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	if cfg.Debug {
		http.DefaultTransport.(*http.Transport).TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &cfg
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

// WaitForApi polls the running service with an exponential backoff
// and reports whether it came up within the window ; integration
// tests skip themselves when it did not.
func WaitForApi(cfg *models.Config) error {
	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = 15 * time.Second

	return backoff.Retry(func() error {
		response, responseErr := http.Get(cfg.Api.Url)
		if responseErr != nil {
			return responseErr
		}
		response.Body.Close()

		return nil
	}, retryBackoff)
}

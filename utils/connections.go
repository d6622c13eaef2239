package utils

import (
	"crypto/tls"
	"net/http"

	"svid/api/models"
)

// CreateHttpClient builds the client shared by all source adapters.
// No timeout override and no retries : adapters are fail-fast and
// block at the transport default.
func CreateHttpClient(cfg *models.Config) *http.Client {
	if cfg.Debug {
		// some upstreams (the SpliceAI lookup mirror in particular)
		// present certificates that fail strict verification
		return &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}

	return &http.Client{}
}

package monitoring

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"svid/api/models"
	"svid/api/models/constants"
	"svid/api/models/constants/source"
	"svid/api/models/dtos"
	"svid/api/utils"

	"github.com/go-co-op/gocron"
	"golang.org/x/sync/errgroup"
)

type (
	MonitoringService struct {
		Initialized bool
		Config      *models.Config
		Client      *http.Client

		statusMux sync.RWMutex
		statuses  map[constants.SourceName]dtos.SourceReachability
	}
)

func NewMonitoringService(cfg *models.Config) *MonitoringService {
	ms := &MonitoringService{
		Initialized: false,
		Config:      cfg,
		Client:      utils.CreateHttpClient(cfg),
		statuses:    map[constants.SourceName]dtos.SourceReachability{},
	}

	ms.Init()

	return ms
}

func (ms *MonitoringService) Init() {
	// initialization if necessary
	if !ms.Initialized {
		// - spin up a go routine that periodically probes each
		//   upstream base url, so the dashboard can surface which
		//   annotation sources are currently reachable
		go func() {
			// probe once right away rather than waiting a full interval
			ms.Sweep()

			// setup cron job
			s := gocron.NewScheduler(time.UTC)

			s.Every(ms.Config.Monitoring.IntervalMinutes).Minutes().Do(func() {
				ms.Sweep()
			})

			// starts the scheduler in blocking mode, which blocks
			// the current execution path
			s.StartBlocking()
		}()

		ms.Initialized = true
		fmt.Println("Monitoring Service Initialized ..")
	}
}

// Sweep probes every upstream base url in parallel and records the
// outcome. Probing is the only place fan-out happens : per-query
// aggregation stays sequential.
func (ms *MonitoringService) Sweep() {
	fmt.Printf("[%s] - Running upstream reachability sweep..\n", time.Now())

	var g errgroup.Group
	for sourceName, endpointUrl := range ms.endpoints() {
		_sourceName, _endpointUrl := sourceName, endpointUrl

		g.Go(func() error {
			began := time.Now()

			reachability := dtos.SourceReachability{
				Url:       _endpointUrl,
				CheckedAt: began,
			}

			response, probeErr := ms.Client.Get(_endpointUrl)
			reachability.LatencyMs = time.Since(began).Milliseconds()

			if probeErr != nil {
				reachability.Message = probeErr.Error()
			} else {
				response.Body.Close()
				reachability.Reachable = response.StatusCode < http.StatusInternalServerError
				if !reachability.Reachable {
					reachability.Message = fmt.Sprintf("probe returned status code %d", response.StatusCode)
				}
			}

			ms.statusMux.Lock()
			ms.statuses[_sourceName] = reachability
			ms.statusMux.Unlock()

			return nil
		})
	}

	g.Wait()
}

// Overview returns a copy of the latest sweep's results.
func (ms *MonitoringService) Overview() map[constants.SourceName]dtos.SourceReachability {
	ms.statusMux.RLock()
	defer ms.statusMux.RUnlock()

	overview := make(map[constants.SourceName]dtos.SourceReachability, len(ms.statuses))
	for sourceName, reachability := range ms.statuses {
		overview[sourceName] = reachability
	}

	return overview
}

func (ms *MonitoringService) endpoints() map[constants.SourceName]string {
	return map[constants.SourceName]string{
		source.SpliceAi: ms.Config.SpliceAi.Url,
		source.ClinVar:  ms.Config.ClinVar.EutilsUrl,
		source.PubMed:   ms.Config.PubMed.Url,
		source.VarSome:  ms.Config.VarSome.Url,
		source.Revel:    ms.Config.DbNsfp.Url,
		source.GnomAd:   ms.Config.GnomAd.ApiUrl,

		// one probe covers all three vep projections
		source.EnsemblSummary: ms.Config.Ensembl.Url,
	}
}

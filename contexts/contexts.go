package contexts

import (
	"svid/api/models"
	"svid/api/services/aggregation"
	"svid/api/services/monitoring"

	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the configuration and the global service singletons
	SvidContext struct {
		echo.Context
		Config             *models.Config
		AggregationService *aggregation.AggregationService
		MonitoringService  *monitoring.MonitoringService
	}
)

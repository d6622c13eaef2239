package sources

import (
	"fmt"
	"net/http"
	"time"

	"svid/api/contexts"
	serviceErrors "svid/api/models/dtos/errors"

	"github.com/labstack/echo"
)

// GetSourcesOverview serves the latest upstream reachability sweep.
func GetSourcesOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetSourcesOverview hit!\n", time.Now())

	monitoringService := c.(*contexts.SvidContext).MonitoringService
	if monitoringService == nil {
		return c.JSON(http.StatusNotFound, serviceErrors.CreateSimpleNotFound("Upstream monitoring is disabled!"))
	}

	return c.JSON(http.StatusOK, monitoringService.Overview())
}

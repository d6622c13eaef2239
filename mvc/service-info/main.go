package serviceInfoMvc

import (
	"fmt"
	"net/http"
	"time"

	serviceInfo "svid/api/models/constants/service-info"

	"github.com/labstack/echo"
)

func GetServiceInfo(c echo.Context) error {
	fmt.Printf("[%s] - GetServiceInfo hit!\n", time.Now())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":          serviceInfo.SERVICE_ID,
		"name":        serviceInfo.SERVICE_NAME,
		"type":        serviceInfo.SERVICE_TYPE,
		"description": serviceInfo.SERVICE_DESCRIPTION,
		"version":     serviceInfo.SERVICE_VERSION,
	})
}

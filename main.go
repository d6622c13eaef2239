package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"svid/api/contexts"
	gam "svid/api/middleware"
	"svid/api/models"
	serviceInfo "svid/api/models/constants/service-info"
	"svid/api/mvc/annotations"
	"svid/api/mvc/pages"
	serviceInfoMvc "svid/api/mvc/service-info"
	"svid/api/mvc/sources"
	"svid/api/services/aggregation"
	"svid/api/services/monitoring"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tSpliceAI Url : %s \n"+
		"\tSpliceAI Default Distance : %d\n"+
		"\tSpliceAI Default Mask : %t\n"+
		"\tClinVar EUtils Url : %s \n"+
		"\tPubMed Url : %s \n"+
		"\tVarSome Url : %s \n"+
		"\tdbNSFP Url : %s \n"+
		"\tEnsembl Url : %s \n"+
		"\tgnomAD Api Url : %s \n\n"+

		"\tMonitoring Enabled : %t\n"+
		"\tMonitoring Interval (minutes) : %d\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.SpliceAi.Url,
		cfg.SpliceAi.DefaultDistance,
		cfg.SpliceAi.DefaultMask,
		cfg.ClinVar.EutilsUrl,
		cfg.PubMed.Url,
		cfg.VarSome.Url,
		cfg.DbNsfp.Url,
		cfg.Ensembl.Url,
		cfg.GnomAd.ApiUrl,
		cfg.Monitoring.Enabled,
		cfg.Monitoring.IntervalMinutes,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Service Singletons
	az := aggregation.NewAggregationService(&cfg)

	var mz *monitoring.MonitoringService
	if cfg.Monitoring.Enabled {
		mz = monitoring.NewMonitoringService(&cfg)
	}

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET},
	}))

	// -- Override handlers with "custom svid" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.SvidContext{
				Context:            c,
				Config:             &cfg,
				AggregationService: az,
				MonitoringService:  mz,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Normalizer
	e.GET("/variants/normalize", annotations.VariantsNormalize)

	// -- Per-source annotations
	e.GET("/annotations/spliceai", annotations.SpliceAiGetByVariant,
		// middleware
		gam.MandatePositionalVariantAttribute,
		gam.ValidateOptionalAssemblyIdAttribute,
		gam.ValidateOptionalDistanceAttribute,
		gam.ValidateOptionalMaskAttribute)
	e.GET("/annotations/clinvar", annotations.ClinVarGetByHgvs,
		// middleware
		gam.MandateHgvsAttribute)
	e.GET("/annotations/literature", annotations.LiteratureSearchByTerm,
		// middleware
		gam.MandateSearchTermAttribute)
	e.GET("/annotations/varsome", annotations.VarSomeGetUrlByVariant,
		// middleware
		gam.ValidateOptionalAssemblyIdAttribute,
		gam.ValidateOptionalAnnotationModeAttribute)
	e.GET("/annotations/revel", annotations.RevelGetByVariant,
		// middleware
		gam.MandatePositionalVariantAttribute)
	e.GET("/annotations/gnomad", annotations.GnomAdGetByHgvs,
		// middleware
		gam.MandateHgvsAttribute)

	e.GET("/annotations/ensembl/functional", annotations.EnsemblFunctionalGetByHgvs,
		// middleware
		gam.MandateHgvsAttribute)
	e.GET("/annotations/ensembl/summary", annotations.EnsemblSummaryGetByHgvs,
		// middleware
		gam.MandateHgvsAttribute)
	e.GET("/annotations/ensembl/coordinates", annotations.EnsemblCoordinatesGetByHgvs,
		// middleware
		gam.MandateHgvsAttribute)

	// -- Dashboard pages
	e.GET("/pages/summary", pages.GetSummaryPage,
		// middleware
		gam.MandateHgvsAttribute,
		gam.ValidateOptionalAssemblyIdAttribute,
		gam.ValidateOptionalAnnotationModeAttribute)
	e.GET("/pages/insilico", pages.GetInSilicoPage,
		// middleware
		gam.MandateHgvsAttribute,
		gam.MandatePositionalVariantAttribute,
		gam.ValidateOptionalAssemblyIdAttribute,
		gam.ValidateOptionalDistanceAttribute,
		gam.ValidateOptionalMaskAttribute)
	e.GET("/pages/frequency", pages.GetFrequencyPage,
		// middleware
		gam.MandateHgvsAttribute)
	e.GET("/pages/literature", pages.GetLiteraturePage,
		// middleware
		gam.MandateSearchTermAttribute)

	// -- Upstream reachability
	e.GET("/sources/overview", sources.GetSourcesOverview)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}

package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Somatic Variant Interpretation Dashboard API"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the Somatic Variant Interpretation Dashboard API!"
	SERVICE_DESCRIPTION ServiceInfo = "Variant annotation aggregation service querying SpliceAI, ClinVar, PubMed, VarSome, dbNSFP, Ensembl VEP and gnomAD."

	SERVICE_ARTIFACT    ServiceInfo = "svid"
	SERVICE_VERSION     ServiceInfo = "0.0.1"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.svid:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)

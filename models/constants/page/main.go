package page

import (
	"strings"

	"svid/api/models/constants"
)

const (
	Unknown constants.DashboardPage = "Unknown"

	Summary    constants.DashboardPage = "summary"
	InSilico   constants.DashboardPage = "insilico"
	Frequency  constants.DashboardPage = "frequency"
	Literature constants.DashboardPage = "literature"
)

func CastToDashboardPage(text string) constants.DashboardPage {
	switch strings.ToLower(text) {
	case "summary":
		return Summary
	case "insilico", "in-silico":
		return InSilico
	case "frequency":
		return Frequency
	case "literature":
		return Literature
	default:
		return Unknown
	}
}

func IsKnownDashboardPage(text string) bool {
	return CastToDashboardPage(text) != Unknown
}

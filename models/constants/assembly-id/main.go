package assemblyId

import (
	"strings"

	"svid/api/models/constants"
)

const (
	Unknown constants.AssemblyId = "Unknown"

	Hg38 constants.AssemblyId = "hg38"
	Hg19 constants.AssemblyId = "hg19"
)

func CastToAssemblyId(text string) constants.AssemblyId {
	switch strings.ToLower(text) {
	case "hg38", "grch38":
		return Hg38
	case "hg19", "hg37", "grch37":
		return Hg19
	default:
		return Unknown
	}
}

func IsKnownAssemblyId(text string) bool {
	// attempt to cast to assemblyId and
	// return if unknown assemblyId
	return CastToAssemblyId(text) != Unknown
}

// HgVersionNumber returns the bare human-genome version number
// expected by the SpliceAI lookup service ('hg' query parameter)
func HgVersionNumber(assemblyId constants.AssemblyId) int {
	if assemblyId == Hg19 {
		return 19
	}
	return 38
}

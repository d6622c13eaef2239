package annotationMode

import (
	"strings"

	"svid/api/models/constants"
)

const (
	Unknown constants.AnnotationMode = "Unknown"

	Somatic  constants.AnnotationMode = "somatic"
	Germline constants.AnnotationMode = "germline"
)

func CastToAnnotationMode(text string) constants.AnnotationMode {
	switch strings.ToLower(text) {
	case "somatic":
		return Somatic
	case "germline":
		return Germline
	default:
		return Unknown
	}
}

func IsKnownAnnotationMode(text string) bool {
	return CastToAnnotationMode(text) != Unknown
}

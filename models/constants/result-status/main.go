package resultStatus

import (
	"svid/api/models/constants"
)

/*
	Typed outcome markers returned by every source adapter
	in place of raw transport errors, so the presentation
	layer can branch on error kind rather than on
	human-readable text.
*/
const (
	// upstream responded and the record was extracted
	Available constants.ResultStatus = "available"

	// transport failure or non-success http status
	Unavailable constants.ResultStatus = "unavailable"

	// upstream responded but has no record for the query
	NotFound constants.ResultStatus = "not-found"

	// clinvar-specific : record exists but carries no classification
	NoClassification constants.ResultStatus = "no-classification"

	// literature-specific : valid search with zero matches
	// (distinct from not-found and from unavailable)
	EmptyResult constants.ResultStatus = "empty-result"

	// tabular response contained no data rows
	NoData constants.ResultStatus = "no-data"

	// upstream record is missing expected fields
	IncompleteData constants.ResultStatus = "incomplete-data"
)

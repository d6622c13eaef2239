package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the dashboard API and
	it's associated services.
*/
type AssemblyId string
type AnnotationMode string

type SourceName string
type ResultStatus string
type DashboardPage string

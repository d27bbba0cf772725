// Package aadr loads sample records from an Allen Ancient DNA Resource
// (AADR) annotation table.
package aadr

import "errors"

// ErrMissingDatasetFile indicates that the annotation table is absent.
var ErrMissingDatasetFile = errors.New("missing dataset file")

// Sample is one individual from the annotation table. Samples are loaded
// once and never mutated; the raw haplogroup calls are kept verbatim for
// the resolver.
type Sample struct {
	MasterID        string
	PoliticalEntity string
	AgeBP           float64
	YCall           string
	MTCall          string
	Latitude        float64
	Longitude       float64
}

// LoadSummary counts what happened to the rows of the annotation table.
// Dropped rows are tolerated and reported, never fatal.
type LoadSummary struct {
	Rows               int
	Kept               int
	DroppedAge         int
	DroppedCoordinates int
}

// Package phylo loads the Y-chromosomal and mitochondrial haplogroup
// reference tables and resolves raw haplogroup calls to their basal
// (root-adjacent) haplogroup.
package phylo

import "errors"

// Lineage names one of the two disjoint haplogroup trees.
type Lineage string

const (
	LineageY  Lineage = "Y"
	LineageMT Lineage = "mt"
)

var (
	// ErrMissingReferenceFile indicates that a required reference table is
	// absent. Fatal: resolution cannot proceed on partial references.
	ErrMissingReferenceFile = errors.New("missing reference file")

	// ErrMalformedReference indicates a structural defect in a reference
	// table (orphan parent, duplicate definition, cycle). Fatal for the
	// same reason.
	ErrMalformedReference = errors.New("malformed reference")
)

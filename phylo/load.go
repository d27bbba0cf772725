package phylo

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// Column layout of the reference tables. The phylogeny files carry
// child/parent in the first two whitespace-delimited fields; the SNP and
// locus tables carry their identifier in field 1 and the haplogroup it
// defines in field 3.
const (
	phyloChildCol  = 0
	phyloParentCol = 1

	lookupKeyCol   = 1
	lookupValueCol = 3
)

// Reference bundles everything needed to resolve one lineage: the tree
// plus the SNP and locus alias tables that translate marker-style calls
// (e.g. M269) into tree labels.
type Reference struct {
	Tree *Tree

	snpToHaplogroup   map[string]string
	locusToHaplogroup map[string]string
}

// LoadReference reads the phylogeny, SNP-map and (optionally, Y only)
// locus tables for one lineage. locusPath may be empty; the other two are
// required.
func LoadReference(lineage Lineage, phyloPath, snpPath, locusPath string) (*Reference, error) {
	edges, err := readEdges(lineage, phyloPath)
	if err != nil {
		return nil, err
	}

	tree, err := NewTree(lineage, edges)
	if err != nil {
		return nil, err
	}

	ref := &Reference{Tree: tree}

	ref.snpToHaplogroup, err = readLookup(lineage, snpPath)
	if err != nil {
		return nil, err
	}

	if locusPath != "" {
		ref.locusToHaplogroup, err = readLookup(lineage, locusPath)
		if err != nil {
			return nil, err
		}
	}

	return ref, nil
}

func openReference(lineage Lineage, path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s reference %s", ErrMissingReferenceFile, lineage, path)
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

// readEdges scans a phylogeny table of whitespace-delimited child/parent
// rows. Rows with fewer than two fields are ignored, as in the reference
// files these are continuation or comment lines.
func readEdges(lineage Lineage, path string) ([]Edge, error) {
	f, err := openReference(lineage, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var edges []Edge

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < phyloParentCol+1 {
			continue
		}

		edges = append(edges, Edge{Child: fields[phyloChildCol], Parent: fields[phyloParentCol]})
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: %s phylogeny %s contains no child/parent rows", ErrMalformedReference, lineage, path)
	}

	return edges, nil
}

// readLookup scans a SNP or locus table into identifier -> haplogroup.
// Duplicate identifiers that disagree about their haplogroup are rejected:
// a lookup that depends on row order would make resolution irreproducible.
func readLookup(lineage Lineage, path string) (map[string]string, error) {
	f, err := openReference(lineage, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < lookupValueCol+1 {
			continue
		}

		key, value := fields[lookupKeyCol], fields[lookupValueCol]
		if prior, exists := out[key]; exists && prior != value {
			return nil, fmt.Errorf("%w: %s lookup %s maps %q to both %q and %q", ErrMalformedReference, lineage, path, key, prior, value)
		}
		out[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

// Package freq aggregates resolved basal haplogroups into per-bin
// frequency tables and exports them as deterministic CSV.
package freq

import (
	"fmt"
	"sort"

	"github.com/AndrewBergman1/HaploMapper-v1.0/bins"
)

// Distinct returns the sorted set of labels with exclude removed. It is
// used to fix a lineage's column set from the observed basal haplogroups
// before any counting happens.
func Distinct(labels []string, exclude string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))

	for _, l := range labels {
		if l == exclude || l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}

	sort.Strings(out)

	return out
}

// Table is one lineage's frequency table: rows are combined bins, columns
// are basal haplogroups, cells are sample counts.
type Table struct {
	Lineage string

	columns  []string
	colIndex map[string]int
	cells    map[bins.CombinedBin][]int
}

// NewTable builds an empty table over a fixed, sorted column set.
func NewTable(lineage string, haplogroups []string) *Table {
	columns := make([]string, len(haplogroups))
	copy(columns, haplogroups)
	sort.Strings(columns)

	colIndex := make(map[string]int, len(columns))
	for i, c := range columns {
		colIndex[c] = i
	}

	return &Table{
		Lineage:  lineage,
		columns:  columns,
		colIndex: colIndex,
		cells:    make(map[bins.CombinedBin][]int),
	}
}

// Columns returns the haplogroup columns in their fixed order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)

	return out
}

// OneHot encodes a basal haplogroup as an indicator vector over the column
// set. Unknown haplogroups are an error: the column set is fixed before
// aggregation starts.
func (t *Table) OneHot(basal string) ([]int, error) {
	idx, ok := t.colIndex[basal]
	if !ok {
		return nil, fmt.Errorf("haplogroup %q is not a column of the %s table", basal, t.Lineage)
	}

	vec := make([]int, len(t.columns))
	vec[idx] = 1

	return vec, nil
}

// Add records one sample: its basal haplogroup is one-hot encoded and the
// vector is summed into the bin's row. This is behaviorally identical to a
// direct group-and-count.
func (t *Table) Add(bin bins.CombinedBin, basal string) error {
	vec, err := t.OneHot(basal)
	if err != nil {
		return err
	}

	row, ok := t.cells[bin]
	if !ok {
		row = make([]int, len(t.columns))
		t.cells[bin] = row
	}

	for i, v := range vec {
		row[i] += v
	}

	return nil
}

// Count returns one cell.
func (t *Table) Count(bin bins.CombinedBin, haplogroup string) int {
	idx, ok := t.colIndex[haplogroup]
	if !ok {
		return 0
	}

	row, ok := t.cells[bin]
	if !ok {
		return 0
	}

	return row[idx]
}

// Row returns a copy of a bin's counts in column order.
func (t *Table) Row(bin bins.CombinedBin) []int {
	row, ok := t.cells[bin]
	if !ok {
		return make([]int, len(t.columns))
	}

	out := make([]int, len(row))
	copy(out, row)

	return out
}

// Bins returns the observed combined bins sorted by entity, then by the
// age interval's lower bound. This ordering fixes the exported row order.
func (t *Table) Bins() []bins.CombinedBin {
	out := make([]bins.CombinedBin, 0, len(t.cells))
	for b := range t.cells {
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Entity != out[j].Entity {
			return out[i].Entity < out[j].Entity
		}

		return out[i].Ages.Lower < out[j].Ages.Lower
	})

	return out
}

// GrandTotal sums every cell. For a lineage it must equal the number of
// samples with a resolvable call and a valid bin.
func (t *Table) GrandTotal() int {
	total := 0
	for _, row := range t.cells {
		for _, v := range row {
			total += v
		}
	}

	return total
}

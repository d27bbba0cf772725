package freq

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"

	haplomapper "github.com/AndrewBergman1/HaploMapper-v1.0"
	"github.com/AndrewBergman1/HaploMapper-v1.0/bins"
)

// ErrWriteFailed indicates that an export destination was not writable.
// Fatal and not retried.
var ErrWriteFailed = errors.New("write failed")

const (
	entityHeader = "Political Entity"
	ageBinHeader = "Age Bin"
	latHeader    = "Lat."
	longHeader   = "Long."
)

func createExport(path string) (*os.File, error) {
	if err := haplomapper.CreateFileAndPath(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}

	return f, nil
}

// WriteCSV serializes the table with its fixed row and column order, so
// repeated runs over identical input produce byte-identical files.
func (t *Table) WriteCSV(path string) error {
	f, err := createExport(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := append([]string{entityHeader, ageBinHeader}, t.columns...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}

	for _, bin := range t.Bins() {
		record := make([]string, 0, len(header))
		record = append(record, bin.Entity, bin.Ages.Label())
		for _, v := range t.Row(bin) {
			record = append(record, strconv.Itoa(v))
		}

		if err := w.Write(record); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}

	return f.Close()
}

// ReadTableCSV loads a table previously written by WriteCSV. The dashboard
// consumes exports through this.
func ReadTableCSV(lineage, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}

	if len(records) == 0 || len(records[0]) < 2 {
		return nil, fmt.Errorf("%s does not look like a frequency table", path)
	}

	header := records[0]
	table := NewTable(lineage, header[2:])

	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("%s row %d has %d fields, expected %d", path, i+1, len(record), len(header))
		}

		iv, err := parseIntervalLabel(record[1])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %v", path, i+1, err)
		}

		bin := bins.CombinedBin{Entity: record[0], Ages: iv}
		for j, cell := range record[2:] {
			n, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: %v", path, i+1, err)
			}
			for k := 0; k < n; k++ {
				if err := table.Add(bin, header[2+j]); err != nil {
					return nil, err
				}
			}
		}
	}

	return table, nil
}

// parseIntervalLabel inverts Interval.Label, e.g. "0-999" -> [0, 1000).
func parseIntervalLabel(label string) (bins.Interval, error) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return bins.Interval{}, fmt.Errorf("malformed age bin label %q", label)
	}

	lower, err := strconv.Atoi(parts[0])
	if err != nil {
		return bins.Interval{}, fmt.Errorf("malformed age bin label %q", label)
	}

	last, err := strconv.Atoi(parts[1])
	if err != nil {
		return bins.Interval{}, fmt.Errorf("malformed age bin label %q", label)
	}

	return bins.Interval{Lower: lower, Upper: last + 1}, nil
}

// WriteCSV serializes the site table: one row per (site, bin), the Y
// columns prefixed y_, the mitochondrial columns prefixed mt_, both sets
// sorted lexicographically.
func (s *SiteTable) WriteCSV(path string) error {
	yCols, mtCols := s.columnSets()

	f, err := createExport(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{latHeader, longHeader, "CombinedBins"}
	for _, c := range yCols {
		header = append(header, "y_"+c)
	}
	for _, c := range mtCols {
		header = append(header, "mt_"+c)
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}

	for _, key := range s.Keys() {
		record := make([]string, 0, len(header))
		record = append(record,
			strconv.FormatFloat(key.Latitude, 'f', -1, 64),
			strconv.FormatFloat(key.Longitude, 'f', -1, 64),
			key.Bin.String(),
		)

		y, mt := s.YCounts(key), s.MTCounts(key)
		for _, c := range yCols {
			record = append(record, strconv.Itoa(y[c]))
		}
		for _, c := range mtCols {
			record = append(record, strconv.Itoa(mt[c]))
		}

		if err := w.Write(record); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}

	return f.Close()
}

func (s *SiteTable) columnSets() (yCols, mtCols []string) {
	ySeen, mtSeen := make(map[string]bool), make(map[string]bool)
	for _, c := range s.sites {
		for h := range c.y {
			if !ySeen[h] {
				ySeen[h] = true
				yCols = append(yCols, h)
			}
		}
		for h := range c.mt {
			if !mtSeen[h] {
				mtSeen[h] = true
				mtCols = append(mtCols, h)
			}
		}
	}

	sort.Strings(yCols)
	sort.Strings(mtCols)

	return yCols, mtCols
}

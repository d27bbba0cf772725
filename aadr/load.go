package aadr

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	haplomapper "github.com/AndrewBergman1/HaploMapper-v1.0"
)

// annotationRow mirrors the AADR annotation table columns we consume. The
// table carries dozens of additional columns; gocsv ignores everything
// without a matching tag. All fields are read as strings because the
// dataset uses placeholder values (`..`, `n/a`) inside numeric columns.
type annotationRow struct {
	MasterID        string `csv:"Master ID"`
	PoliticalEntity string `csv:"Political Entity"`
	DateMeanBP      string `csv:"Date mean in BP in years before 1950 CE [OxCal mu for a direct radiocarbon date, and average of range for a contextual date]"`
	YHaplogroup     string `csv:"Y haplogroup (manual curation in ISOGG format)"`
	MTHaplogroup    string `csv:"mtDNA haplogroup if >2x or published"`
	Latitude        string `csv:"Lat."`
	Longitude       string `csv:"Long."`
}

// Load reads the annotation table at path into Sample records. Rows whose
// age or coordinates cannot be parsed are dropped and counted in the
// summary; only a missing or unreadable file is an error.
func Load(path string) ([]Sample, LoadSummary, error) {
	summary := LoadSummary{}

	delim, err := haplomapper.SniffFileDelimiter(path)
	if os.IsNotExist(err) {
		return nil, summary, fmt.Errorf("%w: %s", ErrMissingDatasetFile, path)
	} else if err != nil {
		return nil, summary, pfx.Err(err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, summary, pfx.Err(err)
	}
	defer f.Close()

	// Tell gocsv about the sniffed delimiter. LazyQuotes because free-text
	// archaeological context columns contain stray quotation marks.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		r.LazyQuotes = true
		return r
	})

	rows := []*annotationRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, summary, pfx.Err(err)
	}

	samples := make([]Sample, 0, len(rows))
	for _, row := range rows {
		summary.Rows++

		age, ok := parseNumeric(row.DateMeanBP)
		if !ok {
			summary.DroppedAge++
			continue
		}

		lat, latOK := parseNumeric(row.Latitude)
		long, longOK := parseNumeric(row.Longitude)
		if !latOK || !longOK {
			summary.DroppedCoordinates++
			continue
		}

		summary.Kept++
		samples = append(samples, Sample{
			MasterID:        row.MasterID,
			PoliticalEntity: row.PoliticalEntity,
			AgeBP:           age,
			YCall:           row.YHaplogroup,
			MTCall:          row.MTHaplogroup,
			Latitude:        lat,
			Longitude:       long,
		})
	}

	return samples, summary, nil
}

// parseNumeric parses an AADR numeric cell. Decimal commas appear in some
// snapshots and are normalized to dots; the `..` placeholder and anything
// else non-numeric report false.
func parseNumeric(cell string) (float64, bool) {
	cell = strings.TrimSpace(strings.ReplaceAll(cell, ",", "."))
	if cell == "" || cell == ".." {
		return 0, false
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

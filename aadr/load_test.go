package aadr

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const ageColumn = "Date mean in BP in years before 1950 CE [OxCal mu for a direct radiocarbon date, and average of range for a contextual date]"

func writeAnnotation(t *testing.T, rows [][]string) string {
	t.Helper()

	header := []string{
		"Master ID",
		"Political Entity",
		ageColumn,
		"Y haplogroup (manual curation in ISOGG format)",
		"mtDNA haplogroup if >2x or published",
		"Lat.",
		"Long.",
	}

	lines := []string{strings.Join(header, "\t")}
	for _, row := range rows {
		lines = append(lines, strings.Join(row, "\t"))
	}

	path := filepath.Join(t.TempDir(), "anno.tsv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoad(t *testing.T) {
	path := writeAnnotation(t, [][]string{
		{"I0001", "Germany", "3000", "R1b1a1a2+", "H1", "52.5", "13.4"},
		{"I0002", "Sweden", "450", "n/a (Female)", "U5b1", "59.3", "18.1"},
		{"I0003", "Sweden", "..", "I2", "K1a", "59.3", "18.1"},
		{"I0004", "Norway", "1200", "I1", "H", "..", ".."},
		{"I0005", "Hungary", "7,5", "G2a", "N1a", "47.5", "19.0"},
	})

	samples, summary, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if summary.Rows != 5 {
		t.Errorf("rows %d, expected 5", summary.Rows)
	}
	if summary.Kept != 3 {
		t.Errorf("kept %d, expected 3", summary.Kept)
	}
	if summary.DroppedAge != 1 {
		t.Errorf("dropped for age %d, expected 1", summary.DroppedAge)
	}
	if summary.DroppedCoordinates != 1 {
		t.Errorf("dropped for coordinates %d, expected 1", summary.DroppedCoordinates)
	}
	if len(samples) != 3 {
		t.Fatalf("got %d samples, expected 3", len(samples))
	}

	first := samples[0]
	if first.MasterID != "I0001" ||
		first.PoliticalEntity != "Germany" ||
		first.AgeBP != 3000 ||
		first.YCall != "R1b1a1a2+" ||
		first.MTCall != "H1" ||
		first.Latitude != 52.5 ||
		first.Longitude != 13.4 {
		t.Errorf("Mismatch: %+v", first)
	}

	// Decimal-comma ages are normalized, not dropped.
	last := samples[2]
	if last.MasterID != "I0005" || last.AgeBP != 7.5 {
		t.Errorf("Mismatch: %+v", last)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "no_such_annotation_file"))
	if !errors.Is(err, ErrMissingDatasetFile) {
		t.Errorf("expected ErrMissingDatasetFile, got %v", err)
	}
}

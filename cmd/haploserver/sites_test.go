package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadSiteObservations(t *testing.T) {
	contents := "Lat.,Long.,CombinedBins,y_I,y_R,mt_H,mt_U\n" +
		"52.5,13.4,Germany (3000-3999BP),1,2,3,0\n" +
		"59.3,18.1,Sweden (0-999BP),0,1,0,2\n"

	path := filepath.Join(t.TempDir(), "site_observations.csv")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	sites, err := ReadSiteObservations(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(sites) != 2 {
		t.Fatalf("got %d sites, expected 2", len(sites))
	}

	first := sites[0]
	if first.Latitude != 52.5 ||
		first.Longitude != 13.4 ||
		first.Bin != "Germany (3000-3999BP)" ||
		first.YSamples != 3 ||
		first.MTSamples != 3 {
		t.Errorf("Mismatch: %+v", first)
	}

	second := sites[1]
	if second.YSamples != 1 || second.MTSamples != 2 {
		t.Errorf("Mismatch: %+v", second)
	}
}

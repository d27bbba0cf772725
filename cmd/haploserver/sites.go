package main

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// SiteObservation is one row of site_observations.csv reduced to what the
// dashboard map needs: where the site is, which bin it belongs to, and how
// many resolved samples it carries per lineage.
type SiteObservation struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"long"`
	Bin       string  `json:"bin"`
	YSamples  int     `json:"ySamples"`
	MTSamples int     `json:"mtSamples"`
}

// ReadSiteObservations loads the exported site table, summing the y_ and
// mt_ prefixed haplogroup columns into per-lineage sample totals.
func ReadSiteObservations(path string) ([]SiteObservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}

	header := struct {
		Lat  int
		Long int
		Bin  int
	}{}
	var yCols, mtCols []int

	output := make([]SiteObservation, 0, len(recs))

	for i, cols := range recs {
		if i == 0 {
			for j, col := range cols {
				if col == "Lat." {
					header.Lat = j
				} else if col == "Long." {
					header.Long = j
				} else if col == "CombinedBins" {
					header.Bin = j
				} else if strings.HasPrefix(col, "y_") {
					yCols = append(yCols, j)
				} else if strings.HasPrefix(col, "mt_") {
					mtCols = append(mtCols, j)
				}
			}
			continue
		}

		lat, err := strconv.ParseFloat(cols[header.Lat], 64)
		if err != nil {
			continue
		}
		long, err := strconv.ParseFloat(cols[header.Long], 64)
		if err != nil {
			continue
		}

		obs := SiteObservation{
			Latitude:  lat,
			Longitude: long,
			Bin:       cols[header.Bin],
		}
		for _, j := range yCols {
			if n, err := strconv.Atoi(cols[j]); err == nil {
				obs.YSamples += n
			}
		}
		for _, j := range mtCols {
			if n, err := strconv.Atoi(cols[j]); err == nil {
				obs.MTSamples += n
			}
		}

		output = append(output, obs)
	}

	return output, nil
}

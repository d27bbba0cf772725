package main

import (
	"github.com/AndrewBergman1/HaploMapper-v1.0/aadr"
	"github.com/AndrewBergman1/HaploMapper-v1.0/bins"
	"github.com/AndrewBergman1/HaploMapper-v1.0/freq"
	"github.com/AndrewBergman1/HaploMapper-v1.0/phylo"
)

type pipelineSummary struct {
	Binned          int
	DroppedAgeRange int

	YResolved    int
	YUnresolved  int
	MTResolved   int
	MTUnresolved int

	Ages []float64
}

type pipelineOutput struct {
	yTable  *freq.Table
	mtTable *freq.Table
	sites   *freq.SiteTable
	summary pipelineSummary
}

// binned is one sample that survived binning, with both lineages resolved.
type binned struct {
	bin  bins.CombinedBin
	site freq.SiteKey

	yBasal string
	yOK    bool

	mtBasal string
	mtOK    bool
}

// runPipeline resolves, bins and aggregates the loaded samples. Two passes:
// the first fixes each lineage's column set from the observed basal
// haplogroups, the second one-hot encodes and sums. All stages are pure
// functions over the loaded data.
func runPipeline(samples []aadr.Sample, yRef, mtRef *phylo.Reference, partition bins.Partition) (*pipelineOutput, error) {
	summary := pipelineSummary{}

	kept := make([]binned, 0, len(samples))
	var yObserved, mtObserved []string

	for _, s := range samples {
		bin, ok := partition.Assign(s.PoliticalEntity, s.AgeBP)
		if !ok {
			summary.DroppedAgeRange++
			continue
		}

		b := binned{
			bin:  bin,
			site: freq.SiteKey{Latitude: s.Latitude, Longitude: s.Longitude, Bin: bin},
		}

		b.yBasal, b.yOK = yRef.Resolve(s.YCall)
		if b.yOK {
			summary.YResolved++
			yObserved = append(yObserved, b.yBasal)
		} else {
			summary.YUnresolved++
		}

		b.mtBasal, b.mtOK = mtRef.Resolve(s.MTCall)
		if b.mtOK {
			summary.MTResolved++
			mtObserved = append(mtObserved, b.mtBasal)
		} else {
			summary.MTUnresolved++
		}

		summary.Binned++
		summary.Ages = append(summary.Ages, s.AgeBP)
		kept = append(kept, b)
	}

	out := &pipelineOutput{
		yTable:  freq.NewTable(string(phylo.LineageY), freq.Distinct(yObserved, phylo.Unresolved)),
		mtTable: freq.NewTable(string(phylo.LineageMT), freq.Distinct(mtObserved, phylo.Unresolved)),
		sites:   freq.NewSiteTable(),
		summary: summary,
	}

	for _, b := range kept {
		if b.yOK {
			if err := out.yTable.Add(b.bin, b.yBasal); err != nil {
				return nil, err
			}
			out.sites.AddY(b.site, b.yBasal)
		}

		if b.mtOK {
			if err := out.mtTable.Add(b.bin, b.mtBasal); err != nil {
				return nil, err
			}
			out.sites.AddMT(b.site, b.mtBasal)
		}
	}

	return out, nil
}

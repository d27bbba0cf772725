// haplomapper resolves the basal Y-chromosomal and mitochondrial
// haplogroup of every sample in an AADR annotation table, aggregates the
// samples into (political entity, age interval) bins, and exports the
// resulting frequency tables as CSV.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"

	haplomapper "github.com/AndrewBergman1/HaploMapper-v1.0"
	"github.com/AndrewBergman1/HaploMapper-v1.0/aadr"
	"github.com/AndrewBergman1/HaploMapper-v1.0/bins"
	"github.com/AndrewBergman1/HaploMapper-v1.0/phylo"
)

func main() {
	haplomapper.PrintBuildInfo()

	var (
		annoFile    string
		yPhyloFile  string
		ySNPFile    string
		yLocusFile  string
		mtPhyloFile string
		mtSNPFile   string
		binSize     int
		outDir      string
	)

	flag.StringVar(&annoFile, "anno", "", "Path to the AADR annotation table (tab- or comma-delimited).")
	flag.StringVar(&yPhyloFile, "yphylo", "", "Path to the Y haplogroup phylogeny file (child/parent rows).")
	flag.StringVar(&ySNPFile, "ysnp", "", "Path to the Y SNP file (SNP id -> haplogroup).")
	flag.StringVar(&yLocusFile, "ylocus", "", "Path to the Y locus file (locus -> haplogroup).")
	flag.StringVar(&mtPhyloFile, "mtphylo", "", "Path to the mitochondrial phylogeny file (child/parent rows).")
	flag.StringVar(&mtSNPFile, "mtsnp", "", "Path to the mitochondrial SNP file (SNP id -> haplogroup).")
	flag.IntVar(&binSize, "binsize", bins.DefaultWidth, "Age bin width in years (e.g. 100 or 1000).")
	flag.StringVar(&outDir, "out", ".", "Directory where the frequency tables will be written.")
	flag.Parse()

	if annoFile == "" || yPhyloFile == "" || ySNPFile == "" || yLocusFile == "" || mtPhyloFile == "" || mtSNPFile == "" {
		flag.PrintDefaults()
		return
	}

	partition, err := bins.NewPartition(bins.DefaultStart, bins.DefaultEnd, binSize)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	log.Println("Loading Y reference tables")
	yRef, err := phylo.LoadReference(phylo.LineageY,
		haplomapper.ExpandHome(yPhyloFile),
		haplomapper.ExpandHome(ySNPFile),
		haplomapper.ExpandHome(yLocusFile))
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Printf("Y tree holds %d haplogroups\n", yRef.Tree.Len())

	log.Println("Loading mitochondrial reference tables")
	mtRef, err := phylo.LoadReference(phylo.LineageMT,
		haplomapper.ExpandHome(mtPhyloFile),
		haplomapper.ExpandHome(mtSNPFile),
		"")
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Printf("mt tree holds %d haplogroups\n", mtRef.Tree.Len())

	log.Println("Loading annotation table")
	samples, loadSummary, err := aadr.Load(haplomapper.ExpandHome(annoFile))
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Printf("Annotation table: %d rows, %d kept, %d dropped for unparseable age, %d dropped for missing coordinates\n",
		loadSummary.Rows, loadSummary.Kept, loadSummary.DroppedAge, loadSummary.DroppedCoordinates)

	out, err := runPipeline(samples, yRef, mtRef, partition)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	outDir = haplomapper.ExpandHome(outDir)
	for _, export := range []struct {
		name  string
		write func(string) error
	}{
		{"y_frequencies.csv", out.yTable.WriteCSV},
		{"mt_frequencies.csv", out.mtTable.WriteCSV},
		{"site_observations.csv", out.sites.WriteCSV},
	} {
		path := filepath.Join(outDir, export.name)
		if err := export.write(path); err != nil {
			log.Fatalln(pfx.Err(err))
		}
		log.Println("Wrote", path)
	}

	logSummary(out.summary)
}

func logSummary(s pipelineSummary) {
	log.Printf("Binned %d samples; %d were outside the configured age range\n", s.Binned, s.DroppedAgeRange)
	log.Printf("Y lineage: %d resolved, %d unresolved\n", s.YResolved, s.YUnresolved)
	log.Printf("mt lineage: %d resolved, %d unresolved\n", s.MTResolved, s.MTUnresolved)

	if len(s.Ages) == 0 {
		return
	}

	mean, err := stats.Mean(s.Ages)
	if err != nil {
		log.Println(pfx.Err(err))
		return
	}
	median, err := stats.Median(s.Ages)
	if err != nil {
		log.Println(pfx.Err(err))
		return
	}

	log.Printf("Binned sample ages: mean %.0f BP, median %.0f BP\n", mean, median)
}

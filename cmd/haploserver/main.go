// haploserver serves the tables exported by the haplomapper pipeline as an
// interactive dashboard: a listing of (political entity, age interval) bins
// with per-bin pie charts of the basal haplogroup distributions, plus JSON
// endpoints for the raw tables and the per-site observations.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	haplomapper "github.com/AndrewBergman1/HaploMapper-v1.0"
	"github.com/AndrewBergman1/HaploMapper-v1.0/freq"
	"github.com/AndrewBergman1/HaploMapper-v1.0/phylo"
)

var global *Global

func main() {
	haplomapper.PrintBuildInfo()

	errors := make(chan error, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig,
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGUSR1,
	)

	dataDir := flag.String("data", "", "Directory holding y_frequencies.csv, mt_frequencies.csv and site_observations.csv from a haplomapper run.")
	port := flag.Int("port", 8052, "Port for HTTP server")
	flag.Parse()

	if *dataDir == "" {
		flag.PrintDefaults()
		return
	}

	*dataDir = haplomapper.ExpandHome(*dataDir)

	yTable, err := freq.ReadTableCSV(string(phylo.LineageY), filepath.Join(*dataDir, "y_frequencies.csv"))
	if err != nil {
		log.Fatalln(err)
	}

	mtTable, err := freq.ReadTableCSV(string(phylo.LineageMT), filepath.Join(*dataDir, "mt_frequencies.csv"))
	if err != nil {
		log.Fatalln(err)
	}

	sites, err := ReadSiteObservations(filepath.Join(*dataDir, "site_observations.csv"))
	if err != nil {
		log.Fatalln(err)
	}

	global = &Global{
		Site: "HaploMapper",

		log:     log.New(os.Stderr, log.Prefix(), log.Ldate|log.Ltime),
		DataDir: *dataDir,
		YTable:  yTable,
		MTTable: mtTable,
		Sites:   sites,
	}

	global.log.Println("Launching", global.Site)
	global.log.Printf("Loaded %d Y bins, %d mt bins, %d sites\n",
		len(yTable.Bins()), len(mtTable.Bins()), len(sites))

	go func() {
		global.log.Println("Starting HTTP server on port", *port)
		if err := http.ListenAndServe(fmt.Sprintf(`:%d`, *port), router(global)); err != nil {
			errors <- err
			global.log.Println(err)
			sig <- syscall.SIGTERM
			return
		}
	}()

Outer:
	for {
		select {
		case sigl := <-sig:
			if sigl == syscall.SIGUSR1 {
				global.log.Println("There are", runtime.NumGoroutine(), "goroutines running")
				continue
			}

			global.log.Printf("\nExit: %s\n", sigl.String())

			break Outer

		case err := <-errors:
			if err == nil {
				global.log.Println("Finished")
				break Outer
			}

			global.log.Println("Exiting due to error", err)
			os.Exit(1)
		}
	}
}

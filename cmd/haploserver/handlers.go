package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/AndrewBergman1/HaploMapper-v1.0/bins"
	"github.com/AndrewBergman1/HaploMapper-v1.0/freq"
)

type handler struct {
	Global *Global
	router *mux.Router
}

type binListing struct {
	Index   int
	Name    string
	Samples int
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	output := struct {
		Site    string
		DataDir string
		YBins   []binListing
		MTBins  []binListing
		Sites   int
	}{
		Site:    h.Global.Site,
		DataDir: h.Global.DataDir,
		YBins:   listBins(h.Global.YTable),
		MTBins:  listBins(h.Global.MTTable),
		Sites:   len(h.Global.Sites),
	}

	Render(h, w, r, h.Global.Site, "index", output)
}

func (h *handler) BinDetail(w http.ResponseWriter, r *http.Request) {
	lineage := mux.Vars(r)["lineage"]

	table, bin, binIndex, err := h.lookupBin(r)
	if err != nil {
		HTTPError(h, w, r, err)
		return
	}

	type slice struct {
		Haplogroup string
		Count      int
	}

	var slices []slice
	total := 0
	for _, col := range table.Columns() {
		if n := table.Count(bin, col); n > 0 {
			slices = append(slices, slice{Haplogroup: col, Count: n})
			total += n
		}
	}

	output := struct {
		Site     string
		Lineage  string
		BinIndex int
		Name     string
		Total    int
		Slices   []slice
	}{
		Site:     h.Global.Site,
		Lineage:  lineage,
		BinIndex: binIndex,
		Name:     bin.String(),
		Total:    total,
		Slices:   slices,
	}

	Render(h, w, r, bin.String(), "bin", output)
}

// PieChart renders one bin's basal haplogroup distribution as a PNG.
func (h *handler) PieChart(w http.ResponseWriter, r *http.Request) {
	table, bin, _, err := h.lookupBin(r)
	if err != nil {
		HTTPError(h, w, r, err)
		return
	}

	var values []chart.Value
	for _, col := range table.Columns() {
		n := table.Count(bin, col)
		if n == 0 {
			continue
		}

		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", col, n),
			Value: float64(n),
			Style: chart.Style{FillColor: haplogroupColor(col)},
		})
	}

	if len(values) == 0 {
		HTTPError(h, w, r, fmt.Errorf("no haplogroup observations in bin %s", bin))
		return
	}

	graph := chart.PieChart{
		Width:  512,
		Height: 512,
		Values: values,
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		HTTPError(h, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := buffer.WriteTo(w); err != nil {
		h.Global.log.Println(err)
	}
}

func (h *handler) TableJSON(w http.ResponseWriter, r *http.Request) {
	lineage := mux.Vars(r)["lineage"]
	table, _ := h.Global.Table(lineage)

	type row struct {
		Entity string `json:"entity"`
		AgeBin string `json:"ageBin"`
		Counts []int  `json:"counts"`
	}

	output := struct {
		Lineage string   `json:"lineage"`
		Columns []string `json:"columns"`
		Rows    []row    `json:"rows"`
	}{
		Lineage: table.Lineage,
		Columns: table.Columns(),
	}

	for _, bin := range table.Bins() {
		output.Rows = append(output.Rows, row{
			Entity: bin.Entity,
			AgeBin: bin.Ages.Label(),
			Counts: table.Row(bin),
		})
	}

	writeJSON(h, w, r, output)
}

// SitesMap serves the sampling site map. The page pulls /api/sites and
// plots each site on a world canvas client-side.
func (h *handler) SitesMap(w http.ResponseWriter, r *http.Request) {
	output := struct {
		Site  string
		Sites int
	}{
		Site:  h.Global.Site,
		Sites: len(h.Global.Sites),
	}

	Render(h, w, r, h.Global.Site+" map", "map", output)
}

func (h *handler) SitesJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(h, w, r, h.Global.Sites)
}

func writeJSON(h *handler, w http.ResponseWriter, r *http.Request, output interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(output); err != nil {
		h.Global.log.Println(err)
	}
}

// lookupBin resolves the {lineage}/{bin_index} route variables against the
// exported tables. bin_index must land inside the table's fixed bin order.
func (h *handler) lookupBin(r *http.Request) (*freq.Table, bins.CombinedBin, int, error) {
	vars := mux.Vars(r)

	table, ok := h.Global.Table(vars["lineage"])
	if !ok {
		return nil, bins.CombinedBin{}, 0, fmt.Errorf("unknown lineage %q", vars["lineage"])
	}

	binIndex, err := strconv.Atoi(vars["bin_index"])
	if err != nil {
		return nil, bins.CombinedBin{}, 0, fmt.Errorf("no bin_index passed")
	}

	allBins := table.Bins()
	if binIndex < 0 || binIndex >= len(allBins) {
		return nil, bins.CombinedBin{}, 0, fmt.Errorf("bin_index was %d, out of range of the %s table", binIndex, table.Lineage)
	}

	return table, allBins[binIndex], binIndex, nil
}

func listBins(table *freq.Table) []binListing {
	var out []binListing
	for i, bin := range table.Bins() {
		samples := 0
		for _, v := range table.Row(bin) {
			samples += v
		}

		out = append(out, binListing{Index: i, Name: bin.String(), Samples: samples})
	}

	return out
}

package main

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/AndrewBergman1/HaploMapper-v1.0/bins"
	"github.com/AndrewBergman1/HaploMapper-v1.0/freq"
)

func testGlobal(t *testing.T) *Global {
	t.Helper()

	table := func(lineage, basal string) *freq.Table {
		tbl := freq.NewTable(lineage, []string{basal})
		bin := bins.CombinedBin{Entity: "Sweden", Ages: bins.Interval{Lower: 0, Upper: 1000}}
		if err := tbl.Add(bin, basal); err != nil {
			t.Fatal(err)
		}
		return tbl
	}

	return &Global{
		Site:    "HaploMapper",
		DataDir: t.TempDir(),
		log:     log.New(os.Stderr, "", log.LstdFlags),
		YTable:  table("Y", "R"),
		MTTable: table("mt", "H"),
		Sites: []SiteObservation{
			{Latitude: 59.3, Longitude: 18.1, Bin: "Sweden (0-999BP)", YSamples: 1, MTSamples: 1},
		},
	}
}

func TestRouterPages(t *testing.T) {
	srv := httptest.NewServer(router(testGlobal(t)))
	defer srv.Close()

	for _, v := range []struct {
		path     string
		contains string
	}{
		{"/", "Sweden (0-999BP)"},
		{"/map", "/api/sites"},
		{"/bin/y/0", "resolved y haplogroup"},
	} {
		resp, err := http.Get(srv.URL + v.path)
		if err != nil {
			t.Fatal(err)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s returned %d", v.path, resp.StatusCode)
		}
		if !strings.Contains(string(body), v.contains) {
			t.Errorf("GET %s body does not mention %q", v.path, v.contains)
		}
	}
}

func TestRouterUnknownBin(t *testing.T) {
	srv := httptest.NewServer(router(testGlobal(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/bin/y/99")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("out-of-range bin index returned %d, expected 404", resp.StatusCode)
	}
}

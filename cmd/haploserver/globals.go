package main

import (
	"github.com/AndrewBergman1/HaploMapper-v1.0/freq"
)

// Global holds the loaded exports shared by every handler. Everything is
// read once at startup and never mutated afterward.
type Global struct {
	Site    string
	DataDir string

	log logger

	YTable  *freq.Table
	MTTable *freq.Table
	Sites   []SiteObservation
}

// Table picks the frequency table for a lineage path component ("y"/"mt").
func (g *Global) Table(lineage string) (*freq.Table, bool) {
	switch lineage {
	case "y":
		return g.YTable, true
	case "mt":
		return g.MTTable, true
	}

	return nil, false
}

type logger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

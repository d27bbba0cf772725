package main

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// macroColors fixes one color per macro-haplogroup letter so a haplogroup
// keeps its color across every pie chart.
var macroColors = map[string]string{
	"A": "3182bd",
	"B": "3182bd",
	"C": "6baed6",
	"D": "9ecae1",
	"E": "c6dbef",
	"F": "e6550d",
	"G": "e6550d",
	"H": "fd8d3c",
	"I": "fdae6b",
	"J": "fdd0a2",
	"K": "31a354",
	"L": "31a354",
	"M": "74c476",
	"N": "a1d99b",
	"O": "c7e9c0",
	"P": "756bb1",
	"Q": "756bb1",
	"R": "9e9ac8",
	"S": "bcbddc",
	"T": "dadaeb",
	"U": "636363",
	"V": "636363",
	"W": "969696",
	"X": "bdbdbd",
	"Y": "d9d9d9",
	"Z": "d9d9d9",
}

func haplogroupColor(label string) drawing.Color {
	if label != "" {
		if hex, ok := macroColors[label[:1]]; ok {
			return drawing.ColorFromHex(hex)
		}
	}

	return drawing.ColorFromHex("cccccc")
}

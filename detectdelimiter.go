package haplomapper

import (
	"bytes"
	"io"
	"os"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}

// SniffFileDelimiter samples the head of the file at path and guesses its
// delimiter. AADR annotation snapshots have shipped both tab- and
// comma-delimited, so the loaders sniff rather than assume.
func SniffFileDelimiter(path string) (rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	head := make([]byte, 64*1024)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return 0, err
	}

	return DetermineDelimiter(bytes.NewReader(head[:n])), nil
}

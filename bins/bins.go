// Package bins discretizes samples into combined (political entity, age
// interval) aggregation bins.
package bins

import "fmt"

// Defaults for the age axis. The upper bound deliberately exceeds the
// oldest sample in current AADR releases so future additions still land
// inside the partition.
const (
	DefaultStart = 0
	DefaultEnd   = 120000
	DefaultWidth = 1000
)

// Interval is a half-open age range [Lower, Upper) in years BP.
type Interval struct {
	Lower int
	Upper int
}

// Label renders the interval the way the original dataset bins were
// labeled: an inclusive span, e.g. "0-999".
func (iv Interval) Label() string {
	return fmt.Sprintf("%d-%d", iv.Lower, iv.Upper-1)
}

// CombinedBin is the aggregation key: the sample's political entity
// verbatim plus its age interval. Two samples share a bin iff both parts
// are equal.
type CombinedBin struct {
	Entity string
	Ages   Interval
}

// String renders the bin for human-facing output, e.g. "Germany (0-999BP)".
func (b CombinedBin) String() string {
	return fmt.Sprintf("%s (%sBP)", b.Entity, b.Ages.Label())
}

// Partition is a fixed-width, monotonically increasing partition of the
// age axis. It is constructed once per run and applied to every sample.
type Partition struct {
	Start int
	End   int
	Width int
}

// NewPartition validates and returns a partition. Width must divide into a
// positive number of intervals.
func NewPartition(start, end, width int) (Partition, error) {
	if width <= 0 {
		return Partition{}, fmt.Errorf("bin width must be positive, got %d", width)
	}
	if end <= start {
		return Partition{}, fmt.Errorf("age range [%d, %d) is empty", start, end)
	}

	return Partition{Start: start, End: end, Width: width}, nil
}

// Interval returns the half-open interval containing age. The second
// return is false for ages outside [Start, End); such samples are dropped
// from binning and counted by the caller.
func (p Partition) Interval(age float64) (Interval, bool) {
	if age < float64(p.Start) || age >= float64(p.End) {
		return Interval{}, false
	}

	idx := (int(age) - p.Start) / p.Width
	lower := p.Start + idx*p.Width

	upper := lower + p.Width
	if upper > p.End {
		upper = p.End
	}

	return Interval{Lower: lower, Upper: upper}, true
}

// Assign produces the combined bin for one sample's entity and age. Bin
// assignment is a pure function of its two inputs.
func (p Partition) Assign(entity string, age float64) (CombinedBin, bool) {
	iv, ok := p.Interval(age)
	if !ok {
		return CombinedBin{}, false
	}

	return CombinedBin{Entity: entity, Ages: iv}, true
}

package bins

import "testing"

func TestIntervalAssignment(t *testing.T) {
	p, err := NewPartition(0, 120000, 1000)
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range []struct {
		age   float64
		lower int
		ok    bool
	}{
		{0, 0, true},
		{999, 0, true},
		{999.9, 0, true},
		{1000, 1000, true},
		{3000, 3000, true},
		{119999, 119000, true},
		{120000, 0, false},
		{99999999, 0, false},
		{-1, 0, false},
	} {
		iv, ok := p.Interval(v.age)
		if ok != v.ok {
			t.Errorf("Interval(%v) ok = %v, expected %v", v.age, ok, v.ok)
			continue
		}
		if ok && iv.Lower != v.lower {
			t.Errorf("Interval(%v) lower = %d, expected %d", v.age, iv.Lower, v.lower)
		}
		if ok && iv.Upper != v.lower+1000 {
			t.Errorf("Interval(%v) upper = %d, expected %d", v.age, iv.Upper, v.lower+1000)
		}
	}
}

func TestCombinedBinLabels(t *testing.T) {
	p, err := NewPartition(0, 120000, 1000)
	if err != nil {
		t.Fatal(err)
	}

	bin, ok := p.Assign("Germany", 3000)
	if !ok {
		t.Fatal("age 3000 should bin")
	}

	if bin.Ages.Label() != "3000-3999" {
		t.Errorf("interval label %q, expected 3000-3999", bin.Ages.Label())
	}
	if bin.String() != "Germany (3000-3999BP)" {
		t.Errorf("combined bin label %q, expected Germany (3000-3999BP)", bin.String())
	}
}

// Bin assignment is a pure function: equal inputs always produce equal
// bins, and bins are comparable as map keys.
func TestCombinedBinEquality(t *testing.T) {
	p, err := NewPartition(0, 120000, 100)
	if err != nil {
		t.Fatal(err)
	}

	a, _ := p.Assign("Sweden", 250)
	b, _ := p.Assign("Sweden", 299)
	c, _ := p.Assign("Sweden", 300)
	d, _ := p.Assign("Norway", 250)

	if a != b {
		t.Error("same entity and interval should share a bin")
	}
	if a == c {
		t.Error("adjacent intervals must not share a bin")
	}
	if a == d {
		t.Error("different entities must not share a bin")
	}
}

func TestNewPartitionValidation(t *testing.T) {
	if _, err := NewPartition(0, 120000, 0); err == nil {
		t.Error("zero width should be rejected")
	}
	if _, err := NewPartition(0, 120000, -5); err == nil {
		t.Error("negative width should be rejected")
	}
	if _, err := NewPartition(100, 100, 10); err == nil {
		t.Error("empty range should be rejected")
	}
}

// The last interval is clamped to the end of the partition when the width
// does not divide the range evenly.
func TestRaggedFinalInterval(t *testing.T) {
	p, err := NewPartition(0, 250, 100)
	if err != nil {
		t.Fatal(err)
	}

	iv, ok := p.Interval(225)
	if !ok {
		t.Fatal("age 225 should bin")
	}
	if iv.Lower != 200 || iv.Upper != 250 {
		t.Errorf("final interval [%d, %d), expected [200, 250)", iv.Lower, iv.Upper)
	}
}

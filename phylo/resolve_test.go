package phylo

import (
	"testing"
)

func testReference(t *testing.T) *Reference {
	t.Helper()

	tree, err := NewTree(LineageY, testEdges())
	if err != nil {
		t.Fatal(err)
	}

	return &Reference{
		Tree:              tree,
		snpToHaplogroup:   map[string]string{"M269": "R1b1a1a2"},
		locusToHaplogroup: map[string]string{"L23": "R1b1a1a2"},
	}
}

func TestNormalize(t *testing.T) {
	for _, v := range []struct {
		in  string
		out string
	}{
		{"R1b1a1a2+", "R1b1a1a2"},
		{"R1b1a1a2*", "R1b1a1a2"},
		{"R1b1a~", "R1b1a"},
		{"R-M269", "R"},
		{"J2a1; J2a1b", "J2a1"},
		{"H2a(possible)", "H2a"},
		{" U5b1 ", "U5b1"},
		{"R1b1a1a2", "R1b1a1a2"},
	} {
		if got := Normalize(v.in); got != v.out {
			t.Errorf("Normalize(%q) = %q, expected %q", v.in, got, v.out)
		}

		// Normalization must be idempotent.
		once := Normalize(v.in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize is not idempotent on %q: %q then %q", v.in, once, twice)
		}
	}
}

func TestResolveBasal(t *testing.T) {
	ref := testReference(t)

	for _, v := range []struct {
		call  string
		basal string
		ok    bool
	}{
		{"R1b1a1a2+", "R", true},
		{"R1b1a1a2b1b", "R", true},
		{"I2a1b", "I", true},
		{"R", "R", true},
		{"M269", "R", true},  // via SNP table
		{"L23", "R", true},   // via locus table
		{"ZZZTOP", Unresolved, false},
		{"n/a (Female)", Unresolved, false},
		{"..", Unresolved, false},
		{"", Unresolved, false},
	} {
		basal, ok := ref.Resolve(v.call)
		if basal != v.basal || ok != v.ok {
			t.Errorf("Resolve(%q) = (%q, %v), expected (%q, %v)", v.call, basal, ok, v.basal, v.ok)
		}
	}
}

// The basal depth is a policy constant; resolving one step deeper must
// return the ancestor at that deeper level.
func TestResolveAtExplicitDepth(t *testing.T) {
	ref := testReference(t)

	for _, v := range []struct {
		call  string
		depth int
		basal string
		ok    bool
	}{
		{"R1b1a1a2+", 2, "R1", true},
		{"R1b1a1a2+", 3, "R1b", true},
		{"R1b1a1a2+", 4, "R1b1a1a2", true},
		// A match above the target depth still identifies its own lineage.
		{"R", 3, "R", true},
		{"I2", 4, "I2", true},
	} {
		basal, ok := ref.ResolveAtDepth(v.call, v.depth)
		if basal != v.basal || ok != v.ok {
			t.Errorf("ResolveAtDepth(%q, %d) = (%q, %v), expected (%q, %v)",
				v.call, v.depth, basal, ok, v.basal, v.ok)
		}
	}
}

// One level below the macro-haplogroups: R1b1a1a2+ reduces to R1b in a
// reference that goes straight from R to R1b.
func TestResolveSubMacroRule(t *testing.T) {
	tree, err := NewTree(LineageY, []Edge{
		{"R", "Root"},
		{"R1b", "R"},
		{"R1b1a1a2", "R1b"},
	})
	if err != nil {
		t.Fatal(err)
	}

	ref := &Reference{Tree: tree}

	basal, ok := ref.ResolveAtDepth("R1b1a1a2+", 2)
	if !ok || basal != "R1b" {
		t.Errorf("ResolveAtDepth(R1b1a1a2+, 2) = (%q, %v), expected (R1b, true)", basal, ok)
	}
}

// A resolved basal haplogroup must be an ancestor (or equal) of the node
// matched by the normalized call, at the rule's target depth.
func TestResolvedIsAncestorOfMatch(t *testing.T) {
	ref := testReference(t)

	call := "R1b1a1a2+"
	basal, ok := ref.Resolve(call)
	if !ok {
		t.Fatalf("Resolve(%q) unexpectedly failed", call)
	}

	matched := ref.Tree.LongestPrefixMatch(Normalize(call))
	if matched == nil {
		t.Fatalf("no tree match for %q", call)
	}

	basalNode, exists := ref.Tree.Node(basal)
	if !exists {
		t.Fatalf("basal label %q is not in the tree", basal)
	}
	if basalNode.Depth != DefaultBasalDepth {
		t.Errorf("basal node depth %d, expected %d", basalNode.Depth, DefaultBasalDepth)
	}
	if anc := matched.AncestorAtDepth(basalNode.Depth); anc != basalNode {
		t.Errorf("basal %q is not an ancestor of matched node %q", basal, matched.Label)
	}
}

package phylo

import (
	"strings"
)

// DefaultBasalDepth is the fixed depth of the basal rule: depth 1 holds the
// children of the synthetic root, i.e. the single-letter macro-haplogroups.
// This is a policy constant, deliberately not derived from tree shape.
const DefaultBasalDepth = 1

// Unresolved is returned for calls that match nothing in the reference.
// An unresolved call is an expected per-sample outcome, not an error.
const Unresolved = "unresolved"

var callStripper = strings.NewReplacer("~", "", "*", "", "+", "", " ", "", "\t", "")

// Normalize reduces a raw haplogroup call to its bare alphanumeric form:
// everything from the first ';', '-' or '(' on is dropped (alternate calls,
// marker suffixes, parenthetical notes), and the '~', '*' and '+' decorations
// common in ISOGG notation are stripped. Normalize is idempotent.
func Normalize(call string) string {
	call = strings.TrimSpace(call)

	if i := strings.IndexAny(call, ";-("); i >= 0 {
		call = call[:i]
	}

	return callStripper.Replace(call)
}

// missingCall reports whether a normalized call denotes an absent value
// rather than a haplogroup, e.g. the AADR placeholders ".." and
// "n/a(Female)".
func missingCall(norm string) bool {
	if norm == "" || norm == ".." {
		return true
	}

	return strings.HasPrefix(strings.ToLower(norm), "n/a")
}

// Resolve maps a raw haplogroup call to its basal haplogroup label under
// the default basal rule. The second return is false when the call could
// not be resolved.
func (r *Reference) Resolve(rawCall string) (string, bool) {
	return r.ResolveAtDepth(rawCall, DefaultBasalDepth)
}

// ResolveAtDepth resolves against an explicit basal depth. The matched node
// is the deepest one whose label prefixes the normalized call; if no label
// matches directly, the SNP and then locus tables translate marker-style
// calls into tree labels before retrying. The returned label is the matched
// node's ancestor at the basal depth, or the node's own label when the match
// is already at or above it (but below the root).
func (r *Reference) ResolveAtDepth(rawCall string, basalDepth int) (string, bool) {
	norm := Normalize(rawCall)
	if missingCall(norm) {
		return Unresolved, false
	}

	node := r.Tree.LongestPrefixMatch(norm)

	if node == nil {
		if label, ok := r.snpToHaplogroup[norm]; ok {
			node = r.Tree.LongestPrefixMatch(label)
		}
	}

	if node == nil {
		if label, ok := r.locusToHaplogroup[norm]; ok {
			node = r.Tree.LongestPrefixMatch(label)
		}
	}

	if node == nil {
		return Unresolved, false
	}

	if basal := node.AncestorAtDepth(basalDepth); basal != nil {
		return basal.Label, true
	}

	// The match sits above the basal depth. It still identifies a lineage
	// as long as it is a real haplogroup rather than the synthetic root.
	if node.Depth >= 1 {
		return node.Label, true
	}

	return Unresolved, false
}

package phylo

import (
	"fmt"
)

// RootLabel is the label of the synthetic node that anchors each lineage
// tree. Phylogeny files mark their top-level haplogroups with a sentinel
// parent (`Root` or `#`) rather than an explicit shared ancestor.
const RootLabel = "Root"

var rootSentinels = map[string]bool{
	"Root": true,
	"#":    true,
}

// Edge is one child -> parent row of a phylogeny table.
type Edge struct {
	Child  string
	Parent string
}

// Node is one haplogroup in a lineage tree. Depth 0 is the synthetic root;
// depth 1 holds the macro-haplogroups (R, I, H, ...).
type Node struct {
	Label  string
	Parent *Node
	Depth  int
}

// AncestorAtDepth walks toward the root until it reaches the ancestor at
// exactly the wanted depth. Returns nil if the node itself is shallower.
func (n *Node) AncestorAtDepth(depth int) *Node {
	if n.Depth < depth {
		return nil
	}

	cur := n
	for cur.Depth > depth {
		cur = cur.Parent
	}

	return cur
}

// Tree is an arena of haplogroup nodes for one lineage, indexed by label,
// with parent pointers and depths precomputed at load time so that
// resolution never re-parses label strings.
type Tree struct {
	Lineage Lineage

	nodes map[string]*Node
	root  *Node
}

// NewTree assembles a lineage tree from child -> parent edges. Every
// declared parent must itself be defined (or be a root sentinel), labels
// must be unique, and the parent chain must be acyclic; anything else is a
// malformed reference.
func NewTree(lineage Lineage, edges []Edge) (*Tree, error) {
	t := &Tree{
		Lineage: lineage,
		nodes:   make(map[string]*Node, len(edges)),
		root:    &Node{Label: RootLabel, Depth: 0},
	}

	for _, e := range edges {
		if e.Child == "" {
			return nil, fmt.Errorf("%w: %s phylogeny declares an empty haplogroup label", ErrMalformedReference, lineage)
		}
		if _, exists := t.nodes[e.Child]; exists {
			return nil, fmt.Errorf("%w: %s phylogeny defines haplogroup %q more than once", ErrMalformedReference, lineage, e.Child)
		}
		t.nodes[e.Child] = &Node{Label: e.Child, Depth: -1}
	}

	for _, e := range edges {
		node := t.nodes[e.Child]
		if rootSentinels[e.Parent] {
			node.Parent = t.root
			continue
		}

		parent, exists := t.nodes[e.Parent]
		if !exists {
			return nil, fmt.Errorf("%w: %s phylogeny refers to undefined parent %q (child %q)", ErrMalformedReference, lineage, e.Parent, e.Child)
		}
		node.Parent = parent
	}

	for _, node := range t.nodes {
		if err := t.fillDepth(node); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// fillDepth computes and caches the node's depth by walking to the root.
// The walk is bounded by the arena size, which doubles as cycle detection.
func (t *Tree) fillDepth(node *Node) error {
	if node.Depth >= 0 {
		return nil
	}

	chain := make([]*Node, 0, 8)
	cur := node
	for cur.Depth < 0 {
		if len(chain) > len(t.nodes) {
			return fmt.Errorf("%w: %s phylogeny contains a cycle involving %q", ErrMalformedReference, t.Lineage, node.Label)
		}
		chain = append(chain, cur)
		cur = cur.Parent
	}

	depth := cur.Depth
	for i := len(chain) - 1; i >= 0; i-- {
		depth++
		chain[i].Depth = depth
	}

	return nil
}

// Node returns the node with exactly the given label, if any.
func (t *Tree) Node(label string) (*Node, bool) {
	n, ok := t.nodes[label]
	return n, ok
}

// Len reports how many haplogroups the tree defines, excluding the
// synthetic root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// LongestPrefixMatch returns the deepest node whose label is a prefix of
// (or equal to) the normalized call. Probing runs from the full call down
// to single characters, so the first hit is the longest label; since the
// arena holds at most one node per exact label, the match is deterministic.
func (t *Tree) LongestPrefixMatch(normalized string) *Node {
	for l := len(normalized); l >= 1; l-- {
		if n, ok := t.nodes[normalized[:l]]; ok {
			return n
		}
	}

	return nil
}

// Package testutil provides tree fixture generators for tests.
// All generators produce deterministic output for reproducible tests.
package testutil

import (
	"math/rand"
	"strings"

	"github.com/vanderheijden86/canopy/pkg/tree"
)

// SampleForest returns the forest
//
//	a
//	b
//	  c
//	  d
//	    e
//	    f
//	  g
//	h
//
// whose nodes are labelled by their letter.
func SampleForest() []*tree.Node {
	return []*tree.Node{
		tree.NewLeaf("a"),
		tree.New("b",
			tree.NewLeaf("c"),
			tree.New("d", tree.NewLeaf("e"), tree.NewLeaf("f")),
			tree.NewLeaf("g"),
		),
		tree.NewLeaf("h"),
	}
}

// Label returns the first line of a node's text.
func Label(n *tree.Node) string {
	s := n.Text().String()
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Labels returns the label of every visible entry.
func Labels(visible []tree.Visible) []string {
	out := make([]string, len(visible))
	for i, v := range visible {
		out[i] = Label(v.Node)
	}
	return out
}

// GeneratorConfig controls random forest generation.
type GeneratorConfig struct {
	Seed        int64 // Random seed (0 = 42)
	MaxRoots    int   // Upper bound on root count (default: 4)
	MaxDepth    int   // Upper bound on nesting (default: 4)
	MaxChildren int   // Upper bound on children per node (default: 4)
	MaxLines    int   // Upper bound on text lines per node (default: 1)
	Words       []string
}

// DefaultConfig returns a config suitable for most tests.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:        42,
		MaxRoots:    4,
		MaxDepth:    4,
		MaxChildren: 4,
		MaxLines:    1,
	}
}

// Generator creates forests with various shapes. Every node's first line is
// its identifier in dot form, so fixtures are easy to assert on.
type Generator struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

// New creates a Generator with the given config.
func New(cfg GeneratorConfig) *Generator {
	def := DefaultConfig()
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}
	if cfg.MaxRoots <= 0 {
		cfg.MaxRoots = def.MaxRoots
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = def.MaxDepth
	}
	if cfg.MaxChildren <= 0 {
		cfg.MaxChildren = def.MaxChildren
	}
	if cfg.MaxLines <= 0 {
		cfg.MaxLines = def.MaxLines
	}
	if len(cfg.Words) == 0 {
		cfg.Words = []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}
	}
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}
}

// NewDefault creates a Generator with default config.
func NewDefault() *Generator {
	return New(DefaultConfig())
}

// Chain creates a single root with one child per level, depth levels deep.
func (g *Generator) Chain(depth int) []*tree.Node {
	var n *tree.Node
	for level := depth - 1; level >= 0; level-- {
		id := make(tree.Identifier, level+1)
		if n == nil {
			n = tree.NewLeaf(id.String())
		} else {
			n = tree.New(id.String(), n)
		}
	}
	if n == nil {
		return nil
	}
	return []*tree.Node{n}
}

// Star creates a single root with the given number of leaf children.
func (g *Generator) Star(children int) []*tree.Node {
	root := tree.NewLeaf("0")
	for i := 0; i < children; i++ {
		root.AddChild(tree.NewLeaf(tree.Child(tree.Identifier{0}, i).String()))
	}
	return []*tree.Node{root}
}

// Balanced creates roots full trees where every inner node has fanout
// children, depth levels deep.
func (g *Generator) Balanced(roots, depth, fanout int) []*tree.Node {
	var build func(id tree.Identifier) *tree.Node
	build = func(id tree.Identifier) *tree.Node {
		n := tree.NewLeaf(id.String())
		if len(id) < depth {
			for i := 0; i < fanout; i++ {
				n.AddChild(build(tree.Child(id, i)))
			}
		}
		return n
	}
	out := make([]*tree.Node, roots)
	for i := range out {
		out[i] = build(tree.Identifier{i})
	}
	return out
}

// Random creates a forest with random shape and text.
func (g *Generator) Random() []*tree.Node {
	roots := 1 + g.rng.Intn(g.cfg.MaxRoots)
	out := make([]*tree.Node, roots)
	for i := range out {
		out[i] = g.randomNode(tree.Identifier{i})
	}
	return out
}

func (g *Generator) randomNode(id tree.Identifier) *tree.Node {
	lines := []string{id.String()}
	for extra := g.rng.Intn(g.cfg.MaxLines); extra > 0; extra-- {
		lines = append(lines, g.sentence())
	}
	n := tree.NewLeaf(strings.Join(lines, "\n"))
	if len(id) < g.cfg.MaxDepth {
		for i, k := 0, g.rng.Intn(g.cfg.MaxChildren+1); i < k; i++ {
			n.AddChild(g.randomNode(tree.Child(id, i)))
		}
	}
	return n
}

func (g *Generator) sentence() string {
	words := make([]string, 1+g.rng.Intn(6))
	for i := range words {
		words[i] = g.cfg.Words[g.rng.Intn(len(g.cfg.Words))]
	}
	return strings.Join(words, " ")
}

// Walk calls fn for every node of the forest in pre-order, ignoring
// openness.
func Walk(roots []*tree.Node, fn func(id tree.Identifier, n *tree.Node)) {
	var walk func(prefix tree.Identifier, nodes []*tree.Node)
	walk = func(prefix tree.Identifier, nodes []*tree.Node) {
		for i, n := range nodes {
			id := tree.Child(prefix, i)
			fn(id, n)
			walk(id, n.Children())
		}
	}
	walk(nil, roots)
}

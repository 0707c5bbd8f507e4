// Package outline loads forests of tree nodes from YAML or JSON documents.
//
// A document is a list of items. An item is either a plain string (a leaf)
// or a mapping:
//
//	- text: "src"
//	  fg: "12"
//	  bold: true
//	  children:
//	    - main.go
//	    - text: "util"
//	      children: [strings.go]
package outline

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/canopy/pkg/debug"
	"github.com/vanderheijden86/canopy/pkg/metrics"
	"github.com/vanderheijden86/canopy/pkg/tree"
)

// ErrUnknownFormat is returned for files that are neither YAML nor JSON.
var ErrUnknownFormat = errors.New("unknown outline format")

// Format is an outline document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Item is one node of an outline document.
type Item struct {
	Text     string  `yaml:"text" json:"text"`
	Fg       string  `yaml:"fg,omitempty" json:"fg,omitempty"`
	Bg       string  `yaml:"bg,omitempty" json:"bg,omitempty"`
	Bold     bool    `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic   bool    `yaml:"italic,omitempty" json:"italic,omitempty"`
	Faint    bool    `yaml:"faint,omitempty" json:"faint,omitempty"`
	Children []*Item `yaml:"children,omitempty" json:"children,omitempty"`
}

// itemFields has Item's fields without its decoding methods.
type itemFields Item

// UnmarshalYAML accepts a scalar as a leaf with that text.
func (it *Item) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*it = Item{Text: node.Value}
		return nil
	}
	var f itemFields
	if err := node.Decode(&f); err != nil {
		return err
	}
	*it = Item(f)
	return nil
}

// UnmarshalJSON accepts a string as a leaf with that text.
func (it *Item) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*it = Item{Text: s}
		return nil
	}
	var f itemFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*it = Item(f)
	return nil
}

// Style is the lipgloss style the item's attributes describe.
func (it *Item) Style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if it.Fg != "" {
		s = s.Foreground(lipgloss.Color(it.Fg))
	}
	if it.Bg != "" {
		s = s.Background(lipgloss.Color(it.Bg))
	}
	if it.Bold {
		s = s.Bold(true)
	}
	if it.Italic {
		s = s.Italic(true)
	}
	if it.Faint {
		s = s.Faint(true)
	}
	return s
}

// Node builds the tree node for the item and its descendants. Nil children
// are skipped.
func (it *Item) Node() *tree.Node {
	children := make([]*tree.Node, 0, len(it.Children))
	for _, c := range it.Children {
		if c != nil {
			children = append(children, c.Node())
		}
	}
	return tree.New(it.Text, children...).WithStyle(it.Style())
}

// Decode parses a document into items.
func Decode(data []byte, format Format) ([]*Item, error) {
	var items []*Item
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &items)
	default:
		err = yaml.Unmarshal(data, &items)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s outline: %w", format, err)
	}
	return items, nil
}

// Parse parses a document into a forest.
func Parse(data []byte, format Format) ([]*tree.Node, error) {
	items, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return Build(items), nil
}

// Build turns items into root nodes.
func Build(items []*Item) []*tree.Node {
	roots := make([]*tree.Node, 0, len(items))
	for _, it := range items {
		if it != nil {
			roots = append(roots, it.Node())
		}
	}
	return roots
}

// Load reads and parses the outline file at path, choosing the format from
// its extension.
func Load(path string) ([]*tree.Node, error) {
	defer metrics.TimerWithCallback(metrics.OutlineLoad, func(d time.Duration) {
		debug.LogTiming("outline load "+path, d)
	})()

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading outline: %w", err)
	}
	return Parse(data, format)
}

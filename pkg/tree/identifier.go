package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// Identifier addresses a node by the child indices leading to it from the
// roots: [1 2 0] is the first child of the third child of the second root.
// The empty Identifier means "nothing".
type Identifier []int

// Child returns parent with index appended. The result never shares memory
// with parent.
func Child(parent Identifier, index int) Identifier {
	id := make(Identifier, len(parent)+1)
	copy(id, parent)
	id[len(parent)] = index
	return id
}

// WithoutLeaf splits id into its parent and its last index. ok is false for
// the empty identifier, whose parent is empty.
func WithoutLeaf(id Identifier) (parent Identifier, leaf int, ok bool) {
	if len(id) == 0 {
		return nil, 0, false
	}
	return id[:len(id)-1].Clone(), id[len(id)-1], true
}

// Clone returns a copy of id.
func (id Identifier) Clone() Identifier {
	if id == nil {
		return nil
	}
	out := make(Identifier, len(id))
	copy(out, id)
	return out
}

// Equal reports whether id and other address the same path.
func (id Identifier) Equal(other Identifier) bool {
	if len(id) != len(other) {
		return false
	}
	for i := range id {
		if id[i] != other[i] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether id is the empty identifier.
func (id Identifier) IsEmpty() bool {
	return len(id) == 0
}

// Depth is the nesting level of the addressed node; roots are at depth 0.
func (id Identifier) Depth() int {
	return len(id) - 1
}

// String returns the dot-separated form, e.g. "1.2.0".
func (id Identifier) String() string {
	if len(id) == 0 {
		return ""
	}
	var b strings.Builder
	for i, n := range id {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// less orders identifiers element-wise, shorter prefixes first.
func (id Identifier) less(other Identifier) bool {
	for i := 0; i < len(id) && i < len(other); i++ {
		if id[i] != other[i] {
			return id[i] < other[i]
		}
	}
	return len(id) < len(other)
}

// ParseIdentifier parses the dot-separated form produced by String. The
// empty string is the empty identifier.
func ParseIdentifier(s string) (Identifier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ".")
	id := make(Identifier, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parsing identifier %q: %w", s, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("parsing identifier %q: negative index %d", s, n)
		}
		id[i] = n
	}
	return id, nil
}

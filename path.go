package shapecheck

import (
	"strconv"
	"strings"
)

// Segment is a single accessor on the way from the validation root to a
// failure site: either a property key or a sequence index.
type Segment struct {
	key   string
	index int
	isIdx bool
}

// Key returns a property-key segment.
func Key(name string) Segment { return Segment{key: name} }

// Index returns a sequence-index segment.
func Index(i int) Segment { return Segment{index: i, isIdx: true} }

// IsIndex reports whether the segment is a sequence index.
func (s Segment) IsIndex() bool { return s.isIdx }

// Name returns the property key, or "" for an index segment.
func (s Segment) Name() string { return s.key }

// Pos returns the sequence index, or -1 for a key segment.
func (s Segment) Pos() int {
	if !s.isIdx {
		return -1
	}
	return s.index
}

func (s Segment) String() string {
	if s.isIdx {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Path locates a failure site relative to the validation root. Segments are
// prepended as a failure propagates upward, so the stored order reads
// root-to-leaf.
type Path []Segment

// Pointer renders the path as an RFC 6901 JSON Pointer. The empty path
// renders as "/".
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		if s.isIdx {
			b.WriteString(strconv.Itoa(s.index))
		} else {
			b.WriteString(escapePointer(s.key))
		}
	}
	return b.String()
}

func (p Path) String() string { return p.Pointer() }

// escape '~' -> '~0', '/' -> '~1' per RFC6901
func escapePointer(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
}

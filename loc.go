package coerce

import (
	"strconv"
	"strings"
)

// LocItem is one segment of an error location: either a mapping key or a
// numeric index. Use LocKey/LocIndex to construct values.
type LocItem struct {
	key     string
	index   int
	isIndex bool
}

// LocKey returns a key segment.
func LocKey(name string) LocItem { return LocItem{key: name} }

// LocIndex returns an index segment.
func LocIndex(i int) LocItem { return LocItem{index: i, isIndex: true} }

// Key returns the key text and whether the segment is a key.
func (li LocItem) Key() (string, bool) { return li.key, !li.isIndex }

// Index returns the index and whether the segment is an index.
func (li LocItem) Index() (int, bool) { return li.index, li.isIndex }

// String renders the segment; indexes render as their decimal form.
func (li LocItem) String() string {
	if li.isIndex {
		return strconv.Itoa(li.index)
	}
	return li.key
}

// Loc is an ordered path from the top-level input to a nested value. It is
// empty for the top level.
type Loc []LocItem

// String renders a JSON-Pointer-like path, "/" for the top level. Key
// segments escape "~" and "/" per RFC 6901 so paths stay unambiguous.
func (l Loc) String() string {
	if len(l) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, li := range l {
		b.WriteByte('/')
		if li.isIndex {
			b.WriteString(strconv.Itoa(li.index))
			continue
		}
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(li.key, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

// Items returns the segments as a fresh slice of any (string keys, int
// indexes), the wire-friendly shape used when issues are serialized.
func (l Loc) Items() []any {
	out := make([]any, len(l))
	for i, li := range l {
		if li.isIndex {
			out[i] = li.index
		} else {
			out[i] = li.key
		}
	}
	return out
}

package common

import (
	"fmt"
	"sort"
	"strings"
)

// Reserved column / property names used by the storage result schema.
const (
	VidCol   = "_vid"
	SrcProp  = "_src"
	DstProp  = "_dst"
	RankProp = "_rank"
	TypeProp = "_type"
)

// Dataset is one columnar batch as returned by storage: a list of column
// names and rows of the same arity. Datasets are immutable once built; the
// decoding layer holds references into them but never copies or mutates them.
type Dataset struct {
	ColNames []string
	Rows     [][]Value
}

// Tag is a named group of vertex properties.
type Tag struct {
	Name  string
	Props map[string]Value
}

// Vertex is a fully materialized vertex record.
type Vertex struct {
	VID  string
	Tags []Tag
}

func (v *Vertex) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("(%q", v.VID))
	for _, tag := range v.Tags {
		sb.WriteString(" :")
		sb.WriteString(tag.Name)
		sb.WriteString("{")
		sb.WriteString(propsString(tag.Props))
		sb.WriteString("}")
	}
	sb.WriteString(")")
	return sb.String()
}

// Edge is a fully materialized edge record. Type is not carried by the
// result schema so it is always zero here.
type Edge struct {
	Name  string
	Src   string
	Dst   string
	Rank  int64
	Type  int64
	Props map[string]Value
}

func (e *Edge) String() string {
	return fmt.Sprintf("%q -[:%s@%d{%s}]-> %q", e.Src, e.Name, e.Rank, propsString(e.Props), e.Dst)
}

func propsString(props map[string]Value) string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names) // Need to sort to give deterministic results
	sb := strings.Builder{}
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", name, props[name].String()))
	}
	return sb.String()
}

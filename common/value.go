package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
	KindVertex
	KindEdge
	KindDataset
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindVertex:
		return "vertex"
	case KindEdge:
		return "edge"
	case KindDataset:
		return "dataset"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// NullKind distinguishes the flavours of null. An ordinary null means the
// value is absent; a bad-type null means a value was present but had the
// wrong type when it was decoded. Callers branch on the two differently so
// they must never be conflated.
type NullKind int

const (
	NullNone NullKind = iota
	NullBadType
)

// Value is a tagged union over the scalar and nested types that flow through
// the engine. The zero value is the ordinary null.
type Value struct {
	kind     ValueKind
	nullKind NullKind
	b        bool
	i        int64
	f        float64
	s        string
	list     *List
	m        *Map
	vertex   *Vertex
	edge     *Edge
	ds       *Dataset
}

// Null is the ordinary absent value.
var Null = Value{}

// BadTypeNull signals a type mismatch encountered during decode. It is null
// but reports IsBadNull() true, unlike Null.
var BadTypeNull = Value{kind: KindNull, nullKind: NullBadType}

func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

func NewInt(i int64) Value { return Value{kind: KindInt, i: i} }

func NewFloat(f float64) Value { return Value{kind: KindFloat, f: f} }

func NewString(s string) Value { return Value{kind: KindString, s: s} }

func NewList(l *List) Value { return Value{kind: KindList, list: l} }

func NewMap(m *Map) Value { return Value{kind: KindMap, m: m} }

func NewVertex(v *Vertex) Value { return Value{kind: KindVertex, vertex: v} }

func NewEdge(e *Edge) Value { return Value{kind: KindEdge, edge: e} }

func NewDataset(d *Dataset) Value { return Value{kind: KindDataset, ds: d} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) IsBadNull() bool { return v.kind == KindNull && v.nullKind == NullBadType }

func (v Value) IsBool() bool { return v.kind == KindBool }

func (v Value) IsInt() bool { return v.kind == KindInt }

func (v Value) IsFloat() bool { return v.kind == KindFloat }

func (v Value) IsStr() bool { return v.kind == KindString }

func (v Value) IsList() bool { return v.kind == KindList }

func (v Value) IsMap() bool { return v.kind == KindMap }

func (v Value) IsVertex() bool { return v.kind == KindVertex }

func (v Value) IsEdge() bool { return v.kind == KindEdge }

func (v Value) IsDataset() bool { return v.kind == KindDataset }

// The getters return the zero value when the kind doesn't match; callers are
// expected to check the predicate first.

func (v Value) GetBool() bool { return v.b }

func (v Value) GetInt() int64 { return v.i }

func (v Value) GetFloat() float64 { return v.f }

func (v Value) GetStr() string { return v.s }

func (v Value) GetList() *List { return v.list }

func (v Value) GetMap() *Map { return v.m }

func (v Value) GetVertex() *Vertex { return v.vertex }

func (v Value) GetEdge() *Edge { return v.edge }

func (v Value) GetDataset() *Dataset { return v.ds }

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		if v.nullKind == NullBadType {
			return "BAD_TYPE"
		}
		return "NULL"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindList:
		return v.list.String()
	case KindMap:
		return v.m.String()
	case KindVertex:
		return v.vertex.String()
	case KindEdge:
		return v.edge.String()
	case KindDataset:
		return fmt.Sprintf("dataset(%d cols, %d rows)", len(v.ds.ColNames), len(v.ds.Rows))
	default:
		return "INVALID"
	}
}

// List is an ordered sequence of values.
type List struct {
	Values []Value
}

func (l *List) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i, v := range l.Values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// Map is a name to value mapping.
type Map struct {
	KVs map[string]Value
}

func (m *Map) String() string {
	return fmt.Sprintf("map(%d entries)", len(m.KVs))
}

// ValueOf converts a plain Go value, e.g. one decoded from JSON, into a
// Value. Unhandled types map to the ordinary null.
func ValueOf(i interface{}) Value {
	switch v := i.(type) {
	case nil:
		return Null
	case bool:
		return NewBool(v)
	case int:
		return NewInt(int64(v))
	case int64:
		return NewInt(v)
	case float64:
		return NewFloat(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return NewInt(i)
		}
		f, err := v.Float64()
		if err != nil {
			return BadTypeNull
		}
		return NewFloat(f)
	case string:
		return NewString(v)
	case []interface{}:
		list := &List{Values: make([]Value, len(v))}
		for j, elem := range v {
			list.Values[j] = ValueOf(elem)
		}
		return NewList(list)
	case map[string]interface{}:
		m := &Map{KVs: make(map[string]Value, len(v))}
		for k, elem := range v {
			m.KVs[k] = ValueOf(elem)
		}
		return NewMap(m)
	case Value:
		return v
	default:
		return Null
	}
}

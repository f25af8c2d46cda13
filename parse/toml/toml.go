package toml

// Package toml holds the typed document tree the rest of the tool works
// on, plus the conversion from decoded TOML input into that tree.
//
// Scope:
// - Explicit AST (Table / Array / Value)
// - Closed kind set, exhaustively switchable
// - Safe post-parse access helpers
//
// Non-goals (by design):
// - TOML lexing/tokenizing (delegated to github.com/BurntSushi/toml)
// - Comment preservation
// - Formatting round-trip
// - Mutation after parse

import (
	"fmt"
	"io"
	"time"

	burntoml "github.com/BurntSushi/toml"
)

// =========================
// AST Definitions
// =========================

type ValueKind string

var tomlValueKinds = struct {
	ValueString   ValueKind
	ValueInt      ValueKind
	ValueFloat    ValueKind
	ValueBool     ValueKind
	ValueDatetime ValueKind
	ValueTable    ValueKind
	ValueArray    ValueKind
}{
	ValueString:   "string",
	ValueInt:      "int",
	ValueFloat:    "float",
	ValueBool:     "bool",
	ValueDatetime: "datetime",
	ValueTable:    "table",
	ValueArray:    "array",
}

type Node interface {
	Kind() ValueKind
	Value() any
}

// -------- Table --------

type Table struct {
	Items map[string]Node
}

func NewTable() *Table {
	return &Table{Items: make(map[string]Node)}
}

func (*Table) Kind() ValueKind { return tomlValueKinds.ValueTable }

func (*Table) Value() any { return nil }

// -------- Array --------

type Array struct {
	Elems []Node
}

func (v *Array) Kind() ValueKind { return tomlValueKinds.ValueArray }

func (v *Array) Value() any { return v.Elems }

// -------- Value --------

type Value struct {
	Type ValueKind
	V    any
}

func (v *Value) Kind() ValueKind { return v.Type }

func (v *Value) Value() any { return v.V }

// =========================
// Public API
// =========================

// Parse parses TOML input from r and returns a root Table.
func Parse(r io.Reader) (*Table, error) {
	var raw map[string]any
	if _, err := burntoml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	return fromMap(raw)
}

// =========================
// Tree Conversion
// =========================

func fromMap(m map[string]any) (*Table, error) {
	t := NewTable()
	for k, v := range m {
		n, err := fromAny(v)
		if err != nil {
			return nil, err
		}
		t.Items[k] = n
	}
	return t, nil
}

func fromAny(v any) (Node, error) {
	switch x := v.(type) {
	case string:
		return &Value{Type: tomlValueKinds.ValueString, V: x}, nil
	case bool:
		return &Value{Type: tomlValueKinds.ValueBool, V: x}, nil
	case int64:
		return &Value{Type: tomlValueKinds.ValueInt, V: x}, nil
	case float64:
		return &Value{Type: tomlValueKinds.ValueFloat, V: x}, nil
	case time.Time:
		return &Value{Type: tomlValueKinds.ValueDatetime, V: x}, nil
	case map[string]any:
		return fromMap(x)
	case []map[string]any:
		// the decoder hands arrays of tables back in this shape
		arr := &Array{Elems: make([]Node, 0, len(x))}
		for _, m := range x {
			t, err := fromMap(m)
			if err != nil {
				return nil, err
			}
			arr.Elems = append(arr.Elems, t)
		}
		return arr, nil
	case []any:
		arr := &Array{Elems: make([]Node, 0, len(x))}
		for _, e := range x {
			n, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			arr.Elems = append(arr.Elems, n)
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("toml: unsupported decoded value of type %T", v)
	}
}

// =========================
// Safe Access Helpers
// =========================

func Get(root *Table, path ...string) (Node, bool) {
	var cur Node = root
	for _, p := range path {
		if len(p) == 0 {
			continue
		}
		t, ok := cur.(*Table)
		if !ok {
			return nil, false
		}
		cur, ok = t.Items[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func GetUntyped(root *Table, path ...string) (any, bool) {
	n, ok := Get(root, path...)
	if !ok {
		return nil, false
	}
	return ToUntyped(n), true
}

func ToUntyped(n Node) any {
	switch v := n.(type) {
	case *Value:
		return v.V
	case *Array:
		out := make([]any, len(v.Elems))
		for i := range v.Elems {
			out[i] = ToUntyped(v.Elems[i])
		}
		return out
	case *Table:
		m := make(map[string]any, len(v.Items))
		for k, child := range v.Items {
			m[k] = ToUntyped(child)
		}
		return m
	default:
		return nil
	}
}

func MustString(n Node) string {
	v := n.(*Value)
	return v.V.(string)
}

func MustInt(n Node) int64 {
	v := n.(*Value)
	return v.V.(int64)
}

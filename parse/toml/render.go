package toml

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// =========================
// Shell-Safe Rendering
// =========================

// Render converts a resolved node into a single line of text that a POSIX
// shell reproduces unchanged after quote removal. It is total: every node
// kind renders, tables included. Array elements are space-joined with each
// element kept a single shell word, so word-splitting the output restores
// the element boundaries. Tables render as sorted [key]=value pairs, the
// bash associative-array literal shape.
func Render(n Node) string {
	switch v := n.(type) {
	case *Value:
		return renderScalar(v)
	case *Array:
		parts := make([]string, 0, len(v.Elems))
		for _, e := range v.Elems {
			parts = append(parts, renderToken(e))
		}
		return strings.Join(parts, " ")
	case *Table:
		keys := make([]string, 0, len(v.Items))
		for k := range v.Items {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, "["+keyText(k)+"]="+renderToken(v.Items[k]))
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

// renderToken renders n as exactly one shell word. Scalars already are
// one word; a composite is rendered in full and then quoted whole.
func renderToken(n Node) string {
	if v, ok := n.(*Value); ok {
		return renderScalar(v)
	}
	return quoteShell(Render(n))
}

func renderScalar(v *Value) string {
	switch v.Type {
	case tomlValueKinds.ValueBool:
		return strconv.FormatBool(v.V.(bool))
	case tomlValueKinds.ValueInt:
		return strconv.FormatInt(v.V.(int64), 10)
	case tomlValueKinds.ValueFloat:
		return formatFloat(v.V.(float64))
	case tomlValueKinds.ValueDatetime:
		return v.V.(time.Time).Format(time.RFC3339Nano)
	case tomlValueKinds.ValueString:
		return quoteShell(v.V.(string))
	default:
		return fmt.Sprintf("%v", v.V)
	}
}

// formatFloat uses the shortest round-trippable decimal form, with a .0
// suffix when the result would otherwise be indistinguishable from an
// integer. Non-finite values use the TOML spellings.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, +1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// quoteShell single-quotes s for POSIX shells. Embedded single quotes
// close the span and splice an escaped quote; newlines and carriage
// returns splice ANSI-C escapes so the output stays one physical line.
func quoteShell(s string) string {
	if s == "" {
		return "''"
	}
	var b strings.Builder
	open := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\'':
			if open {
				b.WriteByte('\'')
				open = false
			}
			b.WriteString(`\'`)
		case '\n':
			if open {
				b.WriteByte('\'')
				open = false
			}
			b.WriteString(`$'\n'`)
		case '\r':
			if open {
				b.WriteByte('\'')
				open = false
			}
			b.WriteString(`$'\r'`)
		default:
			if !open {
				b.WriteByte('\'')
				open = true
			}
			b.WriteByte(c)
		}
	}
	if open {
		b.WriteByte('\'')
	}
	return b.String()
}

// keyText keeps bare-safe table keys unquoted and shell-quotes the rest.
func keyText(k string) string {
	for _, r := range k {
		safe := r == '_' || r == '-' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !safe {
			return quoteShell(k)
		}
	}
	if k == "" {
		return quoteShell(k)
	}
	return k
}

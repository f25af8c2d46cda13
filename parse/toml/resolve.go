package toml

import (
	"fmt"
	"strings"
)

// =========================
// Path Resolution
// =========================

// A MalformedPatternError reports a pattern with an empty segment, such as
// "a..b" or a leading/trailing dot.
type MalformedPatternError struct {
	Pattern string
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("malformed pattern %q: empty path segment", e.Pattern)
}

// A KeyNotFoundError reports a table lookup that missed, along with the
// path prefix that had resolved up to that point.
type KeyNotFoundError struct {
	Key    string
	Prefix string
}

func (e *KeyNotFoundError) Error() string {
	if e.Prefix == "" {
		return fmt.Sprintf("no such key: %s", e.Key)
	}
	return fmt.Sprintf("no such key: %s (under %s)", e.Key, e.Prefix)
}

// A CannotDescendError reports a path segment applied to a value that is
// not a table.
type CannotDescendError struct {
	Prefix string
	Kind   ValueKind
}

func (e *CannotDescendError) Error() string {
	return fmt.Sprintf("cannot descend into %s: value is a %s, not a table", e.Prefix, e.Kind)
}

// Resolve walks root following the dot-separated pattern and returns the
// node at the terminal segment. The empty pattern resolves to root itself.
// Segments are exact, case-sensitive table keys; arrays are never indexed,
// so a numeric-looking segment is still a key lookup. The tree is not
// mutated, and the same (root, pattern) pair always yields the same result.
func Resolve(root *Table, pattern string) (Node, error) {
	if pattern == "" {
		return root, nil
	}
	segments := strings.Split(pattern, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, &MalformedPatternError{Pattern: pattern}
		}
	}

	var cur Node = root
	for i, seg := range segments {
		prefix := strings.Join(segments[:i], ".")
		t, ok := cur.(*Table)
		if !ok {
			return nil, &CannotDescendError{Prefix: prefix, Kind: cur.Kind()}
		}
		next, ok := t.Items[seg]
		if !ok {
			return nil, &KeyNotFoundError{Key: seg, Prefix: prefix}
		}
		cur = next
	}
	return cur, nil
}

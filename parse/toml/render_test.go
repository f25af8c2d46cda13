package toml

import (
	"strings"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

func mustParse(t *testing.T, src string) *Table {
	t.Helper()
	root, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return root
}

func TestRenderScalars(t *testing.T) {
	convey.Convey("booleans and integers render bare", t, func() {
		root := mustParse(t, "yes = true\nno = false\nn = -42")
		convey.So(Render(root.Items["yes"]), convey.ShouldEqual, "true")
		convey.So(Render(root.Items["no"]), convey.ShouldEqual, "false")
		convey.So(Render(root.Items["n"]), convey.ShouldEqual, "-42")
	})

	convey.Convey("datetimes render RFC 3339, unquoted", t, func() {
		root := mustParse(t, "dob = 1979-05-27T07:32:00Z")
		convey.So(Render(root.Items["dob"]), convey.ShouldEqual, "1979-05-27T07:32:00Z")
	})
}

func TestRenderFloats(t *testing.T) {
	convey.Convey("integer-valued floats keep a fractional marker", t, func() {
		root := mustParse(t, "a = 1.0\nb = 3.14\nc = -0.5")
		convey.So(Render(root.Items["a"]), convey.ShouldEqual, "1.0")
		convey.So(Render(root.Items["b"]), convey.ShouldEqual, "3.14")
		convey.So(Render(root.Items["c"]), convey.ShouldEqual, "-0.5")
	})

	convey.Convey("non-finite floats use the toml spellings", t, func() {
		root := mustParse(t, "p = inf\nm = -inf\nq = nan")
		convey.So(Render(root.Items["p"]), convey.ShouldEqual, "inf")
		convey.So(Render(root.Items["m"]), convey.ShouldEqual, "-inf")
		convey.So(Render(root.Items["q"]), convey.ShouldEqual, "nan")
	})

	convey.Convey("large magnitudes keep exponent form", t, func() {
		n := &Value{Type: ValueKind("float"), V: 1e21}
		convey.So(Render(n), convey.ShouldEqual, "1e+21")
	})
}

func TestRenderStrings(t *testing.T) {
	convey.Convey("strings are single-quoted", t, func() {
		root := mustParse(t, `name = "hello world"`)
		convey.So(Render(root.Items["name"]), convey.ShouldEqual, "'hello world'")
	})

	convey.Convey("embedded single quotes use the close-escape-reopen idiom", t, func() {
		root := mustParse(t, `name = "a'b"`)
		convey.So(Render(root.Items["name"]), convey.ShouldEqual, `'a'\''b'`)
	})

	convey.Convey("the empty string renders as ''", t, func() {
		root := mustParse(t, `name = ""`)
		convey.So(Render(root.Items["name"]), convey.ShouldEqual, "''")
	})

	convey.Convey("newlines never break the output line", t, func() {
		root := mustParse(t, `name = "line1\nline2"`)
		out := Render(root.Items["name"])
		convey.So(out, convey.ShouldEqual, `'line1'$'\n''line2'`)
		convey.So(strings.Contains(out, "\n"), convey.ShouldBeFalse)
	})
}

func TestRenderArrays(t *testing.T) {
	convey.Convey("scalar arrays split into one token per element", t, func() {
		root := mustParse(t, "arr = [1, 2, 3]")
		out := Render(root.Items["arr"])
		convey.So(out, convey.ShouldEqual, "1 2 3")
		convey.So(strings.Fields(out), convey.ShouldResemble, []string{"1", "2", "3"})
	})

	convey.Convey("string elements with spaces stay one token each", t, func() {
		root := mustParse(t, `arr = ["a b", "c"]`)
		convey.So(Render(root.Items["arr"]), convey.ShouldEqual, "'a b' 'c'")
	})

	convey.Convey("nested arrays collapse to one quoted token", t, func() {
		root := mustParse(t, "m = [[1, 2], [3]]")
		convey.So(Render(root.Items["m"]), convey.ShouldEqual, "'1 2' '3'")
	})

	convey.Convey("the empty array renders empty", t, func() {
		root := mustParse(t, "arr = []")
		convey.So(Render(root.Items["arr"]), convey.ShouldEqual, "")
	})
}

func TestRenderTables(t *testing.T) {
	convey.Convey("tables render sorted [key]=value pairs", t, func() {
		root := mustParse(t, "[t]\nb = \"x y\"\na = 1")
		n, err := Resolve(root, "t")
		convey.So(err, convey.ShouldBeNil)
		convey.So(Render(n), convey.ShouldEqual, "[a]=1 [b]='x y'")
	})

	convey.Convey("table rendering is byte-stable across runs", t, func() {
		root := mustParse(t, "[t]\nd = 4\nc = 3\nb = 2\na = 1")
		n, _ := Resolve(root, "t")
		first := Render(n)
		for i := 0; i < 16; i++ {
			convey.So(Render(n), convey.ShouldEqual, first)
		}
	})

	convey.Convey("non-bare keys are quoted", t, func() {
		tbl := NewTable()
		tbl.Items["a key"] = &Value{Type: ValueKind("int"), V: int64(7)}
		convey.So(Render(tbl), convey.ShouldEqual, "['a key']=7")
	})

	convey.Convey("nested tables collapse to one quoted token", t, func() {
		root := mustParse(t, "[t.inner]\na = 1")
		n, _ := Resolve(root, "t")
		convey.So(Render(n), convey.ShouldEqual, "[inner]='[a]=1'")
	})
}

func TestRenderDatetimePrecision(t *testing.T) {
	convey.Convey("fractional seconds survive when present", t, func() {
		at := time.Date(2006, 1, 2, 15, 4, 5, 123000000, time.UTC)
		n := &Value{Type: ValueKind("datetime"), V: at}
		convey.So(Render(n), convey.ShouldEqual, "2006-01-02T15:04:05.123Z")
	})
}

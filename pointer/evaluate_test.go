package pointer_test

import (
	"errors"
	"testing"

	"github.com/stablejson/go-stablejson/encode"
	"github.com/stablejson/go-stablejson/parse"
	"github.com/stablejson/go-stablejson/pointer"
	"github.com/stablejson/go-stablejson/value"
)

// the example document of RFC 6901, section 5
const rfcDoc = `{
	"foo": ["bar", "baz"],
	"": 0,
	"a/b": 1,
	"c%d": 2,
	"e^f": 3,
	"g|h": 4,
	"i\\j": 5,
	"k\"l": 6,
	" ": 7,
	"m~n": 8
}`

func TestEvaluate(t *testing.T) {
	doc, err := parse.Parse([]byte(rfcDoc))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		ptr      string
		expected string
	}{
		{"", `{"foo":["bar","baz"],"":0,"a/b":1,"c%d":2,"e^f":3,"g|h":4,"i\\j":5,"k\"l":6," ":7,"m~n":8}`},
		{"/foo", `["bar","baz"]`},
		{"/foo/0", `"bar"`},
		{"/foo/1", `"baz"`},
		{"/", `0`},
		{"/a~1b", `1`},
		{"/c%d", `2`},
		{"/e^f", `3`},
		{"/g|h", `4`},
		{"/i\\j", `5`},
		{"/k\"l", `6`},
		{"/ ", `7`},
		{"/m~0n", `8`},
	}
	for _, tt := range tests {
		t.Run(tt.ptr, func(t *testing.T) {
			p, err := pointer.Parse(tt.ptr)
			if err != nil {
				t.Fatal(err)
			}
			got, err := p.Evaluate(doc)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if s := encode.MustString(got); s != tt.expected {
				t.Errorf("Evaluate = %s, want %s", s, tt.expected)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	doc, err := parse.Parse([]byte(`{"foo": ["bar", "baz"], "n": null, "x": {"y": 1}}`))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name     string
		ptr      string
		expected error
	}{
		{"missing field", "/nope", pointer.ErrNotFound},
		{"missing nested field", "/x/z", pointer.ErrNotFound},
		{"index out of range", "/foo/2", pointer.ErrNotFound},
		{"leading zero index", "/foo/01", pointer.ErrNotFound},
		{"end-of-array token", "/foo/-", pointer.ErrNotFound},
		{"negative index", "/foo/-1", pointer.ErrNotFound},
		{"non-numeric index", "/foo/bar", pointer.ErrNotFound},
		{"overflowing index", "/foo/99999999999999999999", pointer.ErrNotFound},
		{"descend into string", "/foo/0/deeper", pointer.ErrTypeMismatch},
		{"descend into null", "/n/deeper", pointer.ErrTypeMismatch},
		{"descend into number", "/x/y/deeper", pointer.ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := pointer.Parse(tt.ptr)
			if err != nil {
				t.Fatal(err)
			}
			n, err := p.Evaluate(doc)
			if n != nil || !errors.Is(err, tt.expected) {
				t.Errorf("Evaluate = %v, %v; want %v", n, err, tt.expected)
			}
		})
	}
}

func TestEvaluateRoot(t *testing.T) {
	doc := value.FromInt(42)
	got, err := pointer.Root.Evaluate(doc)
	if err != nil || got != doc {
		t.Errorf("Root.Evaluate = %v, %v", got, err)
	}
	if _, err := pointer.MustParse("/a").Evaluate(nil); !errors.Is(err, pointer.ErrNotFound) {
		t.Errorf("Evaluate on nil document: %v", err)
	}
}

func TestEvaluateDeepDocument(t *testing.T) {
	const depth = 5000
	cur := value.FromString("leaf")
	p := pointer.Root
	for i := 0; i < depth; i++ {
		cur = value.FromSlice([]*value.Node{cur})
		p = pointer.Root.Index(0).Concat(p)
	}
	got, err := p.Evaluate(cur)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != value.StringType || got.String != "leaf" {
		t.Errorf("deep Evaluate = %v", got)
	}
}

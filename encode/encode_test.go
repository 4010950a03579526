package encode_test

import (
	"bytes"
	"testing"

	"github.com/stablejson/go-stablejson/encode"
	"github.com/stablejson/go-stablejson/parse"
	"github.com/stablejson/go-stablejson/value"
)

func mustParse(t *testing.T, doc string) *value.Node {
	t.Helper()
	n, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse(%q): %v", doc, err)
	}
	return n
}

func TestEncodeWire(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{"null", `null`, `null`},
		{"bool", `false`, `false`},
		{"number", `1.50`, `1.5`},
		{"string", `"hi"`, `"hi"`},
		{"empty array", `[]`, `[]`},
		{"empty object", `{}`, `{}`},
		{"array", `[1, 2, null]`, `[1,2,null]`},
		{"object", `{"a": 1, "b": "x"}`, `{"a":1,"b":"x"}`},
		{"nested", `{"xs": [{"k": true}], "n": 1.0}`, `{"xs":[{"k":true}],"n":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := mustParse(t, tt.doc)
			var buf bytes.Buffer
			if err := encode.Encode(n, &buf, encode.EncodeWire(true)); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.expected {
				t.Errorf("Encode = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEncodeIndented(t *testing.T) {
	n := mustParse(t, `{"a": 1, "b": [true, null]}`)
	var buf bytes.Buffer
	if err := encode.Encode(n, &buf); err != nil {
		t.Fatal(err)
	}
	expected := `{
  "a": 1,
  "b": [
    true,
    null
  ]
}
`
	if got := buf.String(); got != expected {
		t.Errorf("Encode = %q, want %q", got, expected)
	}
}

func TestEncodeIndentWidth(t *testing.T) {
	n := mustParse(t, `{"a": 1}`)
	var buf bytes.Buffer
	if err := encode.Encode(n, &buf, encode.EncodeIndent(4)); err != nil {
		t.Fatal(err)
	}
	expected := "{\n    \"a\": 1\n}\n"
	if got := buf.String(); got != expected {
		t.Errorf("Encode = %q, want %q", got, expected)
	}
}

func TestEncodeNilNode(t *testing.T) {
	var buf bytes.Buffer
	if err := encode.Encode(nil, &buf, encode.EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "null" {
		t.Errorf("Encode(nil) = %q, want null", got)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", "abc", `"abc"`},
		{"empty", "", `""`},
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline and tab", "a\n\tb", `"a\n\tb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"backspace formfeed", "\b\f", `"\b\f"`},
		{"control", "\x01", `"\u0001"`},
		{"unit separator", "\x1f", `"\u001f"`},
		{"unicode passthrough", "héllo→", `"héllo→"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encode.Quote(tt.in); got != tt.expected {
				t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.expected)
			}
		})
	}
}

func TestMustString(t *testing.T) {
	n := mustParse(t, `{"a": [1, 2]}`)
	if got := encode.MustString(n); got != `{"a":[1,2]}` {
		t.Errorf("MustString = %q", got)
	}
}

func TestEncodeDeepDocument(t *testing.T) {
	const depth = 200000
	n := value.FromInt(1)
	for i := 0; i < depth; i++ {
		n = value.FromSlice([]*value.Node{n})
	}
	var buf bytes.Buffer
	if err := encode.Encode(n, &buf, encode.EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 2*depth+1 {
		t.Errorf("wire length = %d, want %d", buf.Len(), 2*depth+1)
	}
}

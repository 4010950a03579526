package pointer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected []string
	}{
		{"root", "", nil},
		{"single", "/foo", []string{"foo"}},
		{"nested", "/foo/0", []string{"foo", "0"}},
		{"empty token", "/", []string{""}},
		{"trailing empty token", "/foo/", []string{"foo", ""}},
		{"space token", "/ ", []string{" "}},
		{"escaped slash", "/a~1b", []string{"a/b"}},
		{"escaped tilde", "/m~0n", []string{"m~n"}},
		{"atomic escapes", "/~01", []string{"~1"}},
		{"both escapes", "/a~1b~0c", []string{"a/b~c"}},
		{"percent", "/c%d", []string{"c%d"}},
		{"quote", "/e^f", []string{"e^f"}},
		{"unicode", "/é", []string{"é"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if d := cmp.Diff(tt.expected, p.Tokens()); d != "" {
				t.Errorf("tokens (-want +got):\n%s", d)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"no leading slash", "foo"},
		{"relative", "a/b"},
		{"trailing tilde", "/a~"},
		{"bad escape", "/a~2b"},
		{"lone tilde token", "/~"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.in); !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) err = %v, want ErrSyntax", tt.in, err)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	ins := []string{
		"",
		"/foo",
		"/foo/0",
		"/",
		"/a~1b",
		"/m~0n",
		"/~01",
		"/deep/a~0~1b/x",
	}
	for _, in := range ins {
		p, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got := p.String(); got != in {
			t.Errorf("Parse(%q).String() = %q", in, got)
		}
		q, err := Parse(p.String())
		if err != nil {
			t.Fatalf("re-Parse(%q): %v", p.String(), err)
		}
		if !p.Equal(q) {
			t.Errorf("round trip of %q lost tokens", in)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	p := Root.Child("a/b", "m~n", "~1")
	if got := p.String(); got != "/a~1b/m~0n/~01" {
		t.Errorf("String() = %q", got)
	}
}

func TestParentChildIndex(t *testing.T) {
	p := Root.Child("spec", "containers").Index(2)
	if got := p.String(); got != "/spec/containers/2" {
		t.Fatalf("String() = %q", got)
	}
	if p.Len() != 3 || p.IsRoot() {
		t.Errorf("Len/IsRoot wrong: %d %v", p.Len(), p.IsRoot())
	}
	parent, ok := p.Parent()
	if !ok || parent.String() != "/spec/containers" {
		t.Errorf("Parent() = %q, %v", parent.String(), ok)
	}
	if _, ok := Root.Parent(); ok {
		t.Errorf("Root should have no parent")
	}
	if !Root.IsRoot() || Root.Len() != 0 {
		t.Errorf("Root not rootish")
	}
}

func TestConcat(t *testing.T) {
	a := MustParse("/a/b")
	b := MustParse("/c")
	if got := a.Concat(b).String(); got != "/a/b/c" {
		t.Errorf("Concat = %q", got)
	}
	if !a.Concat(Root).Equal(a) {
		t.Errorf("Concat with Root should be identity")
	}
	if !Root.Concat(b).Equal(b) {
		t.Errorf("Root.Concat(q) should be q")
	}
}

func TestEqual(t *testing.T) {
	if !MustParse("/a/b").Equal(Root.Child("a", "b")) {
		t.Errorf("equal pointers unequal")
	}
	if MustParse("/a/b").Equal(MustParse("/a")) {
		t.Errorf("prefix should not equal longer pointer")
	}
	if MustParse("/a~1b").Equal(MustParse("/a/b")) {
		t.Errorf("escaped slash token should differ from two tokens")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustParse on malformed text should panic")
		}
	}()
	MustParse("no-slash")
}

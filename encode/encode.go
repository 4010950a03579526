package encode

import (
	"io"
	"strings"

	"github.com/stablejson/go-stablejson/value"
)

type EncState struct {
	indent int
	wire   bool

	Color func(value.Type, ColorAttr, string) string
}

// Encode renders node as JSON to w. The default is indented output with a
// trailing newline; EncodeWire selects the canonical compact one-line
// rendering (object fields in stored order, numbers by canonical literal),
// which round-trips through parse.
//
// Rendering walks the tree with an explicit frame stack, so depth is not
// limited by the goroutine stack.
func Encode(node *value.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

type encFrame struct {
	node *value.Node
	next int
}

func encode(root *value.Node, w io.Writer, es *EncState) error {
	stack := []encFrame{{node: root}}
	for len(stack) > 0 {
		k := len(stack) - 1
		f := &stack[k]
		n := f.node
		if n == nil || n.Type.IsLeaf() {
			if err := writeLeaf(n, w, es); err != nil {
				return err
			}
			stack = stack[:k]
			continue
		}
		open, close_ := "{", "}"
		if n.Type == value.ArrayType {
			open, close_ = "[", "]"
		}
		if f.next == 0 {
			if err := writeSep(w, es, n.Type, open); err != nil {
				return err
			}
			if len(n.Values) == 0 {
				if err := writeSep(w, es, n.Type, close_); err != nil {
					return err
				}
				stack = stack[:k]
				continue
			}
		}
		if f.next < len(n.Values) {
			if f.next > 0 {
				if err := writeSep(w, es, n.Type, ","); err != nil {
					return err
				}
			}
			if err := writeNL(w, es, k+1); err != nil {
				return err
			}
			if n.Type == value.ObjectType {
				if err := writeField(w, es, n.Fields[f.next]); err != nil {
					return err
				}
			}
			child := n.Values[f.next]
			f.next++
			stack = append(stack, encFrame{node: child})
			continue
		}
		if err := writeNL(w, es, k); err != nil {
			return err
		}
		if err := writeSep(w, es, n.Type, close_); err != nil {
			return err
		}
		stack = stack[:k]
	}
	return nil
}

func writeLeaf(n *value.Node, w io.Writer, es *EncState) error {
	if n == nil {
		n = value.Null()
	}
	v := n.Literal()
	if n.Type == value.StringType {
		v = Quote(v)
	}
	if es.Color != nil {
		v = es.Color(n.Type, ValueColor, v)
	}
	return writeString(w, v)
}

func writeField(w io.Writer, es *EncState, field string) error {
	v := Quote(field)
	if es.Color != nil {
		v = es.Color(value.ObjectType, FieldColor, v)
	}
	sep := ": "
	if es.wire {
		sep = ":"
	}
	if err := writeString(w, v); err != nil {
		return err
	}
	return writeSep(w, es, value.ObjectType, sep)
}

func writeSep(w io.Writer, es *EncState, t value.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(t, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeNL(w io.Writer, es *EncState, depth int) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*depth))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

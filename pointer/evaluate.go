package pointer

import (
	"fmt"

	"github.com/stablejson/go-stablejson/value"
)

// Evaluate resolves p against root, consuming tokens one at a time.
//
// At an object node the token must equal a field name; a miss yields
// ErrNotFound. At an array node the token must be an RFC 6901 array index
// (digits only, no leading zero except "0" itself) within bounds; a
// malformed token or out-of-range index yields ErrNotFound, with messages
// distinguishing the two. Reaching a scalar or null node with tokens still
// to consume yields ErrTypeMismatch. Exhausting the tokens yields the node
// reached; Root resolves to root itself.
//
// Resolution failures are ordinary error values checked with errors.Is,
// never panics: a missing path is an expected outcome for callers probing
// optional fields.
func (p Pointer) Evaluate(root *value.Node) (*value.Node, error) {
	cur := root
	for i, tok := range p.tokens {
		if cur == nil {
			return nil, fmt.Errorf("%w: no node at %q", ErrNotFound, p.prefix(i))
		}
		switch cur.Type {
		case value.ObjectType:
			next := value.Get(cur, tok)
			if next == nil {
				return nil, fmt.Errorf("%w: object at %q has no field %q", ErrNotFound, p.prefix(i), tok)
			}
			cur = next
		case value.ArrayType:
			idx, err := arrayIndex(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: array at %q: %v", ErrNotFound, p.prefix(i), err)
			}
			if idx >= len(cur.Values) {
				return nil, fmt.Errorf("%w: index %d out of range at %q (len %d)",
					ErrNotFound, idx, p.prefix(i), len(cur.Values))
			}
			cur = cur.Values[idx]
		default:
			return nil, fmt.Errorf("%w: cannot descend into %s at %q with token %q",
				ErrTypeMismatch, cur.Type, p.prefix(i), tok)
		}
	}
	return cur, nil
}

// prefix is the pointer of the first i tokens, for error messages.
func (p Pointer) prefix(i int) string {
	return Pointer{tokens: p.tokens[:i]}.String()
}

// arrayIndex parses an RFC 6901 array index: a sequence of digits with no
// leading zero (except "0"). The "-" end-of-array token of JSON Patch adds
// is deliberately not accepted: read-only evaluation cannot address an
// element that does not exist yet.
func arrayIndex(tok string) (int, error) {
	if tok == "" {
		return 0, fmt.Errorf("empty index token")
	}
	if len(tok) > 1 && tok[0] == '0' {
		return 0, fmt.Errorf("index %q has a leading zero", tok)
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, fmt.Errorf("index %q is not a non-negative integer", tok)
		}
	}
	idx := 0
	for i := 0; i < len(tok); i++ {
		d := int(tok[i] - '0')
		if idx > (1<<31-1-d)/10 {
			return 0, fmt.Errorf("index %q overflows", tok)
		}
		idx = idx*10 + d
	}
	return idx, nil
}

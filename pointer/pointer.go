package pointer

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	encodedTilde = "~0"
	encodedSlash = "~1"
	separator    = '/'
)

// Pointer is an RFC 6901 JSON Pointer: an ordered sequence of reference
// tokens. The zero value is the root pointer (empty string form), which
// addresses a whole document. Pointers are immutable value objects; all
// methods return new pointers and never mutate the receiver.
type Pointer struct {
	tokens []string
}

// Root is the zero-length pointer "".
var Root = Pointer{}

// Parse parses pointer text. The empty string denotes Root; any other text
// must start with '/'. Within a token, "~1" decodes to '/' and "~0" to '~',
// scanned left to right with the two-character escapes atomic (so "~01"
// decodes to "~1", not to '/'). Errors wrap ErrSyntax.
func Parse(s string) (Pointer, error) {
	if s == "" {
		return Root, nil
	}
	if s[0] != separator {
		return Root, fmt.Errorf("%w: %q does not start with %q", ErrSyntax, s, string(separator))
	}
	parts := strings.Split(s[1:], string(separator))
	tokens := make([]string, len(parts))
	for i, part := range parts {
		tok, err := unescape(part)
		if err != nil {
			return Root, fmt.Errorf("%w: token %d of %q: %v", ErrSyntax, i, s, err)
		}
		tokens[i] = tok
	}
	return Pointer{tokens: tokens}, nil
}

// MustParse is Parse for pointers known to be well formed; it panics on
// syntax errors.
func MustParse(s string) Pointer {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '~') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '~' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(s) {
			return "", fmt.Errorf("'~' at end of token")
		}
		switch s[i+1] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte(separator)
		default:
			return "", fmt.Errorf("'~' followed by %q, want '0' or '1'", s[i+1])
		}
		i++
	}
	return b.String(), nil
}

// String renders the pointer in RFC 6901 text form, re-escaping '~' to
// "~0" and '/' to "~1" in each token. Parse(p.String()) yields a pointer
// equal to p.
func (p Pointer) String() string {
	if len(p.tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, tok := range p.tokens {
		b.WriteByte(separator)
		b.WriteString(escape(tok))
	}
	return b.String()
}

func escape(tok string) string {
	// tilde first, or escaped slashes would be double-encoded
	tok = strings.ReplaceAll(tok, "~", encodedTilde)
	return strings.ReplaceAll(tok, string(separator), encodedSlash)
}

// Tokens returns a copy of the token sequence.
func (p Pointer) Tokens() []string {
	return slices.Clone(p.tokens)
}

func (p Pointer) Len() int {
	return len(p.tokens)
}

func (p Pointer) IsRoot() bool {
	return len(p.tokens) == 0
}

// Parent returns the pointer with the last token dropped. The second
// result is false when p is Root, which has no parent.
func (p Pointer) Parent() (Pointer, bool) {
	if len(p.tokens) == 0 {
		return Root, false
	}
	return Pointer{tokens: p.tokens[:len(p.tokens)-1]}, true
}

// Concat returns the pointer whose tokens are p's followed by q's.
func (p Pointer) Concat(q Pointer) Pointer {
	if len(q.tokens) == 0 {
		return p
	}
	tokens := make([]string, 0, len(p.tokens)+len(q.tokens))
	tokens = append(tokens, p.tokens...)
	tokens = append(tokens, q.tokens...)
	return Pointer{tokens: tokens}
}

// Child returns p extended with the given literal tokens (unescaped
// property names).
func (p Pointer) Child(tokens ...string) Pointer {
	return p.Concat(Pointer{tokens: tokens})
}

// Index returns p extended with the decimal token for array index i.
func (p Pointer) Index(i int) Pointer {
	return p.Child(strconv.Itoa(i))
}

// Equal reports whether p and q have identical token sequences.
func (p Pointer) Equal(q Pointer) bool {
	return slices.Equal(p.tokens, q.tokens)
}

package parse

import (
	"github.com/stablejson/go-stablejson/format"
)

// DefaultMaxDepth caps nesting depth so adversarially deep input yields
// ErrTooDeep instead of exhausting the stack.
const DefaultMaxDepth = 10000

type parseOpts struct {
	format   format.Format
	maxDepth int
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// MaxDepth overrides DefaultMaxDepth; n <= 0 restores the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

package parse

import (
	"github.com/stablejson/go-stablejson/format"
	"github.com/stablejson/go-stablejson/value"
)

// Parse builds a value tree from a JSON (default) or YAML document.
// Parsing of the raw text is delegated to the underlying decoders; this
// package only arranges their output into value.Node trees, preserving
// object field order and (for JSON) verbatim number literals.
func Parse(d []byte, opts ...ParseOption) (*value.Node, error) {
	pOpts := &parseOpts{
		format:   format.JSONFormat,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(pOpts)
	}
	switch pOpts.format {
	case format.YAMLFormat:
		return parseYAML(d, pOpts)
	default:
		return parseJSON(d, pOpts)
	}
}

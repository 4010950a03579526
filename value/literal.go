package value

import "strconv"

// Literal returns the canonical non-pretty-printed rendering of a scalar
// node: "null", "true"/"false", the canonical number literal, or the string
// contents verbatim (unquoted). Both Equal and PersistentHash compare
// numbers through Literal, so two representations of the same value (for
// example a "1.0" parsed into a float64 and a "1" parsed into an int64,
// which both render as "1") are identified.
//
// Int64 numbers render via strconv.FormatInt, Float64 numbers via
// strconv.FormatFloat(f, 'g', -1, 64), and literal-fallback numbers render
// as their verbatim source literal. These choices are part of the
// persistent hash contract and may not change between versions.
func (n *Node) Literal() string {
	switch n.Type {
	case NullType:
		return "null"
	case BoolType:
		if n.Bool {
			return "true"
		}
		return "false"
	case NumberType:
		if n.Int64 != nil {
			return strconv.FormatInt(*n.Int64, 10)
		}
		if n.Float64 != nil {
			return strconv.FormatFloat(*n.Float64, 'g', -1, 64)
		}
		return n.Number
	case StringType:
		return n.String
	default:
		panic("Literal on non-leaf node")
	}
}

package value

import (
	"strconv"
	"strings"
)

// Path returns a JSONPath-style location of n within its document, e.g.
// "$.spec.containers[0].name". It is intended for diagnostics only; use
// the pointer package for addressing nodes.
func (n *Node) Path() string {
	if n.Parent == nil {
		return "$"
	}
	switch n.Parent.Type {
	case ObjectType:
		f := n.ParentField
		prefix := n.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"
	case ArrayType:
		return n.Parent.Path() + "[" + strconv.Itoa(n.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

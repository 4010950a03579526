package value

// Equal reports whether a and b are structurally equal: same type, same
// scalar content, index-aligned equal array elements, and equal object
// properties regardless of field order. It is total over well-formed
// trees and never fails; a JSON null is the NullType sentinel node, so
// nil pointers only occur when a whole (sub)tree is absent, and nil is
// equal only to nil.
//
// Numbers are compared by canonical literal (see Literal), consistent with
// how they re-serialize and with PersistentHash.
//
// The traversal uses an explicit work stack, so arbitrarily deep documents
// cannot exhaust the goroutine stack.
func Equal(a, b *Node) bool {
	type pair struct {
		a, b *Node
	}
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		a, b := p.a, p.b
		if a == b {
			continue
		}
		if a == nil || b == nil {
			return false
		}
		if a.Type != b.Type {
			return false
		}
		switch a.Type {
		case NullType:
		case BoolType:
			if a.Bool != b.Bool {
				return false
			}
		case StringType:
			if a.String != b.String {
				return false
			}
		case NumberType:
			if a.Literal() != b.Literal() {
				return false
			}
		case ArrayType:
			if len(a.Values) != len(b.Values) {
				return false
			}
			for i := range a.Values {
				stack = append(stack, pair{a.Values[i], b.Values[i]})
			}
		case ObjectType:
			// keys are unique, so count equality plus one-directional
			// containment implies symmetric containment
			if len(a.Fields) != len(b.Fields) {
				return false
			}
			for i, key := range a.Fields {
				bv := Get(b, key)
				if bv == nil {
					return false
				}
				stack = append(stack, pair{a.Values[i], bv})
			}
		}
	}
	return true
}

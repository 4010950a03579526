package value

func Truth(n *Node) bool {
	switch n.Type {
	case ObjectType:
		return len(n.Fields) != 0
	case ArrayType:
		return len(n.Values) != 0
	case StringType:
		return n.String != ""
	case NumberType:
		if n.Int64 != nil {
			return *n.Int64 != 0
		}
		if n.Float64 != nil {
			return *n.Float64 != 0.0
		}
		return n.Number != ""
	case BoolType:
		return n.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}

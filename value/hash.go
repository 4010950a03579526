package value

// Persistent hashing. Unlike runtime hash codes (hash/maphash and the map
// implementation are seeded per process to defend against hash flooding),
// PersistentHash is a pure function of a node's content: the same document
// hashes to the same integer across runs, platforms and versions, making it
// usable for on-disk caches, deduplication and content addressing.
//
// The string hash, combiner and per-type tags below are part of the wire
// contract: an independent implementation following them must produce
// identical integers for identical documents.

// Per-type hash tags ("NULL", "BOOL", "NUMB", "STRG", "ARRY", "OBJC").
const (
	HashNull   uint32 = 0x4E554C4C
	HashBool   uint32 = 0x424F4F4C
	HashNumber uint32 = 0x4E554D42
	HashString uint32 = 0x53545247
	HashArray  uint32 = 0x41525259
	HashObject uint32 = 0x4F424A43
)

// Combine folds k into h order-dependently.
func Combine(h, k uint32) uint32 {
	return (h<<5 + h) ^ k
}

// StringHash is 32-bit FNV-1a over the UTF-8 bytes of s.
func StringHash(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

// PersistentHash returns a deterministic 32-bit hash of n's content,
// consistent with Equal: equal nodes always hash equal, and object field
// order never affects the result. It panics if n is nil; a JSON null is
// the NullType node, never a nil pointer.
//
// Per type:
//
//	Null    HashNull
//	Bool    Combine(HashBool, 0|1)
//	Number  Combine(HashNumber, StringHash(Literal()))
//	String  Combine(HashString, StringHash(s))
//	Array   fold Combine over element hashes, seeded with HashArray
//	Object  XOR over properties of Combine(StringHash(key), hash(value)),
//	        then Combine(HashObject, xor)
//
// XOR makes the object combination independent of enumeration order. The
// traversal uses an explicit frame stack, so arbitrarily deep documents
// cannot exhaust the goroutine stack.
func PersistentHash(n *Node) int32 {
	if n == nil {
		panic("value: PersistentHash called on nil node")
	}
	return int32(persistentHash(n))
}

type hashFrame struct {
	node *Node
	next int
	acc  uint32
}

func persistentHash(root *Node) uint32 {
	var result uint32
	stack := []hashFrame{{node: root}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		n := f.node
		if n.Type.IsLeaf() {
			result = leafHash(n)
			stack = stack[:len(stack)-1]
			continue
		}
		if f.next == 0 {
			if n.Type == ArrayType {
				f.acc = HashArray
			}
		} else if n.Type == ArrayType {
			f.acc = Combine(f.acc, result)
		} else {
			f.acc ^= Combine(StringHash(n.Fields[f.next-1]), result)
		}
		if f.next < len(n.Values) {
			child := n.Values[f.next]
			f.next++
			stack = append(stack, hashFrame{node: child})
			continue
		}
		if n.Type == ArrayType {
			result = f.acc
		} else {
			result = Combine(HashObject, f.acc)
		}
		stack = stack[:len(stack)-1]
	}
	return result
}

func leafHash(n *Node) uint32 {
	switch n.Type {
	case NullType:
		return HashNull
	case BoolType:
		if n.Bool {
			return Combine(HashBool, 1)
		}
		return Combine(HashBool, 0)
	case NumberType:
		return Combine(HashNumber, StringHash(n.Literal()))
	case StringType:
		return Combine(HashString, StringHash(n.String))
	default:
		panic("type")
	}
}

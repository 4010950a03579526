// Package value defines the JSON document tree and the structural identity
// operations over it: order-independent equality and a persistent,
// cross-run 32-bit content hash.
//
// # Node Structure
//
// A Node represents a single JSON value as a recursive tagged union:
//
//   - NullType: null
//   - BoolType: true/false
//   - NumberType: numeric value (int64, float64 or verbatim literal)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (Fields and Values)
//
// A JSON null is always the NullType sentinel node; a nil *Node never
// occurs inside a well-formed document, so traversal never trips over an
// absent value.
//
// Each node maintains parent links (Parent, ParentIndex, ParentField),
// allowing upward navigation and diagnostic paths via Path.
//
// # Creating Nodes
//
// Trees are normally produced by the parse package. Constructor functions
// build them programmatically:
//
//	node := value.FromString("hello")
//	num := value.FromInt(42)
//	obj := value.FromMap(map[string]*value.Node{
//	    "key": value.FromString("value"),
//	})
//	arr := value.FromSlice([]*value.Node{
//	    value.FromInt(1),
//	    value.FromInt(2),
//	})
//
// # Equality and Hashing
//
// Equal decides structural equality: object field order is irrelevant,
// array order is significant, numbers compare by canonical literal.
// PersistentHash is consistent with Equal and deterministic across
// process runs; see its documentation for the exact contract.
//
//	if value.Equal(a, b) {
//	    // value.PersistentHash(a) == value.PersistentHash(b)
//	}
//
// Compare provides a total ordering for sorting; it is stricter than
// Equal and not part of the hash contract.
//
// # Concurrency
//
// Nodes are treated as immutable after construction. All operations in
// this package are pure functions over shared trees and are safe to call
// concurrently without synchronization, provided no caller mutates the
// nodes. Documents are acyclic by construction; hand-built trees with
// cycles are unsupported and traversal over them does not terminate.
package value

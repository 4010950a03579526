// Package pointer implements RFC 6901 JSON Pointers over value.Node trees.
//
// A pointer is an ordered sequence of reference tokens with the textual
// syntax "/a/b/0"; the empty string is the root pointer. Tokens escape
// '~' as "~0" and '/' as "~1":
//
//	p, err := pointer.Parse("/a~1b/0")
//	// p has tokens ["a/b", "0"]
//
// Pointers are small immutable values: parse or compose them (Parent,
// Concat, Child, Index), render them with String, and resolve them with
// Evaluate. Resolution failures are the sentinel errors ErrNotFound and
// ErrTypeMismatch, not panics.
package pointer

// Package parse builds value.Node trees from JSON and YAML documents.
//
//	node, err := parse.Parse(data)                    // JSON
//	node, err := parse.Parse(data, parse.ParseYAML()) // YAML
//
// JSON decoding walks encoding/json's token stream so object field order
// and number literals are preserved. Untrusted input is bounded by
// MaxDepth (default DefaultMaxDepth); exceeding it yields ErrTooDeep.
// Duplicate object keys yield ErrDuplicateKey, since the value model
// requires unique keys.
package parse

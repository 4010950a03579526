package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/stablejson/go-stablejson/value"
)

// parseJSON walks the decoder's token stream instead of unmarshalling into
// map[string]any, which would lose object field order and canonical number
// literals.
func parseJSON(d []byte, opts *parseOpts) (*value.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeValue(dec, 0, opts)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing content after document", ErrParse)
	}
	return node, nil
}

func decodeValue(dec *json.Decoder, depth int, opts *parseOpts) (*value.Node, error) {
	if depth > opts.maxDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d", ErrTooDeep, opts.maxDepth)
	}
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec, depth, opts)
		case '[':
			return decodeArray(dec, depth, opts)
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrParse, t.String())
		}
	case string:
		return value.FromString(t), nil
	case bool:
		return value.FromBool(t), nil
	case json.Number:
		return numberNode(t), nil
	case nil:
		return value.Null(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
	}
}

func decodeObject(dec *json.Decoder, depth int, opts *parseOpts) (*value.Node, error) {
	obj := &value.Node{Type: value.ObjectType}
	seen := map[string]struct{}{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v is not a string", ErrParse, keyTok)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		seen[key] = struct{}{}
		child, err := decodeValue(dec, depth+1, opts)
		if err != nil {
			return nil, err
		}
		child.Parent = obj
		child.ParentIndex = len(obj.Values)
		child.ParentField = key
		obj.Fields = append(obj.Fields, key)
		obj.Values = append(obj.Values, child)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder, depth int, opts *parseOpts) (*value.Node, error) {
	arr := &value.Node{Type: value.ArrayType}
	for dec.More() {
		child, err := decodeValue(dec, depth+1, opts)
		if err != nil {
			return nil, err
		}
		child.Parent = arr
		child.ParentIndex = len(arr.Values)
		arr.Values = append(arr.Values, child)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return arr, nil
}

// numberNode keeps the verbatim literal when the value fits neither int64
// nor float64 without loss; otherwise the canonical Literal rendering of
// the stored representation governs equality and hashing.
func numberNode(num json.Number) *value.Node {
	lit := num.String()
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return value.FromInt(i)
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil && floatFaithful(lit, f) {
		return value.FromFloat(f)
	}
	return value.FromNumberLiteral(lit)
}

// floatFaithful reports whether the canonical rendering of f denotes the
// same mathematical value as the source literal. Shortest-form float64
// rendering collapses distinct wide integers (2^64 and 2^64+1 both format
// as 1.8446744073709552e+19); such literals must stay verbatim or
// distinct documents would compare and hash equal.
func floatFaithful(lit string, f float64) bool {
	src, ok := new(big.Rat).SetString(lit)
	if !ok {
		return false
	}
	canon, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
	if !ok {
		return false
	}
	return src.Cmp(canon) == 0
}

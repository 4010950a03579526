package parse

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/stablejson/go-stablejson/value"
)

// parseYAML decodes with ordered maps so object field order survives, then
// rearranges the decoded tree into value nodes. YAML is a convenience
// input path; unlike parseJSON it does not preserve source number
// literals.
func parseYAML(d []byte, opts *parseOpts) (*value.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return yamlNode(v, 0, opts)
}

func yamlNode(v any, depth int, opts *parseOpts) (*value.Node, error) {
	if depth > opts.maxDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d", ErrTooDeep, opts.maxDepth)
	}
	switch x := v.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.FromBool(x), nil
	case string:
		return value.FromString(x), nil
	case int:
		return value.FromInt(int64(x)), nil
	case int64:
		return value.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return value.FromNumberLiteral(strconv.FormatUint(x, 10)), nil
		}
		return value.FromInt(int64(x)), nil
	case float64:
		// yaml admits .inf/.nan, JSON has no spelling for them
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, fmt.Errorf("%w: non-finite number %v has no JSON form", ErrParse, x)
		}
		return value.FromFloat(x), nil
	case yaml.MapSlice:
		obj := &value.Node{Type: value.ObjectType}
		seen := map[string]struct{}{}
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string mapping key %v", ErrParse, item.Key)
			}
			if _, dup := seen[key]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
			}
			seen[key] = struct{}{}
			child, err := yamlNode(item.Value, depth+1, opts)
			if err != nil {
				return nil, err
			}
			child.Parent = obj
			child.ParentIndex = len(obj.Values)
			child.ParentField = key
			obj.Fields = append(obj.Fields, key)
			obj.Values = append(obj.Values, child)
		}
		return obj, nil
	case []any:
		arr := &value.Node{Type: value.ArrayType}
		for _, item := range x {
			child, err := yamlNode(item, depth+1, opts)
			if err != nil {
				return nil, err
			}
			child.Parent = arr
			child.ParentIndex = len(arr.Values)
			arr.Values = append(arr.Values, child)
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("%w: unsupported yaml value %T", ErrParse, v)
	}
}

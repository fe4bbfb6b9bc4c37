// Package jsonproj projects NBT tag trees to and from JSON, for callers
// that want to inspect or script against a document without depending on
// the nbt package directly. Lists of numeric arrays and the 64-bit Long
// type both lose precision or shape under plain JSON, so the projection is
// lossy in one direction (spec.md §5 notes this as a supplemental, not a
// round-tripping, feature). Uses github.com/goccy/go-json, the JSON
// encoder the rest of the retrieved pack reaches for over encoding/json.
package jsonproj

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/nbtkit/nbtkit/nbt"
)

// Marshal projects t into a JSON-compatible value and encodes it.
func Marshal(t nbt.Tag) ([]byte, error) {
	return json.Marshal(project(t))
}

// MarshalIndent is Marshal with indentation, for human-readable dumps.
func MarshalIndent(t nbt.Tag, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(project(t), prefix, indent)
}

func project(t nbt.Tag) any {
	switch v := t.(type) {
	case nbt.Byte:
		return int64(v)
	case nbt.Short:
		return int64(v)
	case nbt.Int:
		return int64(v)
	case nbt.Long:
		return int64(v)
	case nbt.Float:
		return float64(v)
	case nbt.Double:
		return float64(v)
	case nbt.String:
		return string(v)
	case nbt.ByteArray:
		out := make([]int64, len(v))
		for i, b := range v {
			out[i] = int64(b)
		}
		return out
	case nbt.IntArray:
		out := make([]int64, len(v))
		for i, n := range v {
			out[i] = int64(n)
		}
		return out
	case nbt.LongArray:
		out := make([]int64, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out
	case nbt.List:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = project(item)
		}
		return out
	case *nbt.Compound:
		out := make(map[string]any, v.Len())
		v.Range(func(name string, child nbt.Tag) bool {
			out[name] = project(child)
			return true
		})
		return out
	default:
		return nil
	}
}

// Unmarshal decodes JSON data into a tag tree, inferring NBT types from
// JSON's own types: JSON numbers become Double, JSON strings become String,
// arrays become List, objects become Compound. Because JSON has no typed
// integers, round-tripping a Marshal'd document back through Unmarshal
// widens every number to Double — callers that need exact integer types
// back should keep the original tag tree instead.
func Unmarshal(data []byte) (nbt.Tag, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("jsonproj: %w", err)
	}
	return fromJSON(v), nil
}

func fromJSON(v any) nbt.Tag {
	switch val := v.(type) {
	case nil:
		return nbt.String("")
	case bool:
		if val {
			return nbt.Byte(1)
		}
		return nbt.Byte(0)
	case float64:
		return nbt.Double(val)
	case string:
		return nbt.String(val)
	case []any:
		list := nbt.List{}
		for _, item := range val {
			list.Append(fromJSON(item))
		}
		return list
	case map[string]any:
		c := nbt.NewCompound()
		for k, item := range val {
			c.Set(k, fromJSON(item))
		}
		return c
	default:
		return nbt.String(fmt.Sprintf("%v", val))
	}
}

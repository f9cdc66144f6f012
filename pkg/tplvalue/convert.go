// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package tplvalue

import (
	"fmt"
	"sort"
)

// Conversion translates between plain Go objects (string,
// map[string]interface{}, []interface{}) and the Value union. It is a
// convenience for hosts and tests that assemble Contexts from deserialized
// data; the engine itself only ever sees Values.
type Conversion struct {
	Object interface{}
}

// AsValue converts a plain Go object into a Value. Since native Go maps have
// no defined order, their keys are sorted to keep the resulting Map
// deterministic; callers that need a specific order build the Map directly.
// The input is never modified.
func (c Conversion) AsValue() (Value, error) {
	return c.asValue(c.Object)
}

func (c Conversion) asValue(object interface{}) (Value, error) {
	switch typedObj := object.(type) {
	case string:
		return String(typedObj), nil

	case []interface{}:
		result := make(List, 0, len(typedObj))
		for i, item := range typedObj {
			val, err := c.asValue(item)
			if err != nil {
				return nil, fmt.Errorf("converting list item %d: %w", i, err)
			}
			result = append(result, val)
		}
		return result, nil

	case map[string]interface{}:
		result := NewMap()
		for _, key := range c.sortedMapKeys(typedObj) {
			val, err := c.asValue(typedObj[key])
			if err != nil {
				return nil, fmt.Errorf("converting map key '%s': %w", key, err)
			}
			result.Set(key, val)
		}
		return result, nil

	case Value:
		return typedObj, nil

	default:
		return nil, fmt.Errorf("unsupported value type %T", typedObj)
	}
}

// AsPlainObjects converts a Value (held in Object) back into plain Go
// objects; Maps become native (unordered) map[string]interface{}.
func (c Conversion) AsPlainObjects() interface{} {
	return c.asPlainObjects(c.Object)
}

func (c Conversion) asPlainObjects(object interface{}) interface{} {
	switch typedObj := object.(type) {
	case String:
		return string(typedObj)

	case List:
		result := make([]interface{}, 0, len(typedObj))
		for _, item := range typedObj {
			result = append(result, c.asPlainObjects(item))
		}
		return result

	case *Map:
		result := map[string]interface{}{}
		typedObj.Iterate(func(k string, v Value) {
			result[k] = c.asPlainObjects(v)
		})
		return result

	default:
		panic(fmt.Sprintf("Expected a Value in AsPlainObjects, got %T", typedObj))
	}
}

func (Conversion) sortedMapKeys(m map[string]interface{}) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

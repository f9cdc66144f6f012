// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package tplvalue

type Map struct {
	items []MapItem
}

type MapItem struct {
	Key   string
	Value Value
}

func NewMap() *Map {
	return &Map{}
}

func NewMapWithItems(items []MapItem) *Map {
	return &Map{items}
}

// Set adds "key" at the end of the map, or overwrites its value in place if
// already present (the key keeps its original position).
func (m *Map) Set(key string, value Value) {
	for i, item := range m.items {
		if item.Key == key {
			item.Value = value
			m.items[i] = item
			return
		}
	}
	m.items = append(m.items, MapItem{key, value})
}

func (m *Map) Get(key string) (Value, bool) {
	for _, item := range m.items {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

func (m *Map) Delete(key string) bool {
	for i, item := range m.items {
		if item.Key == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Map) Keys() (keys []string) {
	m.Iterate(func(k string, _ Value) {
		keys = append(keys, k)
	})
	return
}

// Iterate visits entries in their defined order (the order keys were set).
func (m *Map) Iterate(iterFunc func(k string, v Value)) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

func (m *Map) Len() int { return len(m.items) }

// With returns a new Map equal to "m" plus the given binding; "m" itself is
// left untouched. A pre-existing key is shadowed in place, holding its
// position.
func (m *Map) With(key string, value Value) *Map {
	newItems := make([]MapItem, len(m.items), len(m.items)+1)
	copy(newItems, m.items)
	result := &Map{items: newItems}
	result.Set(key, value)
	return result
}

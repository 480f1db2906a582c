package object

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Map is an object which keeps its keys in insertion order. The zero value is
// not usable, use NewMap or MapOf.
type Map struct {
	keys   []string
	values map[string]any
}

func NewMap() *Map {
	return &Map{values: map[string]any{}}
}

// MapOf builds a Map from alternating keys and values. It panics if a key is
// not a string or a value is missing.
func MapOf(kvs ...any) *Map {
	if len(kvs)%2 != 0 {
		panic("MapOf: odd number of arguments")
	}
	m := NewMap()
	for i := 0; i < len(kvs); i += 2 {
		k, ok := kvs[i].(string)
		if !ok {
			panic(fmt.Sprintf("MapOf: key %d is %T, not string", i/2, kvs[i]))
		}
		m.Set(k, kvs[i+1])
	}
	return m
}

func (m *Map) Len() int {
	return len(m.keys)
}

func (m *Map) Get(k string) (any, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Set sets k to v, appending k to the keys if it is new.
func (m *Map) Set(k string, v any) {
	if _, present := m.values[k]; !present {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

func (m *Map) Delete(k string) {
	if _, present := m.values[k]; !present {
		return
	}
	delete(m.values, k)
	for i, key := range m.keys {
		if key == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	res := make([]string, len(m.keys))
	copy(res, m.keys)
	return res
}

// Range calls f for each entry in order until f returns false.
func (m *Map) Range(f func(k string, v any) bool) {
	for _, k := range m.keys {
		if !f(k, m.values[k]) {
			return
		}
	}
}

func (m *Map) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer([]byte{'{'})
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kd, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		vd, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("error encoding %q: %w", k, err)
		}
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Map) MarshalYAML() (any, error) {
	res := make(yaml.MapSlice, 0, len(m.keys))
	for _, k := range m.keys {
		res = append(res, yaml.MapItem{Key: k, Value: m.values[k]})
	}
	return res, nil
}

package match

import "github.com/signadot/objmod/object"

// Entry is a key of an object with its value.
type Entry struct {
	Key   string
	Value any
}

// KeysOf returns the keys of obj which match, in key order. Objects which are
// not containers have no keys.
func (m *Matcher) KeysOf(obj any) []string {
	keys := object.Keys(obj)
	targets := make([]any, len(keys))
	for i := range keys {
		targets[i] = keys[i]
	}
	found := m.FindMany(targets)
	res := make([]string, len(found))
	for i := range found {
		res[i] = found[i].(string)
	}
	return res
}

func (m *Matcher) KeyOf(obj any) (string, bool) {
	keys := m.KeysOf(obj)
	if len(keys) == 0 {
		return "", false
	}
	return keys[0], true
}

func (m *Matcher) ValuesOf(obj any) []any {
	keys := m.KeysOf(obj)
	res := make([]any, len(keys))
	for i, k := range keys {
		res[i], _ = object.Lookup(obj, k)
	}
	return res
}

func (m *Matcher) ValueOf(obj any) (any, bool) {
	values := m.ValuesOf(obj)
	if len(values) == 0 {
		return nil, false
	}
	return values[0], true
}

func (m *Matcher) EntriesOf(obj any) []Entry {
	keys := m.KeysOf(obj)
	res := make([]Entry, len(keys))
	for i, k := range keys {
		v, _ := object.Lookup(obj, k)
		res[i] = Entry{Key: k, Value: v}
	}
	return res
}

func (m *Matcher) EntryOf(obj any) (Entry, bool) {
	entries := m.EntriesOf(obj)
	if len(entries) == 0 {
		return Entry{}, false
	}
	return entries[0], true
}

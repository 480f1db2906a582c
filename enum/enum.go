// Package enum provides closed, named-and-numbered constant sets.
//
// An Enum records, for each entry, its name, its index (the position at which it
// was declared), a human readable description and an optional opaque data value.
// Entries can be looked up by either name or index:
//
//	e := enum.New(
//		enum.Entry{Name: "MATCH_ANY", Description: "Matches any value in the list or fail"},
//		enum.Entry{Name: "MATCH_ALL"},
//	)
//	i, _ := e.Index("MATCH_ALL") // 1
//	e.Name(0)                    // "MATCH_ANY"
//	e.Description(1)             // "MATCH_ALL" (defaults to the name)
//
// Enums are immutable once built.
package enum

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoSuchEntry = errors.New("no such enum entry")

// Entry is a single member of an Enum.
type Entry struct {
	Name        string
	Description string
	Data        any
}

type Enum struct {
	entries []Entry
	index   map[string]int
}

// New builds an Enum from entries in declaration order. An entry without a
// description uses its name as description. Duplicate names keep the first index.
func New(entries ...Entry) *Enum {
	res := &Enum{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.Description == "" {
			e.Description = e.Name
		}
		res.entries[i] = e
		if _, present := res.index[e.Name]; !present {
			res.index[e.Name] = i
		}
	}
	return res
}

// Names creates an Enum whose entries carry only names.
func Names(names ...string) *Enum {
	entries := make([]Entry, len(names))
	for i, n := range names {
		entries[i] = Entry{Name: n}
	}
	return New(entries...)
}

func (e *Enum) Len() int {
	return len(e.entries)
}

func (e *Enum) Valid(i int) bool {
	return i >= 0 && i < len(e.entries)
}

// Name returns the name at index i, or "" if i is out of range.
func (e *Enum) Name(i int) string {
	if !e.Valid(i) {
		return ""
	}
	return e.entries[i].Name
}

// Index returns the index of name.
func (e *Enum) Index(name string) (int, bool) {
	i, ok := e.index[name]
	return i, ok
}

// Fold looks up name ignoring case, also accepting any of the given prefixes
// stripped from the declared names, so "any" finds "MATCH_ANY" given prefix
// "MATCH_".
func (e *Enum) Fold(name string, prefixes ...string) (int, error) {
	if i, ok := e.index[name]; ok {
		return i, nil
	}
	for i, entry := range e.entries {
		if strings.EqualFold(entry.Name, name) {
			return i, nil
		}
		for _, p := range prefixes {
			short, ok := cutPrefixFold(entry.Name, p)
			if ok && strings.EqualFold(short, name) {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrNoSuchEntry, name)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

func (e *Enum) Description(i int) string {
	if !e.Valid(i) {
		return ""
	}
	return e.entries[i].Description
}

func (e *Enum) Data(i int) any {
	if !e.Valid(i) {
		return nil
	}
	return e.entries[i].Data
}

// Entry returns a copy of the entry at index i.
func (e *Enum) Entry(i int) (Entry, bool) {
	if !e.Valid(i) {
		return Entry{}, false
	}
	return e.entries[i], true
}

// Entries returns a copy of all entries in index order.
func (e *Enum) Entries() []Entry {
	res := make([]Entry, len(e.entries))
	copy(res, e.entries)
	return res
}

func (e *Enum) Names() []string {
	res := make([]string, len(e.entries))
	for i := range e.entries {
		res[i] = e.entries[i].Name
	}
	return res
}

func (e *Enum) String() string {
	return "Enum(" + strings.Join(e.Names(), ", ") + ")"
}

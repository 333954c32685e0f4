// Package wheel shapes constant dictionaries into {label, value} picker items.
package wheel

import (
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Item is a single picker option
type Item struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Entry is a code and its display label
type Entry struct {
	Code  string
	Label string
}

// Dictionary is an ordered code to label mapping
type Dictionary []Entry

// UnmarshalJSON decodes a JSON object keeping its key order
func (d *Dictionary) UnmarshalJSON(data []byte) error {
	om := orderedmap.New[string, string]()
	if err := om.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("wheel: dictionary must be an object of string labels: %w", err)
	}

	out := make(Dictionary, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Code: pair.Key, Label: pair.Value})
	}

	*d = out
	return nil
}

// Label returns the label for code, or code itself when it is unknown
func (d Dictionary) Label(code string) string {
	for _, e := range d {
		if e.Code == code {
			return e.Label
		}
	}
	return code
}

// Has reports whether code is present
func (d Dictionary) Has(code string) bool {
	for _, e := range d {
		if e.Code == code {
			return true
		}
	}
	return false
}

// MapFromDictionary returns one item per entry in dictionary order
func MapFromDictionary(d Dictionary) []Item {
	items := make([]Item, 0, len(d))
	for _, e := range d {
		items = append(items, Item{Value: e.Code, Label: e.Label})
	}
	return items
}

// MapFromMap returns one item per key. Go maps are unordered, so items are sorted by key.
func MapFromMap(m map[string]string) []Item {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]Item, 0, len(keys))
	for _, k := range keys {
		items = append(items, Item{Value: k, Label: m[k]})
	}
	return items
}

// MapFromArray returns one item per value, using the value as its own label
func MapFromArray(values []string) []Item {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		items = append(items, Item{Value: v, Label: v})
	}
	return items
}

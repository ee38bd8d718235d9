package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category name cannot be parsed.
var ErrUnknownCategory = errors.New("unknown category")

// Category partitions the sign catalog.
type Category string

const (
	CategoryAlphabets Category = "alphabets"
	CategoryNumbers   Category = "numbers"
	CategoryWords     Category = "words"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryAlphabets,
		CategoryNumbers,
		CategoryWords,
	}
}

// DisplayName returns a human-readable name for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryAlphabets:
		return "Alphabets"
	case CategoryNumbers:
		return "Numbers"
	case CategoryWords:
		return "Words"
	default:
		return string(c)
	}
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryAlphabets:
		return CategoryAlphabets, nil
	case CategoryNumbers:
		return CategoryNumbers, nil
	case CategoryWords:
		return CategoryWords, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Entry is a single sign in the catalog.
type Entry struct {
	Label       string `json:"label"`
	MediaRef    string `json:"media_ref"`
	Description string `json:"description"`
}

// Catalog is an immutable table of sign entries grouped by category.
// Entry order within a category is the learning order.
type Catalog struct {
	entries map[Category][]Entry
	byLabel map[Category]map[string]int
}

// New builds a catalog from per-category entry lists. The slices are copied.
func New(entries map[Category][]Entry) *Catalog {
	c := &Catalog{
		entries: make(map[Category][]Entry, len(entries)),
		byLabel: make(map[Category]map[string]int, len(entries)),
	}
	for _, cat := range AllCategories() {
		list := append([]Entry(nil), entries[cat]...)
		c.entries[cat] = list

		idx := make(map[string]int, len(list))
		for i, e := range list {
			idx[e.Label] = i
		}
		c.byLabel[cat] = idx
	}
	return c
}

// Entries returns a copy of the entries in a category, in learning order.
func (c *Catalog) Entries(cat Category) []Entry {
	return append([]Entry(nil), c.entries[cat]...)
}

// Labels returns the ordered labels of a category.
func (c *Catalog) Labels(cat Category) []string {
	list := c.entries[cat]
	labels := make([]string, len(list))
	for i, e := range list {
		labels[i] = e.Label
	}
	return labels
}

// Lookup returns the entry with the exact label in a category.
func (c *Catalog) Lookup(cat Category, label string) (Entry, bool) {
	i, ok := c.byLabel[cat][label]
	if !ok {
		return Entry{}, false
	}
	return c.entries[cat][i], true
}

// At returns the entry at position i of a category.
func (c *Catalog) At(cat Category, i int) (Entry, bool) {
	list := c.entries[cat]
	if i < 0 || i >= len(list) {
		return Entry{}, false
	}
	return list[i], true
}

// Len returns the number of entries in a category.
func (c *Catalog) Len(cat Category) int {
	return len(c.entries[cat])
}

// Total returns the number of entries across all categories.
func (c *Catalog) Total() int {
	n := 0
	for _, cat := range AllCategories() {
		n += len(c.entries[cat])
	}
	return n
}

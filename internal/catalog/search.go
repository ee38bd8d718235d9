package catalog

import (
	"fmt"
	"strings"
)

// FilterAll is the filter name that matches every category.
const FilterAll = "All"

// Filter restricts a search or browse to one category, or none.
type Filter struct {
	Category Category // empty means all categories
}

// AllFilter matches every category.
func AllFilter() Filter { return Filter{} }

// ParseFilter parses "All" or a category name, case-insensitively.
// An empty string is treated as "All".
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, FilterAll) {
		return Filter{}, nil
	}
	cat, err := ParseCategory(s)
	if err != nil {
		return Filter{}, fmt.Errorf("parse filter: %w", err)
	}
	return Filter{Category: cat}, nil
}

// Matches reports whether a category passes the filter.
func (f Filter) Matches(cat Category) bool {
	return f.Category == "" || f.Category == cat
}

// String returns the display name of the filter.
func (f Filter) String() string {
	if f.Category == "" {
		return FilterAll
	}
	return f.Category.DisplayName()
}

// Result is a single search hit.
type Result struct {
	Category Category `json:"category"`
	Entry    Entry    `json:"entry"`
}

// Search returns entries whose label or description contains term,
// ignoring case. Results follow catalog order: category, then label.
func (c *Catalog) Search(term string, f Filter) []Result {
	needle := strings.ToLower(term)
	var results []Result
	for _, cat := range AllCategories() {
		if !f.Matches(cat) {
			continue
		}
		for _, e := range c.entries[cat] {
			if strings.Contains(strings.ToLower(e.Label), needle) ||
				strings.Contains(strings.ToLower(e.Description), needle) {
				results = append(results, Result{Category: cat, Entry: e})
			}
		}
	}
	return results
}

// Group is one category's entries in browse mode.
type Group struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Entries  []Entry  `json:"entries"`
}

// Browse returns the filtered categories with all of their entries.
func (c *Catalog) Browse(f Filter) []Group {
	var groups []Group
	for _, cat := range AllCategories() {
		if !f.Matches(cat) {
			continue
		}
		groups = append(groups, Group{
			Category: cat,
			Title:    cat.DisplayName(),
			Entries:  c.Entries(cat),
		})
	}
	return groups
}

package progress

import (
	"slices"

	"github.com/signaura/signaura/internal/catalog"
)

// State tracks how far a learner has moved through one category.
//
// Cursor indexes the category's ordered labels and marks the next item to
// learn. Cursor == len(labels) means the category is complete.
type State struct {
	Cursor    int      `json:"cursor"`
	Completed []string `json:"completed"`
}

// Outcome describes what a call to Advance did.
type Outcome struct {
	Label        string // label marked as learned ("" when nothing was left)
	NewlyLearned bool   // false when Label was already in Completed
	Completed    bool   // true when the category is complete after the call
}

// Advance marks the item under the cursor as learned and moves the cursor
// forward. Advancing past the last item completes the category; advancing a
// complete category is a no-op.
func (s *State) Advance(labels []string) Outcome {
	if s.Cursor >= len(labels) {
		return Outcome{Completed: true}
	}

	label := labels[s.Cursor]
	out := Outcome{Label: label}
	if !slices.Contains(s.Completed, label) {
		s.Completed = append(s.Completed, label)
		out.NewlyLearned = true
	}
	s.Cursor++
	out.Completed = s.Cursor >= len(labels)
	return out
}

// Restart moves the cursor back to the first item. Completed is kept.
func (s *State) Restart() {
	s.Cursor = 0
}

// Reset clears the cursor and the completed list.
func (s *State) Reset() {
	s.Cursor = 0
	s.Completed = nil
}

// IsComplete returns true once the cursor has passed the last of n items.
func (s *State) IsComplete(n int) bool {
	return s.Cursor >= n
}

// LessonRatio is Cursor/n, the fraction shown beside the current lesson.
// An empty category reports 0.
func (s *State) LessonRatio(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(min(s.Cursor, n)) / float64(n)
}

// CompletedRatio is len(Completed)/n, the fraction shown on the profile.
// An empty category reports 0.
func (s *State) CompletedRatio(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(len(s.Completed)) / float64(n)
}

// Summary holds completed counts per category.
type Summary struct {
	Letters int `json:"letters"`
	Numbers int `json:"numbers"`
	Words   int `json:"words"`
}

// Total returns the number of signs learned across categories.
func (s Summary) Total() int {
	return s.Letters + s.Numbers + s.Words
}

// Tracker holds the progress state of every category for one learner.
type Tracker struct {
	catalog *catalog.Catalog
	states  map[catalog.Category]*State
}

// NewTracker creates a tracker with every category at its first item.
func NewTracker(c *catalog.Catalog) *Tracker {
	t := &Tracker{
		catalog: c,
		states:  make(map[catalog.Category]*State),
	}
	for _, cat := range catalog.AllCategories() {
		t.states[cat] = &State{}
	}
	return t
}

// State returns the live state for a category.
func (t *Tracker) State(cat catalog.Category) *State {
	s, ok := t.states[cat]
	if !ok {
		s = &State{}
		t.states[cat] = s
	}
	return s
}

// Advance advances a category by one item.
func (t *Tracker) Advance(cat catalog.Category) Outcome {
	return t.State(cat).Advance(t.catalog.Labels(cat))
}

// Current returns the entry under the cursor, or false when complete.
func (t *Tracker) Current(cat catalog.Category) (catalog.Entry, bool) {
	return t.catalog.At(cat, t.State(cat).Cursor)
}

// Restart moves a category back to its first item.
func (t *Tracker) Restart(cat catalog.Category) {
	t.State(cat).Restart()
}

// ResetAll clears progress in every category.
func (t *Tracker) ResetAll() {
	for _, cat := range catalog.AllCategories() {
		t.State(cat).Reset()
	}
}

// Summary returns completed counts per category.
func (t *Tracker) Summary() Summary {
	return Summary{
		Letters: len(t.State(catalog.CategoryAlphabets).Completed),
		Numbers: len(t.State(catalog.CategoryNumbers).Completed),
		Words:   len(t.State(catalog.CategoryWords).Completed),
	}
}

// Snapshot returns a copy of every category's state.
func (t *Tracker) Snapshot() map[catalog.Category]State {
	out := make(map[catalog.Category]State, len(t.states))
	for cat, s := range t.states {
		out[cat] = State{
			Cursor:    s.Cursor,
			Completed: append([]string(nil), s.Completed...),
		}
	}
	return out
}

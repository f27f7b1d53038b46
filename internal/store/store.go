package store

import (
	"slices"

	"github.com/google/uuid"
	"github.com/jorge-barreto/dpsheet/internal/worksheet"
)

// Store holds the ordered worksheet collection and the active selection.
// It always contains at least one worksheet. Not safe for concurrent use.
type Store struct {
	worksheets []worksheet.Worksheet
	active     int
	newID      func() string
}

type Option func(*Store)

// WithIDFunc replaces the UUID generator used for new worksheet ids.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// New returns a store seeded with one default worksheet.
func New(opts ...Option) *Store {
	s := &Store{newID: uuid.NewString}
	for _, o := range opts {
		o(s)
	}
	s.worksheets = []worksheet.Worksheet{worksheet.New(s.newID())}
	return s
}

// Create appends a default worksheet, selects it and returns its index.
func (s *Store) Create() int {
	s.worksheets = append(s.worksheets, worksheet.New(s.newID()))
	s.active = len(s.worksheets) - 1
	return s.active
}

// Update merges p into the active worksheet.
func (s *Store) Update(p worksheet.Patch) {
	p.Apply(&s.worksheets[s.active])
}

// ToggleProblemType adds tag to the active worksheet if absent, removes it otherwise.
func (s *Store) ToggleProblemType(tag string) {
	w := &s.worksheets[s.active]
	if i := slices.Index(w.ProblemType, tag); i >= 0 {
		w.ProblemType = slices.Delete(slices.Clone(w.ProblemType), i, i+1)
		return
	}
	w.ProblemType = append(slices.Clone(w.ProblemType), tag)
}

// Delete removes the worksheet at index and selects the first worksheet.
// The last remaining worksheet and out-of-range indexes are left alone.
func (s *Store) Delete(index int) bool {
	if len(s.worksheets) <= 1 || index < 0 || index >= len(s.worksheets) {
		return false
	}
	s.worksheets = slices.Delete(s.worksheets, index, index+1)
	s.active = 0
	return true
}

// Select makes index the active worksheet, clamped into range.
func (s *Store) Select(index int) {
	s.active = max(0, min(index, len(s.worksheets)-1))
}

// Replace swaps in an imported collection. Empty input leaves one default
// worksheet; missing or duplicate ids get fresh ones.
func (s *Store) Replace(ws []worksheet.Worksheet) {
	if len(ws) == 0 {
		s.worksheets = []worksheet.Worksheet{worksheet.New(s.newID())}
		s.active = 0
		return
	}
	seen := make(map[string]bool, len(ws))
	out := make([]worksheet.Worksheet, 0, len(ws))
	for _, w := range ws {
		w = w.Clone()
		if w.ID == "" || seen[w.ID] {
			w.ID = s.newID()
		}
		seen[w.ID] = true
		out = append(out, w)
	}
	s.worksheets = out
	s.active = 0
}

// Active returns a copy of the active worksheet.
func (s *Store) Active() worksheet.Worksheet {
	return s.worksheets[s.active].Clone()
}

func (s *Store) ActiveIndex() int {
	return s.active
}

func (s *Store) Len() int {
	return len(s.worksheets)
}

// At returns a copy of the worksheet at index.
func (s *Store) At(index int) (worksheet.Worksheet, bool) {
	if index < 0 || index >= len(s.worksheets) {
		return worksheet.Worksheet{}, false
	}
	return s.worksheets[index].Clone(), true
}

// Worksheets returns a copy of the whole collection in order.
func (s *Store) Worksheets() []worksheet.Worksheet {
	out := make([]worksheet.Worksheet, len(s.worksheets))
	for i, w := range s.worksheets {
		out[i] = w.Clone()
	}
	return out
}

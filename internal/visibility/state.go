// Package visibility computes, per resolved structure, one
// visible/opacity decision from four independent controls: type
// toggles, the global peel depth, the manually peeled set with undo
// history, and the search query with optional isolation.
package visibility

import "anatomy-engine/internal/anatomy"

// MinQueryLen is the shortest query that activates search matching.
const MinQueryLen = 2

// State is the session-scoped visibility state. Mutations must be
// serialized by the caller (single UI writer); evaluation is
// read-only and may run concurrently.
type State struct {
	hiddenTypes map[anatomy.StructureType]bool
	peelDepth   int

	// peeled and history always hold exactly the same keys; history
	// additionally orders them by toggle time for undo.
	peeled  map[string]struct{}
	history []string

	query   string
	isolate bool
}

// NewState returns the session defaults: every type visible, nothing
// peeled, no search.
func NewState() *State {
	return &State{
		hiddenTypes: make(map[anatomy.StructureType]bool),
		peeled:      make(map[string]struct{}),
	}
}

// TypeVisible reports whether a structure type's toggle is on.
func (s *State) TypeVisible(t anatomy.StructureType) bool {
	return !s.hiddenTypes[t]
}

// SetTypeVisible sets one type toggle.
func (s *State) SetTypeVisible(t anatomy.StructureType, visible bool) {
	if visible {
		delete(s.hiddenTypes, t)
	} else {
		s.hiddenTypes[t] = true
	}
}

// ToggleType flips one type toggle.
func (s *State) ToggleType(t anatomy.StructureType) {
	s.SetTypeVisible(t, !s.TypeVisible(t))
}

// PeelDepth returns the global peel level, 0 (show everything) to
// anatomy.MaxLayer (show only layer 0).
func (s *State) PeelDepth() int {
	return s.peelDepth
}

// PeelDeeper raises the peel depth by one, clamped at MaxLayer.
func (s *State) PeelDeeper() {
	if s.peelDepth < anatomy.MaxLayer {
		s.peelDepth++
	}
}

// RestoreLayer lowers the peel depth by one, clamped at 0.
func (s *State) RestoreLayer() {
	if s.peelDepth > 0 {
		s.peelDepth--
	}
}

// TogglePeel adds key to the manual peel set and history, or removes
// it from both when already present (dropping its most recent history
// occurrence).
func (s *State) TogglePeel(key string) {
	if _, ok := s.peeled[key]; ok {
		delete(s.peeled, key)
		for i := len(s.history) - 1; i >= 0; i-- {
			if s.history[i] == key {
				s.history = append(s.history[:i], s.history[i+1:]...)
				break
			}
		}
		return
	}
	s.peeled[key] = struct{}{}
	s.history = append(s.history, key)
}

// UndoLast reverses the most recent manual peel. No-op on empty
// history.
func (s *State) UndoLast() {
	if len(s.history) == 0 {
		return
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	delete(s.peeled, last)
}

// ResetAll clears the manual peel set and its history.
func (s *State) ResetAll() {
	s.peeled = make(map[string]struct{})
	s.history = nil
}

// ManuallyPeeled reports whether key is in the manual peel set.
func (s *State) ManuallyPeeled(key string) bool {
	_, ok := s.peeled[key]
	return ok
}

// HistoryLen returns the number of undoable manual peels.
func (s *State) HistoryLen() int {
	return len(s.history)
}

// SetQuery sets the search query. Queries shorter than MinQueryLen
// match nothing.
func (s *State) SetQuery(q string) {
	s.query = q
}

// Query returns the current search query.
func (s *State) Query() string {
	return s.query
}

// SetIsolation turns search isolation on or off. While on, only
// matching structures and bone-type structures are shown.
func (s *State) SetIsolation(on bool) {
	s.isolate = on
}

// Isolation reports whether search isolation is on.
func (s *State) Isolation() bool {
	return s.isolate
}

func (s *State) searchActive() bool {
	return len(s.query) >= MinQueryLen
}

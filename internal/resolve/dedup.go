package resolve

// Tracker guarantees each registry key binds to at most one scene
// mesh within one resolution pass. Reset (or reallocate) per scene
// load.
type Tracker struct {
	claimed map[string]struct{}
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{claimed: make(map[string]struct{})}
}

// TryClaim claims key for the calling mesh. Returns false if another
// mesh already holds it; the caller discards its mesh.
func (t *Tracker) TryClaim(key string) bool {
	if _, ok := t.claimed[key]; ok {
		return false
	}
	t.claimed[key] = struct{}{}
	return true
}

// Reset forgets all claims.
func (t *Tracker) Reset() {
	t.claimed = make(map[string]struct{})
}

package visibility

import (
	"strings"

	"anatomy-engine/internal/anatomy"
	"anatomy-engine/internal/resolve"
)

// Opacity targets. Non-bone tissue keeps a translucency baseline so
// underlying layers read through; smoothing toward the target is the
// rendering host's concern.
const (
	OpacityHidden  = 0.0
	OpacityBone    = 1.0
	OpacityDefault = 0.9
)

// Decision is the per-structure output of one evaluation.
type Decision struct {
	Visible bool
	Opacity float64
}

var hidden = Decision{Visible: false, Opacity: OpacityHidden}

// Evaluate computes the decision for one resolved structure against
// the current state. Pure; must be re-run after every state change.
//
// Precedence: the type toggle is a hard gate; a search match
// overrides both peel gates unless isolation is on; isolation
// suppresses non-matching non-bone structures outright.
func Evaluate(rs *resolve.Resolved, s *State) Decision {
	meta := rs.Meta
	if !s.TypeVisible(meta.Type) {
		return hidden
	}

	match := s.searchActive() && Matches(meta, s.query)
	if s.isolate && s.searchActive() && !match && meta.Type != anatomy.Bone {
		return hidden
	}

	// A match overrides both peel gates so search can surface a
	// structure in any peel state. Isolation trades that away: the
	// peel gates keep applying inside the isolated view.
	override := match && !s.isolate
	layerPeeled := meta.Layer > anatomy.MaxLayer-s.peelDepth
	peeled := (layerPeeled || s.ManuallyPeeled(meta.Key)) && !override
	if peeled {
		return hidden
	}

	if meta.Type == anatomy.Bone {
		return Decision{Visible: true, Opacity: OpacityBone}
	}
	return Decision{Visible: true, Opacity: OpacityDefault}
}

// EvaluateAll evaluates every resolved structure, in order. The host
// calls this on its own render cadence; decisions index-match the
// input slice.
func EvaluateAll(resolved []resolve.Resolved, s *State) []Decision {
	out := make([]Decision, len(resolved))
	for i := range resolved {
		out[i] = Evaluate(&resolved[i], s)
	}
	return out
}

// Matches reports whether query is a case-insensitive substring of
// the structure's display name or canonical key. Queries shorter
// than MinQueryLen never match.
func Matches(meta *anatomy.StructureMetadata, query string) bool {
	if len(query) < MinQueryLen {
		return false
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(meta.DisplayName), q) ||
		strings.Contains(strings.ToLower(meta.Key), q)
}

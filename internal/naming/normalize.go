// Package naming undoes the string edits the Blender export pipeline
// and the glTF tooling apply to structure names, so that scene mesh
// names can be matched back to canonical registry keys.
package naming

import (
	"regexp"
	"strings"
)

// Side is the bilateral classification of a structure name.
type Side int

const (
	// SideSingle covers midline structures and anything whose suffix
	// cannot be trusted to mean left or right.
	SideSingle Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "single"
}

// dupTokenRE matches exporter-injected duplicate-numbering tokens.
// glTF export turns name collisions into "Muscle_B002" and a second
// collision into "Muscle_B002_1"; both decorations carry no anatomy.
var dupTokenRE = regexp.MustCompile(`(?i)00\d+(?:_\d+)?`)

// Normalize converts a raw scene-mesh name to its canonical base name.
// It strips duplicate-numbering tokens, lowercases, drops parenthesis
// characters, removes a trailing _l/_r side marker, collapses repeated
// underscores and trims stray ones. Pure and idempotent; malformed
// input degrades to the lowercased input.
func Normalize(raw string) string {
	s := dupTokenRE.ReplaceAllString(raw, "")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	s = stripSideMarker(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}

func stripSideMarker(s string) string {
	for _, suffix := range []string{"_l", "_r"} {
		if strings.HasSuffix(s, suffix) {
			return s[:len(s)-len(suffix)]
		}
	}
	return s
}

// SplitSide classifies a registry key by its suffix and returns the
// canonical base with the suffix removed. This runs on raw registry
// keys, before Normalize discards the side information.
//
// _ol origin markers are painted left-first in the source model, so
// the suffix reads as left. _er is ambiguous — masseter, trochanter
// and friends end in "er" — and is kept single rather than risking a
// wrong bilateral merge.
func SplitSide(key string) (base string, side Side) {
	k := strings.ToLower(key)
	switch {
	case strings.HasSuffix(k, "_l"):
		return Normalize(k[:len(k)-2]), SideLeft
	case strings.HasSuffix(k, "_r"):
		return Normalize(k[:len(k)-2]), SideRight
	case strings.HasSuffix(k, "_ol"):
		return Normalize(k[:len(k)-3]), SideLeft
	case strings.HasSuffix(k, "_er"):
		return Normalize(k), SideSingle
	}
	return Normalize(k), SideSingle
}

// Package filter decides which registry structures the product
// renders at all. The exclusion lists are curated product content,
// not derived logic.
package filter

import (
	"strings"

	"anatomy-engine/internal/anatomy"
)

// excludedTypes are structure types outside the product's display
// scope.
var excludedTypes = map[anatomy.StructureType]bool{
	anatomy.Organ: true,
	anatomy.Other: true,
}

// excludedWords match anywhere in the canonical key. These are
// anatomical landmarks and aggregates that are not physical tissue:
// motion-plane markers (sagittal_plane, transverse_plane), aggregate
// muscle-group meshes (erector_spinae_group), and reference overlays.
var excludedWords = []string{
	"plane",
	"_group",
	"landmark",
	"reference_line",
}

// excludedSuffixes mark non-tissue helper meshes by key suffix:
// _ol/_or/_el/_er are muscle origin/insertion areas painted onto
// bones, _j are joint capsule markers, _t are text label carriers.
var excludedSuffixes = []string{
	"_ol", "_or",
	"_el", "_er",
	"_j", "_t",
}

// ShouldInclude reports whether a structure belongs in the resolved
// scene. Pure and total.
func ShouldInclude(meta *anatomy.StructureMetadata) bool {
	if excludedTypes[meta.Type] {
		return false
	}
	key := strings.ToLower(meta.Key)
	for _, w := range excludedWords {
		if strings.Contains(key, w) {
			return false
		}
	}
	for _, s := range excludedSuffixes {
		if strings.HasSuffix(key, s) {
			return false
		}
	}
	return true
}

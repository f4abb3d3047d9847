package resolve

import (
	"math"
	"strings"

	"anatomy-engine/internal/anatomy"
	"anatomy-engine/internal/naming"
	"anatomy-engine/internal/scene"
)

// centerEpsilon is the half-width of the midline band: meshes whose
// AABB center X lies within it cannot be sided from geometry.
const centerEpsilon = 0.05

// Resolve returns the registry entry for a scene mesh, or nil when
// the mesh is unmatched. Never an error: unmatched meshes are simply
// skipped by callers. Deterministic for a fixed mesh and registry.
//
// Lookup order: exact key, lowercased key, then normalized base via
// the side index with position-based left/right disambiguation.
func Resolve(m *scene.Mesh, reg *anatomy.Registry, idx Index) *anatomy.StructureMetadata {
	if meta := reg.Get(m.Name); meta != nil {
		return meta
	}
	if meta := reg.Get(strings.ToLower(m.Name)); meta != nil {
		return meta
	}

	base := naming.Normalize(m.Name)
	v := idx[base]
	if v == nil {
		return nil
	}
	if v.Left == "" && v.Right == "" {
		return reg.Get(v.Single)
	}

	switch sideFromPosition(m) {
	case naming.SideLeft:
		if v.Left != "" {
			return reg.Get(v.Left)
		}
	case naming.SideRight:
		if v.Right != "" {
			return reg.Get(v.Right)
		}
	}
	return reg.Get(sideFallback(v))
}

// sideFromPosition classifies a mesh by its world AABB center along
// the body's left-right axis. Positive X is the depicted body's left
// side (the model faces the viewer). Centers inside the midline band
// return SideSingle.
func sideFromPosition(m *scene.Mesh) naming.Side {
	x := m.WorldCenter().X
	if math.Abs(x) < centerEpsilon {
		return naming.SideSingle
	}
	if x > 0 {
		return naming.SideLeft
	}
	return naming.SideRight
}

// sideFallback picks a variant when position gave no usable side or
// the sided slot is empty: left, then right, then single. The
// left-first preference is carried over from the source viewer for
// compatibility; it is a policy choice, not anatomy.
func sideFallback(v *SideVariants) string {
	if v.Left != "" {
		return v.Left
	}
	if v.Right != "" {
		return v.Right
	}
	return v.Single
}

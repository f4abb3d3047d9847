package resolve

import (
	"anatomy-engine/internal/anatomy"
	"anatomy-engine/internal/filter"
	"anatomy-engine/internal/scene"
)

// Resolved joins one scene mesh to one registry entry. MeshName keeps
// the original scene name for stable external identity; Meta.Key is
// the canonical key used for dedup and lookup.
type Resolved struct {
	MeshName string
	Handle   int
	Meta     *anatomy.StructureMetadata
}

// Report counts the outcome of one resolution pass. None of these
// are errors — whatever resolved is rendered regardless.
type Report struct {
	Total      int
	Matched    int
	Unmatched  int
	Filtered   int
	Duplicates int

	UnmatchedNames []string
}

// Pass resolves a whole scene: for each mesh, resolve → filter →
// claim. Runs to completion before any result is exposed; within one
// pass no two Resolved entries share a canonical key.
func Pass(meshes []scene.Mesh, reg *anatomy.Registry, idx Index) ([]Resolved, Report) {
	tracker := NewTracker()
	rep := Report{Total: len(meshes)}
	resolved := make([]Resolved, 0, len(meshes))

	for i := range meshes {
		m := &meshes[i]
		meta := Resolve(m, reg, idx)
		if meta == nil {
			rep.Unmatched++
			rep.UnmatchedNames = append(rep.UnmatchedNames, m.Name)
			continue
		}
		if !filter.ShouldInclude(meta) {
			rep.Filtered++
			continue
		}
		if !tracker.TryClaim(meta.Key) {
			rep.Duplicates++
			continue
		}
		rep.Matched++
		resolved = append(resolved, Resolved{
			MeshName: m.Name,
			Handle:   m.Handle,
			Meta:     meta,
		})
	}
	return resolved, rep
}

// Package resolve maps scene mesh names onto canonical registry
// entries: normalized-name lookup, bilateral left/right
// disambiguation from geometry position, product filtering and
// one-mesh-per-structure deduplication.
package resolve

import (
	"sort"

	"anatomy-engine/internal/anatomy"
	"anatomy-engine/internal/naming"
)

// SideVariants holds the registry keys available for one canonical
// base name. Empty string means the slot is absent.
type SideVariants struct {
	Left   string
	Right  string
	Single string
}

// Index maps canonical base names to their side variants. Built once
// per registry load, read-only afterwards.
type Index map[string]*SideVariants

// BuildIndex classifies every registry key by side suffix and records
// it under its canonical base. Keys are walked in sorted order so a
// slot collision resolves the same way on every run
// (last-write-wins over that fixed order).
func BuildIndex(reg *anatomy.Registry) Index {
	keys := make([]string, 0, len(reg.Structures))
	for key := range reg.Structures {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	idx := make(Index)
	for _, key := range keys {
		base, side := naming.SplitSide(key)
		if base == "" {
			continue
		}
		v := idx[base]
		if v == nil {
			v = &SideVariants{}
			idx[base] = v
		}
		switch side {
		case naming.SideLeft:
			v.Left = key
		case naming.SideRight:
			v.Right = key
		default:
			v.Single = key
		}
	}
	return idx
}

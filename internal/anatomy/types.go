// Package anatomy holds the canonical structure metadata registry:
// one immutable record per anatomical structure, loaded once from the
// JSON file produced by the Blender export pipeline.
package anatomy

import "gonum.org/v1/gonum/spatial/r3"

// StructureType classifies a structure for display grouping and
// layer/opacity defaults.
type StructureType int

const (
	Bone StructureType = iota
	Muscle
	Organ
	Tendon
	Ligament
	Cartilage
	Fascia
	// Other absorbs everything the product does not render as tissue,
	// including membrane/bursa/capsule entries from older exports.
	Other
)

var typeNames = [...]string{"bone", "muscle", "organ", "tendon", "ligament", "cartilage", "fascia", "other"}

func (t StructureType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "other"
	}
	return typeNames[t]
}

// ParseType maps a registry type string to a StructureType.
// Unknown strings degrade to Other rather than failing the load.
func ParseType(s string) StructureType {
	for i, n := range typeNames {
		if s == n {
			return StructureType(i)
		}
	}
	return Other
}

// AllTypes lists every StructureType once, in declaration order.
func AllTypes() []StructureType {
	return []StructureType{Bone, Muscle, Organ, Tendon, Ligament, Cartilage, Fascia, Other}
}

// MaxLayer is the most superficial depth layer the registry uses.
// Layer 0 is bone; higher is closer to the skin.
const MaxLayer = 3

// StructureMetadata is one canonical registry entry. Immutable after
// load. Bilateral structures appear as two entries sharing a base
// name and differing only by a _l/_r key suffix.
type StructureMetadata struct {
	// Key is the canonical registry name, e.g. "rectus_abdominis_l".
	Key string
	// DisplayName is the human-readable name from the source model.
	DisplayName string
	Type        StructureType
	// Layer orders structures from deepest (0, bone) to most
	// superficial (MaxLayer).
	Layer   int
	Regions []string
	// Center is the world-space geometry center from the export.
	Center r3.Vec
}

// Registry is the full structure metadata set, keyed by canonical key.
type Registry struct {
	Structures map[string]*StructureMetadata
	Version    string
	Region     string
}

// Get returns the entry for key, or nil.
func (r *Registry) Get(key string) *StructureMetadata {
	return r.Structures[key]
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.Structures)
}

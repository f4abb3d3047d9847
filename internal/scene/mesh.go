// Package scene holds the ephemeral mesh primitives of one loaded 3D
// scene, as handed over by the host's glTF loader. The engine only
// needs names and world-space bounds; geometry stays opaque.
package scene

import "gonum.org/v1/gonum/spatial/r3"

// Mesh is one scene mesh node. Name is exporter-controlled and not
// guaranteed to match any registry key.
type Mesh struct {
	Name string
	// Translation is the node's world translation.
	Translation r3.Vec
	// Verts are node-local vertex positions; may be empty when the
	// host only supplies a transform.
	Verts [][3]float32
	// Handle identifies the host-side renderable for this node.
	// Opaque to the engine.
	Handle int
}

// WorldCenter returns the world-space axis-aligned bounding box
// center of the mesh: translation plus the AABB center of its local
// vertices. Vertex-less meshes fall back to the translation alone.
func (m *Mesh) WorldCenter() r3.Vec {
	if len(m.Verts) == 0 {
		return m.Translation
	}
	minV := m.Verts[0]
	maxV := m.Verts[0]
	for _, v := range m.Verts[1:] {
		for k := 0; k < 3; k++ {
			if v[k] < minV[k] {
				minV[k] = v[k]
			}
			if v[k] > maxV[k] {
				maxV[k] = v[k]
			}
		}
	}
	local := r3.Vec{
		X: float64(minV[0]+maxV[0]) / 2,
		Y: float64(minV[1]+maxV[1]) / 2,
		Z: float64(minV[2]+maxV[2]) / 2,
	}
	return r3.Add(m.Translation, local)
}

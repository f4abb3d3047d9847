package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"anatomy-engine/internal/anatomy"
	"anatomy-engine/internal/scene"
)

func testRegistry(keys ...string) *anatomy.Registry {
	reg := &anatomy.Registry{Structures: make(map[string]*anatomy.StructureMetadata)}
	for _, k := range keys {
		reg.Structures[k] = &anatomy.StructureMetadata{Key: k, DisplayName: k, Type: anatomy.Muscle, Layer: 2}
	}
	return reg
}

func meshAt(name string, x float64) *scene.Mesh {
	return &scene.Mesh{Name: name, Translation: r3.Vec{X: x}}
}

func TestResolveExactMatch(t *testing.T) {
	reg := testRegistry("rectus_abdominis_l", "rectus_abdominis_r")
	idx := BuildIndex(reg)

	got := Resolve(meshAt("rectus_abdominis_r", +0.5), reg, idx)
	require.NotNil(t, got)
	// Exact key match wins over position.
	assert.Equal(t, "rectus_abdominis_r", got.Key)
}

func TestResolveLowercaseMatch(t *testing.T) {
	reg := testRegistry("interpubic_disc")
	idx := BuildIndex(reg)

	got := Resolve(meshAt("Interpubic_Disc", 0), reg, idx)
	require.NotNil(t, got)
	assert.Equal(t, "interpubic_disc", got.Key)
}

func TestResolveSideFromPosition(t *testing.T) {
	reg := testRegistry("muscle_l", "muscle_r")
	idx := BuildIndex(reg)

	left := Resolve(meshAt("Muscle001", +0.5), reg, idx)
	require.NotNil(t, left)
	assert.Equal(t, "muscle_l", left.Key)

	right := Resolve(meshAt("Muscle001", -0.5), reg, idx)
	require.NotNil(t, right)
	assert.Equal(t, "muscle_r", right.Key)

	// Centered position is ambiguous; the stable fallback prefers
	// left when present.
	center := Resolve(meshAt("Muscle001", 0), reg, idx)
	require.NotNil(t, center)
	assert.Equal(t, "muscle_l", center.Key)
}

func TestResolveMissingSideFallsBack(t *testing.T) {
	reg := testRegistry("muscle_r")
	idx := BuildIndex(reg)

	// Position says left, only the right variant exists.
	got := Resolve(meshAt("Muscle001", +0.5), reg, idx)
	require.NotNil(t, got)
	assert.Equal(t, "muscle_r", got.Key)
}

func TestResolveSingleVariant(t *testing.T) {
	reg := testRegistry("sternum")
	idx := BuildIndex(reg)

	got := Resolve(meshAt("Sternum001", -0.7), reg, idx)
	require.NotNil(t, got)
	assert.Equal(t, "sternum", got.Key)
}

func TestResolveNotFound(t *testing.T) {
	reg := testRegistry("sternum")
	idx := BuildIndex(reg)

	assert.Nil(t, Resolve(meshAt("Totally_Unknown042", 0), reg, idx))
}

func TestResolveDeterministic(t *testing.T) {
	reg := testRegistry("muscle_l", "muscle_r", "sternum")
	m := meshAt("Muscle002_1", +0.3)

	for i := 0; i < 20; i++ {
		idx := BuildIndex(reg)
		got := Resolve(m, reg, idx)
		require.NotNil(t, got)
		assert.Equal(t, "muscle_l", got.Key)
	}
}

func TestResolveUsesAABBCenter(t *testing.T) {
	reg := testRegistry("muscle_l", "muscle_r")
	idx := BuildIndex(reg)

	// Translation sits on the midline; the vertex bounds pull the
	// AABB center to the right side.
	m := &scene.Mesh{
		Name:  "Muscle001",
		Verts: [][3]float32{{-0.4, 0, 0}, {-0.2, 1, 0}},
	}
	got := Resolve(m, reg, idx)
	require.NotNil(t, got)
	assert.Equal(t, "muscle_r", got.Key)
}

func TestBuildIndexSlots(t *testing.T) {
	reg := testRegistry("muscle_l", "muscle_r", "sternum", "deltoid_origin_ol")
	idx := BuildIndex(reg)

	v := idx["muscle"]
	require.NotNil(t, v)
	assert.Equal(t, "muscle_l", v.Left)
	assert.Equal(t, "muscle_r", v.Right)
	assert.Empty(t, v.Single)

	s := idx["sternum"]
	require.NotNil(t, s)
	assert.Equal(t, "sternum", s.Single)

	// Origin markers index as left variants of their base.
	o := idx["deltoid_origin"]
	require.NotNil(t, o)
	assert.Equal(t, "deltoid_origin_ol", o.Left)
}

func TestTracker(t *testing.T) {
	tr := NewTracker()
	assert.True(t, tr.TryClaim("hip_bone_l"))
	assert.False(t, tr.TryClaim("hip_bone_l"))
	assert.True(t, tr.TryClaim("hip_bone_r"))

	tr.Reset()
	assert.True(t, tr.TryClaim("hip_bone_l"))
}

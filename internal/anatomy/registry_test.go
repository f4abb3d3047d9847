package anatomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRegistry = `{
  "version": "10.5",
  "region": "torso",
  "structures": {
    "hip_bone_l": {"name": "Hip bone (L)", "type": "bone", "layer": 0, "regions": ["pelvis"], "center": [0.12, -0.3, 0.01]},
    "hip_bone_r": {"name": "Hip bone (R)", "type": "bone", "layer": 0, "regions": ["pelvis"], "center": [-0.12, -0.3, 0.01]},
    "rectus_abdominis_l": {"name": "Rectus abdominis (L)", "type": "muscle", "layer": 3, "regions": ["abdomen"], "center": [0.05, 0.1, 0.08]},
    "interpubic_disc": {"name": "Interpubic disc", "type": "cartilage", "layer": 0, "regions": ["pelvis"], "center": [0, -0.35, 0.02]},
    "pleural_membrane": {"name": "Pleural membrane", "type": "membrane", "layer": 9, "regions": ["thorax"], "center": [0, 0.3, 0]}
  }
}`

func TestParseRegistry(t *testing.T) {
	reg, err := ParseRegistry([]byte(sampleRegistry))
	require.NoError(t, err)

	assert.Equal(t, 5, reg.Len())
	assert.Equal(t, "10.5", reg.Version)
	assert.Equal(t, "torso", reg.Region)

	hip := reg.Get("hip_bone_l")
	require.NotNil(t, hip)
	assert.Equal(t, "Hip bone (L)", hip.DisplayName)
	assert.Equal(t, Bone, hip.Type)
	assert.Equal(t, 0, hip.Layer)
	assert.Equal(t, 0.12, hip.Center.X)

	// Unknown type strings degrade to Other; layers clamp to MaxLayer.
	mem := reg.Get("pleural_membrane")
	require.NotNil(t, mem)
	assert.Equal(t, Other, mem.Type)
	assert.Equal(t, MaxLayer, mem.Layer)

	assert.Nil(t, reg.Get("no_such_structure"))
}

func TestParseRegistryBadJSON(t *testing.T) {
	_, err := ParseRegistry([]byte("{not json"))
	assert.Error(t, err)
}

func TestParseRegistryMissingName(t *testing.T) {
	reg, err := ParseRegistry([]byte(`{"structures": {"hip_bone": {"type": "bone", "layer": 0}}}`))
	require.NoError(t, err)
	assert.Equal(t, "hip_bone", reg.Get("hip_bone").DisplayName)
}

func TestValidateBilateral(t *testing.T) {
	reg, err := ParseRegistry([]byte(sampleRegistry))
	require.NoError(t, err)

	pairs := reg.ValidateBilateral()
	require.Len(t, pairs, 1)
	assert.Equal(t, "rectus_abdominis", pairs[0].Base)
	assert.Equal(t, "rectus_abdominis_l", pairs[0].Found)
	assert.Equal(t, "right", pairs[0].Missing)
}

func TestParseType(t *testing.T) {
	assert.Equal(t, Bone, ParseType("bone"))
	assert.Equal(t, Fascia, ParseType("fascia"))
	assert.Equal(t, Other, ParseType("bursa"))
	assert.Equal(t, Other, ParseType(""))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "muscle", Muscle.String())
	assert.Equal(t, "other", StructureType(99).String())
}

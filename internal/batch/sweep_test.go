package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"anatomy-engine/internal/anatomy"
	"anatomy-engine/internal/resolve"
)

func fixture() []resolve.Resolved {
	mk := func(key string, typ anatomy.StructureType, layer int, x float64) resolve.Resolved {
		return resolve.Resolved{
			MeshName: key,
			Meta: &anatomy.StructureMetadata{
				Key: key, DisplayName: key, Type: typ, Layer: layer,
				Center: r3.Vec{X: x},
			},
		}
	}
	return []resolve.Resolved{
		mk("hip_bone_l", anatomy.Bone, 0, 0.1),
		mk("rectus_abdominis_l", anatomy.Muscle, 3, 0.05),
	}
}

func TestSweepJobs(t *testing.T) {
	jobs := SweepJobs(fixture())

	// Peel depths 0..MaxLayer plus one solo per present type.
	require.Len(t, jobs, anatomy.MaxLayer+1+2)
	assert.Equal(t, "peel_0", jobs[0].Name)
	assert.Equal(t, "peel_3", jobs[3].Name)
	assert.Equal(t, "only_bone", jobs[4].Name)
	assert.Equal(t, "only_muscle", jobs[5].Name)

	// Each job builds an independent state.
	st := jobs[3].State()
	assert.Equal(t, 3, st.PeelDepth())
	assert.Equal(t, 0, jobs[0].State().PeelDepth())

	solo := jobs[4].State()
	assert.True(t, solo.TypeVisible(anatomy.Bone))
	assert.False(t, solo.TypeVisible(anatomy.Muscle))
}

func TestRunWritesSnapshots(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		OutputDir:   dir,
		RenderSize:  32,
		Supersample: 1,
		Workers:     2,
	}
	jobs := SweepJobs(fixture())[:2]

	results := Run(cfg, fixture(), jobs)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Success, "job %s: %s", r.Name, r.Error)
		_, err := os.Stat(filepath.Join(dir, r.Name+".webp"))
		assert.NoError(t, err)
	}
}

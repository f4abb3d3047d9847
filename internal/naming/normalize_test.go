package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"rectus_abdominis", "rectus_abdominis"},
		{"Rectus_Abdominis", "rectus_abdominis"},
		{"rectus_abdominis_l", "rectus_abdominis"},
		{"Rectus_Abdominis_R", "rectus_abdominis"},
		// glTF duplicate numbering: "Muscle_B002" and "Muscle_B002_1"
		{"Muscle_B002", "muscle_b"},
		{"Muscle_B002_1", "muscle_b"},
		{"Bone_A001", "bone_a"},
		{"External_Oblique005_L", "external_oblique"},
		// parentheses from display-name style exports
		{"(Pectoralis_Major)_l", "pectoralis_major"},
		// underscore collapse and trim
		{"__serratus__anterior__", "serratus_anterior"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.raw), "Normalize(%q)", c.raw)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Rectus_Abdominis001_L",
		"Muscle_B002_1",
		"(weird)__Name003",
		"already_canonical",
		"hip_bone",
		"x0001y",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize not idempotent for %q", in)
	}
}

func TestSplitSide(t *testing.T) {
	base, side := SplitSide("rectus_abdominis_l")
	assert.Equal(t, "rectus_abdominis", base)
	assert.Equal(t, SideLeft, side)

	base, side = SplitSide("rectus_abdominis_r")
	assert.Equal(t, "rectus_abdominis", base)
	assert.Equal(t, SideRight, side)

	base, side = SplitSide("hip_bone")
	assert.Equal(t, "hip_bone", base)
	assert.Equal(t, SideSingle, side)

	// Origin markers read as left by convention.
	base, side = SplitSide("deltoid_origin_ol")
	assert.Equal(t, "deltoid_origin", base)
	assert.Equal(t, SideLeft, side)

	// "_er" endings are ordinary words, never merged as a side.
	base, side = SplitSide("greater_trochanter")
	assert.Equal(t, "greater_trochanter", base)
	assert.Equal(t, SideSingle, side)
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "left", SideLeft.String())
	assert.Equal(t, "right", SideRight.String())
	assert.Equal(t, "single", SideSingle.String())
}

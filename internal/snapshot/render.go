package snapshot

import (
	"image"
	"math"
	"sort"

	"anatomy-engine/internal/anatomy"
	"anatomy-engine/internal/resolve"
	"anatomy-engine/internal/visibility"
)

// typeColors is the schematic palette, roughly matching atlas
// conventions (bone ivory, muscle red, tendon pale, ligament green).
var typeColors = map[anatomy.StructureType][3]uint8{
	anatomy.Bone:      {230, 224, 204},
	anatomy.Muscle:    {178, 58, 58},
	anatomy.Organ:     {150, 90, 120},
	anatomy.Tendon:    {222, 202, 176},
	anatomy.Ligament:  {110, 160, 110},
	anatomy.Cartilage: {140, 170, 190},
	anatomy.Fascia:    {200, 190, 150},
	anatomy.Other:     {128, 128, 128},
}

// Render draws the resolved scene under the given visibility state
// into a size×size image, supersampled by ss and downsampled.
//
// Anterior orthographic view: the model faces the viewer, so the
// body's left (+X) lands on the viewer's right, and +Y is up. World Z
// (toward the viewer) painter-sorts the discs back to front.
func Render(resolved []resolve.Resolved, state *visibility.State, size, ss int) *image.NRGBA {
	if ss < 1 {
		ss = 1
	}
	w := size * ss
	canvas := NewCanvas(w, w)

	decisions := visibility.EvaluateAll(resolved, state)

	// Fit all centers (visible or not) so framing is stable across
	// peel levels.
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := range resolved {
		c := resolved[i].Meta.Center
		minX = math.Min(minX, -c.X)
		maxX = math.Max(maxX, -c.X)
		minY = math.Min(minY, c.Y)
		maxY = math.Max(maxY, c.Y)
	}
	if len(resolved) == 0 || minX > maxX {
		return Downsample(canvas.Image(), size)
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span <= 0 {
		span = 1
	}
	margin := 0.1 * span
	scale := float64(w) / (span + 2*margin)
	radius := math.Max(2, 0.015*float64(w))

	// Painter order: farthest from the viewer first.
	order := make([]int, len(resolved))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return resolved[order[a]].Meta.Center.Z < resolved[order[b]].Meta.Center.Z
	})

	for _, i := range order {
		d := decisions[i]
		if !d.Visible || d.Opacity <= 0 {
			continue
		}
		c := resolved[i].Meta.Center
		px := (-c.X - minX + margin) * scale
		py := (maxY - c.Y + margin) * scale
		col := typeColors[resolved[i].Meta.Type]
		drawDisc(canvas, px, py, radius, col, d.Opacity)
	}

	return Downsample(canvas.Image(), size)
}

// drawDisc rasterizes a filled antialiased circle.
func drawDisc(c *Canvas, cx, cy, r float64, col [3]uint8, alpha float64) {
	x0 := int(math.Floor(cx - r - 1))
	x1 := int(math.Ceil(cx + r + 1))
	y0 := int(math.Floor(cy - r - 1))
	y1 := int(math.Ceil(cy + r + 1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := math.Sqrt(dx*dx + dy*dy)
			// 1px soft edge
			cov := r + 0.5 - dist
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			c.Blend(x, y, col[0], col[1], col[2], alpha*cov)
		}
	}
}

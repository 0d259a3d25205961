// seehuhn.de/go/pathsprite - animate cut-out image regions along drawn paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cutter

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/pathsprite/geom"
)

func opaque(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestCutSquare(t *testing.T) {
	src := opaque(40, 40, color.RGBA{R: 200, G: 10, B: 10, A: 255})
	sel := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}

	c, ok := Cut(src, sel)
	require.True(t, ok)
	w, h := c.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)
	assert.Equal(t, geom.Pt(5, 5), c.Center)
	assert.Equal(t, 10.0, c.Bounds.Width)
	assert.Equal(t, 10.0, c.Bounds.Height)

	for y := range 10 {
		for x := range 10 {
			require.Equal(t, color.RGBA{R: 200, G: 10, B: 10, A: 255}, c.Image.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestCutDimensions(t *testing.T) {
	src := opaque(200, 200, color.RGBA{A: 255})
	cases := [][]geom.Point{
		{geom.Pt(20, 30), geom.Pt(90, 35), geom.Pt(60, 120)},
		{geom.Pt(100, 100), geom.Pt(140, 80), geom.Pt(170, 150), geom.Pt(120, 190), geom.Pt(90, 130)},
		{geom.Pt(5, 5), geom.Pt(6, 5), geom.Pt(6, 6)},
	}
	for _, sel := range cases {
		c, ok := Cut(src, sel)
		require.True(t, ok)
		box := geom.BoundingBox(sel)
		w, h := c.Size()
		assert.Equal(t, int(box.Width), w)
		assert.Equal(t, int(box.Height), h)
		assert.Equal(t, box.Center(), c.Center)
	}
}

func TestCutTriangleClips(t *testing.T) {
	src := opaque(50, 50, color.RGBA{G: 255, A: 255})
	sel := []geom.Point{geom.Pt(10, 10), geom.Pt(30, 10), geom.Pt(10, 30)}

	c, ok := Cut(src, sel)
	require.True(t, ok)
	assert.Equal(t, uint8(255), c.Image.RGBAAt(2, 2).A, "inside the triangle")
	assert.Equal(t, uint8(0), c.Image.RGBAAt(18, 18).A, "outside the triangle")

	// the local outline starts at the origin and is closed
	out := c.Bounds.Outline
	require.Len(t, out, 4)
	assert.Equal(t, geom.Pt(0, 0), out[0])
	assert.Equal(t, geom.Pt(20, 0), out[1])
	assert.Equal(t, out[0], out[3])
}

func TestCutTooShort(t *testing.T) {
	src := opaque(10, 10, color.RGBA{A: 255})
	for _, sel := range [][]geom.Point{nil, {geom.Pt(1, 1)}, {geom.Pt(1, 1), geom.Pt(5, 5)}} {
		c, ok := Cut(src, sel)
		assert.False(t, ok)
		assert.Nil(t, c)
	}
}

func TestCutIsPure(t *testing.T) {
	src := opaque(30, 30, color.RGBA{B: 255, A: 255})
	before := slices.Clone(src.Pix)
	sel := []geom.Point{geom.Pt(3, 3), geom.Pt(20, 4), geom.Pt(12, 25)}
	selBefore := slices.Clone(sel)

	c, ok := Cut(src, sel)
	require.True(t, ok)
	assert.Equal(t, before, src.Pix, "source modified")
	assert.Equal(t, selBefore, sel, "selection modified")

	// the cut-out owns its pixels
	c.Image.Pix[0] = 1
	assert.Equal(t, before, src.Pix)
}

func TestCutOutsideSource(t *testing.T) {
	src := opaque(10, 10, color.RGBA{R: 255, A: 255})
	sel := []geom.Point{geom.Pt(5, 5), geom.Pt(15, 5), geom.Pt(15, 15), geom.Pt(5, 15)}

	c, ok := Cut(src, sel)
	require.True(t, ok)
	assert.Equal(t, uint8(255), c.Image.RGBAAt(2, 2).A)
	assert.Equal(t, uint8(0), c.Image.RGBAAt(7, 7).A, "no source pixels there")
}

func TestCutMatchesPolygon(t *testing.T) {
	src := opaque(40, 40, color.RGBA{R: 255, G: 255, A: 255})
	var sel []geom.Point
	for i := range 6 {
		a := float64(i) * math.Pi / 3
		sel = append(sel, geom.Pt(20+15*math.Cos(a), 20+15*math.Sin(a)))
	}

	c, ok := Cut(src, sel)
	require.True(t, ok)
	box := geom.BoundingBox(sel)
	x0, y0 := math.Floor(box.MinX), math.Floor(box.MinY)

	w, h := c.Size()
	for y := range h {
		for x := range w {
			corners := []geom.Point{
				geom.Pt(x0+float64(x), y0+float64(y)),
				geom.Pt(x0+float64(x+1), y0+float64(y)),
				geom.Pt(x0+float64(x), y0+float64(y+1)),
				geom.Pt(x0+float64(x+1), y0+float64(y+1)),
			}
			in := 0
			for _, p := range corners {
				if geom.Contains(sel, p) {
					in++
				}
			}
			vertex := slices.ContainsFunc(sel, func(v geom.Point) bool {
				return v.X >= corners[0].X && v.X <= corners[3].X &&
					v.Y >= corners[0].Y && v.Y <= corners[3].Y
			})

			a := c.Image.RGBAAt(x, y).A
			switch {
			case in == 4:
				// the hexagon is convex, so the whole pixel is inside
				assert.Equal(t, uint8(255), a, "pixel (%d,%d)", x, y)
			case in == 0 && !vertex:
				assert.Equal(t, uint8(0), a, "pixel (%d,%d)", x, y)
			}
		}
	}
}

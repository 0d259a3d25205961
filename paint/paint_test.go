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

package paint

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/pathsprite/geom"
	"seehuhn.de/go/pathsprite/style"
)

func alphaAt(c *Canvas, x, y int) uint8 {
	return c.Img.RGBAAt(x, y).A
}

func TestLayout(t *testing.T) {
	img := image.Rect(0, 0, 200, 100)
	canvas := image.Rect(0, 0, 100, 100)
	cases := []struct {
		zoom int
		want image.Rectangle
	}{
		{100, image.Rect(0, 25, 100, 75)},
		{200, image.Rect(-50, 0, 150, 100)},
		{50, image.Rect(25, 37, 75, 62)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Layout(img, canvas, tc.zoom), "zoom %d", tc.zoom)
	}
	assert.True(t, Layout(image.Rectangle{}, canvas, 100).Empty())
}

func TestDrawBase(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	red := color.RGBA{R: 255, A: 255}
	draw.Draw(src, src.Rect, image.NewUniform(red), image.Point{}, draw.Src)

	c := NewCanvas(100, 100)
	c.Background = color.White
	c.DrawBase(src, 100)
	assert.Equal(t, red, c.Img.RGBAAt(50, 50))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c.Img.RGBAAt(50, 10))

	c.DrawBase(nil, 100)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c.Img.RGBAAt(50, 50))
}

// TestDoubleSeparation checks that the two rails of a double line are
// 2·t/1.5 apart.
func TestDoubleSeparation(t *testing.T) {
	for _, thickness := range []int{3, 6, 9} {
		c := NewCanvas(100, 60)
		cfg := style.Default()
		cfg.LineStyle = style.Double
		cfg.OutlineThickness = thickness
		c.StrokeStyledPath([]geom.Point{geom.Pt(10, 30), geom.Pt(90, 30)}, cfg, 0)

		var upper, lower, wu, wl float64
		for y := range 60 {
			a := float64(alphaAt(c, 50, y))
			yc := float64(y) + 0.5
			if yc < 30 {
				upper += a * yc
				wu += a
			} else {
				lower += a * yc
				wl += a
			}
		}
		require.NotZero(t, wu)
		require.NotZero(t, wl)
		sep := lower/wl - upper/wu
		want := 2 * float64(thickness) / 1.5
		assert.InDelta(t, want, sep, 0.05, "thickness %d", thickness)
		assert.Zero(t, alphaAt(c, 50, 30), "gap between the rails")
	}
}

func TestDoubleDegenerate(t *testing.T) {
	c := NewCanvas(40, 40)
	cfg := style.Default()
	cfg.LineStyle = style.Double
	c.StrokeStyledPath([]geom.Point{geom.Pt(10, 10), geom.Pt(10, 10)}, cfg, 0)
	for _, v := range c.Img.Pix {
		require.Zero(t, v)
	}
}

func TestSolidWidth(t *testing.T) {
	c := NewCanvas(100, 40)
	cfg := style.Default()
	cfg.OutlineThickness = 4
	c.StrokeStyledPath([]geom.Point{geom.Pt(10, 20), geom.Pt(90, 20)}, cfg, 0)
	for y := 18; y < 22; y++ {
		assert.Equal(t, uint8(255), alphaAt(c, 50, y), "row %d", y)
	}
	assert.Zero(t, alphaAt(c, 50, 17))
	assert.Zero(t, alphaAt(c, 50, 22))
	assert.Equal(t, color.RGBA{A: 255}, c.Img.RGBAAt(50, 20), "default colour is black")
}

func TestDashedPhase(t *testing.T) {
	cfg := style.Default()
	cfg.LineStyle = style.Dashed // [6, 4] for thickness 2
	pts := []geom.Point{geom.Pt(0, 20), geom.Pt(100, 20)}

	c := NewCanvas(100, 40)
	c.StrokeStyledPath(pts, cfg, 0)
	assert.Equal(t, uint8(255), alphaAt(c, 3, 20))
	assert.Zero(t, alphaAt(c, 8, 20))

	c = NewCanvas(100, 40)
	c.StrokeStyledPath(pts, cfg, 5)
	assert.Zero(t, alphaAt(c, 3, 20))
	assert.Equal(t, uint8(255), alphaAt(c, 7, 20))
}

func TestCrosshair(t *testing.T) {
	c := NewCanvas(100, 60)
	cfg := style.Default()
	cfg.OutlineColor = "#ff0000"
	cfg.OutlineThickness = 8
	cfg.LineStyle = style.Dotted // ignored
	c.Crosshair(geom.Pt(50, 30), cfg)

	assert.InDelta(t, 128, float64(alphaAt(c, 60, 29)), 2)
	assert.InDelta(t, 128, float64(alphaAt(c, 60, 30)), 2)
	assert.InDelta(t, 128, float64(alphaAt(c, 50, 15)), 2)
	assert.Zero(t, alphaAt(c, 60, 32), "1 pixel wide")
	assert.Zero(t, alphaAt(c, 75, 30), "arms end at 20")
	assert.Equal(t, uint8(128), c.Img.RGBAAt(60, 30).R, "premultiplied red")
}

func TestStrokeOutline(t *testing.T) {
	c := NewCanvas(100, 60)
	cfg := style.Default()
	square := geom.ClosePolygon([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)})
	c.StrokeOutline(square, geom.Pt(50, 30), cfg)

	assert.Equal(t, uint8(255), alphaAt(c, 44, 30))
	assert.Equal(t, uint8(255), alphaAt(c, 45, 30))
	assert.Equal(t, uint8(255), alphaAt(c, 54, 30))
	assert.Zero(t, alphaAt(c, 50, 30), "inside stays clear")
	assert.Zero(t, alphaAt(c, 5, 5), "not drawn at the original position")
}

func TestDrawCentered(t *testing.T) {
	sprite := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(sprite, sprite.Rect, image.NewUniform(color.RGBA{G: 255, A: 255}), image.Point{}, draw.Src)

	c := NewCanvas(20, 20)
	c.DrawCentered(sprite, geom.Pt(10, 10))
	assert.Equal(t, uint8(255), c.Img.RGBAAt(8, 8).G)
	assert.Equal(t, uint8(255), c.Img.RGBAAt(11, 11).G)
	assert.Zero(t, alphaAt(c, 12, 12))
	assert.Zero(t, alphaAt(c, 7, 7))

	c.DrawCentered(nil, geom.Pt(1, 1))
}

func TestPhase(t *testing.T) {
	var p Phase
	for range 10 {
		p.Advance(2)
	}
	assert.Zero(t, p.Offset)
	p.Advance(2)
	p.Advance(2)
	assert.Equal(t, 2.0, p.Offset)
	p.Reset()
	assert.Zero(t, p.Offset)
}

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

package pathsprite

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/pathsprite/cutter"
	"seehuhn.de/go/pathsprite/geom"
	"seehuhn.de/go/pathsprite/style"
)

func baseSnapshot(t *testing.T) Snapshot {
	sc := squareScene(t)
	return Snapshot{
		Width:  sc.Width,
		Height: sc.Height,
		Image:  sc.Image,
		Mode:   Selecting,
		Style:  style.Default(),
	}
}

func TestRenderPure(t *testing.T) {
	snap := baseSnapshot(t)
	snap.Mode = Animating
	snap.Path = []geom.Point{geom.Pt(5, 40), geom.Pt(60, 20), geom.Pt(110, 70)}
	path := slices.Clone(snap.Path)

	a := Render(snap)
	b := Render(snap)
	assert.Equal(t, a.Pix, b.Pix)
	assert.Equal(t, path, snap.Path)
}

func TestRenderBaseOnly(t *testing.T) {
	snap := baseSnapshot(t)
	img := Render(snap)
	assert.Equal(t, paperRGBA, img.RGBAAt(0, 0))
	assert.Equal(t, inkRGBA, img.RGBAAt(10, 0))
	assert.Equal(t, paperRGBA, img.RGBAAt(119, 79)) // cell (11, 7)
}

func TestRenderSelection(t *testing.T) {
	snap := baseSnapshot(t)
	snap.Selection = []geom.Point{geom.Pt(20, 20), geom.Pt(60, 20), geom.Pt(60, 60)}
	img := Render(snap)

	// the closing edge from (60, 60) back to (20, 20) is drawn in black
	c := img.RGBAAt(40, 40)
	assert.Less(t, int(c.R), 0x40)

	// without the selection the pixel shows the image
	snap.Selection = nil
	assert.NotEqual(t, c, Render(snap).RGBAAt(40, 40))
}

func TestRenderRestingPreview(t *testing.T) {
	snap := baseSnapshot(t)
	sc := squareScene(t)
	cut, ok := cutter.Cut(sc.Image, []geom.Point{
		geom.Pt(20, 20), geom.Pt(40, 20), geom.Pt(40, 40), geom.Pt(20, 40),
	})
	require.True(t, ok)
	snap.Mode = Animating
	snap.Cutout = cut

	img := Render(snap)
	plain := Render(Snapshot{
		Width: snap.Width, Height: snap.Height, Image: snap.Image,
		Mode: Animating, Style: snap.Style,
	})

	// crosshair arm, outside the outline
	assert.Less(t, img.RGBAAt(48, 30).R, plain.RGBAAt(48, 30).R)
	// outline edge
	assert.Less(t, img.RGBAAt(40, 25).R, plain.RGBAAt(40, 25).R)
	// far from the cut-out nothing changes
	assert.Equal(t, plain.RGBAAt(100, 70), img.RGBAAt(100, 70))

	// once a path exists, the preview is replaced by the path
	snap.Path = []geom.Point{geom.Pt(100, 70), geom.Pt(110, 70)}
	assert.Equal(t, plain.RGBAAt(48, 30), Render(snap).RGBAAt(48, 30))
}

func TestRenderInvalidStyle(t *testing.T) {
	snap := baseSnapshot(t)
	snap.Mode = Animating
	snap.Path = []geom.Point{geom.Pt(10, 40), geom.Pt(100, 40)}
	want := Render(snap)

	snap.Style.LineStyle = style.LineStyle(42)
	snap.Style.OutlineThickness = 0
	var got []uint8
	assert.NotPanics(t, func() { got = Render(snap).Pix })

	// invalid values fall back to a solid line, thickness clamped to 1
	snap.Style.LineStyle = style.Solid
	snap.Style.OutlineThickness = 1
	assert.Equal(t, Render(snap).Pix, got)
	assert.NotEqual(t, want.Pix, got)
}

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

package raster

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PaintRGBA returns an EmitFunc which composites c over dst, scaled by
// the coverage of each pixel.  Pixels outside dst are ignored.
func PaintRGBA(dst *image.RGBA, c color.Color) EmitFunc {
	sr, sg, sb, sa := c.RGBA() // premultiplied, 16 bit
	b := dst.Rect
	return func(y, xMin int, coverage []float32) {
		if y < b.Min.Y || y >= b.Max.Y {
			return
		}
		for i, cov := range coverage {
			x := xMin + i
			if x < b.Min.X || x >= b.Max.X || cov <= 0 {
				continue
			}
			m := uint32(min(cov, 1)*0xffff + 0.5)
			a := sa * m / 0xffff
			inv := 0xffff - a

			p := dst.Pix[dst.PixOffset(x, y):]
			p[0] = uint8((sr*m/0xffff + uint32(p[0])*0x101*inv/0xffff) >> 8)
			p[1] = uint8((sg*m/0xffff + uint32(p[1])*0x101*inv/0xffff) >> 8)
			p[2] = uint8((sb*m/0xffff + uint32(p[2])*0x101*inv/0xffff) >> 8)
			p[3] = uint8((a + uint32(p[3])*0x101*inv/0xffff) >> 8)
		}
	}
}

// MaskAlpha returns an EmitFunc which records coverage in dst.  Where
// several shapes overlap, the larger coverage wins.
func MaskAlpha(dst *image.Alpha) EmitFunc {
	b := dst.Rect
	return func(y, xMin int, coverage []float32) {
		if y < b.Min.Y || y >= b.Max.Y {
			return
		}
		for i, cov := range coverage {
			x := xMin + i
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			v := byte(max(0, min(255, int(cov*256))))
			off := dst.PixOffset(x, y)
			dst.Pix[off] = max(dst.Pix[off], v)
		}
	}
}

// Polyline returns an open path through pts.  A single point gives a
// zero-length line, so that round caps still draw a dot.
func Polyline(pts []vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		if len(pts) == 1 {
			yield(path.CmdLineTo, pts[:1])
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
	}
}

// Polygon returns the closed path through pts.
func Polygon(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.Close()
	return p
}

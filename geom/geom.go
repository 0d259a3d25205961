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

// Package geom holds the point-sequence geometry used for freehand paths and
// selection loops: bounding boxes, offset rails for double strokes and
// polygon closing.
//
// All coordinates are canvas pixels with the y axis pointing down.
package geom

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a pointer sample in canvas pixel space.
type Point = vec.Vec2

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY    float64
	Width, Height float64
}

// MaxX returns the right edge of the box.
func (b Box) MaxX() float64 { return b.MinX + b.Width }

// MaxY returns the bottom edge of the box.
func (b Box) MaxY() float64 { return b.MinY + b.Height }

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return Point{X: b.MinX + b.Width/2, Y: b.MinY + b.Height/2}
}

// BoundingBox returns the smallest box containing all points.
// For an empty slice the zero Box is returned.
func BoundingBox(pts []Point) Box {
	if len(pts) == 0 {
		return Box{}
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return Box{MinX: minX, MinY: minY, Width: maxX - minX, Height: maxY - minY}
}

// OffsetPolyline shifts every segment of pts sideways by distance.
//
// For each segment the normal is the segment angle plus π/2, and both
// endpoints are moved along it, so the result holds two points per segment.
// Calling it with +d and -d gives the two rails of a double stroke.
// Zero-length segments have no direction and are left out.
func OffsetPolyline(pts []Point, distance float64) []Point {
	if len(pts) < 2 {
		return nil
	}
	out := make([]Point, 0, 2*(len(pts)-1))
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		if math.Hypot(dx, dy) < zeroLength {
			continue
		}
		angle := math.Atan2(dy, dx) + math.Pi/2
		off := Point{X: distance * math.Cos(angle), Y: distance * math.Sin(angle)}
		out = append(out, a.Add(off), b.Add(off))
	}
	return out
}

// ClosePolygon returns pts with the first point repeated at the end,
// unless the sequence is already closed. The input is not modified.
func ClosePolygon(pts []Point) []Point {
	out := make([]Point, len(pts), len(pts)+1)
	copy(out, pts)
	if len(pts) > 1 && pts[0] != pts[len(pts)-1] {
		out = append(out, pts[0])
	}
	return out
}

// Translate returns a copy of pts moved by (dx, dy).
func Translate(pts []Point, dx, dy float64) []Point {
	out := make([]Point, len(pts))
	d := Point{X: dx, Y: dy}
	for i, p := range pts {
		out[i] = p.Add(d)
	}
	return out
}

// Contains reports whether p lies inside the implicitly closed polygon,
// using the even-odd rule.
func Contains(poly []Point, p Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := range n {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// zeroLength is the shortest segment that still has a usable direction.
const zeroLength = 1e-10

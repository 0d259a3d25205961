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

// Package scenes provides ready-made editing sessions: an image, a
// selection loop, an animation path and a style.  They are used by the
// tests and by the demo command.
package scenes

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"seehuhn.de/go/pathsprite/anim"
	"seehuhn.de/go/pathsprite/geom"
	"seehuhn.de/go/pathsprite/style"
)

// Scene is one scripted editing session.
type Scene struct {
	Name          string // lowercase a-z and _ only
	Width, Height int    // canvas size
	Image         image.Image
	Selection     []geom.Point // loop drawn in selection mode
	Path          []geom.Point // path drawn in animation mode
	Style         style.Config
	Mode          anim.RenderMode
}

// Frames returns the number of frames a playback of the scene draws.
func (s Scene) Frames() int {
	return len(s.Path) * s.Style.Loop.Iterations()
}

// Checker returns a w×h checkerboard with the given cell size.
func Checker(w, h, cell int, a, b color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ua, ub := image.NewUniform(a), image.NewUniform(b)
	for y := 0; y < h; y += cell {
		for x := 0; x < w; x += cell {
			src := ua
			if (x/cell+y/cell)%2 == 1 {
				src = ub
			}
			draw.Draw(img, image.Rect(x, y, x+cell, y+cell).Intersect(img.Rect), src, image.Point{}, draw.Src)
		}
	}
	return img
}

// Gradient returns a w×h image which shades from one colour on the left
// to another on the right.
func Gradient(w, h int, from, to color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	lerp := func(a, b uint8, t float64) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	for x := range w {
		t := float64(x) / float64(max(w-1, 1))
		c := color.RGBA{
			R: lerp(from.R, to.R, t),
			G: lerp(from.G, to.G, t),
			B: lerp(from.B, to.B, t),
			A: lerp(from.A, to.A, t),
		}
		for y := range h {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Line returns n points evenly spaced from a to b, both included.
func Line(a, b geom.Point, n int) []geom.Point {
	if n < 2 {
		return []geom.Point{a}
	}
	pts := make([]geom.Point, n)
	for i := range pts {
		t := float64(i) / float64(n-1)
		pts[i] = a.Add(b.Sub(a).Mul(t))
	}
	return pts
}

// Circle returns n points on a circle, counter-clockwise on screen,
// starting at angle 0.  The loop is not closed.
func Circle(cx, cy, r float64, n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Pt(cx+r*math.Cos(a), cy-r*math.Sin(a))
	}
	return pts
}

// Wave returns n points on a sine wave from x0 to x1 around height y.
func Wave(x0, x1, y, amplitude, periods float64, n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		t := float64(i) / float64(max(n-1, 1))
		x := x0 + (x1-x0)*t
		pts[i] = geom.Pt(x, y+amplitude*math.Sin(2*math.Pi*periods*t))
	}
	return pts
}

// Rect returns the four corners of an axis-aligned rectangle.
func Rect(x0, y0, x1, y1 float64) []geom.Point {
	return []geom.Point{geom.Pt(x0, y0), geom.Pt(x1, y0), geom.Pt(x1, y1), geom.Pt(x0, y1)}
}

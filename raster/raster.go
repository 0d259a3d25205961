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

// Package raster turns polygons and polylines into anti-aliased pixel
// coverage.
//
// Coverage is delivered row by row to an emit callback, which lets the
// caller composite it into whatever target it owns: a colour canvas (see
// [PaintRGBA]) or a clip mask (see [MaskAlpha]).
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row, starting at column xMin.
// Values range from 0 (not covered) to 1 (fully covered). The slice is only
// valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device space.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope, for x-intercepts
}

// Rasterizer computes pixel coverage for filled and stroked paths.
// Scratch buffers are kept between calls, so a single Rasterizer
// should be reused for all drawing on one canvas.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip limits output to an integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at the open ends of a stroke.
	Cap graphics.LineCapStyle

	// Join is the style used where two stroke segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins. At least 1.
	MiterLimit float64

	// Dash lists alternating on and off lengths in user space.
	// A nil Dash strokes a continuous line.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which
	// each subpath starts.
	DashPhase float64

	// bufferLimit is the largest bounding box area (in pixels) which
	// is rasterised with full-size 2D buffers. Larger shapes are
	// processed one scanline at a time with an active edge list.
	bufferLimit int

	cover   []float32 // per-pixel change of winding, reused for output
	area    []float32 // per-pixel partial area
	edges   []edge
	active  []int
	touched []bool // per-row flag for the 2D buffer approach

	outline       []vec.Vec2 // stroke outline vertices, all polygons contiguous
	outlineStarts []int

	segs      []segment
	segStarts []int
	segClosed []bool
	dots      []vec.Vec2 // subpaths without any direction
	rev       []segment  // scratch for reversed
	dashes    []segment
	dashSpans []span

	bboxEmpty bool
	bboxX0    float64
	bboxX1    float64
	bboxY0    float64
	bboxY1    float64
}

// NewRasterizer returns a Rasterizer for the given clip rectangle.
// All other settings start out with the PostScript defaults:
// identity CTM, width 1, butt caps and miter joins.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,

		bufferLimit: bufferLimit,
	}
}

// Reset restores the default drawing state and sets a new clip rectangle.
// Scratch buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
}

// toDevice applies the CTM to a point.
func (r *Rasterizer) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the length of v after applying the linear part
// of the CTM.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

// flattenQuad splits a quadratic Bézier curve into line segments.
func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, q)
		prev = q
	}
}

// flattenCubic splits a cubic Bézier curve into line segments.
// The segment count follows Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, q)
		prev = q
	}
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.fill(p, nonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.fill(p, evenOdd, emit)
}

type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

func (r *Rasterizer) fill(p *path.Data, rule fillRule, emit EmitFunc) {
	r.startEdges()
	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	r.scan(rule, emit)
}

// startEdges empties the edge list before a new shape is collected.
func (r *Rasterizer) startEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge appends the device-space image of the user-space segment a-b.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	a = r.toDevice(a)
	b = r.toDevice(b)

	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalThreshold {
		return // horizontal edges do not change the winding
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if r.bboxEmpty {
		r.bboxX0, r.bboxX1 = min(a.X, b.X), max(a.X, b.X)
		r.bboxY0, r.bboxY1 = min(a.Y, b.Y), max(a.Y, b.Y)
		r.bboxEmpty = false
		return
	}
	r.bboxX0 = min(r.bboxX0, a.X, b.X)
	r.bboxX1 = max(r.bboxX1, a.X, b.X)
	r.bboxY0 = min(r.bboxY0, a.Y, b.Y)
	r.bboxY1 = max(r.bboxY1, a.Y, b.Y)
}

// pixelBounds converts the edge bounding box into an integer pixel range,
// clamped to the clip rectangle.
func (r *Rasterizer) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bboxX0)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxX1))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxY0)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxY1))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// scan rasterises the collected edges, choosing between the two scan
// strategies by the size of the shape.
func (r *Rasterizer) scan(rule fillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.bufferLimit {
		r.scanBuffered(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.scanActive(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// The accumulation model keeps two numbers per pixel:
//
//	cover: the signed vertical extent of edges crossing the pixel
//	area:  the same extent, weighted by how far left within the pixel
//	       the crossing happens
//
// Walking a row from left to right, the coverage of a pixel is the running
// sum of cover over all pixels to its left, plus its own area.  Edges going
// down count positive, edges going up count negative.

// accumulate adds the part of e inside scanline y to the row buffers.
// The buffers are indexed by x - x0 and cover the columns [x0, x1).
func (r *Rasterizer) accumulate(e *edge, y int, cover, area []float32, x0, x1 int) {
	top := max(float64(y), min(e.y0, e.y1))
	bot := min(float64(y+1), max(e.y0, e.y1))
	if bot <= top {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(top-e.y0)
	xb := e.x0 + e.dxdy*(bot-e.y0)
	left, right := min(xa, xb), max(xa, xb)
	pl := int(math.Floor(left))
	pr := int(math.Floor(right))

	if pr < x0 {
		// entirely left of the buffer: full coverage change at column 0
		c := sign * float32(bot-top)
		cover[0] += c
		area[0] += c
		return
	}
	if pl >= x1 {
		return
	}

	if pl == pr {
		r.addCell(e, top, bot, sign, pl, cover, area, x0, x1)
		return
	}

	// the edge crosses several columns; visit each in turn
	dydx := 1 / e.dxdy
	for px := pl; px <= pr; px++ {
		ya := e.y0 + dydx*(float64(px)-e.x0)
		yb := e.y0 + dydx*(float64(px+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bot)
		if hi <= lo {
			continue
		}
		r.addCell(e, lo, hi, sign, px, cover, area, x0, x1)
	}
}

// addCell records the part of e between lo and hi, which lies within
// pixel column px.
func (r *Rasterizer) addCell(e *edge, lo, hi float64, sign float32, px int, cover, area []float32, x0, x1 int) {
	c := sign * float32(hi-lo)
	switch {
	case px < x0:
		cover[0] += c
		area[0] += c
	case px < x1:
		xm := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		frac := xm - float64(px)
		i := px - x0
		cover[i] += c
		area[i] += c * float32(1-frac)
	}
}

// integrate turns a row of cover/area values into coverage, in place.
func integrate(cover, area []float32, rule fillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == nonZero {
			cover[i] = min(raw, 1)
			continue
		}
		m := raw - 2*float32(int(raw/2))
		d := 1 - m
		if d < 0 {
			d = -d
		}
		cover[i] = 1 - d
	}
}

// emitTrimmed passes the non-zero part of a row to emit.
func emitTrimmed(y, x0 int, row []float32, emit EmitFunc) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo < hi {
		emit(y, x0+lo, row[lo:hi])
	}
}

// scanBuffered rasterises using one buffer cell per pixel of the bounding
// box.  Every edge is visited once.
func (r *Rasterizer) scanBuffered(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	w, h := xMax-xMin, yMax-yMin
	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.touched = slices.Grow(r.touched[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.touched)

	for i := range r.edges {
		e := &r.edges[i]
		first := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		last := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := first; y < last; y++ {
			row := y - yMin
			off := row * w
			r.accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			r.touched[row] = true
		}
	}

	for row := range h {
		if !r.touched[row] {
			continue
		}
		off := row * w
		line := r.cover[off : off+w]
		integrate(line, r.area[off:off+w], rule)
		emitTrimmed(yMin+row, xMin, line, emit)
	}
}

// scanActive rasterises one scanline at a time, keeping a list of the
// edges which intersect the current line.
func (r *Rasterizer) scanActive(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < bot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		hit := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= top {
				// finished: swap-remove
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			hit = true
			i++
		}
		if !hit {
			continue
		}

		integrate(r.cover, r.area, rule)
		emitTrimmed(y, xMin, r.cover, emit)
	}
}

const (
	// defaultFlatness is the default curve tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PostScript default, which turns
	// miters into bevels below about 11.5 degrees.
	defaultMiterLimit = 10.0

	// bufferLimit is the default for Rasterizer.bufferLimit.
	bufferLimit = 65536

	// horizontalThreshold is the smallest vertical extent of an edge
	// which is not treated as horizontal.
	horizontalThreshold = 1e-10

	// zeroLength is the shortest stroke segment that is kept.
	zeroLength = 1e-10

	// collinear is the |sin θ| below which two segments count as
	// going in the same direction.
	collinear = 1e-6

	// cuspCosine detects segments that turn back on themselves
	// (about 179.4 degrees).
	cuspCosine = -0.9999
)

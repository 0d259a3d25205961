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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a straight piece of a flattened path, in user space.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T turned by +90°
}

// span is a half-open index range into Rasterizer.dashes.
type span struct {
	lo, hi int
}

// Stroke paints the outline of p, using Width, Cap, Join, MiterLimit,
// Dash and DashPhase.
//
// The stroke is converted into a set of outline polygons which are then
// filled together with the nonzero rule, so that overlapping parts of the
// stroke are painted only once.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	r.flatten(p)
	if len(r.segStarts) == 0 && len(r.dots) == 0 {
		return
	}

	r.outline = r.outline[:0]
	r.outlineStarts = r.outlineStarts[:0]
	d := r.Width / 2

	// Subpaths without any direction only show up with round caps.
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			start := len(r.outline)
			r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.endPolygon(start)
		}
	}

	if dashPeriod(r.Dash) > 0 {
		r.strokeDashes(d)
	} else {
		for i := range r.segStarts {
			segs := r.subpath(i)
			if r.segClosed[i] {
				r.strokeClosed(segs, d)
			} else {
				r.strokeOpen(segs, d)
			}
		}
	}

	r.fillOutline(emit)
}

// flatten converts p into line segments, grouped by subpath.
func (r *Rasterizer) flatten(p path.Path) {
	r.segs = r.segs[:0]
	r.segStarts = r.segStarts[:0]
	r.segClosed = r.segClosed[:0]
	r.dots = r.dots[:0]

	var cur, first vec.Vec2
	begin := 0
	open := false // inside a subpath
	drew := false // the subpath has a drawing command

	finish := func(closed bool) {
		switch {
		case len(r.segs) > begin:
			r.segStarts = append(r.segStarts, begin)
			r.segClosed = append(r.segClosed, closed)
		case drew || closed:
			r.dots = append(r.dots, first)
		}
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			cur = pts[0]
			first = cur
			begin = len(r.segs)
			open = true
			drew = false

		case path.CmdLineTo:
			if !open {
				continue
			}
			drew = true
			r.addSegment(cur, pts[0])
			cur = pts[0]

		case path.CmdQuadTo:
			if !open {
				continue
			}
			drew = true
			r.flattenQuad(cur, pts[0], pts[1], r.addSegment)
			cur = pts[1]

		case path.CmdCubeTo:
			if !open {
				continue
			}
			drew = true
			r.flattenCubic(cur, pts[0], pts[1], pts[2], r.addSegment)
			cur = pts[2]

		case path.CmdClose:
			if !open {
				continue
			}
			if cur != first {
				r.addSegment(cur, first)
			}
			finish(true)
			cur = first
			begin = len(r.segs)
			open = false
			drew = false
		}
	}
	if open {
		finish(false)
	}
}

// addSegment appends a-b to the flattened path, unless it has zero length.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLength {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// subpath returns the segments of flattened subpath i.
func (r *Rasterizer) subpath(i int) []segment {
	end := len(r.segs)
	if i+1 < len(r.segStarts) {
		end = r.segStarts[i+1]
	}
	return r.segs[r.segStarts[i]:end]
}

// reversed returns segs in opposite order and direction.  The result
// lives in a scratch buffer which is overwritten by the next call.
func (r *Rasterizer) reversed(segs []segment) []segment {
	r.rev = r.rev[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		r.rev = append(r.rev, segment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)})
	}
	return r.rev
}

// endPolygon keeps the outline polygon which starts at index start,
// or drops it if it has fewer than three vertices.
func (r *Rasterizer) endPolygon(start int) {
	if len(r.outline)-start >= 3 {
		r.outlineStarts = append(r.outlineStarts, start)
	} else {
		r.outline = r.outline[:start]
	}
}

// strokeOpen builds one polygon around an open subpath: the start cap,
// the +N side, the end cap, and then the +N side of the reversed path
// (which is the -N side of the original).
func (r *Rasterizer) strokeOpen(segs []segment, d float64) {
	if len(segs) == 0 {
		return
	}
	first, last := segs[0], segs[len(segs)-1]

	start := len(r.outline)
	r.addCap(first.A, first.T.Mul(-1), d)
	r.openSide(segs, d)
	r.addCap(last.B, last.T, d)
	r.openSide(r.reversed(segs), d)
	r.endPolygon(start)
}

// strokeClosed builds two rings around a closed subpath.  The rings run
// in opposite directions, so that the nonzero rule leaves the inside of
// the loop unpainted.
func (r *Rasterizer) strokeClosed(segs []segment, d float64) {
	if len(segs) == 0 {
		return
	}
	start := len(r.outline)
	r.closedSide(segs, d)
	r.endPolygon(start)

	start = len(r.outline)
	r.closedSide(r.reversed(segs), d)
	r.endPolygon(start)
}

// cross returns the z-component of the cross product of a and b.
// It is positive when b turns towards the +N side of a.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// openSide adds the offset vertices on the +N side of an open polyline.
func (r *Rasterizer) openSide(segs []segment, d float64) {
	skip := false
	for i := range segs {
		s := &segs[i]
		if !skip {
			r.outline = append(r.outline, s.A.Add(s.N.Mul(d)))
		}
		skip = false

		if i == len(segs)-1 {
			r.outline = append(r.outline, s.B.Add(s.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		sin := cross(s.T, next.T)
		switch {
		case math.Abs(sin) < collinear:
			r.outline = append(r.outline, s.B.Add(s.N.Mul(d)))
		case sin > 0:
			// +N is the inner side of this corner
			skip = r.innerCorner(s.B, s, next, d)
		default:
			r.outline = append(r.outline, s.B.Add(s.N.Mul(d)))
			r.addJoin(s.B, s.T, next.T, d)
		}
	}
}

// closedSide adds the offset ring on the +N side of a closed polyline.
// Every corner, including the one where the last segment meets the first,
// is handled the same way.
func (r *Rasterizer) closedSide(segs []segment, d float64) {
	n := len(segs)
	for i := range n {
		s, next := &segs[i], &segs[(i+1)%n]
		sin := cross(s.T, next.T)
		switch {
		case math.Abs(sin) < collinear:
			r.outline = append(r.outline, s.B.Add(s.N.Mul(d)), next.A.Add(next.N.Mul(d)))
		case sin > 0:
			r.innerCorner(s.B, s, next, d)
		default:
			r.outline = append(r.outline, s.B.Add(s.N.Mul(d)))
			r.addJoin(s.B, s.T, next.T, d)
			r.outline = append(r.outline, next.A.Add(next.N.Mul(d)))
		}
	}
}

// innerCorner adds the vertex where the two +N offset lines meet at P.
// If the intersection is further from P than either segment is long, or
// cannot be computed, the outline instead goes through both offset points
// and P itself.  The result reports whether the intersection was used, in
// which case the offset start point of next must be omitted.
func (r *Rasterizer) innerCorner(P vec.Vec2, s, next *segment, d float64) bool {
	cos := s.T.Dot(next.T)
	half := math.Sqrt((1 + cos) / 2) // cos(θ/2)
	dir := s.N.Add(next.N)
	l := dir.Length()
	if cos > 1-1e-9 || half < 1e-9 || l < 1e-9 ||
		d > half*min(s.B.Sub(s.A).Length(), next.B.Sub(next.A).Length()) {
		r.outline = append(r.outline, P.Add(s.N.Mul(d)), P, P.Add(next.N.Mul(d)))
		return false
	}
	r.outline = append(r.outline, P.Add(dir.Mul(d/(half*l))))
	return true
}

// addCap adds the end cap at P.  T points away from the line.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		tip := P.Add(T.Mul(d))
		r.outline = append(r.outline, tip.Add(N.Mul(d)), tip.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	}
	// butt caps need no extra vertices
}

// addJoin adds the outer join at P, where the direction changes from
// T1 to T2.  The offset point on the T1 side has already been added.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cos := T1.Dot(T2)
	sin := cross(T1, T2)
	if math.Abs(sin) < collinear {
		return
	}
	if cos < cuspCosine {
		// the path turns back on itself: two caps instead of a join
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
	switch r.Join {
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/sin(φ/2), where
		// φ is the angle between the two stroke edges, and sin(φ/2) equals
		// cos(θ/2) for the turning angle θ.
		half := math.Sqrt((1 + cos) / 2)
		if half <= 0 || 1/half > r.MiterLimit+1e-10 {
			return // bevel
		}
		bis := N1.Add(N2)
		if l := bis.Length(); l > zeroLength {
			r.outline = append(r.outline, P.Add(bis.Mul(d/(half*l))))
		}

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		if sin < 0 {
			angle = -angle
		}
		r.addArc(P, d, N1, angle, false)
	}
	// bevel joins need no extra vertices
}

// addArc adds vertices along a circular arc around c, starting in
// direction from and turning by sweep radians.  If withStart is false,
// the start point is assumed to be present already.
func (r *Rasterizer) addArc(c vec.Vec2, radius float64, from vec.Vec2, sweep float64, withStart bool) {
	devR := max(r.deviceLength(vec.Vec2{X: radius}), r.deviceLength(vec.Vec2{Y: radius}))

	// A chord spanning angle α deviates from the circle by
	// radius·(1 - cos(α/2)); choose α so this equals the flatness.
	n := 1
	if devR >= r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devR)
		if !(step > 0) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if withStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		a := sweep * float64(i) / float64(n)
		sin, cos := math.Sincos(a)
		dir := vec.Vec2{X: from.X*cos - from.Y*sin, Y: from.X*sin + from.Y*cos}
		r.outline = append(r.outline, c.Add(dir.Mul(radius)))
	}
}

// addSquare adds a square of side 2d, centred at c and aligned with T.
// It is used for zero-length dashes with square caps.
func (r *Rasterizer) addSquare(c, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	t, n := T.Mul(d), N.Mul(d)
	r.outline = append(r.outline,
		c.Add(t).Add(n),
		c.Add(t).Sub(n),
		c.Sub(t).Sub(n),
		c.Sub(t).Add(n),
	)
}

// dashPeriod returns the length of one full repetition of the dash
// pattern.  Odd-length patterns repeat twice per period, so that on and
// off alternate.
func dashPeriod(dash []float64) float64 {
	total := 0.0
	for _, l := range dash {
		total += l
	}
	if len(dash)%2 == 1 {
		total *= 2
	}
	return total
}

// strokeDashes splits the flattened subpaths into dashes and strokes
// each dash as an open polyline.
func (r *Rasterizer) strokeDashes(d float64) {
	r.splitDashes()
	for _, sp := range r.dashSpans {
		if sp.hi <= sp.lo {
			continue
		}
		segs := r.dashes[sp.lo:sp.hi]
		if len(segs) == 1 && segs[0].A == segs[0].B {
			// a zero-length dash keeps the direction of the path under it
			s := segs[0]
			start := len(r.outline)
			switch r.Cap {
			case graphics.LineCapRound:
				r.addArc(s.A, d, vec.Vec2{X: 1}, 2*math.Pi, true)
			case graphics.LineCapSquare:
				r.addSquare(s.A, s.T, d)
			}
			r.endPolygon(start)
			continue
		}
		r.strokeOpen(segs, d)
	}
}

// splitDashes cuts every flattened subpath into the "on" parts of the
// dash pattern.  The results are stored in r.dashes, with one span per
// dash in r.dashSpans.
func (r *Rasterizer) splitDashes() {
	r.dashes = r.dashes[:0]
	r.dashSpans = r.dashSpans[:0]

	pattern := r.Dash
	L := len(pattern)
	period := dashPeriod(pattern)
	phase := math.Mod(r.DashPhase, period)
	if phase < 0 {
		phase += period
	}

	for sp := range r.segStarts {
		segs := r.subpath(sp)
		closed := r.segClosed[sp]

		// find the pattern element at the start of the subpath
		k := 0
		pos := phase
		for pos >= pattern[k%L] && pattern[k%L] > 0 {
			pos -= pattern[k%L]
			k++
		}
		left := pattern[k%L] - pos // length remaining in element k
		on := k%2 == 0

		if on && left == 0 {
			// zero-length dash right at the start
			s := segs[0]
			r.dashSpans = append(r.dashSpans, span{len(r.dashes), len(r.dashes) + 1})
			r.dashes = append(r.dashes, segment{A: s.A, B: s.A, T: s.T, N: s.N})
			k++
			left = pattern[k%L]
			on = k%2 == 0
		}

		startedOn := on
		firstDash := -1 // index into r.dashSpans of the first complete dash
		pieceStart := len(r.dashes)

		si := 0
		along := 0.0
		for si < len(segs) {
			s := segs[si]
			v := s.B.Sub(s.A)
			segLen := v.Length()
			rest := segLen - along

			if left >= rest {
				// the current element extends past the end of this segment
				if on {
					a := s.A
					if along > 0 {
						a = s.A.Add(v.Mul(along / segLen))
					}
					r.dashes = append(r.dashes, segment{A: a, B: s.B, T: s.T, N: s.N})
				}
				left -= rest
				si++
				along = 0
				continue
			}

			end := along + left
			if on {
				a := s.A.Add(v.Mul(along / segLen))
				b := s.A.Add(v.Mul(end / segLen))
				switch {
				case b.Sub(a).Length() > zeroLength:
					r.dashes = append(r.dashes, segment{A: a, B: b, T: s.T, N: s.N})
				case len(r.dashes) == pieceStart:
					r.dashes = append(r.dashes, segment{A: a, B: a, T: s.T, N: s.N})
				}
				if len(r.dashes) > pieceStart {
					if firstDash < 0 {
						firstDash = len(r.dashSpans)
					}
					r.dashSpans = append(r.dashSpans, span{pieceStart, len(r.dashes)})
					pieceStart = len(r.dashes)
				}
			}
			along = end
			k++
			left = pattern[k%L]
			on = k%2 == 0
		}

		if len(r.dashes) > pieceStart {
			if closed && startedOn && on && firstDash >= 0 {
				// The last dash runs over the start of a closed subpath:
				// join it with the first dash into a single piece.
				first := r.dashSpans[firstDash]
				for i := first.lo; i < first.hi; i++ {
					r.dashes = append(r.dashes, r.dashes[i])
				}
				r.dashSpans[firstDash] = span{}
			}
			r.dashSpans = append(r.dashSpans, span{pieceStart, len(r.dashes)})
		}
	}
}

// fillOutline fills all outline polygons collected by Stroke as one
// compound shape, using the nonzero rule.
func (r *Rasterizer) fillOutline(emit EmitFunc) {
	r.startEdges()
	for i, lo := range r.outlineStarts {
		hi := len(r.outline)
		if i+1 < len(r.outlineStarts) {
			hi = r.outlineStarts[i+1]
		}
		poly := r.outline[lo:hi]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(nonZero, emit)
}

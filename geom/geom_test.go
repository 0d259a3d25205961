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

package geom

import (
	"math"
	"testing"
)

func TestBoundingBox(t *testing.T) {
	cases := []struct {
		name string
		pts  []Point
		want Box
	}{
		{"empty", nil, Box{}},
		{"single", []Point{Pt(3, 4)}, Box{MinX: 3, MinY: 4}},
		{"square", []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}, Box{Width: 10, Height: 10}},
		{"negative", []Point{Pt(-5, 2), Pt(7, -3), Pt(1, 9)}, Box{MinX: -5, MinY: -3, Width: 12, Height: 12}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BoundingBox(tc.pts)
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestBoxCenter(t *testing.T) {
	b := BoundingBox([]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)})
	if c := b.Center(); c != Pt(5, 5) {
		t.Errorf("center %v, want (5,5)", c)
	}
	if b.MaxX() != 10 || b.MaxY() != 10 {
		t.Errorf("max (%g,%g), want (10,10)", b.MaxX(), b.MaxY())
	}
}

// TestOffsetSymmetry checks that the +d and -d rails are mirror images
// around the original polyline.
func TestOffsetSymmetry(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(30, 10), Pt(45, 40), Pt(20, 70), Pt(-10, 65)}
	const d = 4.0
	plus := OffsetPolyline(pts, d)
	minus := OffsetPolyline(pts, -d)
	if len(plus) != 2*(len(pts)-1) || len(minus) != len(plus) {
		t.Fatalf("got %d and %d points, want %d", len(plus), len(minus), 2*(len(pts)-1))
	}
	const eps = 1e-9
	for i := range plus {
		orig := pts[(i+1)/2]
		mid := plus[i].Add(minus[i]).Mul(0.5)
		if mid.Sub(orig).Length() > eps {
			t.Errorf("point %d: midpoint %v, want %v", i, mid, orig)
		}
		if dist := plus[i].Sub(orig).Length(); math.Abs(dist-d) > eps {
			t.Errorf("point %d: offset distance %g, want %g", i, dist, d)
		}
	}
}

func TestOffsetHorizontal(t *testing.T) {
	pts := []Point{Pt(10, 20), Pt(50, 20)}
	plus := OffsetPolyline(pts, 4)
	minus := OffsetPolyline(pts, -4)
	const eps = 1e-9
	if math.Abs(plus[0].Y-24) > eps || math.Abs(minus[0].Y-16) > eps {
		t.Errorf("rails at y=%g and y=%g, want 24 and 16", plus[0].Y, minus[0].Y)
	}
	if sep := plus[1].Y - minus[1].Y; math.Abs(sep-8) > eps {
		t.Errorf("separation %g, want 8", sep)
	}
}

func TestOffsetDegenerate(t *testing.T) {
	pts := []Point{Pt(5, 5), Pt(5, 5), Pt(15, 5), Pt(15, 5)}
	out := OffsetPolyline(pts, 2)
	if len(out) != 2 {
		t.Fatalf("got %d points, want 2", len(out))
	}
	for _, p := range out {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			t.Errorf("non-finite point %v", p)
		}
	}

	if out := OffsetPolyline([]Point{Pt(1, 1), Pt(1, 1)}, 3); len(out) != 0 {
		t.Errorf("all-degenerate input gave %v", out)
	}
	if out := OffsetPolyline([]Point{Pt(1, 1)}, 3); out != nil {
		t.Errorf("single point gave %v", out)
	}
}

func TestClosePolygon(t *testing.T) {
	open := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	closed := ClosePolygon(open)
	if len(closed) != 4 || closed[3] != open[0] {
		t.Errorf("got %v", closed)
	}
	if len(open) != 3 {
		t.Errorf("input modified: %v", open)
	}

	again := ClosePolygon(closed)
	if len(again) != 4 {
		t.Errorf("closing a closed polygon added points: %v", again)
	}
}

func TestContains(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	if !Contains(square, Pt(5, 5)) {
		t.Error("center not inside")
	}
	if Contains(square, Pt(15, 5)) {
		t.Error("outside point reported inside")
	}
	if Contains(square[:2], Pt(5, 0)) {
		t.Error("two-point polygon has an inside")
	}
}

func TestTranslate(t *testing.T) {
	pts := []Point{Pt(1, 2), Pt(3, 4)}
	out := Translate(pts, -1, -2)
	if out[0] != Pt(0, 0) || out[1] != Pt(2, 2) {
		t.Errorf("got %v", out)
	}
	if pts[0] != Pt(1, 2) {
		t.Error("input modified")
	}
}

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

// Package paint draws the visible layers of the editor onto an RGBA
// canvas: the zoomed base image, styled paths and outlines, the crosshair
// of the resting preview, and cut-out sprites.
package paint

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pathsprite/geom"
	"seehuhn.de/go/pathsprite/raster"
	"seehuhn.de/go/pathsprite/style"
)

// CrosshairHalfLength is the length of each arm of the crosshair.
const CrosshairHalfLength = 20

// Canvas is a drawing surface of fixed size.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	Img *image.RGBA

	// Background fills the canvas before the base image is drawn.
	// Nil means transparent.
	Background color.Color

	r    *raster.Rasterizer
	clip rect.Rect
}

// NewCanvas allocates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{
		Img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		r:    raster.NewRasterizer(clip),
		clip: clip,
	}
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return c.Img.Rect
}

// Clear fills the canvas with the background.
func (c *Canvas) Clear() {
	bg := c.Background
	if bg == nil {
		bg = color.Transparent
	}
	draw.Draw(c.Img, c.Img.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
}

// Layout returns where an image of the given size is placed on the
// canvas: scaled to fit inside the canvas, then by zoom percent, and
// centred.  It is cheap, and callers compute it afresh for every draw.
func Layout(img, canvas image.Rectangle, zoom int) image.Rectangle {
	iw, ih := float64(img.Dx()), float64(img.Dy())
	cw, ch := float64(canvas.Dx()), float64(canvas.Dy())
	if iw <= 0 || ih <= 0 || cw <= 0 || ch <= 0 {
		return image.Rectangle{}
	}
	scale := min(cw/iw, ch/ih) * float64(zoom) / 100
	w := max(int(math.Round(iw*scale)), 1)
	h := max(int(math.Round(ih*scale)), 1)
	x := canvas.Min.X + (canvas.Dx()-w)/2
	y := canvas.Min.Y + (canvas.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// DrawBase clears the canvas and draws src at the given zoom.
// A nil src leaves just the background.
func (c *Canvas) DrawBase(src image.Image, zoom int) {
	c.Clear()
	if src == nil {
		return
	}
	dst := Layout(src.Bounds(), c.Img.Rect, zoom)
	if dst.Empty() {
		return
	}
	if dst.Size() == src.Bounds().Size() {
		draw.Draw(c.Img, dst, src, src.Bounds().Min, draw.Over)
		return
	}
	draw.ApproxBiLinear.Scale(c.Img, dst, src, src.Bounds(), draw.Over, nil)
}

// DrawCentered draws img with its centre at p.
func (c *Canvas) DrawCentered(img image.Image, p geom.Point) {
	if img == nil {
		return
	}
	b := img.Bounds()
	x := int(math.Round(p.X - float64(b.Dx())/2))
	y := int(math.Round(p.Y - float64(b.Dy())/2))
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(c.Img, dst, img, b.Min, draw.Over)
}

// StrokeStyledPath draws the open polyline pts in the configured style.
// For dashed and dotted lines, phase shifts the dash pattern along the
// path.
func (c *Canvas) StrokeStyledPath(pts []geom.Point, cfg style.Config, phase float64) {
	c.stroke(pts, false, cfg, phase, matrix.Identity)
}

// StrokeSelection draws the selection loop while it is being drawn,
// implicitly closed.
func (c *Canvas) StrokeSelection(pts []geom.Point, cfg style.Config, phase float64) {
	c.stroke(geom.ClosePolygon(pts), true, cfg, phase, matrix.Identity)
}

// StrokeOutline draws a cut-out's outline, moved so that the centre of
// its bounding box lands on anchor.
func (c *Canvas) StrokeOutline(outline []geom.Point, anchor geom.Point, cfg style.Config) {
	if len(outline) == 0 {
		return
	}
	box := geom.BoundingBox(outline)
	ctm := matrix.Identity.Translate(anchor.X-box.Width/2-box.MinX, anchor.Y-box.Height/2-box.MinY)
	c.stroke(outline, true, cfg, 0, ctm)
}

// Crosshair draws two perpendicular lines through p.  It always uses a
// solid 1-pixel line, whatever the configured style.
func (c *Canvas) Crosshair(p geom.Point, cfg style.Config) {
	r := c.r
	r.Reset(c.clip)
	r.Width = 1
	emit := raster.PaintRGBA(c.Img, cfg.Color())
	const l = CrosshairHalfLength
	r.Stroke(raster.Polyline([]geom.Point{geom.Pt(p.X-l, p.Y), geom.Pt(p.X+l, p.Y)}), emit)
	r.Stroke(raster.Polyline([]geom.Point{geom.Pt(p.X, p.Y-l), geom.Pt(p.X, p.Y+l)}), emit)
}

func (c *Canvas) stroke(pts []geom.Point, closed bool, cfg style.Config, phase float64, ctm matrix.Matrix) {
	if len(pts) == 0 {
		return
	}
	t := cfg.Thickness()
	r := c.r
	r.Reset(c.clip)
	r.CTM = ctm
	emit := raster.PaintRGBA(c.Img, cfg.Color())

	switch cfg.LineStyle {
	case style.Double:
		off := t / style.DoubleOffsetDivisor
		r.Width = t / style.DoubleWidthDivisor
		r.Cap = graphics.LineCapButt
		r.Join = graphics.LineJoinMiter
		for _, d := range []float64{off, -off} {
			rail := geom.OffsetPolyline(pts, d)
			if len(rail) == 0 {
				continue
			}
			r.Stroke(raster.Polyline(rail), emit)
		}

	case style.Solid, style.Dashed, style.Dotted:
		r.Width = t
		r.Cap = graphics.LineCapRound
		r.Join = graphics.LineJoinRound
		r.Dash = cfg.LineStyle.Dash(t)
		r.DashPhase = phase
		if closed && len(pts) > 2 {
			r.Stroke(raster.Polygon(pts).Iter(), emit)
		} else {
			r.Stroke(raster.Polyline(pts), emit)
		}

	default:
		panic("paint: invalid line style " + cfg.LineStyle.String())
	}
}

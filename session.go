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

// Package pathsprite lets a user cut a region out of an image with a
// freehand loop and then animate the cut-out along a freehand path.
//
// A [Session] holds all editor state for one canvas.  The host feeds it
// pointer samples and style changes, supplies a "call me at the next
// repaint" function, and receives finished frames through a presenter
// callback.  Static states are drawn by the pure function [Render].
package pathsprite

import (
	"errors"
	"image"
	"image/color"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"seehuhn.de/go/pathsprite/anim"
	"seehuhn.de/go/pathsprite/cutter"
	"seehuhn.de/go/pathsprite/geom"
	"seehuhn.de/go/pathsprite/paint"
	"seehuhn.de/go/pathsprite/style"
)

var (
	// ErrNoImage is returned by operations which need a loaded image.
	ErrNoImage = errors.New("pathsprite: no image loaded")

	// ErrNoPath is returned when there is no animation path to play.
	ErrNoPath = errors.New("pathsprite: no animation path")

	// ErrExportCancelled is reported to the export callback when the
	// recording is stopped before the last frame.
	ErrExportCancelled = errors.New("pathsprite: export cancelled")
)

// Session is the editor state for one canvas.
//
// A Session is not safe for concurrent use.  All methods, and all
// callbacks passed to the RequestFrame function, must run on the same
// goroutine.
type Session struct {
	id  uuid.UUID
	log *slog.Logger

	request anim.RequestFrame
	sched   *anim.Scheduler
	present func(*image.RGBA)

	canvas     *paint.Canvas
	background color.Color

	img        image.Image
	mode       Mode
	cleared    bool
	style      style.Config
	renderMode anim.RenderMode

	path      []geom.Point
	selection []geom.Point
	cut       *cutter.Cutout

	drawing bool
	phase   paint.Phase
	ants    *anim.Handle
}

// New creates a session for a canvas of the given size.  The request
// function is used for all frame loops; see [anim.RequestFrame].
func New(width, height int, request anim.RequestFrame, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.New()
	log := Logger().With("session", id.String())

	canvas := paint.NewCanvas(width, height)
	canvas.Background = o.background
	canvas.Clear()

	return &Session{
		id:         id,
		log:        log,
		request:    request,
		sched:      anim.NewScheduler(request, log),
		present:    o.present,
		canvas:     canvas,
		background: o.background,
		mode:       Idle,
		style:      o.style,
		renderMode: o.renderMode,
	}
}

// ID identifies the session in log output and recording names.
func (s *Session) ID() uuid.UUID { return s.id }

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Style returns the current style.
func (s *Session) Style() style.Config { return s.style }

// RenderMode returns the current render mode.
func (s *Session) RenderMode() anim.RenderMode { return s.renderMode }

// Path returns a copy of the animation path.
func (s *Session) Path() []geom.Point { return slices.Clone(s.path) }

// Cutout returns the current cut-out, or nil.  The cut-out must not be
// modified.
func (s *Session) Cutout() *cutter.Cutout { return s.cut }

// Playing reports whether a playback is in progress.
func (s *Session) Playing() bool { return s.sched.Running() }

// LoadImage sets the source image.  The first image moves the session
// from Idle to Selecting.  Loading an image discards the current path
// and selection but keeps the cut-out.
func (s *Session) LoadImage(img image.Image) error {
	if img == nil {
		return ErrNoImage
	}
	s.stopPlayback()
	s.stopAnts()
	s.img = img
	s.path = nil
	s.selection = nil
	s.drawing = false
	if s.mode == Idle {
		s.mode = Selecting
	}
	s.cleared = false
	b := img.Bounds()
	s.log.Info("image loaded", "width", b.Dx(), "height", b.Dy())
	s.redraw()
	return nil
}

// EnterSelecting switches to selection mode.  The animation path is
// cleared, any playback is stopped, and the current cut-out is kept.
func (s *Session) EnterSelecting() {
	if s.mode == Idle {
		return
	}
	s.stopPlayback()
	s.stopAnts()
	s.setMode(Selecting)
	s.path = nil
	s.selection = nil
	s.drawing = false
	s.redraw()
}

// EnterAnimating switches to animation mode.  If a cut-out exists, the
// canvas shows it at rest at its original position, with its outline and
// a crosshair, until a path is drawn.  In animation mode already, the
// call has no effect and the path stays available for Replay.
func (s *Session) EnterAnimating() {
	if s.mode == Idle || s.mode == Animating {
		return
	}
	s.stopPlayback()
	s.stopAnts()
	s.setMode(Animating)
	s.path = nil
	s.selection = nil
	s.drawing = false
	s.redraw()
}

// Clear removes the path, the selection and the cut-out, stops all frame
// loops and redraws the plain image.  The session is left ready for a
// new selection, with no mode button highlighted.
func (s *Session) Clear() {
	if s.mode == Idle {
		return
	}
	s.stopPlayback()
	s.stopAnts()
	s.setMode(Selecting)
	s.cleared = true
	s.path = nil
	s.selection = nil
	s.cut = nil
	s.drawing = false
	s.redraw()
}

func (s *Session) setMode(m Mode) {
	if s.mode != m {
		s.log.Debug("mode", "from", s.mode, "to", m)
	}
	s.mode = m
	s.cleared = false
}

// SetStyle replaces the style.  Invalid configurations are rejected.
// A running playback picks up the new style from its next frame.
func (s *Session) SetStyle(cfg style.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.style = cfg
	if !s.sched.Running() {
		s.redraw()
	}
	return nil
}

// SetRenderMode selects sprite or trail rendering for future playbacks.
func (s *Session) SetRenderMode(m anim.RenderMode) {
	s.renderMode = m
}

// Controls returns the current button state.
func (s *Session) Controls() Controls {
	running := s.sched.Running()
	canPlay := s.mode == Animating && len(s.path) > 0 && !s.drawing
	return Controls{
		SelectActive:  s.mode == Selecting && !s.cleared,
		AnimateActive: s.mode == Animating,
		ClearActive:   s.cleared,
		StopEnabled:   running,
		ReplayEnabled: canPlay,
		ExportEnabled: canPlay,
	}
}

// PointerDown starts a drag.  In selection mode it starts a new
// selection loop, in animation mode a new path.  Any playback is
// stopped.  Without an image the gesture is ignored.
func (s *Session) PointerDown(p geom.Point) {
	if s.img == nil || s.mode == Idle {
		s.log.Debug("pointer ignored", "reason", "no image")
		return
	}
	s.stopPlayback()
	s.stopAnts()

	// Fresh buffers, so that nothing reads a slice which is still
	// being appended to.
	switch s.mode {
	case Selecting:
		s.selection = []geom.Point{p}
	case Animating:
		s.path = []geom.Point{p}
	}
	s.drawing = true
	s.phase.Reset()
	s.ants = anim.Repeat(s.request, s.marchAnts)
	s.redraw()
}

// PointerMove extends the current drag.
func (s *Session) PointerMove(p geom.Point) {
	if !s.drawing {
		return
	}
	s.addPoint(p)
	s.redraw()
}

// PointerUp ends the current drag.  A selection loop is cut out and the
// session switches to animation mode; a loop with fewer than three
// points is dropped.  An animation path starts playing.
func (s *Session) PointerUp(p geom.Point) {
	if !s.drawing {
		return
	}
	s.addPoint(p)
	s.drawing = false
	s.stopAnts()

	switch s.mode {
	case Selecting:
		s.finishSelection()
	case Animating:
		s.log.Debug("path drawn", "points", len(s.path))
		s.play(playHooks{})
	}
}

func (s *Session) addPoint(p geom.Point) {
	switch s.mode {
	case Selecting:
		if n := len(s.selection); n == 0 || s.selection[n-1] != p {
			s.selection = append(s.selection, p)
		}
	case Animating:
		if n := len(s.path); n == 0 || s.path[n-1] != p {
			s.path = append(s.path, p)
		}
	}
}

func (s *Session) finishSelection() {
	sel := s.selection
	s.selection = nil
	cut, ok := cutter.Cut(s.baseLayer(), sel)
	if !ok {
		s.log.Debug("selection ignored", "points", len(sel))
		s.redraw()
		return
	}
	s.cut = cut
	w, h := cut.Size()
	s.log.Info("region cut", "width", w, "height", h, "center", cut.Center)
	s.EnterAnimating()
}

// marchAnts advances the dash phase while a drag is in progress.
func (s *Session) marchAnts() {
	s.phase.Advance(s.style.Thickness())
	s.redraw()
}

func (s *Session) stopAnts() {
	s.ants.Cancel()
	s.ants = nil
}

func (s *Session) stopPlayback() {
	s.sched.Cancel()
}

// Replay plays the current path again.  It reports false if there is
// nothing to play.
func (s *Session) Replay() bool {
	if s.mode != Animating || len(s.path) == 0 || s.drawing {
		return false
	}
	s.play(playHooks{})
	return true
}

// Stop ends the running playback.  The canvas keeps the last frame.
func (s *Session) Stop() {
	s.stopPlayback()
}

// playHooks lets callers observe a playback.
type playHooks struct {
	frame    func(*image.RGBA)
	complete func()
	cancel   func()
}

// play starts a playback of the current path.  The path is copied and
// the cut-out pointer taken now; the style is read afresh for every
// frame.
func (s *Session) play(hooks playHooks) *anim.Handle {
	path := slices.Clone(s.path)
	cut := s.cut
	mode := s.renderMode

	return s.sched.Play(anim.Job{
		Length:     len(path),
		Iterations: s.style.Loop.Iterations(),
		Mode:       mode,
		Draw: func(f anim.Frame) {
			s.drawFrame(f, path, cut, mode)
			s.show()
			if hooks.frame != nil {
				hooks.frame(s.canvas.Img)
			}
		},
		OnComplete: hooks.complete,
		OnCancel:   hooks.cancel,
	})
}

// drawFrame paints one playback frame onto the live canvas.
func (s *Session) drawFrame(f anim.Frame, path []geom.Point, cut *cutter.Cutout, mode anim.RenderMode) {
	c := s.canvas
	cfg := s.style
	at := path[f.Index]

	if f.Fresh {
		c.DrawBase(s.img, cfg.Zoom)
	}
	switch mode {
	case anim.Sprite:
		if cfg.ShowOutline {
			c.StrokeStyledPath(path, cfg, 0)
		}
		if cut != nil {
			c.DrawCentered(cut.Image, at)
			if cfg.ShowOutline {
				c.StrokeOutline(cut.Bounds.Outline, at, cfg)
			}
		}
	case anim.Trail:
		if cut != nil {
			c.DrawCentered(cut.Image, at)
		}
	}
}

// Snapshot captures everything Render needs.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Width:      s.canvas.Img.Rect.Dx(),
		Height:     s.canvas.Img.Rect.Dy(),
		Background: s.background,
		Image:      s.img,
		Mode:       s.mode,
		Style:      s.style,
		Path:       slices.Clone(s.path),
		Selection:  slices.Clone(s.selection),
		Cutout:     s.cut,
		Phase:      s.phase.Offset,
	}
}

// Frame returns a copy of the canvas as currently shown.
func (s *Session) Frame() *image.RGBA {
	src := s.canvas.Img
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// baseLayer renders the background and the zoomed image, without any
// overlays.  Cut-outs are taken from this layer.
func (s *Session) baseLayer() *image.RGBA {
	b := s.canvas.Img.Rect
	c := paint.NewCanvas(b.Dx(), b.Dy())
	c.Background = s.background
	c.DrawBase(s.img, s.style.Zoom)
	return c.Img
}

// redraw replaces the canvas with the rendering of the current state.
func (s *Session) redraw() {
	img := Render(s.Snapshot())
	copy(s.canvas.Img.Pix, img.Pix)
	s.show()
}

func (s *Session) show() {
	if s.present != nil {
		s.present(s.canvas.Img)
	}
}

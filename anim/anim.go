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

// Package anim drives frame-by-frame playback.
//
// Nothing in this package measures time.  Every step happens inside a
// callback handed to a [RequestFrame] function supplied by the host, which
// calls it back at the next repaint.  Tests and headless hosts use
// [Manual] to advance frames explicitly.
package anim

import (
	"log/slog"
)

// RequestFrame schedules cb to run once, at the next repaint.
type RequestFrame func(cb func())

// Handle controls one running frame loop.
type Handle struct {
	cancelled bool
	done      bool
	onCancel  func()
}

// Cancel stops the loop.  The next scheduled callback returns without
// doing anything.  Cancelling a finished or cancelled loop has no effect.
func (h *Handle) Cancel() {
	if h == nil || h.done || h.cancelled {
		return
	}
	h.cancelled = true
	if h.onCancel != nil {
		h.onCancel()
	}
}

// Active reports whether the loop is still running.
func (h *Handle) Active() bool {
	return h != nil && !h.done && !h.cancelled
}

// Done reports whether the loop ran to completion.
func (h *Handle) Done() bool {
	return h != nil && h.done
}

// Cancelled reports whether Cancel stopped the loop.
func (h *Handle) Cancelled() bool {
	return h != nil && h.cancelled
}

// Repeat calls tick once per frame until the returned handle is
// cancelled.
func Repeat(request RequestFrame, tick func()) *Handle {
	h := &Handle{}
	var step func()
	step = func() {
		if h.cancelled {
			return
		}
		tick()
		if h.cancelled {
			return
		}
		request(step)
	}
	request(step)
	return h
}

// Frame describes one step of a playback.
type Frame struct {
	Index int // position in the path
	Loop  int // iteration, starting at 0

	// Fresh is set when the canvas must be cleared and the base image
	// redrawn before this frame is painted.
	Fresh bool
}

// Job describes a playback.
type Job struct {
	// Length is the number of frames per iteration.
	Length int

	// Iterations is how often the frames are played.  Values below 1
	// count as 1.
	Iterations int

	Mode RenderMode

	// Draw paints one frame.
	Draw func(Frame)

	// OnComplete is called once, right after the last frame of the last
	// iteration.  It is not called if the playback is cancelled.
	OnComplete func()

	// OnCancel is called once if the playback is cancelled.
	OnCancel func()
}

// Scheduler runs at most one playback at a time.
//
// A Scheduler is not safe for concurrent use; all calls and all frame
// callbacks must happen on the host's UI thread.
type Scheduler struct {
	request RequestFrame
	log     *slog.Logger
	current *Handle
}

// NewScheduler returns a Scheduler which uses request to wait for
// repaints.  If logger is nil, nothing is logged.
func NewScheduler(request RequestFrame, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{request: request, log: logger}
}

// Play cancels any running playback and starts a new one.  The first
// frame is drawn at the next repaint.
//
// If job.Length is 0 there is nothing to draw: OnComplete is called
// before Play returns, and the returned handle is already done.
func (s *Scheduler) Play(job Job) *Handle {
	s.Cancel()

	h := &Handle{onCancel: job.OnCancel}
	s.current = h
	iterations := max(job.Iterations, 1)

	if job.Length <= 0 {
		h.done = true
		s.log.Debug("playback empty")
		if job.OnComplete != nil {
			job.OnComplete()
		}
		return h
	}

	s.log.Debug("playback started",
		"frames", job.Length,
		"iterations", iterations,
		"mode", job.Mode)

	index, loop := 0, 0
	var tick func()
	tick = func() {
		if h.cancelled {
			return
		}
		fresh := job.Mode == Sprite || (index == 0 && loop == 0)
		if job.Draw != nil {
			job.Draw(Frame{Index: index, Loop: loop, Fresh: fresh})
		}
		if h.cancelled {
			return
		}

		index++
		if index == job.Length {
			index = 0
			loop++
			if loop == iterations {
				h.done = true
				s.log.Debug("playback complete", "frames", job.Length*iterations)
				if job.OnComplete != nil {
					job.OnComplete()
				}
				return
			}
		}
		s.request(tick)
	}
	s.request(tick)
	return h
}

// Cancel stops the running playback, if any.
func (s *Scheduler) Cancel() {
	if s.current.Active() {
		s.log.Debug("playback cancelled")
	}
	s.current.Cancel()
}

// Running reports whether a playback is in progress.
func (s *Scheduler) Running() bool {
	return s.current.Active()
}

// Manual is a RequestFrame implementation which runs callbacks only when
// told to.  It stands in for a display's repaint cycle.
type Manual struct {
	queue []func()
}

// Request queues cb for the next Step.  It has the signature of
// [RequestFrame].
func (m *Manual) Request(cb func()) {
	m.queue = append(m.queue, cb)
}

// Step runs one repaint: all callbacks queued before the call.  Callbacks
// queued while stepping wait for the next Step.  The result is the number
// of callbacks run.
func (m *Manual) Step() int {
	q := m.queue
	m.queue = nil
	for _, cb := range q {
		cb()
	}
	return len(q)
}

// Pending returns the number of queued callbacks.
func (m *Manual) Pending() int {
	return len(m.queue)
}

// Run steps until no callbacks are queued, or until limit steps have
// been taken if limit is positive.  It returns the number of steps.
func (m *Manual) Run(limit int) int {
	n := 0
	for len(m.queue) > 0 && (limit <= 0 || n < limit) {
		m.Step()
		n++
	}
	return n
}

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

package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects the frames drawn and the completion calls.
type recorder struct {
	frames    []Frame
	completed []int // number of frames drawn when OnComplete ran
	cancelled int
}

func (r *recorder) job(length, iterations int, mode RenderMode) Job {
	return Job{
		Length:     length,
		Iterations: iterations,
		Mode:       mode,
		Draw:       func(f Frame) { r.frames = append(r.frames, f) },
		OnComplete: func() { r.completed = append(r.completed, len(r.frames)) },
		OnCancel:   func() { r.cancelled++ },
	}
}

func TestPlayThreeFrames(t *testing.T) {
	m := &Manual{}
	s := NewScheduler(m.Request, nil)
	rec := &recorder{}

	h := s.Play(rec.job(3, 1, Sprite))
	assert.Empty(t, rec.frames, "nothing is drawn before the first repaint")
	assert.True(t, s.Running())

	steps := m.Run(100)
	assert.Equal(t, 3, steps)
	require.Len(t, rec.frames, 3)
	for i, f := range rec.frames {
		assert.Equal(t, Frame{Index: i, Loop: 0, Fresh: true}, f)
	}
	assert.Equal(t, []int{3}, rec.completed)
	assert.Zero(t, rec.cancelled)
	assert.True(t, h.Done())
	assert.False(t, s.Running())
	assert.Zero(t, m.Pending())

	// no further callbacks, however often the display repaints
	for range 5 {
		m.Step()
	}
	assert.Len(t, rec.frames, 3)
	assert.Len(t, rec.completed, 1)
}

func TestPlayLoops(t *testing.T) {
	m := &Manual{}
	s := NewScheduler(m.Request, nil)
	rec := &recorder{}

	s.Play(rec.job(2, 3, Sprite))
	m.Run(100)

	require.Len(t, rec.frames, 6)
	want := []Frame{
		{0, 0, true}, {1, 0, true},
		{0, 1, true}, {1, 1, true},
		{0, 2, true}, {1, 2, true},
	}
	assert.Equal(t, want, rec.frames)
	assert.Equal(t, []int{6}, rec.completed)
}

func TestTrailNeverClears(t *testing.T) {
	m := &Manual{}
	s := NewScheduler(m.Request, nil)
	rec := &recorder{}

	s.Play(rec.job(3, 2, Trail))
	m.Run(100)

	require.Len(t, rec.frames, 6)
	for i, f := range rec.frames {
		assert.Equal(t, i == 0, f.Fresh, "frame %d", i)
	}
	assert.Equal(t, []int{6}, rec.completed)
}

func TestCancelMidRun(t *testing.T) {
	m := &Manual{}
	s := NewScheduler(m.Request, nil)
	rec := &recorder{}

	h := s.Play(rec.job(10, 1, Sprite))
	m.Step()
	m.Step()
	require.Len(t, rec.frames, 2)

	h.Cancel()
	assert.False(t, s.Running(), "stop takes effect immediately")
	assert.True(t, h.Cancelled())
	assert.Equal(t, 1, rec.cancelled)

	m.Run(100)
	assert.Len(t, rec.frames, 2, "no frames after cancel")
	assert.Empty(t, rec.completed, "completion must not fire after cancel")

	h.Cancel()
	assert.Equal(t, 1, rec.cancelled, "second cancel is a no-op")
}

func TestPlayCancelsPrevious(t *testing.T) {
	m := &Manual{}
	s := NewScheduler(m.Request, nil)
	first, second := &recorder{}, &recorder{}

	h1 := s.Play(first.job(5, 1, Sprite))
	m.Step()
	h2 := s.Play(second.job(2, 1, Sprite))
	m.Run(100)

	assert.True(t, h1.Cancelled())
	assert.Equal(t, 1, first.cancelled)
	assert.Len(t, first.frames, 1)
	assert.Empty(t, first.completed)

	assert.True(t, h2.Done())
	assert.Len(t, second.frames, 2)
	assert.Equal(t, []int{2}, second.completed)
}

func TestPlayEmpty(t *testing.T) {
	m := &Manual{}
	s := NewScheduler(m.Request, nil)
	rec := &recorder{}

	h := s.Play(rec.job(0, 3, Sprite))
	assert.Equal(t, []int{0}, rec.completed, "completion fires synchronously")
	assert.True(t, h.Done())
	assert.Zero(t, m.Pending())

	h.Cancel()
	assert.Zero(t, rec.cancelled, "cancelling a finished run does nothing")
}

func TestCancelFromDraw(t *testing.T) {
	m := &Manual{}
	s := NewScheduler(m.Request, nil)
	var h *Handle
	drawn := 0
	h = s.Play(Job{
		Length: 5,
		Draw: func(Frame) {
			drawn++
			if drawn == 2 {
				h.Cancel()
			}
		},
		OnComplete: func() { t.Error("unexpected completion") },
	})
	m.Run(100)
	assert.Equal(t, 2, drawn)
}

func TestRepeat(t *testing.T) {
	m := &Manual{}
	ticks := 0
	h := Repeat(m.Request, func() { ticks++ })
	for range 4 {
		m.Step()
	}
	assert.Equal(t, 4, ticks)
	assert.True(t, h.Active())

	h.Cancel()
	m.Run(10)
	assert.Equal(t, 4, ticks)
	assert.False(t, h.Active())
}

func TestManualStepOrder(t *testing.T) {
	m := &Manual{}
	var order []int
	m.Request(func() {
		order = append(order, 1)
		m.Request(func() { order = append(order, 3) })
	})
	m.Request(func() { order = append(order, 2) })

	assert.Equal(t, 2, m.Step())
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 1, m.Pending())
	assert.Equal(t, 1, m.Run(0))
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestRenderModeText(t *testing.T) {
	for _, mode := range []RenderMode{Sprite, Trail} {
		text, err := mode.MarshalText()
		require.NoError(t, err)
		var back RenderMode
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, mode, back)
	}
	_, err := ParseRenderMode("comet")
	assert.Error(t, err)
	_, err = RenderMode(7).MarshalText()
	assert.Error(t, err)
}

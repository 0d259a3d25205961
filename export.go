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

package pathsprite

import (
	"errors"
	"fmt"
	"image"
)

// Sink receives the frames of a recording.
type Sink interface {
	// Begin is called once before the first frame.
	Begin(width, height int) error

	// Frame is called after each frame is drawn.  The image is only
	// valid during the call.
	Frame(img *image.RGBA) error

	// End is called once after the last frame, or when the recording is
	// cancelled.
	End() error
}

// Export replays the current path and records every frame into sink.
// The recording starts with the playback and ends right after its last
// frame.  When the recording has ended, done is called with the outcome:
// nil on success, an error wrapping [ErrExportCancelled] if the playback
// was stopped, or the errors returned by the sink.
//
// An error is returned directly if the recording cannot start.
func (s *Session) Export(sink Sink, done func(error)) error {
	if s.img == nil {
		return ErrNoImage
	}
	if s.mode != Animating || len(s.path) == 0 || s.drawing {
		return ErrNoPath
	}

	b := s.canvas.Img.Rect
	if err := sink.Begin(b.Dx(), b.Dy()); err != nil {
		return fmt.Errorf("pathsprite: starting export: %w", err)
	}
	s.log.Info("export started", "frames", len(s.path)*s.style.Loop.Iterations())

	var frameErr error
	frames := 0
	finish := func(cause error) {
		endErr := sink.End()
		err := errors.Join(cause, frameErr, endErr)
		if err != nil {
			s.log.Warn("export failed", "frames", frames, "error", err)
		} else {
			s.log.Info("export finished", "frames", frames)
		}
		if done != nil {
			done(err)
		}
	}

	s.play(playHooks{
		frame: func(img *image.RGBA) {
			frames++
			if frameErr != nil {
				return
			}
			if err := sink.Frame(img); err != nil {
				frameErr = fmt.Errorf("pathsprite: frame %d: %w", frames, err)
			}
		},
		complete: func() { finish(nil) },
		cancel:   func() { finish(ErrExportCancelled) },
	})
	return nil
}

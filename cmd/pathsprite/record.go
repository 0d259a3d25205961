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

package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"seehuhn.de/go/pathsprite"
	"seehuhn.de/go/pathsprite/anim"
	"seehuhn.de/go/pathsprite/geom"
	"seehuhn.de/go/pathsprite/media"
	"seehuhn.de/go/pathsprite/scenes"
)

// recordOptions controls how a scene is recorded.
type recordOptions struct {
	delay  int    // between frames, in 1/100 s
	once   bool   // play the animation once instead of repeating
	format string // ".gif" or ".png"; empty means ".gif"
}

// formatFor returns the recording format implied by a file name.
func formatFor(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".png") {
		return ".png"
	}
	return ".gif"
}

// ext returns the file name extension of the recording format.
func (opt recordOptions) ext() string {
	if opt.format == "" {
		return ".gif"
	}
	return opt.format
}

// sink returns a recorder for the configured format, writing to w.
func (opt recordOptions) sink(w io.Writer) (pathsprite.Sink, error) {
	switch opt.ext() {
	case ".gif":
		rec := media.NewGIF(w)
		rec.Delay = opt.delay
		if opt.once {
			rec.LoopCount = -1
		}
		return rec, nil
	case ".png":
		rec := media.NewAPNG(w)
		rec.Delay = opt.delay
		if opt.once {
			rec.LoopCount = 1
		}
		return rec, nil
	default:
		return nil, fmt.Errorf("unsupported recording format %q", opt.format)
	}
}

// record plays a scene as a user would, and writes the playback as an
// animated GIF or PNG to w.  The session is returned so that callers can save
// the final frame.
func record(sc scenes.Scene, w io.Writer, opt recordOptions) (*pathsprite.Session, error) {
	clock := &anim.Manual{}
	s := pathsprite.New(sc.Width, sc.Height, clock.Request,
		pathsprite.WithStyle(sc.Style),
		pathsprite.WithRenderMode(sc.Mode))

	if err := s.LoadImage(sc.Image); err != nil {
		return nil, err
	}
	drag(s, sc.Selection)
	if s.Cutout() == nil {
		return nil, errors.New("selection does not enclose a region")
	}
	drag(s, sc.Path)
	s.Stop()

	rec, err := opt.sink(w)
	if err != nil {
		return nil, err
	}

	var result error
	finished := false
	err = s.Export(rec, func(err error) {
		result = err
		finished = true
	})
	if err != nil {
		return nil, err
	}
	clock.Run(0)
	if !finished {
		return nil, fmt.Errorf("%s: playback did not finish", sc.Name)
	}
	return s, result
}

// drag feeds a pointer gesture along pts to the session.
func drag(s *pathsprite.Session, pts []geom.Point) {
	if len(pts) == 0 {
		return
	}
	s.PointerDown(pts[0])
	for _, p := range pts[1:] {
		s.PointerMove(p)
	}
	s.PointerUp(pts[len(pts)-1])
}

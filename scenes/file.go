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

package scenes

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/pathsprite/anim"
	"seehuhn.de/go/pathsprite/cutter"
	"seehuhn.de/go/pathsprite/geom"
	"seehuhn.de/go/pathsprite/style"
)

// ErrScript is wrapped by all errors about the content of a scene file.
var ErrScript = errors.New("scenes: invalid scene file")

// Script is the TOML form of a scene, as read by the command line tool.
//
//	image = "photo.jpg"
//	width = 640
//	height = 480
//	render_mode = "trail"
//	selection = [[10, 10], [60, 10], [60, 60]]
//	path = [[35, 35], [200, 120], [400, 300]]
//
//	[style]
//	line_style = "dashed"
//	loop = { enabled = true, count = 2 }
type Script struct {
	Image      string          `toml:"image"` // relative to the scene file
	Width      int             `toml:"width"`
	Height     int             `toml:"height"`
	RenderMode anim.RenderMode `toml:"render_mode"`
	Selection  [][2]float64    `toml:"selection"`
	Path       [][2]float64    `toml:"path"`
	Style      style.Config    `toml:"style"`
}

// DefaultScript holds the values used for fields missing from a file.
func DefaultScript() Script {
	return Script{
		Width:      640,
		Height:     480,
		RenderMode: anim.Sprite,
		Style:      style.Default(),
	}
}

// Decode reads a scene file.  Unknown keys are an error.  A leading "~"
// in the image path is expanded, and relative paths are resolved against
// dir.
func Decode(r io.Reader, dir string) (*Script, error) {
	s := DefaultScript()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScript, err)
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	img, err := homedir.Expand(s.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScript, err)
	}
	if !filepath.IsAbs(img) {
		img = filepath.Join(dir, img)
	}
	s.Image = img
	return &s, nil
}

func (s *Script) check() error {
	var errs []error
	if s.Image == "" {
		errs = append(errs, fmt.Errorf("%w: no image", ErrScript))
	}
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: canvas size %dx%d", ErrScript, s.Width, s.Height))
	}
	if len(s.Selection) < cutter.MinPoints {
		errs = append(errs, fmt.Errorf("%w: selection needs at least %d points", ErrScript, cutter.MinPoints))
	}
	if len(s.Path) == 0 {
		errs = append(errs, fmt.Errorf("%w: empty path", ErrScript))
	}
	if err := s.Style.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Scene combines the script with its decoded image.
func (s *Script) Scene(name string, img image.Image) Scene {
	return Scene{
		Name:      name,
		Width:     s.Width,
		Height:    s.Height,
		Image:     img,
		Selection: points(s.Selection),
		Path:      points(s.Path),
		Style:     s.Style,
		Mode:      s.RenderMode,
	}
}

func points(raw [][2]float64) []geom.Point {
	pts := make([]geom.Point, len(raw))
	for i, p := range raw {
		pts[i] = geom.Pt(p[0], p[1])
	}
	return pts
}

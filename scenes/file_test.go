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
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/pathsprite/anim"
	"seehuhn.de/go/pathsprite/geom"
	"seehuhn.de/go/pathsprite/style"
)

const sample = `
image = "photo.png"
width = 320
render_mode = "trail"
selection = [[10, 10], [60, 10.5], [60, 60]]
path = [[35, 35], [200, 120]]

[style]
line_style = "dashed"
outline_thickness = 4
loop = { enabled = true, count = 2 }
`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(sample), "/data")
	if err != nil {
		t.Fatal(err)
	}

	if s.Image != filepath.Join("/data", "photo.png") {
		t.Errorf("image: got %q", s.Image)
	}
	if s.Width != 320 || s.Height != 480 {
		t.Errorf("size: got %dx%d, want 320x480", s.Width, s.Height)
	}
	if s.RenderMode != anim.Trail {
		t.Errorf("render mode: got %v", s.RenderMode)
	}

	want := style.Default()
	want.LineStyle = style.Dashed
	want.OutlineThickness = 4
	want.Loop = style.Loop{Enabled: true, Count: 2}
	if s.Style != want {
		t.Errorf("style: got %+v, want %+v", s.Style, want)
	}

	sc := s.Scene("sample", Checker(4, 4, 2, paper, ink))
	if sc.Selection[1] != geom.Pt(60, 10.5) {
		t.Errorf("selection point: got %v", sc.Selection[1])
	}
	if sc.Frames() != 4 {
		t.Errorf("frames: got %d, want 4", sc.Frames())
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key": sample + "\nspeed = 3\n",
		"no image":    strings.Replace(sample, `image = "photo.png"`, "", 1),
		"short loop":  strings.Replace(sample, `[60, 60]]`, `]`, 1),
		"bad style":   strings.Replace(sample, "outline_thickness = 4", "outline_thickness = 40", 1),
		"bad mode":    strings.Replace(sample, `"trail"`, `"sparkle"`, 1),
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(text), ".")
			if err == nil {
				t.Fatal("no error")
			}
		})
	}

	_, err := Decode(strings.NewReader(strings.Replace(sample, `path = [[35, 35], [200, 120]]`, "", 1)), ".")
	if !errors.Is(err, ErrScript) {
		t.Errorf("empty path: got %v", err)
	}
}

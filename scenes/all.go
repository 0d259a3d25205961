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
	"image/color"
	"maps"
	"slices"

	"seehuhn.de/go/pathsprite/anim"
	"seehuhn.de/go/pathsprite/geom"
	"seehuhn.de/go/pathsprite/style"
)

// All contains all scenes, grouped by category.
var All = map[string][]Scene{
	"sprite": spriteScenes,
	"trail":  trailScenes,
	"style":  styleScenes,
}

// Names returns "category/name" for every scene, sorted.
func Names() []string {
	var names []string
	for _, cat := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[cat] {
			names = append(names, cat+"/"+s.Name)
		}
	}
	return names
}

// Get looks up a scene by "category/name".
func Get(name string) (Scene, bool) {
	for cat, list := range All {
		for _, s := range list {
			if cat+"/"+s.Name == name {
				return s, true
			}
		}
	}
	return Scene{}, false
}

var (
	paper = color.RGBA{R: 0xf4, G: 0xf0, B: 0xe6, A: 0xff}
	ink   = color.RGBA{R: 0x2a, G: 0x4d, B: 0x8f, A: 0xff}
)

func withStyle(modify func(*style.Config)) style.Config {
	cfg := style.Default()
	modify(&cfg)
	return cfg
}

var spriteScenes = []Scene{
	{
		Name:      "square_line",
		Width:     120,
		Height:    80,
		Image:     Checker(120, 80, 10, paper, ink),
		Selection: Rect(0, 0, 10, 10),
		Path:      []geom.Point{geom.Pt(0, 0), geom.Pt(50, 0), geom.Pt(100, 0)},
		Style:     style.Default(),
		Mode:      anim.Sprite,
	},
	{
		Name:      "circle_wave",
		Width:     200,
		Height:    120,
		Image:     Gradient(200, 120, paper, ink),
		Selection: Circle(40, 60, 20, 48),
		Path:      Wave(30, 170, 60, 30, 1.5, 60),
		Style:     withStyle(func(c *style.Config) { c.OutlineColor = "#d03030" }),
		Mode:      anim.Sprite,
	},
	{
		Name:      "looped",
		Width:     100,
		Height:    100,
		Image:     Checker(100, 100, 20, paper, ink),
		Selection: Rect(10, 10, 30, 30),
		Path:      []geom.Point{geom.Pt(20, 20), geom.Pt(80, 80)},
		Style: withStyle(func(c *style.Config) {
			c.Loop = style.Loop{Enabled: true, Count: 3}
		}),
		Mode: anim.Sprite,
	},
}

var trailScenes = []Scene{
	{
		Name:      "diagonal",
		Width:     160,
		Height:    160,
		Image:     Checker(160, 160, 16, paper, ink),
		Selection: Circle(24, 24, 12, 32),
		Path:      Line(geom.Pt(24, 24), geom.Pt(136, 136), 30),
		Style:     withStyle(func(c *style.Config) { c.ShowOutline = false }),
		Mode:      anim.Trail,
	},
	{
		Name:      "orbit",
		Width:     160,
		Height:    160,
		Image:     Gradient(160, 160, ink, paper),
		Selection: Rect(70, 70, 90, 90),
		Path:      Circle(80, 80, 50, 40),
		Style: withStyle(func(c *style.Config) {
			c.Loop = style.Loop{Enabled: true, Count: 2}
		}),
		Mode: anim.Trail,
	},
}

var styleScenes = []Scene{
	{
		Name:      "dashed",
		Width:     160,
		Height:    100,
		Image:     Gradient(160, 100, paper, ink),
		Selection: Rect(10, 30, 40, 60),
		Path:      Wave(25, 140, 50, 25, 1, 40),
		Style: withStyle(func(c *style.Config) {
			c.LineStyle = style.Dashed
			c.OutlineThickness = 3
		}),
		Mode: anim.Sprite,
	},
	{
		Name:      "dotted",
		Width:     160,
		Height:    100,
		Image:     Checker(160, 100, 10, paper, ink),
		Selection: Circle(30, 50, 18, 40),
		Path:      Line(geom.Pt(30, 50), geom.Pt(130, 50), 25),
		Style: withStyle(func(c *style.Config) {
			c.LineStyle = style.Dotted
			c.OutlineColor = "#208040"
		}),
		Mode: anim.Sprite,
	},
	{
		Name:      "double",
		Width:     160,
		Height:    100,
		Image:     Checker(160, 100, 10, paper, ink),
		Selection: Rect(15, 35, 45, 65),
		Path:      Wave(30, 130, 50, 20, 0.5, 30),
		Style: withStyle(func(c *style.Config) {
			c.LineStyle = style.Double
			c.OutlineThickness = 6
		}),
		Mode: anim.Sprite,
	},
	{
		Name:      "zoomed",
		Width:     120,
		Height:    120,
		Image:     Checker(60, 40, 5, paper, ink),
		Selection: Rect(40, 40, 70, 70),
		Path:      Line(geom.Pt(55, 55), geom.Pt(100, 20), 15),
		Style:     withStyle(func(c *style.Config) { c.Zoom = 150 }),
		Mode:      anim.Sprite,
	},
}

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
	"image"
	"image/color"

	"seehuhn.de/go/pathsprite/anim"
	"seehuhn.de/go/pathsprite/style"
)

// Option configures a Session.
type Option func(*options)

type options struct {
	style      style.Config
	renderMode anim.RenderMode
	present    func(*image.RGBA)
	background color.Color
}

func defaultOptions() options {
	return options{
		style:      style.Default(),
		renderMode: anim.Sprite,
	}
}

// WithStyle sets the initial style.  Out-of-range values are clamped.
func WithStyle(cfg style.Config) Option {
	return func(o *options) {
		o.style = cfg.Normalize()
	}
}

// WithRenderMode sets the initial render mode.
func WithRenderMode(m anim.RenderMode) Option {
	return func(o *options) {
		o.renderMode = m
	}
}

// WithSettings applies persisted settings.
func WithSettings(set style.Settings) Option {
	return func(o *options) {
		o.style = set.Style.Normalize()
		o.renderMode = set.RenderMode
	}
}

// WithPresenter sets a function which is called whenever the canvas has
// changed.  The image is owned by the session and is only valid until
// the function returns.
func WithPresenter(present func(*image.RGBA)) Option {
	return func(o *options) {
		o.present = present
	}
}

// WithBackground sets the colour behind the image.  The default is
// transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

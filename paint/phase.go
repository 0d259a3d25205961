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

package paint

import "math"

// Phase is the dash offset of the "marching ants" shown while a path is
// being drawn.
type Phase struct {
	Offset float64
}

// Advance moves the dashes on by one unit.  The offset wraps at five
// times the line thickness.
func (p *Phase) Advance(thickness float64) {
	p.Offset++
	if period := 5 * thickness; period > 0 {
		p.Offset = math.Mod(p.Offset, period)
	}
}

// Reset puts the dashes back at the start of the path.
func (p *Phase) Reset() {
	p.Offset = 0
}

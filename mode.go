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

import "fmt"

// Mode decides what a pointer drag does.
type Mode int

const (
	// Idle is the state before an image is loaded.  All input is ignored.
	Idle Mode = iota

	// Selecting records a closed loop which is cut out on release.
	Selecting

	// Animating records a path which the cut-out follows on release.
	Animating
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	case Animating:
		return "animating"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Controls is the state of the buttons a host shows.
type Controls struct {
	SelectActive  bool // the "select" mode button is highlighted
	AnimateActive bool // the "animate" mode button is highlighted
	ClearActive   bool // the canvas was just cleared

	StopEnabled   bool
	ReplayEnabled bool
	ExportEnabled bool
}

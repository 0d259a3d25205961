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
	"fmt"
	"strings"
)

// RenderMode selects how successive frames relate to each other.
type RenderMode int

const (
	// Sprite redraws the whole canvas for every frame, so only the
	// current placement of the cut-out is visible.
	Sprite RenderMode = iota

	// Trail draws the base once and then keeps every placement, so the
	// cut-out leaves a trail.  Repeated loops keep adding to it.
	Trail
)

func (m RenderMode) String() string {
	switch m {
	case Sprite:
		return "sprite"
	case Trail:
		return "trail"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// ParseRenderMode converts "sprite" or "trail" to a RenderMode.
func ParseRenderMode(name string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sprite":
		return Sprite, nil
	case "trail":
		return Trail, nil
	}
	return 0, fmt.Errorf("anim: unknown render mode %q", name)
}

// MarshalText implements [encoding.TextMarshaler].
func (m RenderMode) MarshalText() ([]byte, error) {
	if m != Sprite && m != Trail {
		return nil, fmt.Errorf("anim: invalid render mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *RenderMode) UnmarshalText(text []byte) error {
	v, err := ParseRenderMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

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

package style

import (
	"fmt"
	"strings"
)

// LineStyle selects how paths and outlines are stroked.
type LineStyle int

// The supported line styles.
const (
	Solid LineStyle = iota
	Dashed
	Dotted
	Double
)

var lineStyleNames = [...]string{
	Solid:  "solid",
	Dashed: "dashed",
	Dotted: "dotted",
	Double: "double",
}

func (s LineStyle) valid() bool {
	return s >= Solid && s <= Double
}

func (s LineStyle) String() string {
	if !s.valid() {
		return fmt.Sprintf("LineStyle(%d)", int(s))
	}
	return lineStyleNames[s]
}

// ParseLineStyle converts a style name to a LineStyle.
// Unknown names are an error.
func ParseLineStyle(name string) (LineStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range lineStyleNames {
		if n == name {
			return LineStyle(s), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown line style %q", ErrInvalid, name)
}

// MarshalText implements [encoding.TextMarshaler].
func (s LineStyle) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: line style %d", ErrInvalid, int(s))
	}
	return []byte(lineStyleNames[s]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *LineStyle) UnmarshalText(text []byte) error {
	v, err := ParseLineStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Dash returns the dash pattern for a line of the given thickness.
// Solid and double lines are continuous and return nil.
func (s LineStyle) Dash(thickness float64) []float64 {
	switch s {
	case Solid, Double:
		return nil
	case Dashed:
		return []float64{3 * thickness, 2 * thickness}
	case Dotted:
		return []float64{thickness, thickness}
	default:
		panic(fmt.Sprintf("style: invalid line style %d", int(s)))
	}
}

// Double-line geometry: each rail is offset by thickness/1.5 from the
// path and stroked thickness/3 wide.
const (
	DoubleOffsetDivisor = 1.5
	DoubleWidthDivisor  = 3
)

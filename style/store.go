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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/pathsprite/anim"
)

// DefaultFile is where settings are kept unless another file is given.
const DefaultFile = "~/.config/pathsprite/style.toml"

// Settings is everything which is remembered between sessions.
type Settings struct {
	Style      Config          `toml:"style"`
	RenderMode anim.RenderMode `toml:"render_mode"`
}

// DefaultSettings returns the settings of a fresh installation.
func DefaultSettings() Settings {
	return Settings{Style: Default(), RenderMode: anim.Sprite}
}

// Store reads and writes Settings as a TOML file.
type Store struct {
	File string // absolute path
}

// NewStore returns a Store for the given file.  A leading "~" is expanded
// to the home directory, and an empty name selects [DefaultFile].
func NewStore(file string) (*Store, error) {
	if file == "" {
		file = DefaultFile
	}
	expanded, err := homedir.Expand(file)
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	return &Store{File: expanded}, nil
}

// Load reads the settings.  A missing file is not an error and gives the
// defaults.  Fields missing from the file keep their default values, and
// out-of-range values are normalized.
func (s *Store) Load() (Settings, error) {
	set := DefaultSettings()
	data, err := os.ReadFile(s.File)
	if errors.Is(err, fs.ErrNotExist) {
		return set, nil
	} else if err != nil {
		return set, fmt.Errorf("style: %w", err)
	}
	if err := toml.Unmarshal(data, &set); err != nil {
		return DefaultSettings(), fmt.Errorf("style: %s: %w", s.File, err)
	}
	set.Style = set.Style.Normalize()
	return set, nil
}

// Save writes the settings, creating the directory if needed.
func (s *Store) Save(set Settings) error {
	if err := set.Style.Validate(); err != nil {
		return err
	}
	data, err := toml.Marshal(set)
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.File), 0o755); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	if err := os.WriteFile(s.File, data, 0o644); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	return nil
}

// Reset removes the settings file, so that the next Load returns the
// defaults.
func (s *Store) Reset() error {
	err := os.Remove(s.File)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("style: %w", err)
	}
	return nil
}

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

// Package media reads source images and writes stills and recordings.
//
// png, jpeg, gif, tiff, bmp and webp images can be read.  Stills are
// written in the format given by the file name extension.
package media

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	_ "golang.org/x/image/webp"
)

// Open reads an image file.  EXIF orientation tags in jpeg files are
// applied, so that the image appears the right way up.
func Open(filename string) (image.Image, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}
	return img, nil
}

// Decode reads an image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}
	return img, nil
}

// Shrink scales img down so that it fits into maxW×maxH, keeping the
// aspect ratio.  Images which already fit, and non-positive limits,
// leave img unchanged.
func Shrink(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	if maxW <= 0 || maxH <= 0 || (b.Dx() <= maxW && b.Dy() <= maxH) {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

// SaveStill writes img to filename.  The format is chosen from the
// extension.
func SaveStill(img image.Image, filename string) error {
	if _, err := imaging.FormatFromFilename(filename); err != nil {
		return fmt.Errorf("media: %s: %w", filename, err)
	}
	if err := imaging.Save(img, filename); err != nil {
		return fmt.Errorf("media: %w", err)
	}
	return nil
}

// RecordingName returns the default file name for a recording made by
// the session with the given id.
func RecordingName(id uuid.UUID, ext string) string {
	return "pathsprite-" + id.String() + ext
}

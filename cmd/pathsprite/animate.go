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

package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/pathsprite/media"
	"seehuhn.de/go/pathsprite/scenes"
)

func newAnimateCmd() *cobra.Command {
	var (
		out     string
		still   string
		maxSize int
		opt     recordOptions
	)
	cmd := &cobra.Command{
		Use:   "animate SCENE.toml",
		Short: "Render the animation described by a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			fd, err := os.Open(name)
			if err != nil {
				return err
			}
			script, err := scenes.Decode(fd, filepath.Dir(name))
			fd.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			img, err := media.Open(script.Image)
			if err != nil {
				return err
			}
			img = media.Shrink(img, maxSize, maxSize)

			base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
			sc := script.Scene(base, img)
			dir := "."
			if out != "" {
				dir = filepath.Dir(out)
				opt.format = formatFor(out)
			}
			return writeRecording(cmd, sc, dir, out, still, opt)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&out, "output", "o", "", "animation to write, GIF or APNG by extension (default: a GIF named after the session id)")
	flags.StringVar(&still, "still", "", "also save the last frame to this image file")
	flags.IntVar(&maxSize, "max-size", 0, "shrink the source image to fit into this many pixels")
	flags.IntVar(&opt.delay, "delay", media.DefaultDelay, "time between frames, in 1/100 s")
	flags.BoolVar(&opt.once, "once", false, "make the animation play only once")
	return cmd
}

// writeRecording records sc into the file out, and optionally saves the
// final frame to still.  An empty out picks a fresh name in dir.
func writeRecording(cmd *cobra.Command, sc scenes.Scene, dir, out, still string, opt recordOptions) error {
	tmp, err := os.CreateTemp(dir, ".pathsprite-*"+opt.ext())
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	s, err := record(sc, w, opt)
	if err == nil {
		err = w.Flush()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", sc.Name, err)
	}

	if out == "" {
		out = filepath.Join(dir, media.RecordingName(s.ID(), opt.ext()))
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if still != "" {
		if err := media.SaveStill(s.Frame(), still); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), still)
	}
	return nil
}

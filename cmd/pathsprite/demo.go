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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/pathsprite/media"
	"seehuhn.de/go/pathsprite/scenes"
)

func newDemoCmd() *cobra.Command {
	var (
		dir  string
		apng bool
		opt  recordOptions
	)
	cmd := &cobra.Command{
		Use:   "demo [CATEGORY/NAME...]",
		Short: "Record built-in demo scenes",
		Long: "Record built-in demo scenes into GIF or APNG files.  Without arguments, " +
			"the available scenes are listed.  The argument \"all\" records every scene.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range scenes.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			if len(args) == 1 && args[0] == "all" {
				args = scenes.Names()
			}

			if apng {
				opt.format = ".png"
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			for _, name := range args {
				sc, ok := scenes.Get(name)
				if !ok {
					return fmt.Errorf("unknown scene %q", name)
				}
				out := filepath.Join(dir, strings.ReplaceAll(name, "/", "-")+opt.ext())
				if err := writeRecording(cmd, sc, dir, out, "", opt); err != nil {
					return err
				}
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&dir, "output", "o", ".", "directory for the recordings")
	flags.BoolVar(&apng, "apng", false, "write animated PNG files instead of GIFs")
	flags.IntVar(&opt.delay, "delay", media.DefaultDelay, "time between frames, in 1/100 s")
	return cmd
}

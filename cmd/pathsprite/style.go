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

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"seehuhn.de/go/pathsprite/anim"
	"seehuhn.de/go/pathsprite/style"
)

func newStyleCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Show or change the saved style settings",
	}
	cmd.PersistentFlags().StringVar(&file, "file", style.DefaultFile, "settings file")

	open := func() (*style.Store, error) {
		return style.NewStore(file)
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			set, err := store.Load()
			if err != nil {
				return err
			}
			data, err := toml.Marshal(set)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", store.File, data)
			return nil
		},
	}

	var (
		color      string
		thickness  int
		lineStyle  string
		outline    bool
		zoom       int
		loop       int
		renderMode string
	)
	set := &cobra.Command{
		Use:   "set",
		Short: "Change individual settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			cur, err := store.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("color") {
				cur.Style.OutlineColor = color
			}
			if flags.Changed("thickness") {
				cur.Style.OutlineThickness = thickness
			}
			if flags.Changed("line-style") {
				cur.Style.LineStyle, err = style.ParseLineStyle(lineStyle)
				if err != nil {
					return err
				}
			}
			if flags.Changed("outline") {
				cur.Style.ShowOutline = outline
			}
			if flags.Changed("zoom") {
				cur.Style.Zoom = zoom
			}
			if flags.Changed("loop") {
				cur.Style.Loop = style.Loop{Enabled: loop > 0, Count: max(loop, 1)}
			}
			if flags.Changed("render-mode") {
				cur.RenderMode, err = anim.ParseRenderMode(renderMode)
				if err != nil {
					return err
				}
			}
			return store.Save(cur)
		},
	}
	f := set.Flags()
	f.StringVar(&color, "color", "", "outline colour, as #rrggbb")
	f.IntVar(&thickness, "thickness", 0, "outline thickness, 1 to 10")
	f.StringVar(&lineStyle, "line-style", "", "solid, dashed, dotted or double")
	f.BoolVar(&outline, "outline", true, "show the outline while animating")
	f.IntVar(&zoom, "zoom", 0, "image zoom in percent")
	f.IntVar(&loop, "loop", 0, "number of playbacks; 0 switches looping off")
	f.StringVar(&renderMode, "render-mode", "", "sprite or trail")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			return store.Reset()
		},
	}

	cmd.AddCommand(show, set, reset)
	return cmd
}

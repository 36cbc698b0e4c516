// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command caretdemo lays out some text, blinks a caret in it for a
// while on real timers and writes the final frame as a PNG.
package main

import (
	"os"
	"time"

	"cogentcore.org/caret/logx"
	"github.com/spf13/cobra"
)

func main() {
	logx.SetDefault(os.Stderr)
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	c := &Config{}
	cmd := &cobra.Command{
		Use:          "caretdemo",
		Short:        "Blink a caret in laid out text and save the result",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(c.Debug, c.Verbose, c.Quiet)
			return Run(cmd.Context(), c)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&c.Config, "config", "c", "", "caret settings file (.toml or .yaml)")
	f.StringVarP(&c.Text, "text", "t", "The quick brown fox jumps over the lazy dog.", "text to lay out")
	f.IntVar(&c.Offset, "offset", 4, "caret offset in the text, in runes")
	f.IntVar(&c.Width, "width", 320, "page width in pixels")
	f.IntVar(&c.Height, "height", 120, "page height in pixels")
	f.DurationVarP(&c.Duration, "duration", "d", 2*time.Second, "how long to blink")
	f.StringVarP(&c.Out, "out", "o", "caret.png", "output PNG file")
	f.StringVar(&c.Sink, "sink", "image", "paint target for the caret: image or gg")
	f.BoolVar(&c.Invert, "invert", false, "draw the caret by inverting pixels")
	f.BoolVarP(&c.Watch, "watch", "w", false, "reload the settings file when it changes")
	f.BoolVar(&c.Debug, "debug", false, "log debug messages")
	f.BoolVarP(&c.Verbose, "verbose", "v", false, "log informational messages")
	f.BoolVarP(&c.Quiet, "quiet", "q", false, "only log errors")
	return cmd
}

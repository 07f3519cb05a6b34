// SPDX-License-Identifier: EPL-2.0

// Command audgraph renders audio waveform overlays to PNG frames and
// converts audio files to WAV at a chosen sample format.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ik5/audgraph/internal/config"
	"github.com/ik5/audgraph/internal/logging"
)

// options are the flags shared by every subcommand.
type options struct {
	cfg config.Config
}

func (o *options) logger(w io.Writer) *slog.Logger {
	return logging.New(w, o.cfg.LogLevel, o.cfg.LogFormat)
}

func newRootCommand(cfg config.Config) *cobra.Command {
	opts := &options{cfg: cfg}

	root := &cobra.Command{
		Use:   "audgraph",
		Short: "Draw audio waveforms over video frames",
		Long: `audgraph renders a scrolling waveform of an audio track over video
frames, one audioframe per slice of the frame width, and converts audio
between PCM sample formats.

Flag defaults are read from AUDGRAPH_* environment variables.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.cfg.LogLevel, "log-level", opts.cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.cfg.LogFormat, "log-format", opts.cfg.LogFormat, "log format (text, json)")

	root.AddCommand(newRenderCommand(opts))
	root.AddCommand(newConvertCommand(opts))
	root.AddCommand(newVersionCommand())

	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand(config.Load()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ik5/audgraph"
	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/graph"
	"github.com/ik5/audgraph/internal/config"
	"github.com/ik5/audgraph/video"
)

var errFrameRange = errors.New("invalid frame range")

func newRenderCommand(opts *options) *cobra.Command {
	var first, last int

	cmd := &cobra.Command{
		Use:   "render <audio-file>",
		Short: "Render waveform frames to PNG files",
		Long: `render decodes an audio file, dubs it onto a blank video clip as long
as the track and writes frames first..last as frame_NNNNNN.png.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), opts, args[0], first, last, cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.cfg.FramesEitherSide, "frames-either-side", opts.cfg.FramesEitherSide, "audioframes drawn on each side of the current one")
	f.IntVar(&opts.cfg.GraphScale, "scale", opts.cfg.GraphScale, "waveform scale (0 picks it from the whole track)")
	f.StringVar(&opts.cfg.MiddleColor, "middle-color", opts.cfg.MiddleColor, "colour of the current audioframe")
	f.StringVar(&opts.cfg.SideColor, "side-color", opts.cfg.SideColor, "colour of the surrounding audioframes")
	f.IntVar(&opts.cfg.Width, "width", opts.cfg.Width, "frame width")
	f.IntVar(&opts.cfg.Height, "height", opts.cfg.Height, "frame height")
	f.StringVar(&opts.cfg.PixelFormat, "pixel-format", opts.cfg.PixelFormat, "pixel layout (RGB24, RGB32, YUY2)")
	f.IntVar(&opts.cfg.FPSNum, "fps-num", opts.cfg.FPSNum, "frame rate numerator")
	f.IntVar(&opts.cfg.FPSDen, "fps-den", opts.cfg.FPSDen, "frame rate denominator")
	f.StringVar(&opts.cfg.Background, "background", opts.cfg.Background, "background colour")
	f.StringVarP(&opts.cfg.OutDir, "out", "o", opts.cfg.OutDir, "output directory")
	f.IntVar(&first, "first", 0, "first frame to render")
	f.IntVar(&last, "last", -1, "last frame to render (-1 for the end of the track)")

	return cmd
}

func runRender(ctx context.Context, opts *options, path string, first, last int, logw io.Writer) error {
	logger := opts.logger(logw)

	gcfg, err := opts.cfg.Graph()
	if err != nil {
		return err
	}
	pf, err := video.ParsePixelFormat(opts.cfg.PixelFormat)
	if err != nil {
		return err
	}
	bg, err := config.ParseColor(opts.cfg.Background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	src, err := audgraph.DecodeFile(nil, path)
	if err != nil {
		return err
	}
	ai := src.AudioInfo()

	numFrames := frameCount(ai, opts.cfg.FPSNum, opts.cfg.FPSDen)
	v, err := video.NewBlankClip(video.Info{
		Width:          opts.cfg.Width,
		Height:         opts.cfg.Height,
		PixelFormat:    pf,
		FPSNumerator:   opts.cfg.FPSNum,
		FPSDenominator: opts.cfg.FPSDen,
		NumFrames:      numFrames,
	}, bg)
	if err != nil {
		return err
	}

	g, err := audgraph.Overlay(v, src, gcfg, graph.WithLogger(logger))
	if err != nil {
		return err
	}

	if last < 0 || last >= numFrames {
		last = numFrames - 1
	}
	if first < 0 || first > last {
		return fmt.Errorf("%w: %d..%d of %d frames", errFrameRange, first, last, numFrames)
	}

	if err := os.MkdirAll(opts.cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	logger.Info("rendering",
		slog.String("audio", filepath.Base(path)),
		slog.Int("sample_rate", ai.SampleRate),
		slog.Int("channels", ai.Channels),
		slog.String("sample_type", ai.SampleType.String()),
		slog.Int("first", first),
		slog.Int("last", last),
		slog.Int("scale", g.GraphScale()))

	for n := first; n <= last; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := filepath.Join(opts.cfg.OutDir, fmt.Sprintf("frame_%06d.png", n))
		if err := writeFrame(g, n, name); err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}
	}

	stats := g.Stats()
	logger.Debug("audioframe cache",
		slog.Int("hits", stats.Hits),
		slog.Int("misses", stats.Misses),
		slog.Int("read_failures", stats.ReadFailures))

	return nil
}

// frameCount is the number of video frames needed to cover the whole track.
func frameCount(ai audio.Info, fpsNum, fpsDen int) int {
	div := int64(ai.SampleRate) * int64(fpsDen)
	if div <= 0 || fpsNum <= 0 {
		return 0
	}
	return int((ai.NumSamples*int64(fpsNum) + div - 1) / div)
}

func writeFrame(g *graph.Graph, n int, name string) error {
	frame, err := g.GetFrame(n)
	if err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating png: %w", err)
	}

	if err := png.Encode(f, frame.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	return f.Close()
}

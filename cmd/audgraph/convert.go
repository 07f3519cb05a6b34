// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ik5/audgraph"
	"github.com/ik5/audgraph/pcm"
)

func newConvertCommand(opts *options) *cobra.Command {
	var sampleType string

	cmd := &cobra.Command{
		Use:   "convert <input> <output.wav>",
		Short: "Convert an audio file to WAV at another sample format",
		Long: `convert decodes any supported audio file (wav, aiff, mp3, ogg) and
writes it as WAV with samples stored as --type.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := pcm.ParseSampleType(sampleType)
			if err != nil {
				return err
			}
			return runConvert(opts, args[0], args[1], t, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&sampleType, "type", "t", pcm.SampleInt16.String(), "output sample type (int8, int16, int24, int32, float)")

	return cmd
}

func runConvert(opts *options, in, out string, t pcm.SampleType, logw io.Writer) error {
	logger := opts.logger(logw)

	src, err := audgraph.DecodeFile(nil, in)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	if err := audgraph.EncodeWAV(f, src, t); err != nil {
		f.Close()
		os.Remove(out)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	ai := src.AudioInfo()
	logger.Info("converted",
		slog.String("input", filepath.Base(in)),
		slog.String("output", filepath.Base(out)),
		slog.String("from", ai.SampleType.String()),
		slog.String("to", t.String()),
		slog.Duration("duration", ai.Duration()))

	return nil
}

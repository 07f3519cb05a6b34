// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/pcm"
	"github.com/ik5/audgraph/video"
)

// Clip is the input of a graph: video with synchronized audio.
type Clip interface {
	video.Clip
	audio.Source
	// AudioSamplesFromFrames converts a video frame count, or a frame
	// number, to audio sample frames.
	AudioSamplesFromFrames(frames int64) int64
}

// Graph is a video.Clip that overlays the audio waveform of a window of
// frames onto every frame of its input.
type Graph struct {
	clip   Clip
	cfg    Config
	logger *slog.Logger

	pixels          int
	samplesPerFrame int64

	mtx   sync.Mutex
	cache *Cache
}

var _ video.Clip = (*Graph)(nil)

// New validates cfg against c and prepares the audioframe cache. With
// cfg.GraphScale == 0 the whole clip is rasterized once to find the scale.
func New(c Clip, cfg Config, opts ...Option) (*Graph, error) {
	g := &Graph{
		clip:   c,
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	vi := c.VideoInfo()
	ai := c.AudioInfo()

	switch {
	case !vi.PixelFormat.Packed():
		return nil, configError(ErrUnsupportedPixelFormat, "%v", vi.PixelFormat)
	case !ai.HasAudio():
		return nil, configError(ErrNoAudio, "sample rate %d, %d samples", ai.SampleRate, ai.NumSamples)
	case cfg.FramesEitherSide < 0:
		return nil, configError(ErrNegativeWindow, "%d", cfg.FramesEitherSide)
	case ai.Channels != 1 && ai.Channels != 2:
		return nil, configError(ErrUnsupportedChannels, "%d channels", ai.Channels)
	}

	src := audio.Convert(c, pcm.SampleInt8|pcm.SampleInt16, pcm.SampleInt16)
	ai = src.AudioInfo()

	spf := c.AudioSamplesFromFrames(1)
	if spf < 1 {
		return nil, configError(ErrNoSamplesPerFrame, "%d Hz at %d/%d fps",
			ai.SampleRate, vi.FPSNumerator, vi.FPSDenominator)
	}
	g.samplesPerFrame = spf

	g.cfg.FramesEitherSide = min(cfg.FramesEitherSide, vi.Width/4)
	visible := 2*g.cfg.FramesEitherSide + 1

	g.pixels = vi.Width/visible + 1
	if g.pixels < 2 {
		return nil, configError(ErrFrameTooNarrow, "width %d", vi.Width)
	}

	logSPP := logSamplesPerPixel(int(spf), g.pixels)
	logMono := logSPP + ai.Channels - 1

	ranges, err := NewSampleRangeTable(int(spf), g.pixels, logSPP, ai.BytesPerAudioSample())
	if err != nil {
		return nil, configError(err, "sample range table")
	}

	raster, err := NewRasterizer(ranges, logMono, vi.Height, ai.SampleType)
	if err != nil {
		return nil, configError(err, "rasterizer")
	}

	g.cache, err = NewCache(src, c.AudioSamplesFromFrames, raster, spf, nextPowerOfTwo(visible), g.logger)
	if err != nil {
		return nil, configError(err, "audioframe cache")
	}

	if cfg.GraphScale == 0 {
		scale, err := g.cache.AutoScale(vi.NumFrames)
		if err != nil {
			return nil, fmt.Errorf("auto scale: %w", err)
		}
		g.cfg.GraphScale = scale
		g.logger.Info("audio graph scale chosen",
			slog.Int("scale", scale),
			slog.Int("frames", vi.NumFrames))
	}
	g.cache.SetScale(g.cfg.GraphScale)

	g.logger.Debug("audio graph configured",
		slog.Int("frames_either_side", g.cfg.FramesEitherSide),
		slog.Int("pixels_per_audioframe", g.pixels),
		slog.Int64("samples_per_frame", spf),
		slog.Int("log_samples_per_pixel", logSPP),
		slog.Int("buffers", g.cache.Len()),
		slog.String("sample_type", ai.SampleType.String()))

	return g, nil
}

// Config returns the effective configuration, with the window clamped and
// an automatic scale resolved.
func (g *Graph) Config() Config { return g.cfg }

func (g *Graph) FramesEitherSide() int     { return g.cfg.FramesEitherSide }
func (g *Graph) GraphScale() int           { return g.cfg.GraphScale }
func (g *Graph) PixelsPerAudioframe() int  { return g.pixels }
func (g *Graph) SamplesPerFrame() int64    { return g.samplesPerFrame }
func (g *Graph) NumAudioframeBuffers() int { return g.cache.Len() }

// Stats returns the audioframe cache counters.
func (g *Graph) Stats() Stats {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	return g.cache.Stats()
}

// VideoInfo is the input's video info; the overlay does not change it.
func (g *Graph) VideoInfo() video.Info { return g.clip.VideoInfo() }

// GetFrame returns a copy of input frame n with the waveform drawn on it.
// Calls are serialized.
func (g *Graph) GetFrame(n int) (*video.Frame, error) {
	src, err := g.clip.GetFrame(n)
	if err != nil {
		return nil, fmt.Errorf("source frame %d: %w", n, err)
	}

	dst, err := video.NewFrame(src.Width, src.Height, src.Format)
	if err != nil {
		return nil, fmt.Errorf("allocating frame %d: %w", n, err)
	}
	if err := dst.CopyFrom(src); err != nil {
		return nil, fmt.Errorf("copying frame %d: %w", n, err)
	}

	if dst.Format == video.YUY2 {
		greyscale(dst)
	}

	g.mtx.Lock()
	defer g.mtx.Unlock()

	if err := g.draw(dst, n); err != nil {
		return nil, fmt.Errorf("draw frame %d: %w", n, err)
	}

	return dst, nil
}

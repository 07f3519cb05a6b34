// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"
	"log/slog"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/pcm"
)

// Stats counts cache activity since the cache was built.
type Stats struct {
	Hits         int
	Misses       int
	ReadFailures int
}

// Cache is a direct-mapped cache of rasterized audioframes.
//
// Frame n lives in slot n & (len-1), so the cache holds any window of
// consecutive frames no longer than its size. Eviction is purely positional.
// Slots are views into one backing array and stay valid until the next Get
// that maps to the same slot.
//
// A Cache is not safe for concurrent use.
type Cache struct {
	src     audio.Source
	startOf func(frame int64) int64
	raster  *Rasterizer
	logger  *slog.Logger

	samplesPerFrame int64
	sampleType      pcm.SampleType
	raw             []byte

	pixels int
	mask   int
	slots  []uint16
	tags   []int
	valid  []bool

	scale int
	stats Stats
}

// NewCache builds a cache of numBuffers slots. startOf maps a video frame
// number to the first audio sample frame belonging to it.
func NewCache(src audio.Source, startOf func(frame int64) int64, raster *Rasterizer,
	samplesPerFrame int64, numBuffers int, logger *slog.Logger,
) (*Cache, error) {
	if numBuffers <= 0 || numBuffers&(numBuffers-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, numBuffers)
	}
	if samplesPerFrame < 1 {
		return nil, ErrNoSamplesPerFrame
	}
	if logger == nil {
		logger = slog.Default()
	}

	info := src.AudioInfo()
	raw := make([]byte, samplesPerFrame*int64(info.BytesPerAudioSample()))
	if err := raster.Validate(len(raw)); err != nil {
		return nil, err
	}

	pixels := raster.Pixels()

	return &Cache{
		src:             src,
		startOf:         startOf,
		raster:          raster,
		logger:          logger,
		samplesPerFrame: samplesPerFrame,
		sampleType:      info.SampleType,
		raw:             raw,
		pixels:          pixels,
		mask:            numBuffers - 1,
		slots:           make([]uint16, numBuffers*pixels),
		tags:            make([]int, numBuffers),
		valid:           make([]bool, numBuffers),
		scale:           1,
	}, nil
}

// Len is the number of slots.
func (c *Cache) Len() int { return len(c.tags) }

// Slot returns the slot index frame maps to.
func (c *Cache) Slot(frame int) int { return frame & c.mask }

// Resident reports whether frame is currently cached.
func (c *Cache) Resident(frame int) bool {
	s := c.Slot(frame)
	return c.valid[s] && c.tags[s] == frame
}

// Scale is the amplification applied when rasterizing.
func (c *Cache) Scale() int { return c.scale }

// SetScale changes the amplification and drops every cached audioframe.
func (c *Cache) SetScale(scale int) {
	c.scale = scale
	c.Invalidate()
}

// Invalidate empties every slot.
func (c *Cache) Invalidate() {
	clear(c.valid)
}

func (c *Cache) Stats() Stats { return c.stats }

// Get returns the audioframe of video frame frame, rasterizing it on a miss.
// Audio read failures are not returned: the frame is graphed as silence.
func (c *Cache) Get(frame int) (AudioFrame, error) {
	s := c.Slot(frame)
	off := s * c.pixels
	view := AudioFrame(c.slots[off : off+c.pixels : off+c.pixels])

	if c.valid[s] && c.tags[s] == frame {
		c.stats.Hits++
		return view, nil
	}

	c.stats.Misses++
	c.valid[s] = false

	start := c.startOf(int64(frame))
	if err := c.src.GetAudio(c.raw, start, c.samplesPerFrame); err != nil {
		c.stats.ReadFailures++
		c.logger.Debug("audio read failed, graphing silence",
			slog.Int("frame", frame),
			slog.Int64("start", start),
			slog.Any("error", err))
		pcm.Fill(c.raw, c.sampleType)
	}

	if err := c.raster.Fill(view, c.raw, c.scale); err != nil {
		return nil, fmt.Errorf("rasterize frame %d: %w", frame, err)
	}

	c.tags[s] = frame
	c.valid[s] = true

	return view, nil
}

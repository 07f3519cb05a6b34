// SPDX-License-Identifier: EPL-2.0

// Package config loads CLI defaults from AUDGRAPH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ik5/audgraph/graph"
	"github.com/ik5/audgraph/video"
)

var ErrInvalidColor = errors.New("invalid colour")

// Config holds the runtime configuration of the audgraph command.
type Config struct {
	// Overlay
	FramesEitherSide int
	GraphScale       int // 0 picks the scale from the whole track
	MiddleColor      string
	SideColor        string

	// Generated video
	Width       int
	Height      int
	PixelFormat string
	FPSNum      int
	FPSDen      int
	Background  string

	// Output
	OutDir    string
	LogLevel  string
	LogFormat string // text or json
}

// Load reads configuration from environment variables with defaults
// matching graph.DefaultConfig.
func Load() Config {
	def := graph.DefaultConfig()

	return Config{
		FramesEitherSide: envInt("AUDGRAPH_FRAMES_EITHER_SIDE", def.FramesEitherSide),
		GraphScale:       envInt("AUDGRAPH_SCALE", def.GraphScale),
		MiddleColor:      envStr("AUDGRAPH_MIDDLE_COLOR", FormatColor(def.MiddleColor)),
		SideColor:        envStr("AUDGRAPH_SIDE_COLOR", FormatColor(def.SideColor)),

		Width:       envInt("AUDGRAPH_WIDTH", 640),
		Height:      envInt("AUDGRAPH_HEIGHT", 480),
		PixelFormat: envStr("AUDGRAPH_PIXEL_FORMAT", video.RGB32.String()),
		FPSNum:      envInt("AUDGRAPH_FPS_NUM", 25),
		FPSDen:      envInt("AUDGRAPH_FPS_DEN", 1),
		Background:  envStr("AUDGRAPH_BACKGROUND", "#000000"),

		OutDir:    envStr("AUDGRAPH_OUT_DIR", "."),
		LogLevel:  envStr("AUDGRAPH_LOG_LEVEL", "info"),
		LogFormat: envStr("AUDGRAPH_LOG_FORMAT", "text"),
	}
}

// Graph converts the overlay settings to a graph.Config.
func (c Config) Graph() (graph.Config, error) {
	middle, err := ParseColor(c.MiddleColor)
	if err != nil {
		return graph.Config{}, fmt.Errorf("middle colour: %w", err)
	}
	side, err := ParseColor(c.SideColor)
	if err != nil {
		return graph.Config{}, fmt.Errorf("side colour: %w", err)
	}

	return graph.Config{
		FramesEitherSide: c.FramesEitherSide,
		GraphScale:       c.GraphScale,
		MiddleColor:      middle,
		SideColor:        side,
	}, nil
}

// ParseColor reads a 0xRRGGBB colour written as "$rrggbb", "#rrggbb",
// "0xrrggbb" or bare hex digits.
func ParseColor(s string) (uint32, error) {
	digits := strings.TrimSpace(s)
	for _, prefix := range []string{"$", "#", "0x", "0X"} {
		if rest, ok := strings.CutPrefix(digits, prefix); ok {
			digits = rest
			break
		}
	}

	if digits == "" || len(digits) > 6 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return uint32(v), nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(c uint32) string {
	return fmt.Sprintf("#%06x", c&0xffffff)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

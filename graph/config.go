// SPDX-License-Identifier: EPL-2.0

package graph

import "log/slog"

// Config holds the user-facing parameters of a graph.
type Config struct {
	// FramesEitherSide is how many neighbouring frames are graphed on each
	// side of the current one. It is clamped to a quarter of the frame width.
	FramesEitherSide int
	// GraphScale multiplies the vertical deflection. 0 picks the largest
	// scale that keeps the whole clip inside the frame.
	GraphScale int
	// MiddleColor and SideColor are 0xRRGGBB.
	MiddleColor uint32
	SideColor   uint32
}

// DefaultConfig returns a config with 5 frames either side, scale 1,
// a bright green current frame and darker green neighbours.
func DefaultConfig() Config {
	return Config{
		FramesEitherSide: 5,
		GraphScale:       1,
		MiddleColor:      0x00ff00,
		SideColor:        0x008000,
	}
}

// Option customizes a Graph.
type Option func(*Graph)

// WithLogger sets the logger used for diagnostics. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

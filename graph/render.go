// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"

	"github.com/ik5/audgraph/video"
)

// plotter sets single pixels of one frame in either the middle or the side
// colour. There is one implementation per pixel layout.
type plotter interface {
	plot(x, y int, middle bool)
}

func newPlotter(f *video.Frame, middleColor, sideColor uint32) (plotter, error) {
	switch f.Format {
	case video.RGB24:
		p := &rgb24Plotter{f: f}
		p.setColors(middleColor, sideColor)
		return p, nil
	case video.RGB32:
		p := &rgb32Plotter{f: f}
		p.setColors(middleColor, sideColor)
		return p, nil
	case video.YUY2:
		p := &yuy2Plotter{f: f}
		p.setColors(middleColor, sideColor)
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPixelFormat, f.Format)
	}
}

func pen(middle bool) int {
	if middle {
		return 1
	}
	return 0
}

type rgb24Plotter struct {
	f      *video.Frame
	colors [2][3]byte
}

func (p *rgb24Plotter) setColors(middle, side uint32) {
	for i, c := range [2]uint32{side, middle} {
		r, g, b := video.RGB(c)
		p.colors[i] = [3]byte{b, g, r}
	}
}

func (p *rgb24Plotter) plot(x, y int, middle bool) {
	o := y*p.f.Pitch + x*3
	copy(p.f.Data[o:o+3], p.colors[pen(middle)][:])
}

type rgb32Plotter struct {
	f      *video.Frame
	colors [2][4]byte
}

func (p *rgb32Plotter) setColors(middle, side uint32) {
	for i, c := range [2]uint32{side, middle} {
		r, g, b := video.RGB(c)
		p.colors[i] = [4]byte{b, g, r, 0}
	}
}

func (p *rgb32Plotter) plot(x, y int, middle bool) {
	o := y*p.f.Pitch + x*4
	copy(p.f.Data[o:o+4], p.colors[pen(middle)][:])
}

// yuy2Plotter writes the luma of the addressed pixel and the chroma shared
// with its horizontal neighbour.
type yuy2Plotter struct {
	f      *video.Frame
	colors [2][3]byte
}

func (p *yuy2Plotter) setColors(middle, side uint32) {
	for i, c := range [2]uint32{side, middle} {
		y, u, v := video.YUV(c)
		p.colors[i] = [3]byte{y, u, v}
	}
}

func (p *yuy2Plotter) plot(x, y int, middle bool) {
	c := p.colors[pen(middle)]
	o := y*p.f.Pitch + (x>>1)*4
	p.f.Data[o+(x&1)*2] = c[0]
	p.f.Data[o+1] = c[1]
	p.f.Data[o+3] = c[2]
}

// greyscale drops the chroma of a YUY2 frame.
func greyscale(f *video.Frame) {
	for y := range f.Height {
		row := f.Row(y)
		for i := 1; i < len(row); i += 2 {
			row[i] = 128
		}
	}
}

func vline(p plotter, x, height int, middle bool) {
	for y := range height {
		p.plot(x, y, middle)
	}
}

// draw overlays the waveform of frames [n-fes, n+fes] onto f. Audioframes
// are fetched through the cache in left to right order.
func (g *Graph) draw(f *video.Frame, n int) error {
	p, err := newPlotter(f, g.cfg.MiddleColor, g.cfg.SideColor)
	if err != nil {
		return err
	}

	height := f.Height
	prevY := height >> 1
	frame := n - g.cfg.FramesEitherSide
	x := g.pixels

	var (
		af     AudioFrame
		middle bool
	)

	for col := range f.Width {
		if x == g.pixels {
			af, err = g.cache.Get(frame)
			if err != nil {
				return err
			}

			vline(p, col, height, frame == n || frame == n+1)
			middle = frame == n
			frame++
			x = 0
		}

		y := min(int(af[x]), height-1)
		for prevY < y {
			p.plot(col, prevY, middle)
			prevY++
		}
		for prevY > y {
			p.plot(col, prevY, middle)
			prevY--
		}
		p.plot(col, prevY, middle)

		x++
	}

	return nil
}

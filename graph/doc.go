// SPDX-License-Identifier: EPL-2.0

/*
Package graph draws a scrolling audio waveform over video frames.

For output frame n the frame is split into 2*FramesEitherSide+1 strips, one
per video frame in [n-FramesEitherSide, n+FramesEitherSide]. Each strip shows
that frame's share of the audio as a connected trace, the current frame in
Config.MiddleColor and its neighbours in Config.SideColor. A one-pixel
vertical line marks the start of every strip; the two lines bounding the
current frame use the middle colour.

# Pipeline

One frame of audio goes through three stages:

  - A SampleRangeTable gives, per pixel column, where in the frame's raw
    audio that column's averaging window starts.
  - A Rasterizer averages each window (both channels of stereo together),
    scales it to the frame height and stores a row coordinate. The result
    is an AudioFrame.
  - A Cache keeps recently rasterized AudioFrames in a small direct-mapped
    array, so a frame that scrolls across the window is rasterized once.

Only 8-bit and 16-bit audio is rasterized. Other sample types are converted
to 16-bit with audio.Convert.

# Pixel formats

RGB24, RGB32 and YUY2 frames are supported. YUY2 frames are turned grey
before drawing so the trace stands out. Planar YV12 is rejected by New.

# Usage

	g, err := graph.New(c, graph.DefaultConfig(), graph.WithLogger(logger))
	if err != nil {
		return err
	}
	frame, err := g.GetFrame(100)

A Graph may be shared between goroutines; GetFrame calls are serialized.
*/
package graph

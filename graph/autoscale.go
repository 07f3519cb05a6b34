// SPDX-License-Identifier: EPL-2.0

package graph

// AutoScale rasterizes frames [0, numFrames) at the current scale and
// returns the largest integer amplification that keeps the loudest column
// inside the frame. Silent audio yields 1.
//
// Every slot touched by the pass holds an audioframe at the old scale;
// callers normally follow with SetScale, which discards them.
func (c *Cache) AutoScale(numFrames int) (int, error) {
	h2 := c.raster.Height() >> 1
	maxDev := 0

	for n := range numFrames {
		af, err := c.Get(n)
		if err != nil {
			return 0, err
		}
		for _, y := range af {
			d := int(y) - h2
			if d < 0 {
				d = -d
			}
			maxDev = max(maxDev, d)
		}
	}

	if maxDev == 0 {
		return 1, nil
	}

	return max(h2/maxDev, 1), nil
}

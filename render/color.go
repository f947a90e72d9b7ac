// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/arm2d"
)

// Color is an 8-bit per channel, non-premultiplied color.
// It implements color.Color.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
	Red   = Color{255, 0, 0, 255}
	Green = Color{0, 255, 0, 255}
	Blue  = Color{0, 0, 255, 255}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// String returns the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ColorFromRGB converts a normalized RGB triple to an opaque Color.
// Each channel becomes uint8(255 * channel), truncated. Channels outside
// [0, 1] return arm2d.ErrInvalidValue.
func ColorFromRGB(rgb [3]float64) (Color, error) {
	var ch [3]uint8
	for i, v := range rgb {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return Color{}, fmt.Errorf("%w: color channel %d = %g, want [0, 1]", arm2d.ErrInvalidValue, i, v)
		}
		ch[i] = uint8(255 * v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}

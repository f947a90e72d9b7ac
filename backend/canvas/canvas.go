// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas provides a backend.Surface that rasterizes with gg.
//
// Importing the package registers the "png" backend.
package canvas

import (
	"image"
	"io"

	"github.com/gogpu/arm2d"
	"github.com/gogpu/arm2d/backend"
	"github.com/gogpu/arm2d/render"
	"github.com/gogpu/gg"
)

func init() {
	backend.Register(backend.BackendPNG, func(width, height int) backend.Surface {
		return New(width, height)
	})
}

// Surface draws render shapes into a gg.Context.
//
// Surface is not safe for concurrent use.
type Surface struct {
	dc            *gg.Context
	width, height int
}

// New creates a surface of the given size, cleared to transparent.
func New(width, height int) *Surface {
	return &Surface{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

// Context returns the underlying drawing context.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Image returns the rendered pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// Size implements backend.Surface.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Clear implements backend.Surface.
func (s *Surface) Clear(c render.Color) {
	s.dc.ClearWithColor(toRGBA(c))
}

// FillCircle implements render.Target.
func (s *Surface) FillCircle(c render.Circle, m render.Matrix) {
	s.dc.Push()
	defer s.dc.Pop()

	s.dc.SetTransform(toMatrix(m))
	s.dc.SetColor(c.Color)
	s.dc.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
	s.fill("circle")
}

// FillRect implements render.Target.
func (s *Surface) FillRect(r render.Rect, m render.Matrix) {
	s.dc.Push()
	defer s.dc.Pop()

	s.dc.SetTransform(toMatrix(m.Multiply(r.Local())))
	s.dc.SetColor(r.Color)
	s.dc.DrawRectangle(0, 0, r.Size.X, r.Size.Y)
	s.fill("rect")
}

func (s *Surface) fill(shape string) {
	if err := s.dc.Fill(); err != nil {
		arm2d.Logger().Warn("canvas: fill failed", "shape", shape, "err", err)
	}
}

// WriteTo encodes the surface as PNG.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := s.dc.EncodePNG(cw)
	return cw.n, err
}

// Close releases the drawing context.
func (s *Surface) Close() error {
	return s.dc.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func toMatrix(m render.Matrix) gg.Matrix {
	return gg.Matrix{
		A: m.A, B: m.B, C: m.C,
		D: m.D, E: m.E, F: m.F,
	}
}

func toRGBA(c render.Color) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/arm2d"

// Circle is a filled disc anchored at its center.
type Circle struct {
	Center arm2d.Point
	Radius float64
	Color  Color
}

// Rect is a filled rectangle of the given Size. Origin is the anchor point
// in the rectangle's own frame; it is placed at Position and the rectangle
// is rotated around it by Rotation radians.
type Rect struct {
	Position arm2d.Point
	Size     arm2d.Point
	Origin   arm2d.Point
	Rotation float64
	Color    Color
}

// Local returns the matrix mapping the rectangle's own frame, where it
// spans (0, 0) to Size, into the frame it is positioned in.
func (r Rect) Local() Matrix {
	return Translate(r.Position.X, r.Position.Y).
		Multiply(Rotate(r.Rotation)).
		Multiply(Translate(-r.Origin.X, -r.Origin.Y))
}

// Corners returns the four corners of the rectangle under m, in drawing
// order starting at the local (0, 0) corner.
func (r Rect) Corners(m Matrix) [4]arm2d.Point {
	full := m.Multiply(r.Local())
	w, h := r.Size.X, r.Size.Y
	return [4]arm2d.Point{
		full.TransformPoint(arm2d.Pt(0, 0)),
		full.TransformPoint(arm2d.Pt(w, 0)),
		full.TransformPoint(arm2d.Pt(w, h)),
		full.TransformPoint(arm2d.Pt(0, h)),
	}
}

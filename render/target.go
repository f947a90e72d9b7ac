// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/arm2d"

// Target receives filled shapes. m is the combined transform the shape is
// drawn under; the shape's own placement (Rect.Local, Circle.Center) is
// applied inside it.
//
// Implementations:
//   - recording.Recorder: stores typed commands for inspection and replay
//   - canvas.Surface: rasterizes into a gg.Context
type Target interface {
	FillCircle(c Circle, m Matrix)
	FillRect(r Rect, m Matrix)
}

// Drawable is anything that can issue its shapes to a Target.
// Draw must not touch any state other than the target.
type Drawable interface {
	Draw(t Target, m Matrix)
}

// Transformer is the read/write surface of a composed rigid transform.
// *Transformable implements it, as does every type embedding one.
type Transformer interface {
	Transform() Matrix
	Position() arm2d.Point
	SetPosition(p arm2d.Point)
	Rotation() float64
	SetRotation(angle float64)
	ScaleFactors() arm2d.Point
	SetScale(sx, sy float64)
	Origin() arm2d.Point
	SetOrigin(p arm2d.Point)
}

var (
	_ Transformer = (*Transformable)(nil)
	_ Transformer = (*Robot)(nil)
	_ Drawable    = (*Robot)(nil)
)

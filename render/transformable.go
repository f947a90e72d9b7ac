// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/arm2d"

// Transformable holds a composed rigid transform: position, rotation,
// scale and a local origin. It is meant to be embedded.
//
// The composed matrix is
//
//	Translate(position) * Rotate(rotation) * Scale(scale) * Translate(-origin)
//
// so the origin is the point that ends up at position, and rotation and
// scaling happen around it.
type Transformable struct {
	position arm2d.Point
	rotation float64
	scale    arm2d.Point
	origin   arm2d.Point
}

// NewTransformable returns an identity transform.
func NewTransformable() Transformable {
	return Transformable{scale: arm2d.Pt(1, 1)}
}

// Position returns the translation.
func (t *Transformable) Position() arm2d.Point { return t.position }

// SetPosition sets the translation.
func (t *Transformable) SetPosition(p arm2d.Point) { t.position = p }

// Move adds offset to the translation.
func (t *Transformable) Move(offset arm2d.Point) { t.position = t.position.Add(offset) }

// Rotation returns the rotation in radians.
func (t *Transformable) Rotation() float64 { return t.rotation }

// SetRotation sets the rotation in radians.
func (t *Transformable) SetRotation(angle float64) { t.rotation = angle }

// Turn adds angle radians to the rotation.
func (t *Transformable) Turn(angle float64) { t.rotation += angle }

// ScaleFactors returns the scale along X and Y.
func (t *Transformable) ScaleFactors() arm2d.Point { return t.scale }

// SetScale sets the scale along X and Y.
func (t *Transformable) SetScale(sx, sy float64) { t.scale = arm2d.Pt(sx, sy) }

// Origin returns the local origin.
func (t *Transformable) Origin() arm2d.Point { return t.origin }

// SetOrigin sets the local origin.
func (t *Transformable) SetOrigin(p arm2d.Point) { t.origin = p }

// Transform returns the composed matrix.
func (t *Transformable) Transform() Matrix {
	return Translate(t.position.X, t.position.Y).
		Multiply(Rotate(t.rotation)).
		Multiply(Scale(t.scale.X, t.scale.Y)).
		Multiply(Translate(-t.origin.X, -t.origin.Y))
}

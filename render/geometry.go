// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/arm2d"

// Default visual parameters, in chain units.
const (
	DefaultJointRadius   = 1.0
	DefaultLinkThickness = 1.0
)

// Default colors.
var (
	DefaultJointColor = Green
	DefaultLinkColor  = White
)

// Style holds the visual parameters of a robot. JointColors is indexed
// 0..N (the end effector has a marker too), LinkColors 0..N-1. Missing
// entries use DefaultJointColor and DefaultLinkColor.
type Style struct {
	JointRadius   float64
	LinkThickness float64
	JointColors   []Color
	LinkColors    []Color
}

// Geometry is the drawable form of a chain: one circle per joint position
// (N+1) and one rectangle per link (N), both in screen orientation (Y down).
type Geometry struct {
	Joints []Circle
	Links  []Rect
}

// Clone returns a deep copy of g.
func (g Geometry) Clone() Geometry {
	return Geometry{
		Joints: append([]Circle(nil), g.Joints...),
		Links:  append([]Rect(nil), g.Links...),
	}
}

// Derive computes the geometry of c under style s. It is a pure function
// of its inputs.
//
// Joint i is a circle at (x_i, -y_i). Link i is a rectangle of
// link[i].Length by s.LinkThickness anchored at the middle of its start
// edge, placed at joint i and rotated by -atan2 of the segment so it points
// at joint i+1 after the Y flip. The rectangle length is the link length
// itself, not the distance between the two positions.
func Derive(c *arm2d.Chain, s Style) Geometry {
	pos := c.Positions()
	links := c.Links()

	g := Geometry{
		Joints: make([]Circle, len(pos)),
		Links:  make([]Rect, len(links)),
	}
	for i, p := range pos {
		g.Joints[i] = Circle{
			Center: p.FlipY(),
			Radius: s.JointRadius,
			Color:  colorAt(s.JointColors, i, DefaultJointColor),
		}
		if i == len(pos)-1 {
			break
		}
		dir := pos[i+1].Sub(p)
		g.Links[i] = Rect{
			Position: p.FlipY(),
			Size:     arm2d.Pt(links[i].Length, s.LinkThickness),
			Origin:   arm2d.Pt(0, s.LinkThickness/2),
			Rotation: -dir.Angle(),
			Color:    colorAt(s.LinkColors, i, DefaultLinkColor),
		}
	}
	return g
}

func colorAt(colors []Color, i int, def Color) Color {
	if i < len(colors) {
		return colors[i]
	}
	return def
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/arm2d"
)

// Robot is the drawable form of a kinematic chain. It owns a private copy
// of the chain, the per-joint and per-link colors, the derived Geometry and
// a Transformable that places the whole robot.
//
// Every successful mutation re-derives the geometry. Failed mutations leave
// the robot untouched and return the chain's error unchanged.
//
// A Robot is not safe for concurrent use.
type Robot struct {
	Transformable

	chain  *arm2d.Chain
	style  Style
	geom   Geometry
	logger *slog.Logger
}

// FromChain creates a Robot from a copy of c. Later changes to c do not
// affect the robot and vice versa.
func FromChain(c *arm2d.Chain, opts ...Option) *Robot {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	st := Style{
		JointRadius:   o.jointRadius,
		LinkThickness: o.linkThickness,
		JointColors:   make([]Color, c.JointCount()+1),
		LinkColors:    make([]Color, c.LinkCount()),
	}
	for i := range st.JointColors {
		st.JointColors[i] = o.jointColor
	}
	for i := range st.LinkColors {
		st.LinkColors[i] = o.linkColor
	}

	r := &Robot{
		Transformable: NewTransformable(),
		chain:         c.Clone(),
		style:         st,
		logger:        o.logger,
	}
	r.rebuild()
	return r
}

func (r *Robot) rebuild() {
	r.geom = Derive(r.chain, r.style)
}

func (r *Robot) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return arm2d.Logger()
}

// SetJointAngle sets the angle of joint i, in radians.
func (r *Robot) SetJointAngle(i int, angle float64) error {
	if err := r.chain.SetJointAngle(i, angle); err != nil {
		r.log().Debug("render: joint angle rejected", "index", i, "angle", angle, "err", err)
		return err
	}
	r.rebuild()
	return nil
}

// SetLinkLength sets the length of link i.
func (r *Robot) SetLinkLength(i int, length float64) error {
	if err := r.chain.SetLinkLength(i, length); err != nil {
		r.log().Debug("render: link length rejected", "index", i, "length", length, "err", err)
		return err
	}
	r.rebuild()
	return nil
}

// SetJointColor sets the color of joint marker i from a normalized RGB
// triple. Valid indices are 0..JointCount(); the last one is the end
// effector.
func (r *Robot) SetJointColor(i int, rgb [3]float64) error {
	c, err := ColorFromRGB(rgb)
	if err != nil {
		r.log().Debug("render: joint color rejected", "index", i, "err", err)
		return err
	}
	return r.SetJointColorRGBA(i, c)
}

// SetJointColorRGBA sets the color of joint marker i.
func (r *Robot) SetJointColorRGBA(i int, c Color) error {
	if i < 0 || i >= len(r.style.JointColors) {
		err := fmt.Errorf("%w: joint color %d, have %d", arm2d.ErrIndexOutOfRange, i, len(r.style.JointColors))
		r.log().Debug("render: joint color rejected", "index", i, "err", err)
		return err
	}
	r.style.JointColors[i] = c
	r.rebuild()
	return nil
}

// SetLinkColor sets the color of link i from a normalized RGB triple.
func (r *Robot) SetLinkColor(i int, rgb [3]float64) error {
	c, err := ColorFromRGB(rgb)
	if err != nil {
		r.log().Debug("render: link color rejected", "index", i, "err", err)
		return err
	}
	return r.SetLinkColorRGBA(i, c)
}

// SetLinkColorRGBA sets the color of link i.
func (r *Robot) SetLinkColorRGBA(i int, c Color) error {
	if i < 0 || i >= len(r.style.LinkColors) {
		err := fmt.Errorf("%w: link color %d, have %d", arm2d.ErrIndexOutOfRange, i, len(r.style.LinkColors))
		r.log().Debug("render: link color rejected", "index", i, "err", err)
		return err
	}
	r.style.LinkColors[i] = c
	r.rebuild()
	return nil
}

// JointColor returns the color of joint marker i.
func (r *Robot) JointColor(i int) (Color, error) {
	if i < 0 || i >= len(r.style.JointColors) {
		return Color{}, fmt.Errorf("%w: joint color %d, have %d", arm2d.ErrIndexOutOfRange, i, len(r.style.JointColors))
	}
	return r.style.JointColors[i], nil
}

// LinkColor returns the color of link i.
func (r *Robot) LinkColor(i int) (Color, error) {
	if i < 0 || i >= len(r.style.LinkColors) {
		return Color{}, fmt.Errorf("%w: link color %d, have %d", arm2d.ErrIndexOutOfRange, i, len(r.style.LinkColors))
	}
	return r.style.LinkColors[i], nil
}

// JointCount returns the number of rotary joints N.
func (r *Robot) JointCount() int { return r.chain.JointCount() }

// LinkCount returns the number of links N.
func (r *Robot) LinkCount() int { return r.chain.LinkCount() }

// JointAngle returns the angle of joint i.
func (r *Robot) JointAngle(i int) (float64, error) { return r.chain.JointAngle(i) }

// LinkLength returns the length of link i.
func (r *Robot) LinkLength(i int) (float64, error) { return r.chain.LinkLength(i) }

// Positions returns the N+1 joint positions in chain coordinates.
func (r *Robot) Positions() []arm2d.Point { return r.chain.Positions() }

// Chain returns a copy of the robot's chain.
func (r *Robot) Chain() *arm2d.Chain { return r.chain.Clone() }

// Geometry returns a copy of the current derived geometry.
func (r *Robot) Geometry() Geometry { return r.geom.Clone() }

// Draw issues every link, then every joint marker, to t in ascending index
// order, under m composed with the robot's own transform. Joint markers are
// therefore drawn on top of link ends.
func (r *Robot) Draw(t Target, m Matrix) {
	m = m.Multiply(r.Transform())
	for _, l := range r.geom.Links {
		t.FillRect(l, m)
	}
	for _, j := range r.geom.Joints {
		t.FillCircle(j, m)
	}
}

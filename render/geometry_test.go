// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"math"
	"testing"

	"github.com/gogpu/arm2d"
	"github.com/google/go-cmp/cmp"
)

func mustChain(t *testing.T, angles, lengths []float64) *arm2d.Chain {
	t.Helper()
	joints := make([]arm2d.Joint, len(angles))
	for i, a := range angles {
		joints[i].Angle = a
	}
	links := make([]arm2d.Link, len(lengths))
	for i, l := range lengths {
		links[i].Length = l
	}
	c, err := arm2d.New(joints, links)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestDeriveCounts(t *testing.T) {
	for _, n := range []int{0, 1, 3, 10} {
		c, err := arm2d.NewUniform(n, 1)
		if err != nil {
			t.Fatal(err)
		}
		g := Derive(c, Style{JointRadius: 1, LinkThickness: 1})
		if len(g.Joints) != n+1 {
			t.Errorf("n=%d: %d joint markers, want %d", n, len(g.Joints), n+1)
		}
		if len(g.Links) != n {
			t.Errorf("n=%d: %d link rects, want %d", n, len(g.Links), n)
		}
	}
}

func TestDeriveGeometry(t *testing.T) {
	c := mustChain(t, []float64{math.Pi / 2, -math.Pi / 2}, []float64{10, 5})
	s := Style{
		JointRadius:   0.5,
		LinkThickness: 2,
		JointColors:   []Color{Red, Green, Blue},
		LinkColors:    []Color{White},
	}
	got := Derive(c, s)

	want := Geometry{
		Joints: []Circle{
			{Center: arm2d.Pt(0, 0), Radius: 0.5, Color: Red},
			{Center: arm2d.Pt(0, -10), Radius: 0.5, Color: Green},
			{Center: arm2d.Pt(5, -10), Radius: 0.5, Color: Blue},
		},
		Links: []Rect{
			{
				Position: arm2d.Pt(0, 0),
				Size:     arm2d.Pt(10, 2),
				Origin:   arm2d.Pt(0, 1),
				Rotation: -math.Pi / 2,
				Color:    White,
			},
			{
				Position: arm2d.Pt(0, -10),
				Size:     arm2d.Pt(5, 2),
				Origin:   arm2d.Pt(0, 1),
				Rotation: 0,
				Color:    DefaultLinkColor,
			},
		},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Derive() mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveLinksReachNextJoint(t *testing.T) {
	c := mustChain(t, []float64{0.3, -1.2, 2.0, 0.7}, []float64{4, 3, 2, 1})
	g := Derive(c, Style{JointRadius: 1, LinkThickness: 2})
	for i, l := range g.Links {
		// Middle of the far edge in the rectangle's own frame.
		end := l.Local().TransformPoint(arm2d.Pt(l.Size.X, l.Origin.Y))
		if diff := cmp.Diff(g.Joints[i+1].Center, end, approx); diff != "" {
			t.Errorf("link %d does not end at joint %d (-want +got):\n%s", i, i+1, diff)
		}
	}
}

func TestDeriveIsPure(t *testing.T) {
	c := mustChain(t, []float64{0.1, 0.2}, []float64{1, 2})
	before := c.Positions()
	s := Style{JointRadius: 1, LinkThickness: 1}
	a := Derive(c, s)
	b := Derive(c, s)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Derive() not deterministic:\n%s", diff)
	}
	if diff := cmp.Diff(before, c.Positions()); diff != "" {
		t.Errorf("Derive() changed the chain:\n%s", diff)
	}
}

func TestRectCorners(t *testing.T) {
	r := Rect{
		Position: arm2d.Pt(5, 5),
		Size:     arm2d.Pt(4, 2),
		Origin:   arm2d.Pt(0, 1),
		Rotation: math.Pi / 2,
	}
	want := [4]arm2d.Point{
		arm2d.Pt(6, 5),
		arm2d.Pt(6, 9),
		arm2d.Pt(4, 9),
		arm2d.Pt(4, 5),
	}
	if diff := cmp.Diff(want, r.Corners(Identity()), approx); diff != "" {
		t.Errorf("Corners() mismatch (-want +got):\n%s", diff)
	}
}

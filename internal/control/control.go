// Package control maps discrete user actions onto a render.Robot.
//
// Every action is one bounded step, so a window loop only translates key
// presses into calls.
package control

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/arm2d"
	"github.com/gogpu/arm2d/render"
)

// Limits applied by NudgeAngle and NudgeLength.
const (
	MinAngle      = -math.Pi
	MaxAngle      = math.Pi
	MinLinkLength = 0.0
	MaxLinkLength = 30.0
)

// Palette is the color cycle used by the color actions.
var Palette = []render.Color{
	render.Green,
	render.White,
	render.Red,
	render.Blue,
	{R: 255, G: 255, B: 0, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
}

// Panel holds the selection state for one robot.
// A Panel is not safe for concurrent use.
type Panel struct {
	robot      *render.Robot
	selected   int
	jointColor []int
	linkColor  []int

	// AngleStep is the angle change per step, in radians.
	AngleStep float64
	// LengthStep is the link length change per step.
	LengthStep float64
}

// New creates a Panel for r with joint 0 selected.
// Initial palette positions match the robot's colors where possible.
func New(r *render.Robot) *Panel {
	p := &Panel{
		robot:      r,
		jointColor: make([]int, r.JointCount()+1),
		linkColor:  make([]int, r.LinkCount()),
		AngleStep:  math.Pi / 90,
		LengthStep: 0.25,
	}
	for i := range p.jointColor {
		c, _ := r.JointColor(i)
		p.jointColor[i] = paletteIndex(c)
	}
	for i := range p.linkColor {
		c, _ := r.LinkColor(i)
		p.linkColor[i] = paletteIndex(c)
	}
	return p
}

func paletteIndex(c render.Color) int {
	for i, pc := range Palette {
		if pc == c {
			return i
		}
	}
	return 0
}

// Robot returns the controlled robot.
func (p *Panel) Robot() *render.Robot {
	return p.robot
}

// Selected returns the selected joint index.
func (p *Panel) Selected() int {
	return p.selected
}

// Select moves the selection by delta joints, wrapping around.
func (p *Panel) Select(delta int) {
	n := p.robot.JointCount()
	if n == 0 {
		return
	}
	p.selected = ((p.selected+delta)%n + n) % n
}

// NudgeAngle changes the selected joint angle by steps*AngleStep,
// clamped to [MinAngle, MaxAngle].
func (p *Panel) NudgeAngle(steps float64) error {
	a, err := p.robot.JointAngle(p.selected)
	if err != nil {
		return err
	}
	return p.robot.SetJointAngle(p.selected, clamp(a+steps*p.AngleStep, MinAngle, MaxAngle))
}

// NudgeLength changes the selected link length by steps*LengthStep,
// clamped to [MinLinkLength, MaxLinkLength].
func (p *Panel) NudgeLength(steps float64) error {
	l, err := p.robot.LinkLength(p.selected)
	if err != nil {
		return err
	}
	return p.robot.SetLinkLength(p.selected, clamp(l+steps*p.LengthStep, MinLinkLength, MaxLinkLength))
}

// CycleJointColor advances the color of joint marker i through Palette.
// i may be JointCount() for the end effector.
func (p *Panel) CycleJointColor(i int) error {
	if i < 0 || i >= len(p.jointColor) {
		return fmt.Errorf("%w: joint color %d, have %d", arm2d.ErrIndexOutOfRange, i, len(p.jointColor))
	}
	next := (p.jointColor[i] + 1) % len(Palette)
	if err := p.robot.SetJointColorRGBA(i, Palette[next]); err != nil {
		return err
	}
	p.jointColor[i] = next
	return nil
}

// CycleLinkColor advances the color of link i through Palette.
func (p *Panel) CycleLinkColor(i int) error {
	if i < 0 || i >= len(p.linkColor) {
		return fmt.Errorf("%w: link color %d, have %d", arm2d.ErrIndexOutOfRange, i, len(p.linkColor))
	}
	next := (p.linkColor[i] + 1) % len(Palette)
	if err := p.robot.SetLinkColorRGBA(i, Palette[next]); err != nil {
		return err
	}
	p.linkColor[i] = next
	return nil
}

// Status returns a short multi-line summary for an on-screen overlay.
func (p *Panel) Status() string {
	var sb strings.Builder
	for i := 0; i < p.robot.JointCount(); i++ {
		a, _ := p.robot.JointAngle(i)
		l, _ := p.robot.LinkLength(i)
		mark := " "
		if i == p.selected {
			mark = ">"
		}
		fmt.Fprintf(&sb, "%s Joint%d %+.3f rad  Link%d %.2f\n", mark, i, a, i, l)
	}
	pos := p.robot.Positions()
	end := pos[len(pos)-1]
	fmt.Fprintf(&sb, "  end effector (%.2f, %.2f)\n", end.X, end.Y)
	return sb.String()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

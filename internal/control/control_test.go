package control

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/arm2d"
	"github.com/gogpu/arm2d/render"
)

func newPanel(t *testing.T, n int) *Panel {
	t.Helper()
	c, err := arm2d.NewUniform(n, 10)
	if err != nil {
		t.Fatal(err)
	}
	return New(render.FromChain(c))
}

func TestSelectWraps(t *testing.T) {
	p := newPanel(t, 3)
	steps := []struct {
		delta, want int
	}{
		{1, 1}, {1, 2}, {1, 0}, {-1, 2}, {-5, 0}, {7, 1},
	}
	for _, s := range steps {
		p.Select(s.delta)
		if p.Selected() != s.want {
			t.Errorf("Select(%d) -> %d, want %d", s.delta, p.Selected(), s.want)
		}
	}
}

func TestSelectEmptyChain(t *testing.T) {
	p := newPanel(t, 0)
	p.Select(1)
	if p.Selected() != 0 {
		t.Errorf("Selected() = %d on empty chain", p.Selected())
	}
	if err := p.NudgeAngle(1); !errors.Is(err, arm2d.ErrIndexOutOfRange) {
		t.Errorf("NudgeAngle on empty chain error = %v", err)
	}
}

func TestNudgeAngleClamps(t *testing.T) {
	p := newPanel(t, 2)
	p.Select(1)
	p.AngleStep = 1
	if err := p.NudgeAngle(2); err != nil {
		t.Fatal(err)
	}
	if a, _ := p.Robot().JointAngle(1); a != 2 {
		t.Errorf("angle = %v, want 2", a)
	}
	if err := p.NudgeAngle(5); err != nil {
		t.Fatal(err)
	}
	if a, _ := p.Robot().JointAngle(1); a != math.Pi {
		t.Errorf("angle = %v, want π", a)
	}
	if err := p.NudgeAngle(-100); err != nil {
		t.Fatal(err)
	}
	if a, _ := p.Robot().JointAngle(1); a != -math.Pi {
		t.Errorf("angle = %v, want -π", a)
	}
	if a, _ := p.Robot().JointAngle(0); a != 0 {
		t.Errorf("unselected joint moved to %v", a)
	}
}

func TestNudgeLengthClamps(t *testing.T) {
	p := newPanel(t, 1)
	p.LengthStep = 5
	if err := p.NudgeLength(10); err != nil {
		t.Fatal(err)
	}
	if l, _ := p.Robot().LinkLength(0); l != MaxLinkLength {
		t.Errorf("length = %v, want %v", l, MaxLinkLength)
	}
	if err := p.NudgeLength(-100); err != nil {
		t.Fatal(err)
	}
	if l, _ := p.Robot().LinkLength(0); l != 0 {
		t.Errorf("length = %v, want 0", l)
	}
}

func TestCycleColors(t *testing.T) {
	p := newPanel(t, 2)
	// Defaults are green joints (Palette[0]) and white links (Palette[1]).
	if err := p.CycleJointColor(2); err != nil {
		t.Fatalf("CycleJointColor(end effector) = %v", err)
	}
	if c, _ := p.Robot().JointColor(2); c != Palette[1] {
		t.Errorf("end effector color = %v, want %v", c, Palette[1])
	}
	if err := p.CycleLinkColor(0); err != nil {
		t.Fatal(err)
	}
	if c, _ := p.Robot().LinkColor(0); c != Palette[2] {
		t.Errorf("link 0 color = %v, want %v", c, Palette[2])
	}

	for i := 0; i < len(Palette); i++ {
		_ = p.CycleJointColor(0)
	}
	if c, _ := p.Robot().JointColor(0); c != Palette[0] {
		t.Errorf("full cycle did not return to start: %v", c)
	}

	if err := p.CycleJointColor(3); !errors.Is(err, arm2d.ErrIndexOutOfRange) {
		t.Errorf("CycleJointColor(3) error = %v", err)
	}
	if err := p.CycleLinkColor(-1); !errors.Is(err, arm2d.ErrIndexOutOfRange) {
		t.Errorf("CycleLinkColor(-1) error = %v", err)
	}
}

func TestStatus(t *testing.T) {
	p := newPanel(t, 2)
	p.Select(1)
	s := p.Status()
	for _, want := range []string{"  Joint0 +0.000 rad  Link0 10.00", "> Joint1", "end effector (20.00, 0.00)"} {
		if !strings.Contains(s, want) {
			t.Errorf("Status() missing %q:\n%s", want, s)
		}
	}
}

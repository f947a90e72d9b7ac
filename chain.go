package arm2d

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Joint is a revolute joint. Angle is in radians, relative to the
// orientation accumulated from all preceding joints.
type Joint struct {
	Angle float64
}

// Link is a rigid segment connecting joint i to joint i+1.
// Length must be non-negative.
type Link struct {
	Length float64
}

// Chain is a planar open kinematic chain of N revolute joints and N links,
// paired by index. It keeps N+1 joint positions: the fixed base at the
// origin, one position per following joint, and the end effector last.
//
// Positions are fully determined by the joints and links and are recomputed
// after every successful mutation.
//
// A Chain is not safe for concurrent use.
type Chain struct {
	joints    []Joint
	links     []Link
	positions []Point
}

// New creates a chain from the given joints and links.
// The slices are copied. It returns ErrDimensionMismatch if the slices
// differ in length and ErrInvalidValue if any link length is negative
// or any value is NaN.
func New(joints []Joint, links []Link) (*Chain, error) {
	if len(joints) != len(links) {
		return nil, fmt.Errorf("%w: %d joints, %d links", ErrDimensionMismatch, len(joints), len(links))
	}
	for i, j := range joints {
		if math.IsNaN(j.Angle) {
			return nil, fmt.Errorf("%w: joint %d angle is NaN", ErrInvalidValue, i)
		}
	}
	for i, l := range links {
		if err := checkLength(l.Length); err != nil {
			return nil, fmt.Errorf("%w (link %d)", err, i)
		}
	}

	c := &Chain{
		joints:    append([]Joint(nil), joints...),
		links:     append([]Link(nil), links...),
		positions: make([]Point, len(joints)+1),
	}
	c.update()
	return c, nil
}

// NewUniform creates a straight chain of n joints at angle 0 and n links
// of the given length.
func NewUniform(n int, length float64) (*Chain, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative joint count %d", ErrInvalidValue, n)
	}
	joints := make([]Joint, n)
	links := make([]Link, n)
	for i := range links {
		links[i].Length = length
	}
	return New(joints, links)
}

// update runs the forward kinematics recurrence over the whole chain.
// Position i+1 depends on every joint and link in 0..i, so a change at any
// index invalidates everything downstream of it.
func (c *Chain) update() {
	var x, y, sum float64
	c.positions[0] = Point{}
	for i := range c.joints {
		sum += c.joints[i].Angle
		x += c.links[i].Length * math.Cos(sum)
		y += c.links[i].Length * math.Sin(sum)
		c.positions[i+1] = Point{X: x, Y: y}
	}
}

// SetJointAngle sets the angle of joint i, in radians.
func (c *Chain) SetJointAngle(i int, angle float64) error {
	if err := c.checkIndex("joint", i, len(c.joints)); err != nil {
		return err
	}
	if math.IsNaN(angle) {
		return fmt.Errorf("%w: joint %d angle is NaN", ErrInvalidValue, i)
	}
	c.joints[i].Angle = angle
	c.update()
	return nil
}

// SetLinkLength sets the length of link i.
func (c *Chain) SetLinkLength(i int, length float64) error {
	if err := c.checkIndex("link", i, len(c.links)); err != nil {
		return err
	}
	if err := checkLength(length); err != nil {
		return fmt.Errorf("%w (link %d)", err, i)
	}
	c.links[i].Length = length
	c.update()
	return nil
}

func (c *Chain) checkIndex(kind string, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %s %d, have %d", ErrIndexOutOfRange, kind, i, n)
	}
	return nil
}

func checkLength(length float64) error {
	if math.IsNaN(length) {
		return fmt.Errorf("%w: link length is NaN", ErrInvalidValue)
	}
	if length < 0 {
		return fmt.Errorf("%w: link length %g is negative", ErrInvalidValue, length)
	}
	return nil
}

// JointCount returns the number of rotary joints N.
// The end effector is not counted.
func (c *Chain) JointCount() int {
	return len(c.joints)
}

// LinkCount returns the number of links N.
func (c *Chain) LinkCount() int {
	return len(c.links)
}

// JointAngle returns the angle of joint i.
func (c *Chain) JointAngle(i int) (float64, error) {
	if err := c.checkIndex("joint", i, len(c.joints)); err != nil {
		return 0, err
	}
	return c.joints[i].Angle, nil
}

// LinkLength returns the length of link i.
func (c *Chain) LinkLength(i int) (float64, error) {
	if err := c.checkIndex("link", i, len(c.links)); err != nil {
		return 0, err
	}
	return c.links[i].Length, nil
}

// Position returns the position of joint i, where 0 is the base and
// JointCount() is the end effector.
func (c *Chain) Position(i int) (Point, error) {
	if err := c.checkIndex("position", i, len(c.positions)); err != nil {
		return Point{}, err
	}
	return c.positions[i], nil
}

// Positions returns a copy of all N+1 joint positions, base first.
func (c *Chain) Positions() []Point {
	return append([]Point(nil), c.positions...)
}

// EndEffector returns the terminal position of the chain.
func (c *Chain) EndEffector() Point {
	return c.positions[len(c.positions)-1]
}

// Joints returns a copy of the joints.
func (c *Chain) Joints() []Joint {
	return append([]Joint(nil), c.joints...)
}

// Links returns a copy of the links.
func (c *Chain) Links() []Link {
	return append([]Link(nil), c.links...)
}

// Clone returns a deep copy of the chain.
func (c *Chain) Clone() *Chain {
	return &Chain{
		joints:    append([]Joint(nil), c.joints...),
		links:     append([]Link(nil), c.links...),
		positions: append([]Point(nil), c.positions...),
	}
}

// DebugDump writes the position and angle of every joint, followed by the
// end effector position, one line each:
//
//	Joint0 | (x,y) = (0, 0) | theta = 0 radians
//	Joint1 | (x,y) = (10, 0) | theta = 0 radians
//	Joint2 | (x,y) = (20, 0)
//
// The format is meant for people, not for parsing.
func (c *Chain) DebugDump(w io.Writer) error {
	for i, j := range c.joints {
		p := c.positions[i]
		if _, err := fmt.Fprintf(w, "Joint%d | (x,y) = (%g, %g) | theta = %g radians\n", i, p.X, p.Y, j.Angle); err != nil {
			return err
		}
	}
	last := len(c.joints)
	p := c.positions[last]
	_, err := fmt.Fprintf(w, "Joint%d | (x,y) = (%g, %g)\n", last, p.X, p.Y)
	return err
}

// String returns the DebugDump listing.
func (c *Chain) String() string {
	var sb strings.Builder
	_ = c.DebugDump(&sb)
	return sb.String()
}

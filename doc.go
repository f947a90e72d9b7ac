// Package arm2d computes forward kinematics for planar serial-link
// manipulators.
//
// # Overview
//
// A [Chain] is an ordered sequence of revolute joints and rigid links,
// paired by index. Joint i rotates link i relative to the orientation
// accumulated from joints 0..i-1, so the Cartesian position of every joint
// follows from a single left-to-right scan:
//
//	θ += joint[i].Angle
//	x += link[i].Length * cos(θ)
//	y += link[i].Length * sin(θ)
//	position[i+1] = (x, y)
//
// The base (position 0) is always the origin. Any overall displacement of the
// manipulator is a rigid transform applied by the presentation layer.
//
// # Quick Start
//
//	c, err := arm2d.New(
//	    []arm2d.Joint{{Angle: math.Pi / 4}, {Angle: -math.Pi / 4}},
//	    []arm2d.Link{{Length: 10}, {Length: 10}},
//	)
//	if err != nil {
//	    return err
//	}
//	_ = c.SetJointAngle(1, math.Pi/2)
//	fmt.Println(c.EndEffector())
//
// # Errors
//
// Fallible operations return errors wrapping [ErrDimensionMismatch],
// [ErrIndexOutOfRange] or [ErrInvalidValue]; test with errors.Is. A failed
// call never changes the chain.
//
// # Coordinate System
//
// Chain coordinates are mathematical: X increases right, Y increases up,
// angles are radians, counter-clockwise positive. The render package flips Y
// for screen space.
//
// # Packages
//
//   - arm2d: kinematics core, no graphics dependency
//   - render: geometry derivation and the drawable Robot adapter
//   - recording: a render target that records draw commands
//   - backend, backend/canvas: named surfaces, gg-based rasterization
package arm2d

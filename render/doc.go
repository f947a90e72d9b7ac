// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render turns an arm2d.Chain into drawable shapes.
//
// The package keeps kinematics and drawing apart: a [Robot] owns a copy of a
// chain plus colors and a [Transformable], and re-derives its [Geometry]
// after every change. The derivation itself is the pure function [Derive],
// usable without a Robot.
//
// # Core Interfaces
//
//   - Target: receives filled circles and rectangles with a transform
//   - Drawable: issues shapes to a Target (Robot)
//   - Transformer: composed position/rotation/scale/origin (Transformable, Robot)
//
// # Coordinate System
//
// Geometry is in screen orientation: chain Y is negated, and link rotations
// are negated with it. A viewer maps chain units to pixels with the matrix
// passed to Draw.
//
// # Draw Order
//
// Draw issues all links in index order, then all joint markers in index
// order: N rectangles followed by N+1 circles.
package render

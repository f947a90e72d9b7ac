// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package backend provides named output surfaces for render.Drawable values.
//
// # Backend Registration
//
// Surfaces are registered by init() functions in their packages and
// selected by name at runtime:
//
//	import (
//	    _ "github.com/gogpu/arm2d/backend/canvas" // "png"
//	    _ "github.com/gogpu/arm2d/recording"      // "record"
//	)
//
//	s, err := backend.New("png", 1280, 720)
//	if err != nil {
//	    return err
//	}
//	s.Clear(render.Black)
//	robot.Draw(s, view)
//	_, err = s.WriteTo(w)
//
// # Backend Selection
//
// Default returns the highest priority registered surface: png, then record.
package backend

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"io"

	"github.com/gogpu/arm2d/render"
)

// Backend names.
const (
	// BackendPNG rasterizes with gg and writes PNG.
	BackendPNG = "png"
	// BackendRecord records commands and writes them as text.
	BackendRecord = "record"
)

// ErrBackendNotAvailable is returned when a requested backend is not
// registered.
var ErrBackendNotAvailable = errors.New("backend: not available")

// Surface is a render.Target that owns its output.
//
// A frame is produced by Clear, any number of draw calls, then WriteTo.
type Surface interface {
	render.Target
	io.WriterTo

	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Clear starts a new frame filled with c.
	Clear(c render.Color)
}

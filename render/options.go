// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "log/slog"

// Option configures a Robot during creation.
//
// Example:
//
//	r := render.FromChain(chain,
//	    render.WithJointRadius(0.5),
//	    render.WithLinkColor(render.Blue),
//	)
type Option func(*robotOptions)

type robotOptions struct {
	jointRadius   float64
	linkThickness float64
	jointColor    Color
	linkColor     Color
	logger        *slog.Logger
}

func defaultOptions() robotOptions {
	return robotOptions{
		jointRadius:   DefaultJointRadius,
		linkThickness: DefaultLinkThickness,
		jointColor:    DefaultJointColor,
		linkColor:     DefaultLinkColor,
	}
}

// WithJointRadius sets the radius of every joint marker.
// Values <= 0 keep the default.
func WithJointRadius(r float64) Option {
	return func(o *robotOptions) {
		if r > 0 {
			o.jointRadius = r
		}
	}
}

// WithLinkThickness sets the width of every link rectangle.
// Values <= 0 keep the default.
func WithLinkThickness(w float64) Option {
	return func(o *robotOptions) {
		if w > 0 {
			o.linkThickness = w
		}
	}
}

// WithJointColor sets the initial color of every joint marker.
func WithJointColor(c Color) Option {
	return func(o *robotOptions) {
		o.jointColor = c
	}
}

// WithLinkColor sets the initial color of every link.
func WithLinkColor(c Color) Option {
	return func(o *robotOptions) {
		o.linkColor = c
	}
}

// WithLogger sets the logger used for rejected mutations.
// By default the robot uses arm2d.Logger() at the time of each call.
func WithLogger(l *slog.Logger) Option {
	return func(o *robotOptions) {
		o.logger = l
	}
}

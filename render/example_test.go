// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render_test

import (
	"fmt"
	"math"

	"github.com/gogpu/arm2d"
	"github.com/gogpu/arm2d/recording"
	"github.com/gogpu/arm2d/render"
)

// ExampleRobot_Draw draws a two-link arm into a recorder and prints the
// command types in the order the target received them.
func ExampleRobot_Draw() {
	c, err := arm2d.NewUniform(2, 10)
	if err != nil {
		fmt.Println(err)
		return
	}
	robot := render.FromChain(c)
	_ = robot.SetJointAngle(1, math.Pi/2)

	rec := recording.NewRecorder(160, 90)
	robot.Draw(rec, render.Identity())
	for _, cmd := range rec.Commands() {
		fmt.Println(cmd.Type())
	}
	// Output:
	// FillRect
	// FillRect
	// FillCircle
	// FillCircle
	// FillCircle
}

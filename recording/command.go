package recording

import (
	"fmt"

	"github.com/gogpu/arm2d/render"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear      CommandType = iota // Clear the surface
	CmdFillCircle                    // Fill a circle
	CmdFillRect                      // Fill a rectangle
)

var commandTypeNames = [...]string{
	CmdClear:      "Clear",
	CmdFillCircle: "FillCircle",
	CmdFillRect:   "FillRect",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ClearCommand fills the whole surface with a color.
type ClearCommand struct {
	Color render.Color
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

func (c ClearCommand) String() string {
	return fmt.Sprintf("Clear color=%v", c.Color)
}

// FillCircleCommand fills a circle under a transform.
type FillCircleCommand struct {
	Circle    render.Circle
	Transform render.Matrix
}

// Type implements Command.
func (FillCircleCommand) Type() CommandType { return CmdFillCircle }

func (c FillCircleCommand) String() string {
	center := c.Transform.TransformPoint(c.Circle.Center)
	return fmt.Sprintf("FillCircle center=(%.4g, %.4g) r=%.4g color=%v",
		center.X, center.Y, c.Circle.Radius, c.Circle.Color)
}

// FillRectCommand fills a rectangle under a transform.
type FillRectCommand struct {
	Rect      render.Rect
	Transform render.Matrix
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

func (c FillRectCommand) String() string {
	q := c.Rect.Corners(c.Transform)
	return fmt.Sprintf("FillRect corners=(%.4g, %.4g) (%.4g, %.4g) (%.4g, %.4g) (%.4g, %.4g) color=%v",
		q[0].X, q[0].Y, q[1].X, q[1].Y, q[2].X, q[2].Y, q[3].X, q[3].Y, c.Rect.Color)
}

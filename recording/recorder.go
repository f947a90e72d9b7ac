package recording

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gogpu/arm2d/backend"
	"github.com/gogpu/arm2d/render"
)

func init() {
	backend.Register("record", func(width, height int) backend.Surface {
		return NewRecorder(width, height)
	})
}

// Recorder captures drawing operations as commands.
// It implements render.Target and backend.Surface.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

// NewRecorder creates an empty Recorder for a surface of the given size.
// The size is informational; nothing is clipped.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 16),
	}
}

// FillCircle implements render.Target.
func (r *Recorder) FillCircle(c render.Circle, m render.Matrix) {
	r.commands = append(r.commands, FillCircleCommand{Circle: c, Transform: m})
}

// FillRect implements render.Target.
func (r *Recorder) FillRect(rect render.Rect, m render.Matrix) {
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Transform: m})
}

// Clear discards every recorded command and records a ClearCommand.
func (r *Recorder) Clear(c render.Color) {
	r.commands = append(r.commands[:0], ClearCommand{Color: c})
}

// Reset discards every recorded command.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Size returns the surface dimensions.
func (r *Recorder) Size() (width, height int) {
	return r.width, r.height
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	return append([]Command(nil), r.commands...)
}

// WriteTo writes one line per recorded command.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	return writeCommands(w, r.commands)
}

// FinishRecording returns an immutable Recording of the commands so far.
// The Recorder is reset and can be reused.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.Commands(),
	}
	r.Reset()
	return rec
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Size returns the dimensions the recording was made for.
func (r *Recording) Size() (width, height int) {
	return r.width, r.height
}

// Commands returns a copy of the recorded commands.
func (r *Recording) Commands() []Command {
	return append([]Command(nil), r.commands...)
}

// clearer is implemented by targets that can clear themselves.
type clearer interface {
	Clear(c render.Color)
}

// Playback replays the recording to t in order. Clear commands are
// skipped when t cannot clear.
func (r *Recording) Playback(t render.Target) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			if cl, ok := t.(clearer); ok {
				cl.Clear(c.Color)
			}
		case FillCircleCommand:
			t.FillCircle(c.Circle, c.Transform)
		case FillRectCommand:
			t.FillRect(c.Rect, c.Transform)
		}
	}
}

// WriteTo writes one line per command.
func (r *Recording) WriteTo(w io.Writer) (int64, error) {
	return writeCommands(w, r.commands)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func writeCommands(w io.Writer, cmds []Command) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for _, cmd := range cmds {
		if _, err := fmt.Fprintln(bw, cmd); err != nil {
			return cw.n, err
		}
	}
	err := bw.Flush()
	return cw.n, err
}

// Package cli holds the flag handling and headless rendering of armdemo.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/arm2d"
	"github.com/gogpu/arm2d/backend"
	"github.com/gogpu/arm2d/render"

	// Register surfaces.
	_ "github.com/gogpu/arm2d/backend/canvas"
	_ "github.com/gogpu/arm2d/recording"
)

// Options is the parsed command line.
type Options struct {
	Angles  []float64
	Lengths []float64
	Width   int
	Height  int
	Zoom    float64
	Backend string
	Output  string
	Dump    bool
	Window  bool
	Verbose bool
}

// floatList is a flag.Value for comma separated floats.
type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(s string) error {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

// Parse parses args (without the program name). The default chain is
// three joints at 0 rad with links of length 10.
func Parse(name string, args []string, stderr io.Writer) (Options, error) {
	o := Options{
		Angles:  []float64{0, 0, 0},
		Lengths: []float64{10, 10, 10},
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var((*floatList)(&o.Angles), "angles", "comma separated joint angles in radians")
	fs.Var((*floatList)(&o.Lengths), "lengths", "comma separated link lengths")
	fs.IntVar(&o.Width, "width", 1280, "image width")
	fs.IntVar(&o.Height, "height", 720, "image height")
	fs.Float64Var(&o.Zoom, "zoom", 8, "pixels per chain unit")
	fs.StringVar(&o.Backend, "backend", backend.BackendPNG, "output backend: "+strings.Join(backend.Names(), ", "))
	fs.StringVar(&o.Output, "output", "arm.png", "output file, - for stdout")
	fs.BoolVar(&o.Dump, "dump", false, "print joint positions")
	fs.BoolVar(&o.Window, "window", false, "open an interactive window instead of writing a file")
	fs.BoolVar(&o.Verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.Width <= 0 || o.Height <= 0 {
		return Options{}, fmt.Errorf("invalid size %dx%d", o.Width, o.Height)
	}
	if o.Zoom <= 0 {
		return Options{}, fmt.Errorf("invalid zoom %g", o.Zoom)
	}
	return o, nil
}

// Robot builds the robot described by o.
func (o Options) Robot() (*render.Robot, error) {
	joints := make([]arm2d.Joint, len(o.Angles))
	for i, a := range o.Angles {
		joints[i].Angle = a
	}
	links := make([]arm2d.Link, len(o.Lengths))
	for i, l := range o.Lengths {
		links[i].Length = l
	}
	c, err := arm2d.New(joints, links)
	if err != nil {
		return nil, err
	}
	return render.FromChain(c), nil
}

// View maps chain units to pixels with the base at the image center.
func (o Options) View() render.Matrix {
	return render.Translate(float64(o.Width)/2, float64(o.Height)/2).
		Multiply(render.Scale(o.Zoom, o.Zoom))
}

// ErrNoOutput is returned by Render when there is nothing to write to.
var ErrNoOutput = errors.New("cli: no output writer")

// Render draws r onto a new surface of the selected backend and writes
// the result to w.
func Render(o Options, r *render.Robot, w io.Writer) error {
	if w == nil {
		return ErrNoOutput
	}
	s, err := backend.New(o.Backend, o.Width, o.Height)
	if err != nil {
		return err
	}
	if c, ok := s.(io.Closer); ok {
		defer c.Close()
	}

	s.Clear(render.Black)
	r.Draw(s, o.View())
	n, err := s.WriteTo(w)
	if err != nil {
		return fmt.Errorf("write %s output: %w", o.Backend, err)
	}
	arm2d.Logger().Info("cli: frame written", "backend", o.Backend, "bytes", n)
	return nil
}

// Command armdemo draws a planar robot arm to an image or an interactive
// window.
//
//	armdemo -angles 0.3,0.6,-0.9 -lengths 10,8,6 -output arm.png
//	armdemo -backend record -output - -dump
//	armdemo -window
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/arm2d"
	"github.com/gogpu/arm2d/internal/cli"
	"github.com/gogpu/arm2d/internal/viewer"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := cli.Parse("armdemo", args, stderr)
	if err != nil {
		return err
	}
	if o.Verbose {
		arm2d.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	robot, err := o.Robot()
	if err != nil {
		return err
	}

	if o.Dump {
		fmt.Fprint(stdout, robot.Chain())
	}

	if o.Window {
		cfg := viewer.DefaultConfig()
		cfg.Width, cfg.Height, cfg.Zoom = o.Width, o.Height, o.Zoom
		return viewer.Run(robot, cfg)
	}

	if o.Output == "-" {
		return cli.Render(o, robot, stdout)
	}
	f, err := os.Create(o.Output)
	if err != nil {
		return err
	}
	if err := cli.Render(o, robot, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("Arm saved to %s (%dx%d)\n", o.Output, o.Width, o.Height)
	return nil
}

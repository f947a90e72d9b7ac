// Package viewer shows a render.Robot in a desktop window and drives it
// from the keyboard.
package viewer

import (
	"image"
	"image/draw"

	"github.com/gogpu/arm2d"
	"github.com/gogpu/arm2d/backend/canvas"
	"github.com/gogpu/arm2d/internal/control"
	"github.com/gogpu/arm2d/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config describes the window.
type Config struct {
	Width, Height int
	// Zoom is the number of pixels per chain unit.
	Zoom float64
	// Background fills the frame before the robot is drawn.
	Background render.Color
}

// DefaultConfig returns a 1280x720 window showing 160x90 chain units
// centered on the base.
func DefaultConfig() Config {
	return Config{
		Width:      1280,
		Height:     720,
		Zoom:       8,
		Background: render.Black,
	}
}

// View returns the matrix mapping chain units to window pixels with the
// base at the window center.
func (c Config) View() render.Matrix {
	return render.Translate(float64(c.Width)/2, float64(c.Height)/2).
		Multiply(render.Scale(c.Zoom, c.Zoom))
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(robot *render.Robot, cfg Config) error {
	g := &game{
		panel: control.New(robot),
		cfg:   cfg,
		view:  cfg.View(),
		surf:  canvas.New(cfg.Width, cfg.Height),
	}
	defer g.surf.Close()

	ebiten.SetWindowTitle("arm2d")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)

	arm2d.Logger().Info("viewer: window opened", "width", cfg.Width, "height", cfg.Height, "joints", robot.JointCount())
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		err = nil
	}
	arm2d.Logger().Info("viewer: window closed")
	return err
}

type game struct {
	panel *control.Panel
	cfg   Config
	view  render.Matrix
	surf  *canvas.Surface
	img   *image.RGBA
	frame *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if shift {
			g.panel.Select(-1)
		} else {
			g.panel.Select(1)
		}
	}

	g.act("angle", ebiten.KeyArrowRight, func() error { return g.panel.NudgeAngle(1) })
	g.act("angle", ebiten.KeyArrowLeft, func() error { return g.panel.NudgeAngle(-1) })
	g.act("length", ebiten.KeyArrowUp, func() error { return g.panel.NudgeLength(1) })
	g.act("length", ebiten.KeyArrowDown, func() error { return g.panel.NudgeLength(-1) })

	robot := g.panel.Robot()
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if shift {
			g.report("link color", g.panel.CycleLinkColor(g.panel.Selected()))
		} else {
			g.report("joint color", g.panel.CycleJointColor(g.panel.Selected()))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.report("end effector color", g.panel.CycleJointColor(robot.JointCount()))
	}

	// Whole-robot rigid transform.
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		robot.Turn(-g.panel.AngleStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		robot.Turn(g.panel.AngleStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		robot.SetRotation(0)
		robot.SetPosition(arm2d.Point{})
	}
	return nil
}

// act runs fn every tick while key is held.
func (g *game) act(what string, key ebiten.Key, fn func() error) {
	if ebiten.IsKeyPressed(key) {
		g.report(what, fn())
	}
}

func (g *game) report(what string, err error) {
	if err != nil {
		arm2d.Logger().Debug("viewer: action rejected", "action", what, "joint", g.panel.Selected(), "err", err)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surf.Clear(g.cfg.Background)
	g.panel.Robot().Draw(g.surf, g.view)

	src := g.surf.Image()
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.cfg.Width, g.cfg.Height)
	}
	rgba, ok := src.(*image.RGBA)
	if !ok {
		if g.img == nil {
			g.img = image.NewRGBA(image.Rect(0, 0, g.cfg.Width, g.cfg.Height))
		}
		draw.Draw(g.img, g.img.Bounds(), src, src.Bounds().Min, draw.Src)
		rgba = g.img
	}
	g.frame.WritePixels(rgba.Pix)
	screen.DrawImage(g.frame, nil)

	ebitenutil.DebugPrint(screen, g.panel.Status()+
		"\nTab/Shift+Tab select  Left/Right angle  Up/Down length\n"+
		"C joint color  Shift+C link color  E end effector color\n"+
		"Q/W turn arm  R reset  Esc quit")
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

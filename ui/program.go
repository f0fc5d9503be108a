package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
)

type Msg interface{}

// Tick is sent once per update with the seconds since the previous one.
type Tick struct {
	DeltaTime float64
}

type MouseEvent struct {
	X, Y   int
	Action MouseAction
	Button ebiten.MouseButton
}

type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
}

// Resize reports a new logical screen size.
type Resize struct {
	Width, Height int
}

// Quit ends the program when returned from a Cmd.
type Quit struct{}

type Cmd func() Msg

// Based on bubbletea model
type Model interface {
	Init() Cmd
	Update(msg Msg) (Model, Cmd)
	Draw(screen *ebiten.Image)
}

// Program runs a Model as an ebiten game. A zero Width and Height follow
// the window size.
type Program struct {
	M                      Model
	Width, Height          int
	ShowDebug              bool
	LastMouseX, LastMouseY int

	initialized  bool
	quit         bool
	outW, outH   int
	sentW, sentH int
}

func (p *Program) Update() error {
	if !p.initialized {
		p.initialized = true
		p.runUpdate(p.M.Init())
	}
	if w, h := p.size(); w != p.sentW || h != p.sentH {
		p.sentW, p.sentH = w, h
		p.runUpdate(Resize{Width: w, Height: h})
	}

	mx, my := ebiten.CursorPosition()
	if mx != p.LastMouseX || my != p.LastMouseY {
		p.runUpdate(MouseEvent{X: mx, Y: my, Action: MouseMotion})
		p.LastMouseX = mx
		p.LastMouseY = my
	}
	for i := range ebiten.MouseButtonMax {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButton(i)) {
			p.runUpdate(MouseEvent{X: mx, Y: my, Action: MousePress, Button: ebiten.MouseButton(i)})
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButton(i)) {
			p.runUpdate(MouseEvent{X: mx, Y: my, Action: MouseRelease, Button: ebiten.MouseButton(i)})
		}
	}
	for i := range ebiten.KeyMax {
		if inpututil.IsKeyJustPressed(ebiten.Key(i)) {
			p.runUpdate(KeyEvent{Key: ebiten.Key(i), Pressed: true})
		}
		if inpututil.IsKeyJustReleased(ebiten.Key(i)) {
			p.runUpdate(KeyEvent{Key: ebiten.Key(i)})
		}
	}
	p.runUpdate(Tick{DeltaTime: 1 / float64(ebiten.TPS())})
	if p.quit {
		return ebiten.Termination
	}
	return nil
}

func (p *Program) runUpdate(msg Msg) {
	var cmd Cmd
	for {
		if _, ok := msg.(Quit); ok {
			p.quit = true
			return
		}
		p.M, cmd = p.M.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
		if msg == nil {
			return
		}
	}
}

func (p *Program) Draw(screen *ebiten.Image) {
	p.M.Draw(screen)
	if p.ShowDebug {
		msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (p *Program) size() (int, int) {
	if p.Width == 0 && p.Height == 0 {
		return p.outW, p.outH
	}
	return p.Width, p.Height
}

func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	p.outW, p.outH = outsideW, outsideH
	return p.size()
}

package ui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"github.com/SvenDH/go-card-table/table"
)

const gridSize = 12

var (
	background = color.RGBA{R: 0xfe, G: 0xfe, B: 0xfe, A: 0xff}
	hudColor   = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	hudFace    = text.NewGoXFace(basicfont.Face7x13)
)

// TableScreen draws a session and feeds it pointer input.
type TableScreen struct {
	Session *table.Session

	log    logrus.FieldLogger
	render *renderer
	w, h   int
	status string
}

func NewTableScreen(s *table.Session, log logrus.FieldLogger) *TableScreen {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &TableScreen{
		Session: s,
		log:     log,
		render:  newRenderer(),
		status:  "loading cards...",
	}
}

func (m *TableScreen) Init() Cmd {
	return nil
}

func (m *TableScreen) Update(msg Msg) (Model, Cmd) {
	switch msg := msg.(type) {
	case Resize:
		m.w, m.h = msg.Width, msg.Height
		if msg.Height > 0 {
			m.Session.Camera.Aspect = float64(msg.Width) / float64(msg.Height)
		}
	case KeyEvent:
		if msg.Pressed && msg.Key == ebiten.KeyEscape {
			return m, func() Msg { return Quit{} }
		}
	case MouseEvent:
		if msg.Action == MousePress && msg.Button == ebiten.MouseButtonLeft {
			m.click(msg.X, msg.Y)
		}
	case Tick:
		m.deal()
		m.Session.Update(msg.DeltaTime)
	}
	return m, nil
}

func (m *TableScreen) deal() {
	if m.Session.Result() != nil || m.Session.Err() != nil {
		return
	}
	_, err := m.Session.TryDeal()
	switch {
	case errors.Is(err, table.ErrAssetsNotReady):
	case err != nil:
		m.status = "failed: " + err.Error()
		m.log.WithError(err).Warn("table can not be dealt")
	default:
		m.status = fmt.Sprintf("%d cards left in deck", m.Session.Remaining())
	}
}

func (m *TableScreen) click(x, y int) {
	if m.w == 0 || m.h == 0 {
		return
	}
	ndc := mgl64.Vec2{
		float64(x)/float64(m.w)*2 - 1,
		1 - float64(y)/float64(m.h)*2,
	}
	if c, ok := m.Session.Click(ndc); ok {
		m.status = "selected " + c.String()
	}
}

func (m *TableScreen) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	b := screen.Bounds()
	m.render.cam = &m.Session.Camera
	m.render.w, m.render.h = float64(b.Dx()), float64(b.Dy())
	m.render.drawGrid(screen, gridSize)
	m.render.drawCards(screen, m.Session.Cards())

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(b.Dy())-20)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, m.status, hudFace, op)
}

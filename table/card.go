package table

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

type CardState int8

const (
	StateInDeck CardState = iota
	StateInHand
	StateSelected
)

func (s CardState) String() string {
	switch s {
	case StateInDeck:
		return "in-deck"
	case StateInHand:
		return "in-hand"
	case StateSelected:
		return "selected"
	}
	return fmt.Sprintf("CardState(%d)", int(s))
}

type Hand int8

const (
	NoHand Hand = iota
	PlayerHand
	OpponentHand
)

func (h Hand) String() string {
	switch h {
	case PlayerHand:
		return "player"
	case OpponentHand:
		return "opponent"
	}
	return "unassigned"
}

// Seat is the slot a dealt card occupies.
type Seat struct {
	Hand Hand
	Slot int
}

// Pose is a world position and XYZ Euler rotation in radians. Cards render
// as camera-facing sprites, so only the Z component (roll) tilts the art.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

func (p Pose) Roll() float64 { return p.Rotation.Z() }

// Face is one visual side of a card: a region of a texture and its size in
// world units before the card scale is applied.
type Face struct {
	Texture *Texture
	UV      UV
	Width   float64
	Height  float64
	Visible bool
}

// Names of the atlas rows and columns, indexed by Card.Suit and Card.Value.
var (
	SuitNames  = [FrontRows]string{"hearts", "diamonds", "clubs", "spades"}
	ValueNames = [FrontColumns]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

type Card struct {
	Front Face
	Back  Face
	Pose  Pose
	Scale float64
	Seat  Seat
	State CardState
	Name  string

	frontIndex int
}

func (c *Card) FrontIndex() int { return c.frontIndex }
func (c *Card) Suit() int       { return c.frontIndex / FrontColumns }
func (c *Card) Value() int      { return c.frontIndex % FrontColumns }

// FaceUp reports whether the front is the visible side.
func (c *Card) FaceUp() bool { return c.Front.Visible }

// SetFaceUp shows exactly one side of the card.
func (c *Card) SetFaceUp(up bool) {
	c.Front.Visible = up
	c.Back.Visible = !up
}

// VisibleFace returns the face currently rendered toward the viewer.
func (c *Card) VisibleFace() *Face {
	if c.Front.Visible {
		return &c.Front
	}
	return &c.Back
}

func (c *Card) String() string {
	return ValueNames[c.Value()] + " of " + SuitNames[c.Suit()]
}

// CardFactory builds cards from the loaded atlases.
type CardFactory struct {
	Assets    *AssetBundle
	Columns   int
	Rows      int
	CardScale float64
}

func NewCardFactory(assets *AssetBundle, cardScale float64) *CardFactory {
	return &CardFactory{
		Assets:    assets,
		Columns:   FrontColumns,
		Rows:      FrontRows,
		CardScale: cardScale,
	}
}

// Create builds the card for frontIndex. New cards sit in the deck with the
// back showing.
func (f *CardFactory) Create(frontIndex int) (*Card, error) {
	front, back, err := f.Assets.Textures()
	if err != nil {
		return nil, err
	}
	uv, err := UVRect(frontIndex, f.Columns, f.Rows)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	fw, fh := front.Size()
	bw, bh := back.Size()
	if fh == 0 || bh == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrAssetLoad)
	}
	frontAspect := (float64(fw) / float64(f.Columns)) / (float64(fh) / float64(f.Rows))
	backAspect := float64(bw) / float64(bh)

	c := &Card{
		Front: Face{
			Texture: front,
			UV:      uv,
			Width:   f.CardScale * frontAspect,
			Height:  f.CardScale,
		},
		Back: Face{
			Texture: back,
			UV:      FullUV,
			Width:   f.CardScale * backAspect,
			Height:  f.CardScale,
		},
		Scale:      1,
		State:      StateInDeck,
		frontIndex: frontIndex,
	}
	c.SetFaceUp(false)
	return c, nil
}

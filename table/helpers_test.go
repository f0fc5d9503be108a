package table

import (
	"context"
	"image"
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const (
	frontPath = "front.png"
	backPath  = "back.png"
)

// memLoader serves blank images of fixed sizes keyed by path.
type memLoader map[string]image.Rectangle

func (m memLoader) Load(_ context.Context, path string) (image.Image, error) {
	r, ok := m[path]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return image.NewRGBA(r), nil
}

func testLoader() memLoader {
	return memLoader{
		frontPath: image.Rect(0, 0, 1300, 560),
		backPath:  image.Rect(0, 0, 200, 280),
	}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func readyAssets(t *testing.T) *AssetBundle {
	t.Helper()
	b := NewAssetBundle(testLoader(), frontPath, backPath)
	require.NoError(t, b.Load(context.Background()))
	return b
}

func newTestDeck(t *testing.T, seed int64) *Deck {
	t.Helper()
	d := NewDeck(NewCardFactory(readyAssets(t), 1), rand.New(rand.NewSource(seed)))
	require.NoError(t, d.Populate())
	return d
}

// fannedPlayerLayout is the default fanned hand.
func fannedPlayerLayout() SeatLayout {
	return SeatLayout{Hand: PlayerHand, Seats: [HandSize]Pose{
		{Position: mgl64.Vec3{0.50, 4.004, 4.21}, Rotation: mgl64.Vec3{-math.Pi / 2, 0, -0.15}},
		{Position: mgl64.Vec3{0.25, 4.003, 4.17}, Rotation: mgl64.Vec3{-math.Pi / 2, 0, -0.10}},
		{Position: mgl64.Vec3{0, 4.002, 4.15}, Rotation: mgl64.Vec3{-math.Pi / 2, 0, 0}},
		{Position: mgl64.Vec3{-0.25, 4.001, 4.13}, Rotation: mgl64.Vec3{-math.Pi / 2, 0, 0.10}},
		{Position: mgl64.Vec3{-0.50, 4, 4.10}, Rotation: mgl64.Vec3{-math.Pi / 2, 0, 0.15}},
	}}
}

func fannedOpponentLayout() SeatLayout {
	return SeatLayout{Hand: OpponentHand, Seats: [HandSize]Pose{
		{Position: mgl64.Vec3{0.5, 6.98, 2.5}, Rotation: mgl64.Vec3{2 * math.Pi, math.Pi, 0.15}},
		{Position: mgl64.Vec3{0.25, 7.0, 2.501}, Rotation: mgl64.Vec3{2 * math.Pi, math.Pi, 0.10}},
		{Position: mgl64.Vec3{0, 7.015, 2.502}, Rotation: mgl64.Vec3{2 * math.Pi, math.Pi, 0}},
		{Position: mgl64.Vec3{-0.25, 7.0, 2.503}, Rotation: mgl64.Vec3{2 * math.Pi, math.Pi, -0.10}},
		{Position: mgl64.Vec3{-0.5, 6.98, 2.504}, Rotation: mgl64.Vec3{2 * math.Pi, math.Pi, -0.15}},
	}}
}

// spreadLayout keeps cards far enough apart that they never overlap on screen.
func spreadLayout(h Hand, y float64) SeatLayout {
	l := SeatLayout{Hand: h}
	for i := range l.Seats {
		l.Seats[i] = Pose{
			Position: mgl64.Vec3{float64(i-2) * 2, y, 4},
			Rotation: mgl64.Vec3{0, 0, 0.1 * float64(i-2)},
		}
	}
	return l
}

func testOptions() Options {
	return Options{
		CardScale:     1,
		PlayerScale:   1,
		OpponentScale: 0.65,
		Player:        fannedPlayerLayout(),
		Opponent:      fannedOpponentLayout(),
		Camera:        DefaultCamera(),
		Selection:     DefaultSelectionOptions(),
	}
}

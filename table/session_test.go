package table

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(seed int64, paths ...string) *Session {
	front, back := frontPath, backPath
	if len(paths) == 2 {
		front, back = paths[0], paths[1]
	}
	assets := NewAssetBundle(testLoader(), front, back)
	return NewSession(testOptions(), assets, rand.New(rand.NewSource(seed)), quietLogger())
}

func TestSessionStart(t *testing.T) {
	s := newTestSession(1)
	s.Assets.LoadAsync(context.Background())
	res, err := s.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DeckSize-2*HandSize, s.Remaining())
	assert.Len(t, res.PlayerHand.Cards, HandSize)
	assert.Len(t, res.OpponentHand.Cards, HandSize)
	assert.Same(t, res, s.Result())
	assert.Len(t, s.Cards(), 2*HandSize)
	assert.NotZero(t, s.ID)
}

func TestSessionSameSeedSameDeal(t *testing.T) {
	deal := func() ([]int, []int) {
		s := newTestSession(1234)
		require.NoError(t, s.Assets.Load(context.Background()))
		res, err := s.TryDeal()
		require.NoError(t, err)
		return res.PlayerHand.FrontIndices(), res.OpponentHand.FrontIndices()
	}
	p1, o1 := deal()
	p2, o2 := deal()
	assert.Equal(t, p1, p2)
	assert.Equal(t, o1, o2)
}

func TestSessionTryDealWaitsForAssets(t *testing.T) {
	s := newTestSession(2)
	res, err := s.TryDeal()
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrAssetsNotReady)
	assert.NoError(t, s.Err())

	require.NoError(t, s.Assets.Load(context.Background()))
	res, err = s.TryDeal()
	require.NoError(t, err)
	again, err := s.TryDeal()
	require.NoError(t, err)
	assert.Same(t, res, again)
	assert.Equal(t, DeckSize-2*HandSize, s.Remaining())
}

func TestSessionAssetFailureIsFatal(t *testing.T) {
	s := newTestSession(3, frontPath, "nope.png")
	s.Assets.LoadAsync(context.Background())
	res, err := s.Start(context.Background())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrAssetLoad)
	assert.ErrorIs(t, s.Err(), ErrAssetLoad)

	_, err = s.TryDeal()
	assert.ErrorIs(t, err, ErrAssetLoad)
	_, ok := s.Click(mgl64.Vec2{})
	assert.False(t, ok)
}

func TestSessionClickAndUpdate(t *testing.T) {
	s := newTestSession(4)
	s.opts.Player = spreadLayout(PlayerHand, 4)
	require.NoError(t, s.Assets.Load(context.Background()))
	res, err := s.TryDeal()
	require.NoError(t, err)

	target := res.PlayerHand.Cards[1]
	ndc, _, ok := s.Camera.Project(target.Pose.Position)
	require.True(t, ok)
	got, ok := s.Click(ndc)
	require.True(t, ok)
	assert.Same(t, target, got)

	s.Update(1)
	assert.Empty(t, s.Selection.Animations())
	assert.InDelta(t, 4.3, target.Pose.Position.Y(), 1e-5)
}

func TestDefaultCameraSeesBothHands(t *testing.T) {
	opts := testOptions()
	for _, l := range []SeatLayout{opts.Player, opts.Opponent} {
		for i, seat := range l.Seats {
			ndc, _, ok := opts.Camera.Project(seat.Position)
			require.True(t, ok, "%s seat %d behind the camera", l.Hand, i)
			assert.True(t, math.Abs(ndc.X()) < 1 && math.Abs(ndc.Y()) < 1,
				"%s seat %d off screen at %v", l.Hand, i, ndc)
		}
	}
}

// The fanned cards overlap; lower seats sit nearer the camera and cover the
// right side of the next seat, so each card is clicked on its left edge.
func TestSessionClickFannedHand(t *testing.T) {
	s := newTestSession(8)
	require.NoError(t, s.Assets.Load(context.Background()))
	res, err := s.TryDeal()
	require.NoError(t, err)

	right, up, _ := s.Camera.Basis()
	for i, c := range res.PlayerHand.Cards {
		lx := -0.4 * c.Front.Width * c.Scale
		sin, cos := math.Sincos(c.Pose.Roll())
		edge := c.Pose.Position.Add(right.Mul(lx * cos)).Add(up.Mul(lx * sin))
		ndc, _, ok := s.Camera.Project(edge)
		require.True(t, ok)
		require.True(t, math.Abs(ndc.X()) < 1 && math.Abs(ndc.Y()) < 1, "seat %d edge off screen at %v", i, ndc)

		got, ok := s.Click(ndc)
		require.True(t, ok, "seat %d", i)
		assert.Same(t, c, got, "seat %d", i)
		assert.Equal(t, StateSelected, c.State)
	}
	assert.Len(t, s.Selection.Animations(), HandSize)
}

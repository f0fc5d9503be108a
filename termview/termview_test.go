package termview

import (
	"context"
	"image"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SvenDH/go-card-table/config"
	"github.com/SvenDH/go-card-table/table"
)

func dealt(t *testing.T, seed int64) *table.Session {
	t.Helper()
	loader := table.LoaderFunc(func(ctx context.Context, path string) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, 130, 40)), nil
	})
	assets := table.NewAssetBundle(loader, "front", "back")
	s := table.NewSession(config.Default().Table, assets, rand.New(rand.NewSource(seed)), nil)
	assets.LoadAsync(context.Background())
	_, err := s.Start(context.Background())
	require.NoError(t, err)
	return s
}

func TestLabel(t *testing.T) {
	s := dealt(t, 1)
	for _, c := range s.Cards() {
		l := Label(c)
		assert.True(t, strings.HasSuffix(l, suits[c.Suit()]), l)
		assert.True(t, strings.HasPrefix(l, table.ValueNames[c.Value()]), l)
	}
}

func TestLabelFollowsAtlasNames(t *testing.T) {
	f := table.NewCardFactory(dealt(t, 1).Assets, 1)
	tests := []struct {
		index int
		want  string
	}{
		{0, "A♥"},
		{9, "10♥"},
		{25, "K♦"},
		{26, "A♣"},
		{51, "K♠"},
	}
	for _, tt := range tests {
		c, err := f.Create(tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.want, Label(c))
		assert.Equal(t, table.ValueNames[c.Value()]+" of "+table.SuitNames[c.Suit()], c.String())
	}
}

func TestRenderHidesOpponent(t *testing.T) {
	s := dealt(t, 7)
	res := s.Result()
	out := Render(res, s.Remaining(), false)

	assert.Contains(t, out, "42 cards left in deck")
	for _, c := range res.PlayerHand.Cards {
		assert.Contains(t, out, Label(c))
	}
	assert.Equal(t, table.HandSize, strings.Count(out, "##"))
}

func TestRenderReveal(t *testing.T) {
	s := dealt(t, 7)
	out := Render(s.Result(), s.Remaining(), true)
	assert.NotContains(t, out, "##")
	for _, c := range s.Result().OpponentHand.Cards {
		assert.Contains(t, out, Label(c))
	}
}

func TestRenderNoDeal(t *testing.T) {
	assert.Equal(t, "no cards dealt\n", Render(nil, 52, false))
}

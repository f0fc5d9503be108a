package table

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frontIndices(cards []*Card) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.FrontIndex()
	}
	return out
}

func TestPopulate(t *testing.T) {
	d := newTestDeck(t, 1)
	require.Equal(t, DeckSize, d.Len())
	for i, c := range d.Cards() {
		assert.Equal(t, i, c.FrontIndex())
	}
	require.NoError(t, d.Populate())
	assert.Equal(t, DeckSize, d.Len())
}

func TestPopulateBeforeAssetsLoad(t *testing.T) {
	d := NewDeck(NewCardFactory(NewAssetBundle(testLoader(), frontPath, backPath), 1), nil)
	assert.ErrorIs(t, d.Populate(), ErrAssetsNotReady)
	assert.Zero(t, d.Len())
}

func TestShuffleIsPermutation(t *testing.T) {
	d := newTestDeck(t, 7)
	d.Shuffle()
	got := frontIndices(d.Cards())
	assert.Len(t, got, DeckSize)
	sort.Ints(got)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestShuffleSameSeed(t *testing.T) {
	a := newTestDeck(t, 42)
	b := newTestDeck(t, 42)
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, frontIndices(a.Cards()), frontIndices(b.Cards()))

	c := newTestDeck(t, 43)
	c.Shuffle()
	assert.NotEqual(t, frontIndices(a.Cards()), frontIndices(c.Cards()))
}

func TestShuffleMatchesFisherYates(t *testing.T) {
	d := newTestDeck(t, 3)
	d.Shuffle()

	want := make([]int, DeckSize)
	for i := range want {
		want[i] = i
	}
	rng := rand.New(rand.NewSource(3))
	for i := len(want) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		want[i], want[j] = want[j], want[i]
	}
	assert.Equal(t, want, frontIndices(d.Cards()))
}

func TestDrawUntilEmpty(t *testing.T) {
	d := newTestDeck(t, 9)
	d.Shuffle()
	order := frontIndices(d.Cards())

	seen := map[int]bool{}
	for i := 0; i < DeckSize; i++ {
		c, err := d.Draw()
		require.NoError(t, err)
		assert.Equal(t, order[len(order)-1-i], c.FrontIndex())
		assert.False(t, seen[c.FrontIndex()], "card %d drawn twice", c.FrontIndex())
		seen[c.FrontIndex()] = true
	}
	assert.Zero(t, d.Len())

	c, err := d.Draw()
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

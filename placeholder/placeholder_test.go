package placeholder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SvenDH/go-card-table/table"
)

func TestPlaceholderAtlasLoads(t *testing.T) {
	dir := t.TempDir()
	front := filepath.Join(dir, "front.png")
	back := filepath.Join(dir, "back.png")
	require.NoError(t, WritePNG(front, FrontAtlas()))
	require.NoError(t, WritePNG(back, Back()))

	assets := table.NewAssetBundle(table.FileLoader{}, front, back)
	require.NoError(t, assets.Load(context.Background()))
	f, b, err := assets.Textures()
	require.NoError(t, err)

	w, h := f.Size()
	assert.Equal(t, CellW*table.FrontColumns, w)
	assert.Equal(t, CellH*table.FrontRows, h)
	w, h = b.Size()
	assert.Equal(t, 2*CellW, w)
	assert.Equal(t, 2*CellH, h)

	card, err := table.NewCardFactory(assets, 1).Create(0)
	require.NoError(t, err)
	assert.InDelta(t, float64(CellW)/CellH, card.Front.Width, 1e-9)
}

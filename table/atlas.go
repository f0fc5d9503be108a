package table

import (
	"fmt"
	"image"
	"math"
)

const (
	// FrontColumns and FrontRows describe the classic 52-card sheet:
	// one row per suit, one column per value.
	FrontColumns = 13
	FrontRows    = 4
	DeckSize     = FrontColumns * FrontRows
)

// UV is a normalized texture rectangle. V grows upward.
type UV struct {
	UMin, VMin, UMax, VMax float64
}

// FullUV maps a whole image, used for the single-image back atlas.
var FullUV = UV{0, 0, 1, 1}

// UVRect returns the sub-rectangle of sprite index in a columns x rows grid.
func UVRect(index, columns, rows int) (UV, error) {
	if columns <= 0 || rows <= 0 {
		return UV{}, fmt.Errorf("%w: grid %dx%d", ErrInvalidIndex, columns, rows)
	}
	if index < 0 || index >= columns*rows {
		return UV{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, index, columns*rows)
	}
	col := index % columns
	row := index / columns
	w := 1 / float64(columns)
	h := 1 / float64(rows)
	uv := UV{
		UMin: float64(col) * w,
		VMin: 1 - float64(row+1)*h,
	}
	uv.UMax = uv.UMin + w
	uv.VMax = uv.VMin + h
	return uv, nil
}

// Width and Height of the rectangle in UV units.
func (uv UV) Width() float64  { return uv.UMax - uv.UMin }
func (uv UV) Height() float64 { return uv.VMax - uv.VMin }

// Pixels converts the rectangle to image space (y down) for a w x h image.
// Row 0 of a sheet lands in the top strip of the image.
func (uv UV) Pixels(w, h int) image.Rectangle {
	return image.Rect(
		int(math.Round(uv.UMin*float64(w))),
		int(math.Round((1-uv.VMax)*float64(h))),
		int(math.Round(uv.UMax*float64(w))),
		int(math.Round((1-uv.VMin)*float64(h))),
	)
}

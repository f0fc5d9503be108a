// Package placeholder draws stand-in card art for running without an asset pack.
package placeholder

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/SvenDH/go-card-table/table"
)

// Size of one card cell in the front atlas.
const (
	CellW = 100
	CellH = 140
)

var (
	red   = color.RGBA{R: 0xcc, A: 0xff}
	ink   = color.RGBA{A: 0xff}
	paper = color.RGBA{R: 0xff, G: 0xff, B: 0xf8, A: 0xff}
	edge  = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
)

// FrontAtlas lays out the 52 faces with row 0 at the top, matching UVRect.
func FrontAtlas() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CellW*table.FrontColumns, CellH*table.FrontRows))
	for row := 0; row < table.FrontRows; row++ {
		for col := 0; col < table.FrontColumns; col++ {
			r := image.Rect(col*CellW, row*CellH, (col+1)*CellW, (row+1)*CellH)
			draw.Draw(img, r, image.NewUniform(edge), image.Point{}, draw.Src)
			draw.Draw(img, r.Inset(2), image.NewUniform(paper), image.Point{}, draw.Src)
			c := ink
			if row < 2 {
				c = red
			}
			label(img, r.Min.X+8, r.Min.Y+20, table.ValueNames[col], c)
			label(img, r.Min.X+8, r.Max.Y-12, table.SuitNames[row], c)
		}
	}
	return img
}

// Back is a checkered card back.
func Back() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2*CellW, 2*CellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)
	blue := color.RGBA{R: 0x33, G: 0x55, B: 0xaa, A: 0xff}
	inner := img.Bounds().Inset(10)
	for y := inner.Min.Y; y < inner.Max.Y; y++ {
		for x := inner.Min.X; x < inner.Max.X; x++ {
			if (x/10+y/10)%2 == 0 {
				img.Set(x, y, blue)
			}
		}
	}
	return img
}

func label(img draw.Image, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
)

// PNGOptions controls the rasterised rendering of a puzzle grid. Grid
// layout and font choice follow the reference rasteriser in the
// wordsearch/basic example this package is grounded on: a fixed-width
// basicfont.Face7x13 glyph centred in each cell, a word-list header
// above the grid.
type PNGOptions struct {
	CellSize   int // pixels per cell, default 40
	HeaderText string
}

const (
	defaultCellSize  = 40
	wordsPerRow      = 4
	wordRowSpacing   = 20
	titleHeight      = 25
	headerPadding    = 15
	glyphWidth       = 7
	glyphHeight      = 13
)

// WritePNG rasterises a rendered grid plus its word list to w as a PNG
// image: a header listing the words to find, followed by the letter
// grid with one glyph centred per cell.
func WritePNG(w io.Writer, g domain.Grid, words []string, opts PNGOptions) error {
	cellSize := opts.CellSize
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}

	width := g.Width()
	height := g.Height()
	imgWidth := width * cellSize
	headerHeight := calculateHeaderHeight(len(words))
	imgHeight := height*cellSize + headerHeight

	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{255, 255, 255, 255}}, image.Point{}, draw.Src)

	drawWordList(img, words, opts.HeaderText)
	drawLetterGrid(img, g, headerHeight, cellSize)

	return png.Encode(w, img)
}

func calculateHeaderHeight(wordCount int) int {
	rows := (wordCount + wordsPerRow - 1) / wordsPerRow
	if rows < 1 {
		rows = 1
	}
	return titleHeight + rows*wordRowSpacing + headerPadding
}

func drawWordList(img *image.RGBA, words []string, title string) {
	if title == "" {
		title = "Find these words:"
	}
	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{0, 0, 0, 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(10), Y: fixed.I(20)},
	}
	drawer.DrawString(title)

	const wordSpacing = 80
	startX, startY := 10, 45
	for i, word := range words {
		row := i / wordsPerRow
		col := i % wordsPerRow
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(startX + col*wordSpacing),
			Y: fixed.I(startY + row*wordRowSpacing),
		}
		drawer.DrawString(word)
	}
}

func drawLetterGrid(img *image.RGBA, g domain.Grid, headerHeight, cellSize int) {
	face := basicfont.Face7x13
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			drawLetterInCell(img, face, g[y][x], x, y, headerHeight, cellSize)
		}
	}
}

func drawLetterInCell(img *image.RGBA, face font.Face, letter byte, col, row, headerHeight, cellSize int) {
	cellX := col * cellSize
	cellY := row*cellSize + headerHeight

	x := cellX + (cellSize-glyphWidth)/2
	y := cellY + (cellSize-glyphHeight)/2 + 10

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{0, 0, 0, 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	drawer.DrawString(string(rune(letter)))
}

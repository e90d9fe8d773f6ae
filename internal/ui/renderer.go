// internal/ui/renderer.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ruslanhajiyev/homework2ai/internal/board"
)

var (
	colBackground = color.RGBA{0x1e, 0x1e, 0x24, 0xff}
	colGrid       = color.RGBA{0x9a, 0x9a, 0xa8, 0xff}
	colHover      = color.RGBA{0x33, 0x33, 0x40, 0xff}
	colX          = color.RGBA{0xe8, 0x5d, 0x4a, 0xff}
	colO          = color.RGBA{0x4a, 0xa8, 0xe8, 0xff}
	colWin        = color.RGBA{0xf2, 0xd3, 0x4f, 0xff}
	colWarn       = color.RGBA{0xf2, 0x9f, 0x4f, 0xff}
)

type renderer struct{}

func newRenderer() *renderer { return &renderer{} }

func cellPx(size int) int { return boardPx / size }

// cellOrigin 格子左上角
func cellOrigin(size int, mv board.Move) (float32, float32) {
	c := cellPx(size)
	return float32(boardMargin + mv.Col*c), float32(boardMargin + mv.Row*c)
}

func cellCenter(size int, mv board.Move) (float32, float32) {
	x, y := cellOrigin(size, mv)
	half := float32(cellPx(size)) / 2
	return x + half, y + half
}

// drawBoard
func (r *renderer) drawBoard(screen *ebiten.Image, gl *GameLoop) {
	b := gl.logic
	size := b.Size()
	cell := float32(cellPx(size))
	span := cell * float32(size)

	// 1) 背景 + 悬停格
	screen.Fill(colBackground)
	if gl.input.inside && !board.Terminal(b) && b.IsEmpty(gl.input.hover.Row, gl.input.hover.Col) {
		x, y := cellOrigin(size, gl.input.hover)
		vector.DrawFilledRect(screen, x, y, cell, cell, colHover, false)
	}

	// 2) 网格线
	for i := 1; i < size; i++ {
		off := float32(boardMargin) + cell*float32(i)
		vector.StrokeLine(screen, off, boardMargin, off, boardMargin+span, 2, colGrid, true)
		vector.StrokeLine(screen, boardMargin, off, boardMargin+span, off, 2, colGrid, true)
	}

	// 3) 棋子；动画中的那一颗按比例缩放
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			mv := board.Move{Row: row, Col: col}
			m := b.At(row, col)
			if m == board.Empty {
				continue
			}
			scale := float32(1)
			if gl.anim != nil && gl.anim.at == mv {
				s, _ := gl.anim.scale(time.Now())
				scale = float32(s)
			}
			drawMark(screen, size, mv, m, scale)
		}
	}

	// 4) 胜利线
	if l, ok := board.WinningLine(b); ok {
		x0, y0 := cellCenter(size, board.Move{Row: l.Row, Col: l.Col})
		er, ec := l.Cell(b.WinCondition() - 1)
		x1, y1 := cellCenter(size, board.Move{Row: er, Col: ec})
		vector.StrokeLine(screen, x0, y0, x1, y1, 6, colWin, true)
	}
}

func drawMark(screen *ebiten.Image, size int, mv board.Move, m board.Mark, scale float32) {
	cx, cy := cellCenter(size, mv)
	half := float32(cellPx(size)) * 0.32 * scale
	width := float32(cellPx(size)) / 14
	if width < 2 {
		width = 2
	}
	switch m {
	case board.X:
		vector.StrokeLine(screen, cx-half, cy-half, cx+half, cy+half, width, colX, true)
		vector.StrokeLine(screen, cx-half, cy+half, cx+half, cy-half, width, colX, true)
	case board.O:
		vector.StrokeCircle(screen, cx, cy, half, width, colO, true)
	}
}

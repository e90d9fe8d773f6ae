package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ruslanhajiyev/homework2ai/internal/board"
)

type inputHandler struct {
	hover  board.Move
	inside bool
}

// handleMouse 更新悬停格；点击棋盘内时返回被点的格子
func (h *inputHandler) handleMouse(g board.Board, locked bool) (board.Move, bool) {
	x, y := ebiten.CursorPosition()
	h.hover, h.inside = pixelToMove(g.Size(), x, y)
	if locked || !h.inside {
		return board.Move{}, false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return board.Move{}, false
	}
	return h.hover, true
}

/* ---------- 像素坐标 -> 格子 ---------- */

func pixelToMove(size, x, y int) (board.Move, bool) {
	cell := cellPx(size)
	if x < boardMargin || y < boardMargin {
		return board.Move{}, false
	}
	col := (x - boardMargin) / cell
	row := (y - boardMargin) / cell
	if row >= size || col >= size {
		return board.Move{}, false
	}
	return board.Move{Row: row, Col: col}, true
}

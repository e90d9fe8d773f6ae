package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/ruslanhajiyev/homework2ai/internal/board"
)

type headerUI struct{}

func newHeaderUI() *headerUI { return &headerUI{} }

var colWhite = color.White

func (h *headerUI) draw(screen *ebiten.Image, gl *GameLoop) {
	y := boardPx + 2*boardMargin + 20
	x := 10

	strs := []string{
		fmt.Sprintf("Player | %v", board.Player(gl.logic)),
		fmt.Sprintf("Moves | %d", gl.logic.MoveCount()),
		fmt.Sprintf("State | %s", stateLabel(gl.logic)),
	}
	if gl.pve {
		strs = append(strs, fmt.Sprintf("AI | %d nodes  %v", gl.lastNodes, gl.lastElapsed.Round(time.Millisecond)))
	}
	for _, s := range strs {
		text.Draw(screen, s, basicfont.Face7x13, x, y, colWhite)
		x += len(s)*7 + 30
	}
	if gl.message != "" {
		text.Draw(screen, gl.message, basicfont.Face7x13, 10, y+24, colWarn)
	}
}

func stateLabel(b board.Board) string {
	if w, ok := board.Winner(b); ok {
		return fmt.Sprintf("%v WINS", w)
	}
	if b.Full() {
		return "DRAW"
	}
	return "ON GOING"
}

// File: internal/ui/gameloop.go
package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/ruslanhajiyev/homework2ai/internal/board"
	"github.com/ruslanhajiyev/homework2ai/internal/search"
)

const (
	maxTPS      = 30
	boardPx     = 600
	boardMargin = 20
	headerH     = 80
	screenW     = boardPx + 2*boardMargin
	screenH     = boardPx + 2*boardMargin + headerH
)

type GameLoop struct {
	logic  board.Board
	rend   *renderer
	input  *inputHandler
	header *headerUI

	pve       bool // true=人机, false=双人
	agent     search.Agent
	humanSide board.Mark // 仅 pve 有用

	anim      *markAnim
	lockInput bool

	lastNodes   int
	lastElapsed time.Duration
	message     string
}

// NewGameLoop agent 为 nil 时是双人模式
func NewGameLoop(b board.Board, agent search.Agent, humanSide board.Mark) *GameLoop {
	return &GameLoop{
		logic:     b,
		rend:      newRenderer(),
		input:     &inputHandler{},
		header:    newHeaderUI(),
		pve:       agent != nil,
		agent:     agent,
		humanSide: humanSide,
	}
}

func (gl *GameLoop) Update() error {
	// ① Esc 退出
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// ② 动画阶段
	if gl.anim != nil {
		if _, done := gl.anim.scale(time.Now()); done {
			gl.anim = nil
		}
		gl.lockInput = gl.anim != nil
		if gl.lockInput {
			return nil
		}
	}

	if board.Terminal(gl.logic) {
		gl.input.handleMouse(gl.logic, true)
		return nil
	}

	// ③ AI 走子
	if gl.pve && board.Player(gl.logic) != gl.humanSide {
		return gl.aiMove()
	}

	// ④ 玩家点击
	if mv, ok := gl.input.handleMouse(gl.logic, gl.lockInput); ok {
		gl.humanMove(mv)
	}
	return nil
}

func (gl *GameLoop) aiMove() error {
	t0 := time.Now()
	mv, ok := gl.agent.Search(gl.logic)
	gl.lastElapsed = time.Since(t0)
	gl.lastNodes = gl.agent.NodesExplored()
	if !ok {
		return errors.New("ai found no move on a non-terminal board")
	}
	next, err := board.Result(gl.logic, mv)
	if err != nil {
		return err
	}
	log.Info().Stringer("player", board.Player(gl.logic)).Stringer("move", mv).
		Int("nodes", gl.lastNodes).Dur("elapsed", gl.lastElapsed).Msg("ai-move")
	gl.startAnimation(mv, next)
	return nil
}

func (gl *GameLoop) humanMove(mv board.Move) {
	next, err := board.Result(gl.logic, mv)
	if err != nil {
		log.Warn().Err(err).Msg("human-move-rejected")
		gl.message = "Cell already taken, pick another one"
		return
	}
	gl.message = ""
	log.Info().Stringer("player", board.Player(gl.logic)).Stringer("move", mv).Msg("human-move")
	gl.startAnimation(mv, next)
}

func (gl *GameLoop) Draw(screen *ebiten.Image) {
	gl.rend.drawBoard(screen, gl)
	gl.header.draw(screen, gl)
}

func (gl *GameLoop) Layout(_, _ int) (int, int) { return screenW, screenH }

// Run 阻塞直到窗口关闭
func Run(g *GameLoop) error {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(fmt.Sprintf("Tic-Tac-Toe %dx%d (k=%d)", g.logic.Size(), g.logic.Size(), g.logic.WinCondition()))
	ebiten.SetTPS(maxTPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

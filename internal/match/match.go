// File internal/match/match.go
// 两个 agent 从给定局面对弈到终局
package match

import (
	"errors"
	"fmt"
	"time"

	"github.com/ruslanhajiyev/homework2ai/internal/board"
	"github.com/ruslanhajiyev/homework2ai/internal/search"
)

// ErrNoMove: 非终局时 agent 却给不出着法
var ErrNoMove = errors.New("agent returned no move")

// Turn 记录一手棋
type Turn struct {
	Ply     int
	Player  board.Mark
	Move    board.Move
	Nodes   int
	Elapsed time.Duration
	After   board.Board
}

// Record 整局记录
type Record struct {
	Turns  []Turn
	Final  board.Board
	Winner board.Mark // 和棋为 board.Empty
}

func (r Record) Draw() bool { return r.Winner == board.Empty }

// TotalNodes 按执子方汇总节点数
func (r Record) TotalNodes(p board.Mark) int {
	n := 0
	for _, t := range r.Turns {
		if t.Player == p {
			n += t.Nodes
		}
	}
	return n
}

// Play 让 x、o 轮流搜索直到终局。onTurn 可为 nil。
// 两个 agent 必须是不同实例，因为每次搜索都会重置实例上的节点计数。
func Play(start board.Board, x, o search.Agent, onTurn func(Turn)) (Record, error) {
	if sameInstance(x, o) {
		return Record{}, fmt.Errorf("match: both sides share one agent instance")
	}
	rec := Record{Final: start, Winner: board.Empty}
	b := start
	for ply := 0; !board.Terminal(b); ply++ {
		p := board.Player(b)
		agent := x
		if p == board.O {
			agent = o
		}

		t0 := time.Now()
		mv, ok := agent.Search(b)
		elapsed := time.Since(t0)
		if !ok {
			return rec, fmt.Errorf("%w: %v at ply %d", ErrNoMove, p, ply)
		}
		next, err := board.Result(b, mv)
		if err != nil {
			return rec, fmt.Errorf("match: %v played %v: %w", p, mv, err)
		}

		t := Turn{Ply: ply, Player: p, Move: mv, Nodes: agent.NodesExplored(), Elapsed: elapsed, After: next}
		rec.Turns = append(rec.Turns, t)
		if onTurn != nil {
			onTurn(t)
		}
		b = next
	}

	rec.Final = b
	if w, ok := board.Winner(b); ok {
		rec.Winner = w
	}
	return rec, nil
}

// sameInstance 只比较指针类型的 agent；直接比较接口值时，
// 不可比较的动态类型会 panic。
func sameInstance(x, o search.Agent) bool {
	switch a := x.(type) {
	case *search.Minimax:
		b, ok := o.(*search.Minimax)
		return ok && a == b
	case *search.AlphaBeta:
		b, ok := o.(*search.AlphaBeta)
		return ok && a == b
	}
	return false
}

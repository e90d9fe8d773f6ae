// internal/search/minimax.go
package search

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/ruslanhajiyev/homework2ai/internal/board"
)

// Minimax 完整展开到终局，没有剪枝也没有深度限制；只适合 3×3 级别，用作正确性基准。
type Minimax struct {
	nodes int
}

func NewMinimax() *Minimax { return &Minimax{} }

// Search 见 Agent
func (s *Minimax) Search(b board.Board) (board.Move, bool) {
	res, ok := SolveMinimax(b)
	s.nodes = res.Nodes
	return res.Move, ok
}

func (s *Minimax) NodesExplored() int { return s.nodes }

// SolveMinimax 是无状态版本：节点数随结果返回。
// 着法先按 (row, col) 排序，严格更优才替换，所以平局时取字典序最小的着法。
func SolveMinimax(b board.Board) (Result, bool) {
	actions := sortLex(board.Actions(b))
	if len(actions) == 0 {
		return Result{}, false
	}

	var nodes int
	isMax := maximizing(b)
	best := Result{Value: math.Inf(1)}
	if isMax {
		best.Value = math.Inf(-1)
	}
	for _, a := range actions {
		v := minimaxValue(child(b, a), &nodes)
		if (isMax && v > best.Value) || (!isMax && v < best.Value) {
			best.Value, best.Move = v, a
		}
	}
	best.Nodes = nodes

	log.Debug().Str("agent", "minimax").Stringer("move", best.Move).
		Float64("value", best.Value).Int("nodes", nodes).Msg("search-done")
	return best, true
}

func minimaxValue(b board.Board, nodes *int) float64 {
	*nodes++
	if v, ok := terminalValue(b); ok {
		return v
	}

	isMax := maximizing(b)
	best := math.Inf(1)
	if isMax {
		best = math.Inf(-1)
	}
	for _, a := range sortLex(board.Actions(b)) {
		v := minimaxValue(child(b, a), nodes)
		if isMax {
			best = math.Max(best, v)
		} else {
			best = math.Min(best, v)
		}
	}
	return best
}

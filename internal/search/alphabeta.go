// internal/search/alphabeta.go
package search

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/ruslanhajiyev/homework2ai/internal/board"
	"github.com/ruslanhajiyev/homework2ai/internal/eval"
)

// Unbounded 表示不限深度：搜索精确到终局，结果与 Minimax 一致
const Unbounded = 0

// Options 在构造时固定，之后不可修改
type Options struct {
	MaxDepth int  // <= 0 即 Unbounded；否则到该深度改用启发评估
	Ordering bool // 展开前按 "靠中心 + 启发分" 排序
	// ScaleTerminal 有深度限制时把终局效用乘以 eval.WinScore，与启发分同量级。
	// 默认关闭：终局返回精确的 ±1/0。
	ScaleTerminal bool
}

// DefaultOptions 不限深度、开启排序
func DefaultOptions() Options { return Options{MaxDepth: Unbounded, Ordering: true} }

func (o Options) limited() bool { return o.MaxDepth > 0 }

// AlphaBeta 是实际对弈用的搜索
type AlphaBeta struct {
	opts  Options
	nodes int
}

func NewAlphaBeta(opts Options) *AlphaBeta { return &AlphaBeta{opts: opts} }

func NewDefaultAlphaBeta() *AlphaBeta { return NewAlphaBeta(DefaultOptions()) }

func (s *AlphaBeta) Options() Options { return s.opts }

// Search 见 Agent
func (s *AlphaBeta) Search(b board.Board) (board.Move, bool) {
	res, ok := SolveAlphaBeta(b, s.opts)
	s.nodes = res.Nodes
	return res.Move, ok
}

func (s *AlphaBeta) NodesExplored() int { return s.nodes }

// abSearch 承载一次根搜索的局部状态
type abSearch struct {
	opts  Options
	nodes int
}

/* ──────────────── 根层 ──────────────── */

// SolveAlphaBeta 无状态版本。不限深度时返回值与 SolveMinimax 相同；
// 平局时取当前展开顺序里第一个达到最优值的着法。
func SolveAlphaBeta(b board.Board, opts Options) (Result, bool) {
	s := &abSearch{opts: opts}
	actions := s.order(b, board.Actions(b))
	if len(actions) == 0 {
		return Result{}, false
	}

	isMax := maximizing(b)
	alpha, beta := math.Inf(-1), math.Inf(1)
	best := Result{Value: beta}
	if isMax {
		best.Value = alpha
	}
	for _, a := range actions {
		v := s.value(child(b, a), 1, alpha, beta)
		if isMax {
			if v > best.Value {
				best.Value, best.Move = v, a
			}
			alpha = math.Max(alpha, best.Value)
		} else {
			if v < best.Value {
				best.Value, best.Move = v, a
			}
			beta = math.Min(beta, best.Value)
		}
	}
	best.Nodes = s.nodes

	log.Debug().Str("agent", "alphabeta").Int("max_depth", opts.MaxDepth).Bool("ordering", opts.Ordering).
		Bool("scale_terminal", opts.ScaleTerminal).Stringer("move", best.Move).Float64("value", best.Value).
		Int("nodes", s.nodes).Msg("search-done")
	return best, true
}

/* ──────────────── 递归 ──────────────── */

func (s *abSearch) value(b board.Board, depth int, alpha, beta float64) float64 {
	s.nodes++
	if v, ok := terminalValue(b); ok {
		if s.opts.limited() && s.opts.ScaleTerminal {
			return v * eval.WinScore(b.Size(), b.WinCondition())
		}
		return v
	}
	if s.opts.limited() && depth >= s.opts.MaxDepth {
		return eval.Evaluate(b) // 近似值
	}

	actions := s.order(b, board.Actions(b))
	if maximizing(b) {
		best := math.Inf(-1)
		for _, a := range actions {
			best = math.Max(best, s.value(child(b, a), depth+1, alpha, beta))
			alpha = math.Max(alpha, best)
			if beta <= alpha {
				break // β 剪
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, a := range actions {
		best = math.Min(best, s.value(child(b, a), depth+1, alpha, beta))
		beta = math.Min(beta, best)
		if beta <= alpha {
			break // α 剪
		}
	}
	return best
}

func (s *abSearch) order(b board.Board, moves []board.Move) []board.Move {
	if s.opts.Ordering {
		return OrderMoves(b, moves)
	}
	return sortLex(moves)
}

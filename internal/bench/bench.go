// File internal/bench/bench.go
// 按节点数与耗时比较各搜索策略
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ruslanhajiyev/homework2ai/internal/board"
	"github.com/ruslanhajiyev/homework2ai/internal/search"
)

// Setup 一个基准局面
type Setup struct {
	Size, K int
	Depth   int // AlphaBeta 的深度上限，search.Unbounded 为不限
}

type Config struct {
	Exact    Setup // Minimax vs AlphaBeta
	Ordering Setup // 有/无排序的 AlphaBeta
	Plies    int   // 等价性检查走多少手
	Workers  int   // 同时运行的搜索数；>1 时计时会互相干扰
}

func DefaultConfig() Config {
	return Config{
		Exact:    Setup{Size: 3, K: 3, Depth: search.Unbounded},
		Ordering: Setup{Size: 4, K: 4, Depth: 6},
		Plies:    3,
		Workers:  1,
	}
}

// Measurement 一次搜索的观测值
type Measurement struct {
	Strategy string
	Move     board.Move
	Nodes    int
	Elapsed  time.Duration
}

// Comparison 基线与候选在同一局面上的对比
type Comparison struct {
	Name      string
	Baseline  Measurement
	Candidate Measurement
}

// Speedup 基线节点数 / 候选节点数
func (c Comparison) Speedup() float64 {
	if c.Candidate.Nodes == 0 {
		return 0
	}
	return float64(c.Baseline.Nodes) / float64(c.Candidate.Nodes)
}

// Reduction 候选比基线少访问的节点百分比
func (c Comparison) Reduction() float64 {
	if c.Baseline.Nodes == 0 {
		return 0
	}
	return 100 * float64(c.Baseline.Nodes-c.Candidate.Nodes) / float64(c.Baseline.Nodes)
}

func (c Comparison) SameMove() bool { return c.Baseline.Move == c.Candidate.Move }

// Equivalence 沿 Minimax 的着法走若干手，每手比较两种搜索
type Equivalence struct {
	Positions  int
	ValueMatch int
	MoveMatch  int
	Mismatches []board.Board
}

func (e Equivalence) Pass() bool { return e.ValueMatch == e.Positions }

type Report struct {
	Exact       Comparison
	Ordering    Comparison
	Equivalence Equivalence
}

/* ──────────────── 运行 ──────────────── */

// Run 执行全部基准。每次测量都用新的 agent 实例，可以安全并发。
func Run(ctx context.Context, cfg Config) (Report, error) {
	exact, err := board.InitialState(cfg.Exact.Size, cfg.Exact.K)
	if err != nil {
		return Report{}, fmt.Errorf("exact setup: %w", err)
	}
	ordering, err := board.InitialState(cfg.Ordering.Size, cfg.Ordering.K)
	if err != nil {
		return Report{}, fmt.Errorf("ordering setup: %w", err)
	}

	var rep Report
	rep.Exact.Name = fmt.Sprintf("%dx%d k=%d", cfg.Exact.Size, cfg.Exact.Size, cfg.Exact.K)
	rep.Ordering.Name = fmt.Sprintf("%dx%d k=%d depth=%d", cfg.Ordering.Size, cfg.Ordering.Size, cfg.Ordering.K, cfg.Ordering.Depth)

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	measureInto := func(dst *Measurement, name string, a search.Agent, b board.Board) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := Measure(name, a, b)
			*dst = m
			return err
		})
	}

	measureInto(&rep.Exact.Baseline, "minimax", search.NewMinimax(), exact)
	measureInto(&rep.Exact.Candidate, "alphabeta",
		search.NewAlphaBeta(search.Options{MaxDepth: cfg.Exact.Depth, Ordering: true}), exact)
	measureInto(&rep.Ordering.Baseline, "alphabeta/lexicographic",
		search.NewAlphaBeta(search.Options{MaxDepth: cfg.Ordering.Depth, Ordering: false}), ordering)
	measureInto(&rep.Ordering.Candidate, "alphabeta/ordered",
		search.NewAlphaBeta(search.Options{MaxDepth: cfg.Ordering.Depth, Ordering: true}), ordering)
	g.Go(func() error {
		eq, err := CheckEquivalence(ctx, exact, cfg.Plies)
		rep.Equivalence = eq
		return err
	})

	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return rep, nil
}

// Measure 计时一次搜索
func Measure(name string, a search.Agent, b board.Board) (Measurement, error) {
	t0 := time.Now()
	mv, ok := a.Search(b)
	elapsed := time.Since(t0)
	if !ok {
		return Measurement{}, fmt.Errorf("%s: no move on %dx%d board", name, b.Size(), b.Size())
	}
	return Measurement{Strategy: name, Move: mv, Nodes: a.NodesExplored(), Elapsed: elapsed}, nil
}

// CheckEquivalence 从 start 起沿 Minimax 着法走 plies 手
func CheckEquivalence(ctx context.Context, start board.Board, plies int) (Equivalence, error) {
	var eq Equivalence
	b := start
	for i := 0; i < plies && !board.Terminal(b); i++ {
		if err := ctx.Err(); err != nil {
			return eq, err
		}
		mm, _ := search.SolveMinimax(b)
		ab, _ := search.SolveAlphaBeta(b, search.DefaultOptions())

		eq.Positions++
		if mm.Value == ab.Value {
			eq.ValueMatch++
		} else {
			eq.Mismatches = append(eq.Mismatches, b)
		}
		if mm.Move == ab.Move {
			eq.MoveMatch++
		}

		next, err := board.Result(b, mm.Move)
		if err != nil {
			return eq, err
		}
		b = next
	}
	return eq, nil
}

/* ──────────────── 输出 ──────────────── */

// Log 把报告写成结构化日志
func (r Report) Log(logger zerolog.Logger) {
	logComparison(logger, "exact", r.Exact)
	logComparison(logger, "ordering", r.Ordering)

	ev := logger.Info()
	if !r.Equivalence.Pass() {
		ev = logger.Warn()
	}
	ev.Int("positions", r.Equivalence.Positions).
		Int("value_match", r.Equivalence.ValueMatch).
		Int("move_match", r.Equivalence.MoveMatch).
		Bool("pass", r.Equivalence.Pass()).
		Msg("equivalence")
	for _, b := range r.Equivalence.Mismatches {
		logger.Warn().Str("board", b.String()).Msg("value-mismatch")
	}
}

func logComparison(logger zerolog.Logger, kind string, c Comparison) {
	for _, m := range []Measurement{c.Baseline, c.Candidate} {
		logger.Info().Str("bench", kind).Str("setup", c.Name).Str("strategy", m.Strategy).
			Stringer("move", m.Move).Int("nodes", m.Nodes).Dur("elapsed", m.Elapsed).Msg("measurement")
	}
	logger.Info().Str("bench", kind).Str("setup", c.Name).
		Str("speedup", fmt.Sprintf("%.2fx", c.Speedup())).
		Str("reduction", fmt.Sprintf("%.2f%%", c.Reduction())).
		Bool("same_move", c.SameMove()).Msg("comparison")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/ruslanhajiyev/homework2ai/internal/bench"
	"github.com/ruslanhajiyev/homework2ai/internal/board"
	"github.com/ruslanhajiyev/homework2ai/internal/config"
	"github.com/ruslanhajiyev/homework2ai/internal/logx"
	"github.com/ruslanhajiyev/homework2ai/internal/match"
	"github.com/ruslanhajiyev/homework2ai/internal/search"
	"github.com/ruslanhajiyev/homework2ai/internal/ui"
)

func main() {
	// ──────── 命令行参数 ────────
	var (
		mode     = flag.String("mode", "pve", "pve | pvp | ava | bench")
		size     = flag.Int("m", 3, "board size")
		k        = flag.Int("k", 3, "marks in a row needed to win")
		depth    = flag.Int("depth", config.AutoDepth, "alpha-beta depth limit (0 = unbounded, -1 = auto)")
		ordering = flag.Bool("ordering", true, "enable move ordering")
		scale    = flag.Bool("scale-terminal", false, "scale terminal utility by the win score under a depth limit")
		human    = flag.String("human", "X", "side played by the human in pve mode")
		workers  = flag.Int("workers", 1, "concurrent searches in bench mode")
		verbose  = flag.Bool("v", false, "log per-search diagnostics")
	)
	flag.Parse()

	logger := logx.Setup(os.Stderr, *verbose)
	opts, err := config.SearchOptions(*depth, *size, *ordering, *scale)
	if err != nil {
		logger.Error().Err(err).Msg("exit")
		os.Exit(2)
	}
	if err := run(logger, *mode, *size, *k, opts, *human, *workers); err != nil {
		logger.Error().Err(err).Str("mode", *mode).Msg("exit")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger, mode string, size, k int, opts search.Options, human string, workers int) error {
	if mode == "bench" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		cfg := bench.DefaultConfig()
		cfg.Workers = workers
		rep, err := bench.Run(ctx, cfg)
		if err != nil {
			return err
		}
		rep.Log(logger)
		return nil
	}

	// ──────── 初始化棋局 ────────
	b, err := board.InitialState(size, k)
	if err != nil {
		return err
	}
	logger.Info().Int("m", size).Int("k", k).Int("depth", opts.MaxDepth).
		Bool("ordering", opts.Ordering).Bool("scale_terminal", opts.ScaleTerminal).Str("mode", mode).Msg("game-start")

	switch mode {
	case "pve":
		side, err := board.ParseMark(human)
		if err != nil {
			return err
		}
		return ui.Run(ui.NewGameLoop(b, search.NewAlphaBeta(opts), side))
	case "pvp":
		return ui.Run(ui.NewGameLoop(b, nil, board.Empty))
	case "ava":
		return selfPlay(logger, b, opts)
	}
	return fmt.Errorf("unknown mode %q", mode)
}

// selfPlay 两个独立实例对弈，每手打印棋盘
func selfPlay(logger zerolog.Logger, b board.Board, opts search.Options) error {
	rec, err := match.Play(b, search.NewAlphaBeta(opts), search.NewAlphaBeta(opts), func(t match.Turn) {
		logger.Info().Int("ply", t.Ply+1).Stringer("player", t.Player).Stringer("move", t.Move).
			Int("nodes", t.Nodes).Dur("elapsed", t.Elapsed).Msg("move")
		fmt.Println(t.After)
	})
	if err != nil {
		return err
	}
	ev := logger.Info().Int("moves", len(rec.Turns)).
		Int("nodes_x", rec.TotalNodes(board.X)).Int("nodes_o", rec.TotalNodes(board.O))
	if rec.Draw() {
		ev.Msg("draw")
	} else {
		ev.Stringer("winner", rec.Winner).Msg("win")
	}
	return nil
}

// internal/search/search.go
package search

import (
	"fmt"
	"sort"

	"github.com/ruslanhajiyev/homework2ai/internal/board"
)

// Agent 是对外的搜索接口：给局面、回一步棋。
// ok=false 表示没有合法着法（棋盘已满）。
// 每个 Agent 实例只记录最近一次搜索的节点数，不要在多个 goroutine 间共享同一个实例。
type Agent interface {
	Search(b board.Board) (mv board.Move, ok bool)
	NodesExplored() int
}

// Result 是一次根搜索的完整结果：着法、根值以及访问的节点数
type Result struct {
	Move  board.Move
	Value float64
	Nodes int
}

func (r Result) String() string {
	return fmt.Sprintf("move=%v value=%g nodes=%d", r.Move, r.Value, r.Nodes)
}

/* ──────────────── 工具 ──────────────── */

// child 只会收到 Actions 生成的空格，失败意味着规则引擎本身有 bug
func child(b board.Board, mv board.Move) board.Board {
	next, err := board.Result(b, mv)
	if err != nil {
		panic(fmt.Sprintf("search: generated move rejected: %v", err))
	}
	return next
}

func maximizing(b board.Board) bool { return board.Player(b) == board.X }

// sortLex 原地按 (row, col) 升序
func sortLex(moves []board.Move) []board.Move {
	sort.Slice(moves, func(i, j int) bool { return moves[i].Less(moves[j]) })
	return moves
}

// terminalValue 终局返回精确效用
func terminalValue(b board.Board) (float64, bool) {
	if !board.Terminal(b) {
		return 0, false
	}
	u, _ := board.Utility(b)
	return float64(u), true
}

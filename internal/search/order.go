// internal/search/order.go
package search

import (
	"sort"

	"github.com/ruslanhajiyev/homework2ai/internal/board"
	"github.com/ruslanhajiyev/homework2ai/internal/eval"
)

// orderWeight 启发分在排序分里的权重
const orderWeight = 0.1

// OrderScore = −(到中心的曼哈顿距离) + 0.1·Evaluate(落子后局面)
func OrderScore(b board.Board, mv board.Move) float64 {
	center := b.Size() / 2
	dist := absInt(mv.Row-center) + absInt(mv.Col-center)
	return -float64(dist) + orderWeight*eval.Evaluate(child(b, mv))
}

/* ---------- 排序 (分高在前，同分按 row/col 升序) ---------- */

func OrderMoves(b board.Board, list []board.Move) []board.Move {
	type s struct {
		mv board.Move
		sc float64
	}
	buf := make([]s, 0, len(list))
	for _, m := range list {
		buf = append(buf, s{m, OrderScore(b, m)})
	}
	sort.Slice(buf, func(i, j int) bool {
		if buf[i].sc != buf[j].sc {
			return buf[i].sc > buf[j].sc
		}
		return buf[i].mv.Less(buf[j].mv)
	})
	out := make([]board.Move, len(buf))
	for i, v := range buf {
		out[i] = v.mv
	}
	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

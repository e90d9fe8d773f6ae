// internal/eval/eval.go
package eval

import (
	"math"

	"github.com/ruslanhajiyev/homework2ai/internal/board"
)

/*
   启发函数（X 视角，正数有利于 X）
   ─────────
   终局   ±WinScore / 0
   每条 k 长线段：
     双方都有子         → 0（谁也连不成）
     只有 X 有 x 个子   → +10^x
     只有 O 有 o 个子   → −10^o
     空线               → 0
*/

// baseWinScore 是 3×3 时代的终局常数；大棋盘会按线段数放大
const baseWinScore = 10000.0

// WinScore 终局分：不小于 10000，且严格大于任何非终局局面可能得到的线段总和。
// 非终局时每条线最多 k-1 个同色子，所以上界是 LineCount·10^(k-1)。
func WinScore(size, k int) float64 {
	bound := float64(board.LineCount(size, k)) * math.Pow(10, float64(k-1))
	return math.Max(baseWinScore, 10*bound)
}

// Evaluate 静态评估一个局面；无隐藏状态，同一局面总返回同一个数
func Evaluate(b board.Board) float64 {
	if w, ok := board.Winner(b); ok {
		if w == board.X {
			return WinScore(b.Size(), b.WinCondition())
		}
		return -WinScore(b.Size(), b.WinCondition())
	}
	if b.Full() {
		return 0
	}

	score := 0.0
	for _, l := range board.Lines(b.Size(), b.WinCondition()) {
		score += LineScore(b.Count(l))
	}
	return score
}

// LineScore 单条线段的分数
func LineScore(x, o int) float64 {
	switch {
	case x > 0 && o > 0:
		return 0
	case x > 0:
		return math.Pow(10, float64(x))
	case o > 0:
		return -math.Pow(10, float64(o))
	}
	return 0
}

// File internal/board/lines.go
package board

import "sync"

// Line 是一条长度恰为 k 的线段：起点 (Row, Col)，步长 (DR, DC)
type Line struct {
	Row, Col int
	DR, DC   int
}

// Cell 返回线段上第 i 个格子的坐标
func (l Line) Cell(i int) (int, int) { return l.Row + i*l.DR, l.Col + i*l.DC }

// DIRECTIONS 扫描顺序：横、竖、↘、↙
var DIRECTIONS = [4][2]int{
	{0, 1},  // ROW
	{1, 0},  // COL
	{1, 1},  // DIAG ↘
	{1, -1}, // ANTI ↙
}

type lineKey struct{ size, k int }

var lineCache sync.Map // lineKey -> []Line

// Lines 枚举 size×size 棋盘上所有长度为 k 的线段，顺序为
// 行、列、↘ 对角、↙ 对角，每类内部按起点行主序。
// 返回的切片被缓存共享，调用方不得修改。
func Lines(size, k int) []Line {
	key := lineKey{size, k}
	if v, ok := lineCache.Load(key); ok {
		return v.([]Line)
	}
	v, _ := lineCache.LoadOrStore(key, buildLines(size, k))
	return v.([]Line)
}

// LineCount = 2·m·(m−k+1) + 2·(m−k+1)²
func LineCount(size, k int) int {
	span := size - k + 1
	if size < 1 || k < 1 || span <= 0 {
		return 0
	}
	return 2*size*span + 2*span*span
}

func buildLines(size, k int) []Line {
	out := make([]Line, 0, LineCount(size, k))
	span := size - k + 1
	if size < 1 || k < 1 || span <= 0 { // 零值 Board 走这里
		return out
	}
	// ① 行
	for r := 0; r < size; r++ {
		for c := 0; c < span; c++ {
			out = append(out, Line{r, c, DIRECTIONS[0][0], DIRECTIONS[0][1]})
		}
	}
	// ② 列
	for c := 0; c < size; c++ {
		for r := 0; r < span; r++ {
			out = append(out, Line{r, c, DIRECTIONS[1][0], DIRECTIONS[1][1]})
		}
	}
	// ③ ↘
	for r := 0; r < span; r++ {
		for c := 0; c < span; c++ {
			out = append(out, Line{r, c, DIRECTIONS[2][0], DIRECTIONS[2][1]})
		}
	}
	// ④ ↙ 起点列从 k-1 开始
	for r := 0; r < span; r++ {
		for c := k - 1; c < size; c++ {
			out = append(out, Line{r, c, DIRECTIONS[3][0], DIRECTIONS[3][1]})
		}
	}
	return out
}

// Count 数出线段上 X 与 O 的棋子数
func (b Board) Count(l Line) (x, o int) {
	for i := 0; i < b.k; i++ {
		switch b.At(l.Cell(i)) {
		case X:
			x++
		case O:
			o++
		}
	}
	return x, o
}

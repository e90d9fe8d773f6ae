// File internal/board/rules.go
package board

import "fmt"

// ---------------- 规则引擎：全部是无状态的纯函数 -----------------

// InitialState 创建空棋盘，X 先手
func InitialState(m, k int) (Board, error) {
	if m < 1 || k < 1 || k > m {
		return Board{}, fmt.Errorf("%w: m=%d k=%d (need 1 <= k <= m)", ErrConfiguration, m, k)
	}
	return newBoard(m, k), nil
}

// MustInitialState 供常量参数使用，非法配置直接 panic
func MustInitialState(m, k int) Board {
	b, err := InitialState(m, k)
	if err != nil {
		panic(err)
	}
	return b
}

// Player 当前轮到谁
func Player(b Board) Mark { return b.toMove }

// Actions 行主序列出所有空格
func Actions(b Board) []Move {
	out := make([]Move, 0, len(b.cells)-b.moves)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[b.index(r, c)] == Empty {
				out = append(out, Move{r, c})
			}
		}
	}
	return out
}

// Result 返回落子后的新局面；原局面不变
func Result(b Board, mv Move) (Board, error) {
	if !b.InBounds(mv.Row, mv.Col) {
		return Board{}, fmt.Errorf("%w: %v outside %dx%d board", ErrIllegalMove, mv, b.size, b.size)
	}
	if !b.IsEmpty(mv.Row, mv.Col) {
		return Board{}, fmt.Errorf("%w: %v already occupied by %v", ErrIllegalMove, mv, b.At(mv.Row, mv.Col))
	}
	return b.place(mv), nil
}

// Winner 扫描所有 k 长线段；ok=false 表示暂无赢家
func Winner(b Board) (Mark, bool) {
	l, ok := WinningLine(b)
	if !ok {
		return Empty, false
	}
	return b.At(l.Row, l.Col), true
}

// WinningLine 按 行→列→↘→↙ 的顺序返回第一条被占满的线段
func WinningLine(b Board) (Line, bool) {
	for _, l := range Lines(b.size, b.k) {
		if b.lineOwner(l) != Empty {
			return l, true
		}
	}
	return Line{}, false
}

// lineOwner 线段被同一方占满时返回该方，否则 Empty
func (b Board) lineOwner(l Line) Mark {
	first := b.At(l.Row, l.Col)
	if first == Empty {
		return Empty
	}
	for i := 1; i < b.k; i++ {
		if b.At(l.Cell(i)) != first {
			return Empty
		}
	}
	return first
}

// Terminal 有人获胜或棋盘已满
func Terminal(b Board) bool {
	if _, ok := Winner(b); ok {
		return true
	}
	return b.Full()
}

// Utility X 胜 +1，O 胜 -1，和棋 0；非终局 ok=false
func Utility(b Board) (int, bool) {
	if w, ok := Winner(b); ok {
		if w == X {
			return 1, true
		}
		return -1, true
	}
	if b.Full() {
		return 0, true
	}
	return 0, false
}

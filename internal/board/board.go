// File internal/board/board.go
package board

import (
	"fmt"
	"strings"
)

// Mark 是格子上的内容；玩家本身也用 Mark 表示
type Mark int8

const (
	Empty = Mark(-1)
	X     = Mark(0) // 先手
	O     = Mark(1)
)

// Opponent 返回对手；Empty 的对手仍是 Empty
func (m Mark) Opponent() Mark {
	if m == Empty {
		return Empty
	}
	return m ^ 1
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// ParseMark accepts "X"/"O" in either case.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	}
	return Empty, fmt.Errorf("unknown player %q", s)
}

// Board 是不可变快照：所有字段私有，落子只会产生新的 Board。
// 零值不可用，请通过 InitialState 创建。
type Board struct {
	size   int
	k      int
	cells  []Mark // 行主序 size*size
	toMove Mark
	moves  int
}

// --------------------- 构造 ------------------------

func newBoard(size, k int) Board {
	cells := make([]Mark, size*size)
	for i := range cells {
		cells[i] = Empty
	}
	return Board{size: size, k: k, cells: cells, toMove: X}
}

// place 复制格子后落子（copy-on-write），原 Board 保持不变
func (b Board) place(mv Move) Board {
	cells := make([]Mark, len(b.cells))
	copy(cells, b.cells)
	cells[b.index(mv.Row, mv.Col)] = b.toMove
	return Board{
		size:   b.size,
		k:      b.k,
		cells:  cells,
		toMove: b.toMove.Opponent(),
		moves:  b.moves + 1,
	}
}

// -------------------- 公共访问 -----------------------------

func (b Board) Size() int         { return b.size }
func (b Board) WinCondition() int { return b.k }
func (b Board) ToMove() Mark      { return b.toMove }
func (b Board) MoveCount() int    { return b.moves }
func (b Board) Full() bool        { return b.moves == b.size*b.size }

// At 读格子；坐标越界时 panic，调用方先用 InBounds 检查
func (b Board) At(row, col int) Mark { return b.cells[b.index(row, col)] }

func (b Board) IsEmpty(row, col int) bool { return b.At(row, col) == Empty }

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// Equal compares position and side to move.
func (b Board) Equal(o Board) bool {
	if b.size != o.size || b.k != o.k || b.toMove != o.toMove || b.moves != o.moves {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func (b Board) index(row, col int) int { return row*b.size + col }

// String 以 "X|O| " 的网格形式输出，行之间用 "-+-+-" 分隔
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			sb.WriteString(b.At(r, c).String())
			if c < b.size-1 {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
		if r < b.size-1 {
			for c := 0; c < b.size; c++ {
				sb.WriteByte('-')
				if c < b.size-1 {
					sb.WriteByte('+')
				}
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

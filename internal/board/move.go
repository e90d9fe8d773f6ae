package board

import "fmt"

// Move 是一个 0 起始的格子坐标
type Move struct {
	Row, Col int
}

// Compare orders moves by row, then column.
func (m Move) Compare(o Move) int {
	switch {
	case m.Row < o.Row:
		return -1
	case m.Row > o.Row:
		return 1
	case m.Col < o.Col:
		return -1
	case m.Col > o.Col:
		return 1
	}
	return 0
}

func (m Move) Less(o Move) bool { return m.Compare(o) < 0 }

func (m Move) String() string { return fmt.Sprintf("(%d, %d)", m.Row, m.Col) }

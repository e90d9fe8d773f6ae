package board

import "testing"

func TestWinnerLines(t *testing.T) {
	tests := []struct {
		name  string
		m, k  int
		moves []Move
		want  Mark
	}{
		{"row", 3, 3, []Move{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}, X},
		{"column", 3, 3, []Move{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 2}, {2, 1}}, O},
		{"diagonal", 3, 3, []Move{{0, 0}, {0, 1}, {1, 1}, {0, 2}, {2, 2}}, X},
		{"anti-diagonal", 3, 3, []Move{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {2, 2}, {2, 0}}, O},
		{"offset row on 4x4", 4, 3, []Move{{0, 1}, {1, 0}, {0, 2}, {1, 1}, {0, 3}}, X},
		{"offset column on 4x4", 4, 3, []Move{{1, 3}, {0, 0}, {2, 3}, {0, 1}, {3, 3}}, X},
		{"lower diagonal on 5x5", 5, 4, []Move{{1, 0}, {0, 4}, {2, 1}, {0, 3}, {3, 2}, {0, 2}, {4, 3}}, X},
		{"anti-diagonal on 5x5", 5, 4, []Move{{0, 0}, {1, 4}, {0, 1}, {2, 3}, {4, 4}, {3, 2}, {2, 0}, {4, 1}}, O},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := play(t, MustInitialState(tt.m, tt.k), tt.moves...)
			got, ok := Winner(b)
			if !ok || got != tt.want {
				t.Errorf("Winner() = %v, %v; want %v\n%v", got, ok, tt.want, b)
			}
			if !Terminal(b) {
				t.Errorf("Terminal() = false on won board")
			}
		})
	}
}

func TestNoWinnerForBrokenLine(t *testing.T) {
	// X X O X 在 4x4 k=3 上没有三连
	b := play(t, MustInitialState(4, 3), Move{0, 0}, Move{0, 2}, Move{0, 1}, Move{2, 2}, Move{0, 3})
	if w, ok := Winner(b); ok {
		t.Errorf("Winner() = %v, want none\n%v", w, b)
	}
	if Terminal(b) {
		t.Error("Terminal() = true, want false")
	}
	if _, ok := Utility(b); ok {
		t.Error("Utility() present on non-terminal board")
	}
}

func TestGeneralizedWinOn4x4(t *testing.T) {
	b := play(t, MustInitialState(4, 3),
		Move{0, 0}, Move{3, 3},
		Move{0, 1}, Move{2, 0},
		Move{0, 2})
	if w, ok := Winner(b); !ok || w != X {
		t.Fatalf("Winner() = %v, %v; want X", w, ok)
	}
	if !Terminal(b) {
		t.Error("Terminal() = false")
	}
	if u, ok := Utility(b); !ok || u != 1 {
		t.Errorf("Utility() = %d, %v; want 1", u, ok)
	}
}

func TestDrawUtility(t *testing.T) {
	// X O X / X O O / O X X
	b := play(t, MustInitialState(3, 3),
		Move{0, 0}, Move{0, 1}, Move{0, 2}, Move{1, 1}, Move{1, 0},
		Move{1, 2}, Move{2, 1}, Move{2, 0}, Move{2, 2})
	if !b.Full() {
		t.Fatalf("board not full after 9 moves")
	}
	if w, ok := Winner(b); ok {
		t.Fatalf("Winner() = %v on draw board\n%v", w, b)
	}
	if u, ok := Utility(b); !ok || u != 0 {
		t.Errorf("Utility() = %d, %v; want 0, true", u, ok)
	}
	if len(Actions(b)) != 0 {
		t.Errorf("Actions() on full board = %v", Actions(b))
	}
}

func TestOneInARow(t *testing.T) {
	b := MustInitialState(2, 1)
	if Terminal(b) {
		t.Fatal("empty board is terminal")
	}
	b = play(t, b, Move{1, 0})
	if w, ok := Winner(b); !ok || w != X {
		t.Errorf("Winner() = %v, %v; want X", w, ok)
	}
}

func TestParseMark(t *testing.T) {
	for in, want := range map[string]Mark{"x": X, "O": O, " X ": X} {
		got, err := ParseMark(in)
		if err != nil || got != want {
			t.Errorf("ParseMark(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMark("z"); err == nil {
		t.Error("ParseMark(\"z\") error = nil")
	}
	if X.Opponent() != O || O.Opponent() != X || Empty.Opponent() != Empty {
		t.Error("Opponent() mapping wrong")
	}
}

func TestWinningLine(t *testing.T) {
	b := play(t, MustInitialState(4, 3), Move{1, 3}, Move{0, 0}, Move{2, 3}, Move{0, 1}, Move{3, 3})
	l, ok := WinningLine(b)
	if !ok {
		t.Fatal("WinningLine() found nothing")
	}
	want := Line{Row: 1, Col: 3, DR: 1, DC: 0}
	if l != want {
		t.Errorf("WinningLine() = %+v, want %+v", l, want)
	}
	if _, ok := WinningLine(MustInitialState(3, 3)); ok {
		t.Error("WinningLine() on empty board")
	}
}

func TestZeroBoard(t *testing.T) {
	var b Board
	if got := Lines(0, 0); len(got) != 0 {
		t.Errorf("Lines(0, 0) = %v, want none", got)
	}
	if n := LineCount(0, 0); n != 0 {
		t.Errorf("LineCount(0, 0) = %d, want 0", n)
	}
	if w, ok := Winner(b); ok {
		t.Errorf("Winner(Board{}) = %v, want none", w)
	}
	if _, ok := WinningLine(b); ok {
		t.Error("WinningLine(Board{}) found a line")
	}
	if !Terminal(b) {
		t.Error("Terminal(Board{}) = false, want true")
	}
}

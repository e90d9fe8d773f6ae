package match

import (
	"errors"
	"testing"

	"github.com/ruslanhajiyev/homework2ai/internal/board"
	"github.com/ruslanhajiyev/homework2ai/internal/search"
)

func TestPerfectPlayDraws(t *testing.T) {
	tests := []struct {
		name string
		x, o search.Agent
	}{
		{"alphabeta vs alphabeta", search.NewDefaultAlphaBeta(), search.NewDefaultAlphaBeta()},
		{"plain alphabeta vs ordered", search.NewAlphaBeta(search.Options{}), search.NewDefaultAlphaBeta()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen int
			rec, err := Play(board.MustInitialState(3, 3), tt.x, tt.o, func(Turn) { seen++ })
			if err != nil {
				t.Fatalf("Play() error = %v", err)
			}
			if !rec.Draw() {
				t.Errorf("Winner = %v, want draw\n%v", rec.Winner, rec.Final)
			}
			if len(rec.Turns) != 9 || seen != 9 {
				t.Errorf("turns = %d, callbacks = %d, want 9", len(rec.Turns), seen)
			}
			if !rec.Final.Full() {
				t.Errorf("final board not full\n%v", rec.Final)
			}
		})
	}
}

func TestTurnsAlternate(t *testing.T) {
	rec, err := Play(board.MustInitialState(3, 3), search.NewDefaultAlphaBeta(), search.NewMinimax(), nil)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	for i, turn := range rec.Turns {
		want := board.X
		if i%2 == 1 {
			want = board.O
		}
		if turn.Player != want || turn.Ply != i {
			t.Errorf("turn %d: player %v ply %d, want %v", i, turn.Player, turn.Ply, want)
		}
		if turn.After.MoveCount() != i+1 {
			t.Errorf("turn %d: board has %d moves", i, turn.After.MoveCount())
		}
	}
	if rec.TotalNodes(board.X) == 0 || rec.TotalNodes(board.O) == 0 {
		t.Errorf("node totals X=%d O=%d", rec.TotalNodes(board.X), rec.TotalNodes(board.O))
	}
}

func TestPlayFromTerminalPosition(t *testing.T) {
	b := board.MustInitialState(3, 3)
	for _, mv := range []board.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 2}} {
		b, _ = board.Result(b, mv)
	}
	rec, err := Play(b, search.NewMinimax(), search.NewMinimax(), nil)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if len(rec.Turns) != 0 || rec.Winner != board.X {
		t.Errorf("turns = %d winner = %v, want 0 and X", len(rec.Turns), rec.Winner)
	}
}

type stuckAgent struct{}

func (stuckAgent) Search(board.Board) (board.Move, bool) { return board.Move{}, false }
func (stuckAgent) NodesExplored() int { return 0 }

func TestPlayReportsStuckAgent(t *testing.T) {
	_, err := Play(board.MustInitialState(3, 3), stuckAgent{}, search.NewMinimax(), nil)
	if !errors.Is(err, ErrNoMove) {
		t.Errorf("Play() error = %v, want ErrNoMove", err)
	}
}

func TestPlayRejectsSharedAgent(t *testing.T) {
	a := search.NewDefaultAlphaBeta()
	if _, err := Play(board.MustInitialState(3, 3), a, a, nil); err == nil {
		t.Error("Play() with one shared agent returned nil error")
	}
}

// scriptedAgent 按顺序给出预设着法；含切片字段，接口值不可比较
type scriptedAgent struct {
	moves []board.Move
	next  *int
}

func (s scriptedAgent) Search(b board.Board) (board.Move, bool) {
	for *s.next < len(s.moves) {
		mv := s.moves[*s.next]
		*s.next++
		if b.IsEmpty(mv.Row, mv.Col) {
			return mv, true
		}
	}
	return board.Move{}, false
}

func (scriptedAgent) NodesExplored() int { return 0 }

func TestPlayAcceptsNonComparableAgent(t *testing.T) {
	// 同一个值同时执 X 和 O：X (0,0) (0,1) (0,2) 连成一行
	n := 0
	a := scriptedAgent{
		moves: []board.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 2}},
		next:  &n,
	}
	rec, err := Play(board.MustInitialState(3, 3), a, a, nil)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if rec.Winner != board.X || len(rec.Turns) != 5 {
		t.Errorf("Play() winner = %v after %d turns, want X after 5", rec.Winner, len(rec.Turns))
	}
}

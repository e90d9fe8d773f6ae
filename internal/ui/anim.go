// File internal/ui/anim.go
package ui

import (
	"math"
	"time"

	"github.com/ruslanhajiyev/homework2ai/internal/board"
)

const moveDur = 250 * time.Millisecond // 动画时长

// markAnim 最新落下的棋子从中心放大到满格
type markAnim struct {
	at    board.Move
	start time.Time
}

// scale 返回 0..1 的缩放比例以及动画是否结束
func (a *markAnim) scale(now time.Time) (float64, bool) {
	t := float64(now.Sub(a.start)) / float64(moveDur)
	if t >= 1 {
		return 1, true
	}
	// ease-out
	p := math.Max(t, 0)
	return 1 - (1-p)*(1-p), false
}

func (gl *GameLoop) startAnimation(mv board.Move, next board.Board) {
	gl.anim = &markAnim{at: mv, start: time.Now()}
	gl.logic = next
	gl.lockInput = true
}

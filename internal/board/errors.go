package board

import "errors"

var (
	// ErrConfiguration: 不可能的 (m, k) 组合
	ErrConfiguration = errors.New("invalid board configuration")
	// ErrIllegalMove: 格子已占用或坐标越界
	ErrIllegalMove = errors.New("illegal move")
)

// File internal/config/config.go
// 命令行参数 → 搜索配置
package config

import (
	"fmt"

	"github.com/ruslanhajiyev/homework2ai/internal/search"
)

// AutoDepth: 3×3 以内精确搜索，更大的棋盘限深 LargeBoardDepth
const (
	AutoDepth       = -1
	LargeBoardDepth = 6
)

// ResolveDepth 把 -depth 参数换成 search.Options.MaxDepth。
// 只接受 AutoDepth、0（不限深）和正数。
func ResolveDepth(depth, size int) (int, error) {
	switch {
	case depth < AutoDepth:
		return 0, fmt.Errorf("config: depth %d out of range (want -1, 0 or a positive limit)", depth)
	case depth != AutoDepth:
		return depth, nil
	case size > 3:
		return LargeBoardDepth, nil
	}
	return search.Unbounded, nil
}

// SearchOptions 汇总 alpha-beta 相关参数
func SearchOptions(depth, size int, ordering, scaleTerminal bool) (search.Options, error) {
	d, err := ResolveDepth(depth, size)
	if err != nil {
		return search.Options{}, err
	}
	return search.Options{MaxDepth: d, Ordering: ordering, ScaleTerminal: scaleTerminal}, nil
}

package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Obstacle 一对管道：下管顶边在 GapTop，上管底边在 GapBottom
type Obstacle struct {
	X         int `json:"x"`
	GapTop    int `json:"gapTop"`
	GapBottom int `json:"gapBottom"`
}

// Board 按 X 升序排列的障碍物，生成后只读
type Board []Obstacle

// NewRand 创建随机源；seed 为 0 时按当前时间播种
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// GenerateBoard 生成等间距、随机高度与随机缺口宽度的障碍物
func GenerateBoard(rng *rand.Rand) Board {
	board := make(Board, 0, ObstacleCount)
	for i := 1; i <= ObstacleCount; i++ {
		gapTop := MinGapY + rng.Intn(MaxGapY-MinGapY)
		width := MinGapWidth + rng.Intn(MaxGapWidth-MinGapWidth)
		board = append(board, Obstacle{
			X:         i*HorizontalSpacing - HorizontalOffset,
			GapTop:    gapTop,
			GapBottom: gapTop + width,
		})
	}
	return board
}

// Collides 判断点是否撞上场地上下边界或任一管身
func Collides(board Board, s PipeSettings, x, y int) bool {
	if y <= 0 || y >= Ceiling {
		return true
	}
	half := s.BodyWidth / 2
	for _, o := range board {
		if x > o.X-half && x < o.X+half && (y < o.GapTop || y > o.GapBottom) {
			return true
		}
	}
	return false
}

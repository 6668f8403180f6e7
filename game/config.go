package game

import "time"

// 游戏固定常量（绘图仪坐标单位）
const (
	Ceiling = 7650 // 纸面可绘区域上沿

	ObstacleCount     = 4
	HorizontalSpacing = 2400
	HorizontalOffset  = 500
	MinGapY           = 1000
	MaxGapY           = 4600
	MinGapWidth       = 2100
	MaxGapWidth       = 2600

	StartX = 0
	StartY = Ceiling / 2

	HorizontalStep   = 100 // 每 Tick 前进距离
	GravityDecrement = 30  // 每 Tick 速度衰减，不区分上升或下落
	FlapImpulse      = 300
	ExitX            = 9600 // 越过即飞出场地

	// 绘图仪外的停放位置
	ParkX = -5000
	ParkY = 0

	BoardPen = 1
	BirdPen  = 2
	IdlePen  = 0
)

const (
	// TicksPerSecond 世界推进频率（20 TPS）
	TicksPerSecond = 20
)

var tickInterval = time.Duration(1000/TicksPerSecond) * time.Millisecond // 50ms

// PipeSettings 障碍物外形参数：管身窄于管帽
type PipeSettings struct {
	BodyWidth int
	CapWidth  int
	CapHeight int
}

// DefaultPipeSettings 与纸面尺寸匹配的默认外形
func DefaultPipeSettings() PipeSettings {
	return PipeSettings{BodyWidth: 800, CapWidth: 1000, CapHeight: 200}
}

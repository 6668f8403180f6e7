package game

import "sync"

// PlayerState 小鸟位置与竖直速度（绘图仪坐标单位）
type PlayerState struct {
	X  int `json:"x"`
	Y  int `json:"y"`
	VY int `json:"vy"`
}

// Advance 推进一个 Tick：匀速前进，按当前速度升降，然后施加重力
func (p *PlayerState) Advance() {
	p.X += HorizontalStep
	p.Y += p.VY
	p.VY -= GravityDecrement
}

// SharedState Tick 协程与输入协程共享的玩家状态。
// 三个字段总是在同一把锁内整体读写，不提供逐字段访问。
type SharedState struct {
	mu sync.Mutex
	p  PlayerState
}

// NewSharedState 以给定初始状态创建
func NewSharedState(p PlayerState) *SharedState {
	return &SharedState{p: p}
}

// Get 返回当前状态副本
func (s *SharedState) Get() PlayerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p
}

// Set 整体替换状态
func (s *SharedState) Set(p PlayerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p = p
}

// Update 在锁内对状态执行 fn，返回更新后的副本
func (s *SharedState) Update(fn func(p *PlayerState)) PlayerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.p)
	return s.p
}

// Flap 把竖直速度设为 impulse（玩家唯一的操作）
func (s *SharedState) Flap(impulse int) {
	s.Update(func(p *PlayerState) { p.VY = impulse })
}

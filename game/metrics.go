package game

import (
	"sync/atomic"
)

// Metrics 记录游戏运行期的关键指标（用于监控与调试）
type Metrics struct {
	TickCount   int64 // 统计的 Tick 次数
	Flaps       int64 // 收到的拍翅次数
	Overruns    int64 // 耗时超过一个 Tick 周期的次数
	TotalTickNs int64 // Tick 累计耗时（纳秒）
}

func (m *Metrics) IncFlaps() { atomic.AddInt64(&m.Flaps, 1) }
func (m *Metrics) IncOverruns() { atomic.AddInt64(&m.Overruns, 1) }
func (m *Metrics) AddTick(ns int64) {
	atomic.AddInt64(&m.TickCount, 1)
	atomic.AddInt64(&m.TotalTickNs, ns)
}

// Snapshot 返回只读副本，便于 HTTP 输出
func (m *Metrics) Snapshot() map[string]any {
	tick := atomic.LoadInt64(&m.TickCount)
	total := atomic.LoadInt64(&m.TotalTickNs)
	var avgMs float64
	if tick > 0 {
		avgMs = float64(total) / float64(tick) / 1e6
	}
	return map[string]any{
		"tick_count":  tick,
		"flaps":       atomic.LoadInt64(&m.Flaps),
		"overruns":    atomic.LoadInt64(&m.Overruns),
		"avg_tick_ms": avgMs,
	}
}

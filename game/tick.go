package game

import (
	"context"
	"fmt"
	"time"
)

// Run 完成准备后按固定周期推进，直到终局；终局动画在同一协程中发送。
// 返回终局类型；ctx 取消时返回 Playing 与 ctx 的错误。
func (g *Game) Run(ctx context.Context) (Phase, error) {
	if err := g.Setup(); err != nil {
		return Playing, err
	}
	return g.loop(ctx, tickInterval)
}

func (g *Game) loop(ctx context.Context, interval time.Duration) (Phase, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		// 核心循环：写出位置 → 推进物理 → 判定终局
		start := time.Now()
		phase, err := g.Step()
		if err != nil {
			return Playing, err
		}
		elapsed := time.Since(start)
		g.Metrics.AddTick(elapsed.Nanoseconds())
		if elapsed > interval {
			g.Metrics.IncOverruns()
			Log.Warnf("tick %d took %v (> %v)", g.tickSeq, elapsed, interval)
		}
		if phase != Playing {
			if err := g.Finish(phase); err != nil {
				return phase, fmt.Errorf("finish: %w", err)
			}
			return phase, nil
		}
		select {
		case <-ctx.Done():
			return Playing, ctx.Err()
		case <-ticker.C:
		}
	}
}

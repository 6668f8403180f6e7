package game

import (
	"fmt"

	"plotterbird/plotter"
)

// Phase 游戏状态机：Playing → Crashed 或 Playing → ExitedField
type Phase int

const (
	Playing Phase = iota
	Crashed
	ExitedField
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Crashed:
		return "crashed"
	case ExitedField:
		return "exited"
	default:
		return "unknown"
	}
}

// Commander 接收绘图指令的传输层（握手与即发即弃两种方式）
type Commander interface {
	Initialize() error
	Send(tokens []string) error
	SendImmediate(token string) error
}

// Observer 接收每个 Tick 的状态帧（例如观战广播）
type Observer interface {
	PublishBoard(board Board)
	PublishState(tick int64, p PlayerState, phase Phase)
}

// Game 一局游戏：障碍物只读，玩家状态由 Tick 协程与输入协程共享
type Game struct {
	Board    Board
	Pipes    PipeSettings
	State    *SharedState
	Metrics  *Metrics
	cmd      Commander
	observer Observer
	tickSeq  int64
}

// NewGame 创建游戏，玩家位于起点
func NewGame(board Board, pipes PipeSettings, cmd Commander) *Game {
	return &Game{
		Board:   board,
		Pipes:   pipes,
		State:   NewSharedState(PlayerState{X: StartX, Y: StartY}),
		Metrics: &Metrics{},
		cmd:     cmd,
	}
}

// SetObserver 设置状态帧接收方；nil 表示不广播
func (g *Game) SetObserver(o Observer) { g.observer = o }

// Setup 初始化设备、画出障碍物，并把笔移到起点落下
func (g *Game) Setup() error {
	if err := g.cmd.Initialize(); err != nil {
		return fmt.Errorf("initialize plotter: %w", err)
	}
	if err := g.cmd.Send(DrawBoard(g.Board, g.Pipes)); err != nil {
		return fmt.Errorf("draw board: %w", err)
	}
	if err := g.cmd.Send(StartSequence(g.State.Get())); err != nil {
		return fmt.Errorf("move to start: %w", err)
	}
	if g.observer != nil {
		g.observer.PublishBoard(g.Board)
	}
	Log.Infow("board drawn", "obstacles", g.Board)
	return nil
}

// Step 执行一个 Tick：在同一把锁内写出当前位置、推进物理并判定终局
func (g *Game) Step() (Phase, error) {
	var (
		phase Phase
		err   error
	)
	p := g.State.Update(func(p *PlayerState) {
		if err = g.cmd.SendImmediate(plotter.MoveTo(p.X, p.Y)); err != nil {
			return
		}
		p.Advance()
		phase = g.Evaluate(*p)
	})
	if err != nil {
		return Playing, fmt.Errorf("tick %d: %w", g.tickSeq, err)
	}
	g.tickSeq++
	if g.observer != nil {
		g.observer.PublishState(g.tickSeq, p, phase)
	}
	return phase, nil
}

// Evaluate 先判碰撞，再判是否飞出场地右边界
func (g *Game) Evaluate(p PlayerState) Phase {
	if Collides(g.Board, g.Pipes, p.X, p.Y) {
		return Crashed
	}
	if p.X > ExitX {
		return ExitedField
	}
	return Playing
}

// Finish 按终局类型以握手方式画出结束动画
func (g *Game) Finish(phase Phase) error {
	var seq []string
	switch phase {
	case Crashed:
		seq = CrashSequence()
	case ExitedField:
		seq = ExitSequence()
	default:
		return fmt.Errorf("finish: game still %s", phase)
	}
	Log.Infow("game over", "phase", phase.String(), "state", g.State.Get(), "ticks", g.tickSeq)
	if err := g.cmd.Send(seq); err != nil {
		return fmt.Errorf("%s animation: %w", phase, err)
	}
	return nil
}

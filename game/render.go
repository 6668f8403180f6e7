package game

import "plotterbird/plotter"

// DrawBoard 把障碍物转换为绝对坐标绘图指令。
// 每个障碍物画两个封闭外形：自底边向上的下管（管身+管帽），以及自上沿向下的镜像上管。
func DrawBoard(board Board, s PipeSettings) []string {
	out := []string{plotter.SelectPen(BoardPen)}
	for _, o := range board {
		out = append(out, drawPipe(o.X, 0, o.GapTop, s)...)
		out = append(out, drawPipe(o.X, Ceiling, o.GapBottom, s)...)
	}
	return out
}

// drawPipe 从 base（底边或上沿）画到缺口边 edge；管帽朝向缺口
func drawPipe(x, base, edge int, s PipeSettings) []string {
	capY := edge - s.CapHeight
	if base > edge {
		capY = edge + s.CapHeight
	}
	bodyL, bodyR := x-s.BodyWidth/2, x+s.BodyWidth/2
	capL, capR := x-s.CapWidth/2, x+s.CapWidth/2
	return []string{
		plotter.PenUp,
		plotter.MoveTo(bodyL, base),
		plotter.PenDown,
		plotter.MoveTo(bodyL, capY),
		plotter.MoveTo(bodyR, capY),
		plotter.MoveTo(bodyR, base),
		plotter.PenUp,
		plotter.MoveTo(bodyL, capY),
		plotter.PenDown,
		plotter.MoveTo(capL, capY),
		plotter.MoveTo(capL, edge),
		plotter.MoveTo(capR, edge),
		plotter.MoveTo(capR, capY),
		plotter.MoveTo(bodyR, capY),
		plotter.PenUp,
	}
}

// StartSequence 换上小鸟用笔，移到起点并落笔
func StartSequence(p PlayerState) []string {
	return []string{
		plotter.SelectPen(BirdPen),
		plotter.MoveTo(p.X, p.Y),
		plotter.PenDown,
	}
}

// CrashSequence 在当前笔位画爆炸图案，然后收笔停放
func CrashSequence() []string {
	return renderSteps(explosion)
}

// ExitSequence 在当前笔位画飞行中的小鸟，然后收笔停放
func ExitSequence() []string {
	return renderSteps(bird)
}

func renderSteps(steps []step) []string {
	out := make([]string, 0, len(steps)+3)
	for _, st := range steps {
		switch st.op {
		case opPenUp:
			out = append(out, plotter.PenUp)
		case opPenDown:
			out = append(out, plotter.PenDown)
		default:
			out = append(out, plotter.MoveBy(st.dx, st.dy))
		}
	}
	return append(out,
		plotter.PenUp,
		plotter.SelectPen(IdlePen),
		plotter.MoveTo(ParkX, ParkY),
	)
}

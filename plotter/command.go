package plotter

import "fmt"

// HPGL 指令词汇（ASCII，分号结尾）
const (
	PenUp      = "PU;"
	PenDown    = "PD;"
	Initialize = "IN;"
	OutputAck  = "OA;" // 执行缓冲中的指令，完成后设备回送 Terminator
)

// Terminator 设备完成一批指令后回送的字节（回车）
const Terminator byte = 13

// MoveTo 绝对坐标移动
func MoveTo(x, y int) string {
	return fmt.Sprintf("PA%d,%d;", x, y)
}

// MoveBy 相对当前笔位置移动
func MoveBy(dx, dy int) string {
	return fmt.Sprintf("PR%d,%d;", dx, dy)
}

// SelectPen 选笔，0 表示收笔（空闲）
func SelectPen(n int) string {
	return fmt.Sprintf("SP%d;", n)
}

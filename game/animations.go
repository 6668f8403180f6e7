package game

type stepOp int

const (
	opMove stepOp = iota
	opPenUp
	opPenDown
)

// step 动画中的一步：抬笔、落笔或相对移动
type step struct {
	op     stepOp
	dx, dy int
}

var (
	up   = step{op: opPenUp}
	down = step{op: opPenDown}
)

func rel(dx, dy int) step { return step{op: opMove, dx: dx, dy: dy} }

// explosion 以撞击点为中心的爆炸轮廓
var explosion = []step{
	up, rel(-270, -300),
	down,
	rel(-40, 200), rel(-120, 80), rel(160, 110), rel(-40, 200), rel(160, -110),
	rel(20, 200), rel(120, -180), rel(140, 120), rel(20, -140), rel(170, 30),
	rel(-140, -100), rel(160, -70), rel(-160, -70), rel(140, -120), rel(-160, -20),
	rel(20, -150), rel(-140, 120), rel(-100, -120), rel(-90, 100), rel(-120, -80),
}

// bird 飞出场地时画的小鸟：身体、眼睛、喙、翅膀
var bird = []step{
	up, rel(-500, -200), rel(246, 577),
	// 身体
	down,
	rel(-4, -19), rel(-22, -43), rel(4, -1), rel(2, -58), rel(2, 0), rel(16, -53),
	rel(4, 2), rel(22, -28), rel(-14, 1), rel(-54, -41), rel(4, -2), rel(-26, -49),
	rel(5, -1), rel(-1, -31), rel(3, 0), rel(12, -34), rel(4, 1), rel(29, -33),
	rel(2, 3), rel(45, -24), rel(1, 3), rel(58, -13), rel(0, 2), rel(68, 0),
	rel(-1, 3), rel(73, 16), rel(-1, 2), rel(74, 35), rel(-1, 1), rel(72, 55),
	rel(-2, 2), rel(66, 77), rel(-13, 0), rel(-113, 129), rel(-2, -2), rel(-111, 89),
	rel(-1, -2), rel(-61, 29), rel(-1, -2), rel(-60, 11), rel(0, -4), rel(-45, -8),
	rel(1, -3), rel(-43, -25), rel(5, -4), rel(-18, -35),
	// 眼睛
	up, rel(555, -82),
	down,
	rel(11, 1), rel(18, -21), rel(4, 7), rel(29, -2), rel(-3, 7), rel(22, 19),
	rel(-7, 3), rel(2, 29), rel(-8, -3), rel(-18, 22), rel(-4, -7), rel(-29, 2),
	rel(3, -7), rel(-22, -19), rel(7, -4), rel(-2, -28), rel(8, 2), rel(18, -21),
	rel(4, 7), rel(11, -1),
	// 喙
	up, rel(137, 80),
	down,
	rel(-15, -7), rel(-11, -17), rel(7, -1), rel(7, -35), rel(3, 1), rel(17, -31),
	rel(5, 5), rel(21, -7), rel(-2, 10), rel(43, 42), rel(-1, 1), rel(22, 30),
	rel(-16, -6), rel(-98, 18), rel(0, -2), rel(-2, 0), rel(5, -8), rel(-11, -17),
	rel(7, -1), rel(4, -20),
	// 翅膀
	up, rel(-277, 21),
	down,
	rel(-10, 4), rel(-208, -154), rel(-1, 0), rel(-176, -121), rel(-2, 7), rel(-271, 42),
	rel(10, -11), rel(2, -110), rel(10, 10), rel(269, -3), rel(-3, -7), rel(71, -58),
	rel(1, 2), rel(97, -53), rel(1, 3), rel(117, -27), rel(0, 3), rel(65, 3),
	rel(0, 2), rel(68, 18), rel(-1, 2), rel(89, 42), rel(-1, 1), rel(68, 51),
	rel(-1, 1), rel(52, 55), rel(-2, 1), rel(37, 55), rel(-2, 1), rel(38, 91),
	rel(-1, 1), rel(8, 38), rel(-2, 0), rel(-3, 128), rel(-9, -5), rel(-47, 26),
	rel(-1, -1), rel(-53, 18), rel(-1, -2), rel(-67, 8), rel(1, -3), rel(-75, -11),
	rel(1, -3), rel(-79, -38), rel(1, -2), rel(-32, -24),
}

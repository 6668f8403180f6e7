package game

import (
	"bufio"
	"context"
	"io"
)

// AnnounceInput 提示拍翅方式。终端前有人操作，提示走 info；
// 管道输入多为脚本回放，提示降到 debug。
func AnnounceInput(tty bool) {
	if tty {
		Log.Info("reading flaps from terminal: press Enter to flap")
		return
	}
	Log.Debug("reading flaps from piped stdin: one line per flap")
}

// ListenInput 逐行读取输入，每收到一行就拍一次翅膀；行内容被忽略。
// 读到 EOF 或读错误时返回，不会结束游戏。阻塞中的读无法被 ctx 打断，
// ctx 只在两行之间检查；进程退出时随之结束。
func ListenInput(ctx context.Context, r io.Reader, state *SharedState, metrics *Metrics) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		state.Flap(FlapImpulse)
		if metrics != nil {
			metrics.IncFlaps()
		}
		Log.Debugw("flap", "state", state.Get())
	}
	if err := sc.Err(); err != nil {
		Log.Warnf("input listener stopped: %v", err)
		return err
	}
	Log.Info("input closed; no more flaps")
	return nil
}

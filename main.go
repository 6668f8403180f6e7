package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"go.bug.st/serial"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"plotterbird/game"
	"plotterbird/plotter"
)

// 串口固定参数：9600 波特，8 数据位，无校验，1 停止位，读超时 1 秒
const (
	baudRate    = 9600
	readTimeout = time.Second
)

// plotterbird 入口：在绘图仪上实时画出并推进 Flappy Bird
func main() {
	os.Exit(run())
}

// run 返回进程退出码；所有清理由 defer 完成
func run() int {
	var (
		logPath  string
		logLevel string
		seed     uint64
		sim      bool
		watch    string
	)
	flag.StringVar(&logPath, "log", "plotterbird.log", "log file path")
	flag.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flag.Uint64Var(&seed, "seed", 0, "board seed (0 = random)")
	flag.BoolVar(&sim, "sim", false, "use the built-in simulator and record commands to <port> as a file")
	flag.StringVar(&watch, "watch", "", "spectator listen address, e.g. :8080 (empty = off)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <port>\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		return 1
	}
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad -log-level: %v\n", err)
		return 1
	}

	session := uuid.NewString()
	if err := game.InitLogger(logPath, session, level); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		return 1
	}
	defer game.SyncLogger()

	ch, closeCh, err := openChannel(flag.Arg(0), sim)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", flag.Arg(0), err)
		game.Log.Errorf("open channel %s: %v", flag.Arg(0), err)
		return 1
	}
	defer closeCh()

	transport := plotter.NewTransport(ch, game.Log.Named("plotter"))
	g := game.NewGame(game.GenerateBoard(game.NewRand(seed)), game.DefaultPipeSettings(), transport)

	if watch != "" {
		hub := game.NewHub()
		g.SetObserver(hub)
		srv := &http.Server{Addr: watch, Handler: game.NewMux(hub, g, transport.Stats())}
		go func() {
			game.Log.Infof("spectators: ws://localhost%s/ws", watch)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				game.Log.Errorf("spectator listen: %v", err)
			}
		}()
		defer srv.Close()
	}

	game.AnnounceInput(term.IsTerminal(int(os.Stdin.Fd())))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go game.ListenInput(ctx, os.Stdin, g.State, g.Metrics)

	game.Log.Infow("game start", "port", flag.Arg(0), "sim", sim, "seed", seed)
	phase, err := g.Run(ctx)
	if err != nil {
		// 绘图仪中途失效无法恢复，直接退出
		fmt.Fprintf(os.Stderr, "plotter failure: %v\n", err)
		game.Log.Errorf("plotter failure: %v", err)
		return 1
	}
	game.Log.Infow("finished", "phase", phase.String(), "metrics", g.Metrics.Snapshot(), "transport", transport.Stats().Snapshot())
	return 0
}

// openChannel 打开串口；模拟模式下把指令记录到同名文件
func openChannel(name string, sim bool) (io.ReadWriter, func(), error) {
	if sim {
		f, err := os.Create(name)
		if err != nil {
			return nil, nil, err
		}
		return plotter.NewSimulator(f), func() { _ = f.Close() }, nil
	}
	port, err := serial.Open(name, &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		_ = port.Close()
		return nil, nil, err
	}
	return port, func() { _ = port.Close() }, nil
}

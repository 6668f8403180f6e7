package plotter

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"go.uber.org/zap"
)

// LineLimit 设备单行缓冲上限（字节），每次物理写入必须小于该值
const LineLimit = 57

// ErrAckTimeout 握手期间读超时（通道层读超时返回 0 字节）
var ErrAckTimeout = errors.New("plotter: no acknowledgement before read timeout")

// Stats 传输层运行指标
type Stats struct {
	ChunksSent      int64
	AcksReceived    int64
	ImmediateWrites int64
	BytesWritten    int64
}

// Snapshot 返回只读副本，便于 HTTP 输出
func (s *Stats) Snapshot() map[string]any {
	return map[string]any{
		"chunks_sent":      atomic.LoadInt64(&s.ChunksSent),
		"acks_received":    atomic.LoadInt64(&s.AcksReceived),
		"immediate_writes": atomic.LoadInt64(&s.ImmediateWrites),
		"bytes_written":    atomic.LoadInt64(&s.BytesWritten),
	}
}

// Transport 将指令序列写入已打开的双工通道（串口或模拟器）
type Transport struct {
	ch    io.ReadWriter
	limit int
	log   *zap.SugaredLogger
	stats Stats
}

// NewTransport 创建传输层；log 为 nil 时不输出日志
func NewTransport(ch io.ReadWriter, log *zap.SugaredLogger) *Transport {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Transport{ch: ch, limit: LineLimit, log: log}
}

// Stats 返回传输层指标
func (t *Transport) Stats() *Stats { return &t.stats }

// Chunk 按行长上限把指令拼成若干批次。
// 指令不会被拆分；单条指令本身超过上限时独占一个批次。
func Chunk(tokens []string, limit int) [][]byte {
	var chunks [][]byte
	var acc []byte
	for _, tok := range tokens {
		if len(acc)+len(tok) < limit {
			acc = append(acc, tok...)
			continue
		}
		if len(acc) > 0 {
			chunks = append(chunks, acc)
		}
		acc = []byte(tok)
	}
	if len(acc) > 0 {
		chunks = append(chunks, acc)
	}
	return chunks
}

// Initialize 发送设备初始化指令（不握手）
func (t *Transport) Initialize() error {
	return t.SendImmediate(Initialize)
}

// Send 握手模式：逐批写入，每批后追加 OA; 并阻塞等待回车字节，再发送下一批
func (t *Transport) Send(tokens []string) error {
	chunks := Chunk(tokens, t.limit)
	t.log.Debugf("send: %d tokens in %d chunks", len(tokens), len(chunks))
	for i, chunk := range chunks {
		if err := t.write(chunk); err != nil {
			return fmt.Errorf("write chunk %d/%d: %w", i+1, len(chunks), err)
		}
		atomic.AddInt64(&t.stats.ChunksSent, 1)
		if err := t.write([]byte(OutputAck)); err != nil {
			return fmt.Errorf("write %s after chunk %d: %w", OutputAck, i+1, err)
		}
		if err := t.awaitAck(); err != nil {
			return fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		atomic.AddInt64(&t.stats.AcksReceived, 1)
	}
	return nil
}

// SendImmediate 即发即弃：单条指令直接写出，不分批也不等待确认
func (t *Transport) SendImmediate(token string) error {
	if err := t.write([]byte(token)); err != nil {
		return fmt.Errorf("write %q: %w", token, err)
	}
	atomic.AddInt64(&t.stats.ImmediateWrites, 1)
	return nil
}

func (t *Transport) write(b []byte) error {
	n, err := t.ch.Write(b)
	atomic.AddInt64(&t.stats.BytesWritten, int64(n))
	if err != nil {
		return err
	}
	if n < len(b) {
		return io.ErrShortWrite
	}
	return nil
}

// awaitAck 逐字节读取直到收到 Terminator；其他字节忽略
func (t *Transport) awaitAck() error {
	buf := make([]byte, 1)
	for {
		n, err := t.ch.Read(buf)
		if err != nil {
			return fmt.Errorf("read ack: %w", err)
		}
		if n == 0 {
			return ErrAckTimeout
		}
		if buf[0] == Terminator {
			return nil
		}
	}
}

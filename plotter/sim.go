package plotter

import (
	"bytes"
	"io"
	"sync"
)

// Simulator 内存中的绘图仪：记录收到的指令，每遇到一个 OA; 回送一个 Terminator。
// 没有待回送的确认时 Read 返回 0 字节，等同于串口读超时。
type Simulator struct {
	mu      sync.Mutex
	record  io.Writer
	tail    []byte // 上次写入末尾，用于识别跨写入边界的 OA;
	pending int
}

// NewSimulator record 可为 nil
func NewSimulator(record io.Writer) *Simulator {
	return &Simulator{record: record}
}

func (s *Simulator) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record != nil {
		if _, err := s.record.Write(p); err != nil {
			return 0, err
		}
	}
	window := append(append([]byte(nil), s.tail...), p...)
	s.pending += bytes.Count(window, []byte(OutputAck))
	keep := len(OutputAck) - 1
	if len(window) < keep {
		keep = len(window)
	}
	s.tail = window[len(window)-keep:]
	return len(p), nil
}

func (s *Simulator) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for n < len(p) && s.pending > 0 {
		p[n] = Terminator
		n++
		s.pending--
	}
	return n, nil
}

// Pending 尚未被读取的确认数
func (s *Simulator) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

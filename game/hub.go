package game

import (
	"encoding/json"
	"sync"
	"time"
)

// 观战连接保活：超过 pongWait 没有任何读到的数据（含 pong）即视为断开
const (
	defaultPongWait   = 60 * time.Second
	defaultPingPeriod = defaultPongWait * 9 / 10
)

// Frame 广播给观战端的消息（文本 JSON）
type Frame struct {
	Type      string       `json:"type"` // board | state | over
	Tick      int64        `json:"tick,omitempty"`
	Obstacles Board        `json:"obstacles,omitempty"`
	Player    *PlayerState `json:"player,omitempty"`
	Phase     string       `json:"phase,omitempty"`
}

// Hub 管理观战连接，实现 Observer
type Hub struct {
	mu      sync.RWMutex
	clients map[*ClientConn]struct{}
	board   []byte // 新连接首先收到的障碍物帧

	pongWait   time.Duration
	pingPeriod time.Duration
}

// NewHub 创建空的观战中心
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*ClientConn]struct{}),
		pongWait:   defaultPongWait,
		pingPeriod: defaultPingPeriod,
	}
}

// Join 注册连接，并立即推送障碍物帧（若已生成）
func (h *Hub) Join(c *ClientConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	if h.board != nil {
		c.Enqueue(h.board)
	}
}

// Leave 注销并关闭连接
func (h *Hub) Leave(c *ClientConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.Close()
	}
}

// Count 当前观战连接数
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) PublishBoard(board Board) {
	b, err := json.Marshal(Frame{Type: "board", Obstacles: board})
	if err != nil {
		Log.Errorf("marshal board frame: %v", err)
		return
	}
	h.mu.Lock()
	h.board = b
	h.mu.Unlock()
	h.broadcast(b)
}

func (h *Hub) PublishState(tick int64, p PlayerState, phase Phase) {
	typ := "state"
	if phase != Playing {
		typ = "over"
	}
	b, err := json.Marshal(Frame{Type: typ, Tick: tick, Player: &p, Phase: phase.String()})
	if err != nil {
		Log.Errorf("marshal state frame: %v", err)
		return
	}
	h.broadcast(b)
}

// broadcast 非阻塞入队，慢连接不会拖慢 Tick
func (h *Hub) broadcast(b []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.Enqueue(b)
	}
}

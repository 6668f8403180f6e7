package game

import (
	"encoding/json"
	"net/http"

	"plotterbird/plotter"
)

// NewMux 观战与监控接口
// /ws       观战 WebSocket
// /metrics  Tick 与传输层指标
// /healthz  存活检查
func NewMux(hub *Hub, g *Game, stats *plotter.Stats) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", HandleWS(hub))
	mux.HandleFunc("/metrics", HandleMetrics(g, stats))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// HandleMetrics 输出当前局的运行指标
// GET /metrics
func HandleMetrics(g *Game, stats *plotter.Stats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		payload := map[string]any{
			"state":   g.State.Get(),
			"metrics": g.Metrics.Snapshot(),
		}
		if stats != nil {
			payload["transport"] = stats.Snapshot()
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}
}

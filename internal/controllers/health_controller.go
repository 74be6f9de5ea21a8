package controllers

import (
	"fmt"
	"net/http"
	"time"

	"dashd/internal/services"
	"dashd/internal/structures"
)

type HealthController struct {
	conf      *structures.Config
	stats     services.StatisticServiceInterface
	board     services.BoardServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	StoreBackend  string  `json:"store_backend"`
	StatTypes     int     `json:"stat_types"`
	BoardPosts    int     `json:"board_posts"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		StoreBackend:  hc.conf.Store.Backend,
		StatTypes:     len(hc.stats.Types()),
		BoardPosts:    hc.board.Count(),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(conf *structures.Config, stats services.StatisticServiceInterface, board services.BoardServiceInterface) *HealthController {
	return &HealthController{
		conf:      conf,
		stats:     stats,
		board:     board,
		startTime: time.Now(),
	}
}

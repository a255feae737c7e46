package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/xavierca1/wacloud/internal/config"
)

type HealthHandler struct {
	Config    *config.Config
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		Config:    cfg,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.Config.CanSend() {
		deps["graph_api"] = "configured"
	} else {
		deps["graph_api"] = "not configured"
	}

	if h.Config.AppSecret != "" {
		deps["webhook_secret"] = "configured"
	} else {
		deps["webhook_secret"] = "not configured"
	}

	if h.Config.VerifyToken != "" {
		deps["verify_token"] = "configured"
	} else {
		deps["verify_token"] = "not configured"
	}

	uptime := time.Since(h.StartTime).Round(time.Second).String()

	response := HealthResponse{
		Status:       "healthy",
		Version:      "1.0.0",
		Uptime:       uptime,
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"fcclubs/internal/delivery/httpapi/respond"
)

type notifyRequest struct {
	TeamName *string `json:"team_name"`
}

type notifyResponse struct {
	Message    string `json:"message"`
	TotalUsers int    `json:"total_users"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil || req.TeamName == nil {
		respond.WriteError(w, http.StatusBadRequest, "Missing 'team_name' in request payload.")
		return
	}

	teamName := strings.TrimSpace(*req.TeamName)
	if teamName == "" {
		respond.WriteError(w, http.StatusBadRequest, "'team_name' cannot be empty.")
		return
	}

	res, err := s.notifier.Notify(r.Context(), teamName)
	if err != nil {
		s.logger.Error("notify %q: %v", teamName, err)
		respond.WriteError(w, http.StatusInternalServerError, "Failed to fetch match information.")
		return
	}

	respond.WriteJSON(w, http.StatusOK, notifyResponse{
		Message:    res.Message(),
		TotalUsers: res.Total,
		Sent:       res.Sent,
		Failed:     res.Failed,
	})
}

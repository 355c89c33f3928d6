package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"pathfinder/internal/domain"
	"pathfinder/internal/repository"
)

// ChatRequest is the inbound turn payload. ThreadID is optional; a fresh
// identifier is generated when it is absent.
type ChatRequest struct {
	Message  string `json:"message"`
	ThreadID string `json:"thread_id,omitempty"`
}

// ChatResponse is the shaped outcome of one turn.
type ChatResponse struct {
	Reply    string          `json:"reply"`
	ThreadID string          `json:"thread_id"`
	Plan     *domain.Roadmap `json:"plan"`
	Quiz     *domain.Quiz    `json:"quiz"`
	Diagram  *string         `json:"diagram"`
	Status   string          `json:"status"`
}

// Chat handles POST /chat: one full dialogue turn.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		Error(w, http.StatusBadRequest, "message is required")
		return
	}

	threadID := req.ThreadID
	if threadID == "" {
		threadID = newThreadID()
	}

	unlock := h.locks.Lock(threadID)
	defer unlock()

	result, err := h.controller.HandleTurn(r.Context(), threadID, req.Message)
	if err != nil {
		h.log.Error("turn failed", zap.String("thread_id", threadID), zap.Error(err))
		if errors.Is(err, repository.ErrUnavailable) {
			Error(w, http.StatusServiceUnavailable, "session storage is unavailable")
			return
		}
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := ChatResponse{
		Reply:    result.Reply,
		ThreadID: result.ThreadID,
		Plan:     result.Plan,
		Quiz:     result.Quiz,
		Status:   string(result.Status),
	}
	if result.Diagram != "" {
		resp.Diagram = &result.Diagram
	}
	JSON(w, http.StatusOK, resp)
}

package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"pathfinder/internal/domain"
)

// QuizRequest asks for a standalone quiz on a topic, outside any thread.
type QuizRequest struct {
	Topic   string `json:"topic"`
	Context string `json:"context,omitempty"`
}

// QuizResponse wraps a generated quiz.
type QuizResponse struct {
	Quiz   *domain.Quiz `json:"quiz"`
	Status string       `json:"status"`
}

// Quiz handles POST /quiz: direct quiz generation without touching any
// session state.
func (h *Handler) Quiz(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		Error(w, http.StatusBadRequest, "topic is required")
		return
	}

	quiz, err := h.provider.GenerateQuiz(r.Context(), req.Topic, req.Context)
	if err != nil {
		h.log.Warn("standalone quiz generation failed", zap.String("topic", req.Topic), zap.Error(err))
		Error(w, http.StatusBadGateway, "quiz generation failed")
		return
	}

	JSON(w, http.StatusOK, QuizResponse{Quiz: quiz, Status: "success"})
}

// Package api provides the HTTP boundary for the PathFinder assistant.
package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pathfinder/internal/dialogue"
	"pathfinder/internal/strategy"
)

// Handler carries the shared handler dependencies.
type Handler struct {
	controller *dialogue.Controller
	provider   strategy.Provider
	log        *zap.Logger
	locks      *threadLocker
}

// NewHandler creates a Handler around the dialogue controller.
func NewHandler(controller *dialogue.Controller, provider strategy.Provider, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		controller: controller,
		provider:   provider,
		log:        log,
		locks:      newThreadLocker(),
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message, "status": "error"})
}

// newThreadID generates an opaque identifier for a fresh conversation.
func newThreadID() string {
	return uuid.NewString()
}

// threadLocker serializes turns per thread id. Concurrent requests on
// different threads run in parallel; same-thread requests queue so the
// store's last-writer-wins save cannot drop a turn.
type threadLocker struct {
	mu    sync.Mutex
	locks map[string]*threadLock
}

type threadLock struct {
	mu   sync.Mutex
	refs int
}

func newThreadLocker() *threadLocker {
	return &threadLocker{locks: make(map[string]*threadLock)}
}

// Lock acquires the per-thread mutex and returns its unlock func.
func (t *threadLocker) Lock(threadID string) func() {
	t.mu.Lock()
	l, ok := t.locks[threadID]
	if !ok {
		l = &threadLock{}
		t.locks[threadID] = l
	}
	l.refs++
	t.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		t.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(t.locks, threadID)
		}
		t.mu.Unlock()
	}
}

// Package chat exposes the /api/chat gateway endpoint.
package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bunniesplumbing/chat-gateway/internal/knowledge"
	"github.com/bunniesplumbing/chat-gateway/internal/middleware"
	chatmodel "github.com/bunniesplumbing/chat-gateway/internal/model/chat"
	"github.com/bunniesplumbing/chat-gateway/internal/service/conversation"
	"github.com/bunniesplumbing/chat-gateway/pkg/utils"
)

// Completer produces the assistant reply for an assembled message list.
type Completer interface {
	Complete(ctx context.Context, messages []*schema.Message) (string, error)
}

// Admitter gates a session against its rate quota.
type Admitter interface {
	Admit(ctx context.Context, sessionID string) bool
}

// Handler serves the chat gateway endpoint.
type Handler struct {
	limiter      Admitter
	completer    Completer
	systemPrompt string
	maxTurns     int
	logger       *zap.Logger
}

// New creates the chat handler. A nil-backed completer is allowed; every
// request then receives the fallback message, which keeps the widget alive
// when no upstream credential is deployed.
func New(limiter Admitter, completer Completer, systemPrompt string, maxTurns int, logger *zap.Logger) *Handler {
	return &Handler{
		limiter:      limiter,
		completer:    completer,
		systemPrompt: systemPrompt,
		maxTurns:     maxTurns,
		logger:       logger,
	}
}

// RegisterRoutes registers the chat endpoint. OPTIONS preflights are
// answered by the CORS middleware before reaching here.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	// Message is a pointer so a body without the key is rejected as
	// malformed rather than as a length violation.
	var payload struct {
		Message *string             `json:"message"`
		History []chatmodel.Message `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Message == nil {
		respond(w, http.StatusBadRequest, false, "Invalid request.")
		return
	}

	message := strings.TrimSpace(*payload.Message)
	if len(message) < 1 || len(message) > chatmodel.MaxContentLength {
		respond(w, http.StatusBadRequest, false, "Message must be between 1 and 1000 characters.")
		return
	}
	req := chatmodel.GatewayRequest{Message: message, History: payload.History}

	sessionID := middleware.SessionID(r.Context())
	if !h.limiter.Admit(r.Context(), sessionID) {
		h.logger.Info("rate limit exceeded", zap.String("session_id", sessionID))
		respond(w, http.StatusOK, false, knowledge.RateLimitMessage)
		return
	}

	messages := conversation.Build(h.systemPrompt, req.History, message, h.maxTurns)

	reply, err := h.completer.Complete(r.Context(), messages)
	if err != nil {
		// The taxonomy is logged inside the completer; the visitor only
		// ever sees the phone-bearing fallback.
		respond(w, http.StatusOK, false, knowledge.FallbackMessage)
		return
	}

	respond(w, http.StatusOK, true, reply)
}

func respond(w http.ResponseWriter, status int, success bool, message string) {
	utils.RespondJSON(w, status, chatmodel.GatewayResponse{Success: success, Message: message})
}

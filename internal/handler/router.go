// Package handler wires HTTP routes to the gateway services.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/bunniesplumbing/chat-gateway/internal/handler/booking"
	"github.com/bunniesplumbing/chat-gateway/internal/handler/chat"
	"github.com/bunniesplumbing/chat-gateway/internal/middleware"
	chatmodel "github.com/bunniesplumbing/chat-gateway/internal/model/chat"
	"github.com/bunniesplumbing/chat-gateway/pkg/utils"
)

// NewRouter assembles the HTTP surface. bookingHandler may be nil when the
// booking collaborator is not deployed; the chat core has no dependency on
// it.
func NewRouter(chatHandler *chat.Handler, bookingHandler *booking.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)
	r.Use(middleware.Session)

	// The widget contract promises JSON on every branch, 405 included.
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusMethodNotAllowed,
			chatmodel.GatewayResponse{Success: false, Message: "Method not allowed."})
	})

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		if bookingHandler != nil {
			bookingHandler.RegisterRoutes(api)
		}
	})

	return r
}

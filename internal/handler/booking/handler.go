// Package booking exposes the /api/booking form endpoint. It is a
// collaborator of the marketing site, not part of the chat core.
package booking

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	bookingmodel "github.com/bunniesplumbing/chat-gateway/internal/model/booking"
	bookingservice "github.com/bunniesplumbing/chat-gateway/internal/service/booking"
	"github.com/bunniesplumbing/chat-gateway/pkg/utils"
)

// Handler serves booking form submissions.
type Handler struct {
	svc    *bookingservice.Service
	logger *zap.Logger
}

// New creates the booking handler.
func New(svc *bookingservice.Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes registers the booking endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/booking", h.handleSubmit)
}

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondJSON(w, http.StatusBadRequest, response{Message: "Invalid request."})
		return
	}

	req := &bookingmodel.Request{
		Name:     strings.TrimSpace(r.PostFormValue("name")),
		Phone:    strings.TrimSpace(r.PostFormValue("phone")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Service:  strings.TrimSpace(r.PostFormValue("service")),
		Date:     strings.TrimSpace(r.PostFormValue("date")),
		TimeSlot: strings.TrimSpace(r.PostFormValue("time")),
		Message:  strings.TrimSpace(r.PostFormValue("message")),
	}

	if errs := bookingservice.Validate(req); len(errs) > 0 {
		utils.RespondJSON(w, http.StatusBadRequest, response{Message: strings.Join(errs, ", ")})
		return
	}

	if err := h.svc.Submit(r.Context(), req); err != nil {
		h.logger.Error("booking submission failed", zap.Error(err))
		utils.RespondJSON(w, http.StatusInternalServerError,
			response{Message: "Something went wrong. Please call us instead."})
		return
	}

	utils.RespondJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Thank you! We received your request and will contact you shortly.",
	})
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/api/shared"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/service"
)

// UsageHandler serves GET /api/usage.
type UsageHandler struct {
	service *service.GenerationService
	logger  *slog.Logger
}

// NewUsageHandler creates a UsageHandler.
func NewUsageHandler(svc *service.GenerationService, log *slog.Logger) *UsageHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UsageHandler{
		service: svc,
		logger:  log.With(slog.String("component", "usage_handler")),
	}
}

// Usage reports the caller's current quota consumption.
func (h *UsageHandler) Usage(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFrom(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	allowance, err := h.service.Usage(r.Context(), identity.UserID, identity.IsPremium)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to load usage", err)
		return
	}

	resp := UsageResponse{
		DailyCount: allowance.DailyCount,
		DailyLimit: allowance.DailyLimit,
		IsPremium:  allowance.IsPremium,
	}
	if !allowance.IsPremium {
		remaining := allowance.DailyLimit - allowance.DailyCount
		if remaining < 0 {
			remaining = 0
		}
		resp.Remaining = &remaining
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// HealthCheck serves GET /healthz.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

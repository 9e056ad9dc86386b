package interfaces

import (
	"net/http"

	"fintrack/internal/finance/derived"
)

type SummaryServiceInterface interface {
	GetBalance(userID string) (derived.Balance, error)
	GetMonthlySeries(userID string) ([]derived.MonthTotals, error)
	GetRecentEntries(userID string) ([]derived.RecentEntry, error)
}

type SummaryHandler struct {
	service      SummaryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewSummaryHandler(
	service SummaryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *SummaryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &SummaryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *SummaryHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	balance, err := h.service.GetBalance(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to compute balance")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Balance computed successfully.",
		"data":    balance,
	})
}

func (h *SummaryHandler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	series, err := h.service.GetMonthlySeries(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to compute monthly summary")
		return
	}
	if series == nil {
		series = []derived.MonthTotals{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Monthly summary computed successfully.",
		"data":    series,
	})
}

func (h *SummaryHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	recent, err := h.service.GetRecentEntries(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to compute recent entries")
		return
	}
	if recent == nil {
		recent = []derived.RecentEntry{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Recent entries computed successfully.",
		"data":    recent,
	})
}

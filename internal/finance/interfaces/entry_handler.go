package interfaces

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"fintrack/internal/finance/derived"
	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

type EntryServiceInterface interface {
	GetUserEntries(userID string, criteria derived.Criteria) ([]domain.Entry, error)
	GetEntry(entryID, userID string) (*domain.Entry, error)
	CreateEntry(entry *domain.Entry) error
	UpdateEntry(entry *domain.Entry) error
	DeleteEntry(entryID, userID string) error
}

type EntryHandler struct {
	service      EntryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewEntryHandler(
	service EntryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *EntryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &EntryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *EntryHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := r.URL.Query()
	criteria := derived.Criteria{
		Search:    query.Get("search"),
		Category:  query.Get("category"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}
	if criteria.StartDate != "" {
		if _, ok := derived.ParseDate(criteria.StartDate); !ok {
			h.respondError(w, http.StatusBadRequest, "Invalid start date format")
			return
		}
	}
	if criteria.EndDate != "" {
		if _, ok := derived.ParseDate(criteria.EndDate); !ok {
			h.respondError(w, http.StatusBadRequest, "Invalid end date format")
			return
		}
	}

	entries, err := h.service.GetUserEntries(userID, criteria)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve entries")
		return
	}
	if entries == nil {
		entries = []domain.Entry{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Entries retrieved successfully.",
		"data":    entries,
	})
}

func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	entryID := r.PathValue("entryID")
	if entryID == "" {
		h.respondError(w, http.StatusBadRequest, "Entry ID is required")
		return
	}

	entry, err := h.service.GetEntry(entryID, userID)
	if err != nil {
		if errors.Is(err, financeErrors.ErrEntryNotFound) {
			h.respondError(w, http.StatusNotFound, "Entry not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve entry")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Entry retrieved successfully.",
		"data":    entry,
	})
}

func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var entry domain.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry.UserID = userID
	if err := h.service.CreateEntry(&entry); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		fmt.Println("Error during entry creation:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Entry successfully created.",
		"data":    entry,
	})
}

func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	entryID := r.PathValue("entryID")
	if entryID == "" {
		h.respondError(w, http.StatusBadRequest, "Entry ID is required")
		return
	}

	var entry domain.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry.ID = entryID
	entry.UserID = userID
	if err := h.service.UpdateEntry(&entry); err != nil {
		if errors.Is(err, financeErrors.ErrEntryNotFound) {
			h.respondError(w, http.StatusNotFound, "Entry not found")
			return
		}
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		fmt.Println("Error during entry update:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to update entry")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Entry successfully updated.",
		"data":    entry,
	})
}

func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	entryID := r.PathValue("entryID")
	if entryID == "" {
		h.respondError(w, http.StatusBadRequest, "Entry ID is required")
		return
	}

	if err := h.service.DeleteEntry(entryID, userID); err != nil {
		if errors.Is(err, financeErrors.ErrEntryNotFound) {
			h.respondError(w, http.StatusNotFound, "Entry not found")
			return
		}
		fmt.Println("Error during entry deletion:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to delete entry")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Entry successfully deleted.",
	})
}

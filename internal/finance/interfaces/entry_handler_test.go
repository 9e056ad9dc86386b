package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/finance/domain"
)

func TestGetEntries_PassesCriteria(t *testing.T) {
	req := authedRequest(http.MethodGet, "/api/protected/entries?search=merc&category=cat-1&start_date=2026-01-01&end_date=2026-01-31", "")
	w := httptest.NewRecorder()

	mockService := &MockEntryService{
		entries: []domain.Entry{
			{ID: "e1", Description: "Mercado", Value: 120, Date: "2026-01-10", Category: "cat-1"},
			{ID: "e2", Description: "Aluguel", Value: 900, Date: "2026-01-05", Category: "cat-2"},
		},
	}
	handler := NewEntryHandler(mockService, respondJSON, respondError)
	handler.GetEntries(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "merc", mockService.lastCriteria.Search)
	assert.Equal(t, "cat-1", mockService.lastCriteria.Category)
	assert.Equal(t, "2026-01-01", mockService.lastCriteria.StartDate)
	assert.Equal(t, "2026-01-31", mockService.lastCriteria.EndDate)

	var response struct {
		Data []domain.Entry `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	require.Len(t, response.Data, 1)
	assert.Equal(t, "e1", response.Data[0].ID)
}

func TestGetEntries_InvalidStartDate(t *testing.T) {
	req := authedRequest(http.MethodGet, "/api/protected/entries?start_date=31-01-2026", "")
	w := httptest.NewRecorder()

	handler := NewEntryHandler(&MockEntryService{}, respondJSON, respondError)
	handler.GetEntries(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Invalid start date format", response["message"])
}

func TestGetEntries_EmptyListIsNotNull(t *testing.T) {
	req := authedRequest(http.MethodGet, "/api/protected/entries", "")
	w := httptest.NewRecorder()

	handler := NewEntryHandler(&MockEntryService{}, respondJSON, respondError)
	handler.GetEntries(w, req)

	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestCreateEntry_Success(t *testing.T) {
	body := `{"description":"Feira","value":55.5,"date":"2026-02-10","category":{"_id":"cat-1"}}`
	req := authedRequest(http.MethodPost, "/api/protected/entries", body)
	w := httptest.NewRecorder()

	mockService := &MockEntryService{}
	handler := NewEntryHandler(mockService, respondJSON, respondError)
	handler.CreateEntry(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	require.Len(t, mockService.entries, 1)
	assert.Equal(t, "user-1", mockService.entries[0].UserID)
	assert.Equal(t, 55.5, mockService.entries[0].Value)
}

func TestCreateEntry_UnresolvableCategory(t *testing.T) {
	body := `{"value":10,"date":"2026-02-10","category":{"name":"no id"}}`
	req := authedRequest(http.MethodPost, "/api/protected/entries", body)
	w := httptest.NewRecorder()

	handler := NewEntryHandler(&MockEntryService{}, respondJSON, respondError)
	handler.CreateEntry(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Category reference is invalid or unknown", response["message"])
}

func TestCreateEntry_NonPositiveValue(t *testing.T) {
	body := `{"value":0,"date":"2026-02-10","category":"cat-1"}`
	req := authedRequest(http.MethodPost, "/api/protected/entries", body)
	w := httptest.NewRecorder()

	handler := NewEntryHandler(&MockEntryService{}, respondJSON, respondError)
	handler.CreateEntry(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	body := `{"value":10,"date":"2026-02-10","category":"cat-1"}`
	req := authedRequest(http.MethodPut, "/api/protected/entries/missing", body)
	req.SetPathValue("entryID", "missing")
	w := httptest.NewRecorder()

	handler := NewEntryHandler(&MockEntryService{}, respondJSON, respondError)
	handler.UpdateEntry(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestDeleteEntry_Success(t *testing.T) {
	req := authedRequest(http.MethodDelete, "/api/protected/entries/e1", "")
	req.SetPathValue("entryID", "e1")
	w := httptest.NewRecorder()

	mockService := &MockEntryService{
		entries: []domain.Entry{{ID: "e1", Value: 10, Date: "2026-01-02", Category: "cat-1"}},
	}
	handler := NewEntryHandler(mockService, respondJSON, respondError)
	handler.DeleteEntry(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Empty(t, mockService.entries)
}

func TestGetEntry_Success(t *testing.T) {
	req := authedRequest(http.MethodGet, "/api/protected/entries/e1", "")
	req.SetPathValue("entryID", "e1")
	w := httptest.NewRecorder()

	mockService := &MockEntryService{
		entries: []domain.Entry{{ID: "e1", Description: "Feira", Value: 10, Date: "2026-01-02", Category: "cat-1"}},
	}
	handler := NewEntryHandler(mockService, respondJSON, respondError)
	handler.GetEntry(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data domain.Entry `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Feira", response.Data.Description)
}

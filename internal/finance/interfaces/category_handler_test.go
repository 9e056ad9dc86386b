package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fintrack/internal/finance/derived"
	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

func authedRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(context.WithValue(req.Context(), "userID", "user-1"))
}

func TestGetCategories_Success(t *testing.T) {
	req := authedRequest(http.MethodGet, "/api/protected/categories", "")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{
		categories: []domain.Category{
			{ID: "cat-1", Title: "Mercado", Color: "#00aa00", Expense: true},
			{ID: "cat-2", Title: "Salário", Color: "#1976d2", Expense: false},
		},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.GetCategories(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Status string            `json:"status"`
		Data   []domain.Category `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "success", response.Status)
	assert.Equal(t, 2, len(response.Data))
}

func TestGetCategories_Unauthorized(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/protected/categories", nil)
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)
	handler.GetCategories(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestCreateCategory_Success(t *testing.T) {
	req := authedRequest(http.MethodPost, "/api/protected/categories", `{"title":"Transporte","expense":true}`)
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Len(t, mockService.categories, 1)
	assert.Equal(t, "user-1", mockService.categories[0].UserID)
}

func TestCreateCategory_InvalidBody(t *testing.T) {
	req := authedRequest(http.MethodPost, "/api/protected/categories", `{not json`)
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)
	handler.CreateCategory(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestCreateCategory_EmptyTitle(t *testing.T) {
	req := authedRequest(http.MethodPost, "/api/protected/categories", `{"title":"  "}`)
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Title must not be empty", response["message"])
}

func TestUpdateCategory_NotFound(t *testing.T) {
	req := authedRequest(http.MethodPut, "/api/protected/categories/missing", `{"title":"Casa"}`)
	req.SetPathValue("categoryID", "missing")
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)
	handler.UpdateCategory(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestDeleteCategory_Conflict(t *testing.T) {
	req := authedRequest(http.MethodDelete, "/api/protected/categories/cat-1", "")
	req.SetPathValue("categoryID", "cat-1")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{
		deleteErr: &financeErrors.CategoryInUseError{Title: "Mercado", Count: 3},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.DeleteCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusConflict, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Contains(t, response["message"], "3 entries still reference it")
}

func TestDeleteCategory_Success(t *testing.T) {
	req := authedRequest(http.MethodDelete, "/api/protected/categories/cat-1", "")
	req.SetPathValue("categoryID", "cat-1")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{
		categories: []domain.Category{{ID: "cat-1", Title: "Mercado"}},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.DeleteCategory(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Empty(t, mockService.categories)
}

func TestGetDeleteCheck_Blocked(t *testing.T) {
	req := authedRequest(http.MethodGet, "/api/protected/categories/cat-1/delete-check", "")
	req.SetPathValue("categoryID", "cat-1")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{
		deleteCheck: derived.DeleteCheck{Allowed: false, BlockingCount: 2},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.GetDeleteCheck(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data derived.DeleteCheck `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.False(t, response.Data.Allowed)
	assert.Equal(t, 2, response.Data.BlockingCount)
}

func TestGetUsage_Success(t *testing.T) {
	req := authedRequest(http.MethodGet, "/api/protected/categories/usage", "")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{usage: map[string]int{"cat-1": 4}}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.GetUsage(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data map[string]int `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, 4, response.Data["cat-1"])
}

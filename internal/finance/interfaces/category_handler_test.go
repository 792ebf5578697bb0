package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"personalfinance/internal/finance/domain"
	financeErrors "personalfinance/internal/finance/errors"
)

func authenticatedRequest(method, target string, body string, userID int) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(context.WithValue(req.Context(), "userID", userID))
}

func TestGetCategories_ReturnsOwnOnly(t *testing.T) {
	service := &MockCategoryService{
		Categories: []domain.Category{
			{ID: 1, UserID: 1, Name: "Groceries"},
			{ID: 2, UserID: 1, Name: "Salary", IsIncome: true},
			{ID: 3, UserID: 2, Name: "Housing"},
		},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/categories", "", 1)
	w := httptest.NewRecorder()
	handler.GetCategories(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var categories []domain.Category
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&categories))
	assert.Len(t, categories, 2)
}

func TestGetCategories_EmptyListIsArray(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/categories", "", 1)
	w := httptest.NewRecorder()
	handler.GetCategories(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestGetCategories_Unauthenticated(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	handler.GetCategories(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestGetCategory_Found(t *testing.T) {
	service := &MockCategoryService{
		Categories: []domain.Category{{ID: 7, UserID: 1, Name: "Groceries"}},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/categories/7", "", 1)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	handler.GetCategory(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var category domain.Category
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&category))
	assert.Equal(t, "Groceries", category.Name)
}

func TestGetCategory_OtherUsersCategoryIsNotFound(t *testing.T) {
	service := &MockCategoryService{
		Categories: []domain.Category{{ID: 7, UserID: 2, Name: "Groceries"}},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/categories/7", "", 1)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	handler.GetCategory(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestGetCategory_InvalidID(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	for _, id := range []string{"abc", "0", "-4", ""} {
		req := authenticatedRequest(http.MethodGet, "/api/categories/"+id, "", 1)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		handler.GetCategory(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode, "id %q", id)
	}
}

func TestCreateCategory_ForcesOwnerFromToken(t *testing.T) {
	service := &MockCategoryService{}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	body := `{"id":99,"userId":42,"name":"Books","isIncome":false}`
	req := authenticatedRequest(http.MethodPost, "/api/categories", body, 1)
	w := httptest.NewRecorder()
	handler.CreateCategory(w, req)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)

	var created domain.Category
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, 1, created.UserID)
	assert.NotEqual(t, 99, created.ID)
}

func TestCreateCategory_ValidationError(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPost, "/api/categories", `{"name":""}`, 1)
	w := httptest.NewRecorder()
	handler.CreateCategory(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestCreateCategory_InvalidBody(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPost, "/api/categories", "{not json", 1)
	w := httptest.NewRecorder()
	handler.CreateCategory(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestUpdateCategory_Success(t *testing.T) {
	service := &MockCategoryService{
		Categories: []domain.Category{{ID: 7, UserID: 1, Name: "Groceries"}},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPut, "/api/categories/7", `{"name":"Food"}`, 1)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	handler.UpdateCategory(w, req)

	assert.Equal(t, http.StatusNoContent, w.Result().StatusCode)
	assert.Equal(t, "Food", service.Categories[0].Name)
}

func TestUpdateCategory_IDMismatch(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPut, "/api/categories/7", `{"id":8,"name":"Food"}`, 1)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	handler.UpdateCategory(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPut, "/api/categories/7", `{"name":"Food"}`, 1)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	handler.UpdateCategory(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestDeleteCategory_Success(t *testing.T) {
	service := &MockCategoryService{
		Categories: []domain.Category{{ID: 7, UserID: 1, Name: "Groceries"}},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodDelete, "/api/categories/7", "", 1)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	handler.DeleteCategory(w, req)

	assert.Equal(t, http.StatusNoContent, w.Result().StatusCode)
	assert.Empty(t, service.Categories)
}

func TestDeleteCategory_InUse(t *testing.T) {
	service := &MockCategoryService{
		Categories: []domain.Category{{ID: 7, UserID: 1, Name: "Groceries"}},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	service.Err = financeErrors.ErrCategoryInUse

	req := authenticatedRequest(http.MethodDelete, "/api/categories/7", "", 1)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	handler.DeleteCategory(w, req)

	res := w.Result()
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	var response struct {
		Message string `json:"message"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "Cannot delete category with existing transactions", response.Message)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := authenticatedRequest(http.MethodDelete, "/api/categories/7", "", 1)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	handler.DeleteCategory(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

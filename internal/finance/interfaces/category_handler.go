package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"personalfinance/internal/finance/domain"
	financeErrors "personalfinance/internal/finance/errors"
)

type CategoryServiceInterface interface {
	GetUserCategories(userID int) ([]domain.Category, error)
	GetCategory(categoryID, userID int) (*domain.Category, error)
	CreateCategory(category *domain.Category) error
	UpdateCategory(category *domain.Category) error
	DeleteCategory(categoryID, userID int) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// requesterID extracts the authenticated user id placed into the request
// context by the JWT middleware.
func requesterID(r *http.Request) (int, bool) {
	userID, ok := r.Context().Value("userID").(int)
	return userID, ok
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categories, err := h.service.GetUserCategories(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.service.GetCategory(categoryID, userID)
	if err != nil {
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve category")
		return
	}

	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Owner always comes from the token, never from the payload.
	category.ID = 0
	category.UserID = userID
	if err := h.service.CreateCategory(&category); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("Error during category creation:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if category.ID != 0 && category.ID != categoryID {
		h.respondError(w, http.StatusBadRequest, "Category ID mismatch")
		return
	}

	category.ID = categoryID
	category.UserID = userID
	if err := h.service.UpdateCategory(&category); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		log.Println("Error during category update:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(categoryID, userID); err != nil {
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		if errors.Is(err, financeErrors.ErrCategoryInUse) {
			h.respondError(w, http.StatusConflict, "Cannot delete category with existing transactions")
			return
		}
		log.Println("Error during category deletion:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

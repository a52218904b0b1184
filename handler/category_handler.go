package handler

import (
	"assetconsole/models"
	"assetconsole/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) listCategories(r *http.Request) ([]models.Category, error) {
	q := r.URL.Query()
	return h.Categories.ListCategories(r.Context(), q.Get("search"), models.CategoryStatus(q.Get("status")))
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	page, size := utils.GetPageAndSize(r)
	categories, err := h.listCategories(r)
	if err != nil {
		h.respondStoreError(w, err, "failed to fetch categories")
		return
	}
	utils.RespondJSON(w, http.StatusOK, utils.Paginate(categories, page, size))
}

// GetAllCategories answers with every matching category on a single page.
func (h *Handler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listCategories(r)
	if err != nil {
		h.respondStoreError(w, err, "failed to fetch categories")
		return
	}
	size := len(categories)
	if size == 0 {
		size = 1
	}
	utils.RespondJSON(w, http.StatusOK, utils.Paginate(categories, 1, size))
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.Categories.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondStoreError(w, err, "failed to fetch category")
		return
	}
	utils.RespondData(w, http.StatusOK, category, "ok")
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req, "category"); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Name and description are required")
		return
	}

	category, err := h.Categories.CreateCategory(r.Context(), req)
	if err != nil {
		h.respondStoreError(w, err, "failed to create category")
		return
	}
	h.Logger.Info("category created", zap.String("categoryID", category.ID))
	utils.RespondData(w, http.StatusCreated, category, "Category created successfully")
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCategoryReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}
	category, err := h.Categories.UpdateCategory(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.respondStoreError(w, err, "failed to update category")
		return
	}
	utils.RespondData(w, http.StatusOK, category, "Category updated successfully")
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Categories.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondStoreError(w, err, "failed to delete category")
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Category deleted successfully")
}

func (h *Handler) ToggleCategoryStatus(w http.ResponseWriter, r *http.Request) {
	category, err := h.Categories.ToggleCategoryStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondStoreError(w, err, "failed to update category status")
		return
	}
	utils.RespondData(w, http.StatusOK, category, "Category status updated")
}

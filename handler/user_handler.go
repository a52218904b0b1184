package handler

import (
	"assetconsole/models"
	"assetconsole/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	page, size := utils.GetPageAndSize(r)
	users, err := h.Users.ListUsers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.respondStoreError(w, err, "failed to fetch users")
		return
	}
	utils.RespondJSON(w, http.StatusOK, utils.Paginate(users, page, size))
}

// selfOrAdmin returns the target user id when the caller may act on it.
func (h *Handler) selfOrAdmin(w http.ResponseWriter, r *http.Request) (string, models.Role, bool) {
	callerID, role, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "Authentication required")
		return "", "", false
	}
	id := chi.URLParam(r, "id")
	if id != callerID && role != models.AdminRole {
		utils.RespondError(w, http.StatusForbidden, nil, "Insufficient permissions")
		return "", "", false
	}
	return id, role, true
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.selfOrAdmin(w, r)
	if !ok {
		return
	}
	user, err := h.Users.GetUser(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, err, "failed to fetch user")
		return
	}
	utils.RespondData(w, http.StatusOK, user, "ok")
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, role, ok := h.selfOrAdmin(w, r)
	if !ok {
		return
	}
	var req models.UpdateUserReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}
	if req.Role != nil && role != models.AdminRole {
		utils.RespondError(w, http.StatusForbidden, nil, "Only administrators can change roles")
		return
	}

	user, err := h.Users.UpdateUser(r.Context(), id, req)
	if err != nil {
		h.respondStoreError(w, err, "failed to update user")
		return
	}
	utils.RespondData(w, http.StatusOK, user, "User updated successfully")
}

func (h *Handler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.selfOrAdmin(w, r)
	if !ok || !parseMultipart(w, r) {
		return
	}
	if _, err := h.Users.GetUser(r.Context(), id); err != nil {
		h.respondStoreError(w, err, "failed to fetch user")
		return
	}
	imageURL, err := h.saveUpload(r, "imageFile")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid image upload")
		return
	}
	if imageURL == nil {
		utils.RespondError(w, http.StatusBadRequest, errors.New("missing imageFile"), "imageFile is required")
		return
	}

	user, err := h.Users.SetProfileImage(r.Context(), id, imageURL)
	if err != nil {
		h.respondStoreError(w, err, "failed to update profile image")
		return
	}
	utils.RespondData(w, http.StatusOK, user, "Profile image updated")
}

func (h *Handler) DeleteProfileImage(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.selfOrAdmin(w, r)
	if !ok {
		return
	}
	if _, err := h.Users.SetProfileImage(r.Context(), id, nil); err != nil {
		h.respondStoreError(w, err, "failed to delete profile image")
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Profile image deleted")
}

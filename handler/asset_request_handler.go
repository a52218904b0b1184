package handler

import (
	"assetconsole/models"
	"assetconsole/repository"
	"assetconsole/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// decisionStatuses maps the numeric decision codes of the update body.
var decisionStatuses = map[int]models.AssetRequestStatus{
	1: models.RequestApproved,
	2: models.RequestRejected,
}

func (h *Handler) GetMyAssetRequests(w http.ResponseWriter, r *http.Request) {
	userID, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "Authentication required")
		return
	}
	page, size := utils.GetPageAndSize(r)

	requests, err := h.Requests.ListAssetRequests(r.Context(), repository.RequestQuery{
		UserID: userID,
		Status: models.AssetRequestStatus(r.URL.Query().Get("status")),
	})
	if err != nil {
		h.respondStoreError(w, err, "failed to fetch asset requests")
		return
	}
	utils.RespondJSON(w, http.StatusOK, utils.Paginate(requests, page, size))
}

func (h *Handler) GetAssetRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := repository.RequestQuery{
		Status: models.AssetRequestStatus(q.Get("status")),
		Search: q.Get("search"),
	}
	bounds := []struct {
		param string
		dst   **time.Time
	}{
		{"requestedFrom", &query.RequestedFrom},
		{"requestedTo", &query.RequestedTo},
		{"processedFrom", &query.ProcessedFrom},
		{"processedTo", &query.ProcessedTo},
	}
	for _, b := range bounds {
		raw := q.Get(b.param)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, err, "invalid "+b.param)
			return
		}
		*b.dst = &t
	}
	page, size := utils.GetPageAndSize(r)

	requests, err := h.Requests.ListAssetRequests(r.Context(), query)
	if err != nil {
		h.respondStoreError(w, err, "failed to fetch asset requests")
		return
	}
	utils.RespondJSON(w, http.StatusOK, utils.Paginate(requests, page, size))
}

func (h *Handler) CreateAssetRequest(w http.ResponseWriter, r *http.Request) {
	userID, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "Authentication required")
		return
	}
	var req models.CreateAssetRequestReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req, "asset request"); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "assetId is required")
		return
	}

	request, err := h.Requests.CreateAssetRequest(r.Context(), userID, req.AssetID)
	if err != nil {
		h.respondStoreError(w, err, "failed to create asset request")
		return
	}
	h.Logger.Info("asset requested", zap.String("requestID", request.ID), zap.String("assetID", req.AssetID))
	utils.RespondData(w, http.StatusCreated, request, "Asset request submitted")
}

func (h *Handler) UpdateAssetRequest(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "Authentication required")
		return
	}
	var req struct {
		Status int `json:"status"`
	}
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}
	status, ok := decisionStatuses[req.Status]
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, errors.Errorf("status code %d", req.Status), "status must be 1 (Approved) or 2 (Rejected)")
		return
	}

	request, err := h.Requests.DecideAssetRequest(r.Context(), chi.URLParam(r, "id"), adminID, status)
	if err != nil {
		h.respondStoreError(w, err, "failed to update asset request")
		return
	}
	utils.RespondData(w, http.StatusOK, request, "Asset request "+string(status))
}

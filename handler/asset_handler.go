package handler

import (
	"assetconsole/models"
	"assetconsole/repository"
	"assetconsole/utils"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) GetAssets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.AssetFilter{
		Search:   q.Get("search"),
		Status:   models.AssetStatus(q.Get("status")),
		Category: q.Get("category"),
	}
	page, size := utils.GetPageAndSize(r)

	assets, err := h.Assets.ListAssets(r.Context(), filter)
	if err != nil {
		h.respondStoreError(w, err, "failed to fetch assets")
		return
	}
	utils.RespondJSON(w, http.StatusOK, utils.Paginate(assets, page, size))
}

func (h *Handler) GetAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := h.Assets.GetAsset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondStoreError(w, err, "failed to fetch asset")
		return
	}
	utils.RespondData(w, http.StatusOK, asset, "ok")
}

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}
	req := models.CreateAssetReq{
		Name:         r.FormValue("name"),
		CategoryID:   r.FormValue("categoryId"),
		SerialNumber: r.FormValue("serialNumber"),
		PurchaseDate: r.FormValue("purchaseDate"),
	}
	if err := utils.ValidateStruct(req, "asset"); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Name, category, serial number and purchase date are required")
		return
	}

	imageURL, err := h.saveUpload(r, "image")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid image upload")
		return
	}

	asset, err := h.Assets.CreateAsset(r.Context(), repository.AssetInput{
		Name:         req.Name,
		CategoryID:   req.CategoryID,
		SerialNumber: req.SerialNumber,
		PurchaseDate: req.PurchaseDate,
		ImageURL:     imageURL,
	})
	if err != nil {
		h.respondStoreError(w, err, "failed to add asset")
		return
	}
	h.Logger.Info("asset created", zap.String("assetID", asset.ID))
	utils.RespondData(w, http.StatusCreated, asset, "Asset created successfully")
}

func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}
	imageURL, err := h.saveUpload(r, "image")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid image upload")
		return
	}

	asset, err := h.Assets.UpdateAsset(r.Context(), chi.URLParam(r, "id"), repository.AssetPatch{
		Name:         formValue(r, "name"),
		CategoryID:   formValue(r, "categoryId"),
		SerialNumber: formValue(r, "serialNumber"),
		PurchaseDate: formValue(r, "purchaseDate"),
		ImageURL:     imageURL,
	})
	if err != nil {
		h.respondStoreError(w, err, "failed to update asset")
		return
	}
	utils.RespondData(w, http.StatusOK, asset, "Asset updated successfully")
}

func (h *Handler) UpdateAssetStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAssetStatusReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req, "asset status"); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Unknown asset status")
		return
	}

	asset, err := h.Assets.UpdateAssetStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.respondStoreError(w, err, "failed to update asset status")
		return
	}
	utils.RespondData(w, http.StatusOK, asset, "Asset status updated")
}

func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Assets.DeleteAsset(r.Context(), id); err != nil {
		h.respondStoreError(w, err, "failed to delete asset")
		return
	}
	h.Logger.Info("asset deleted", zap.String("assetID", id))
	utils.RespondMessage(w, http.StatusOK, "Asset deleted successfully")
}

// GetImage serves an uploaded asset or profile image.
func (h *Handler) GetImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.Images.GetImage(chi.URLParam(r, "name"))
	if err != nil {
		h.respondStoreError(w, err, "failed to fetch image")
		return
	}
	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}

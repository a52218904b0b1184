package handler

import (
	"assetconsole/models"
	"assetconsole/providers"
	"assetconsole/repository"
	"assetconsole/serviceprovider/auth"
	"assetconsole/utils"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const maxUploadSize = 10 << 20

// ImageStore keeps uploaded files.
type ImageStore interface {
	SaveImage(fileName, contentType string, data []byte) string
	GetImage(key string) (repository.Image, error)
}

type Handler struct {
	Users          repository.UserRepository
	Categories     repository.CategoryRepository
	Assets         repository.AssetRepository
	Requests       repository.AssetRequestRepository
	Images         ImageStore
	JWT            auth.JWTService
	AuthMiddleware providers.AuthMiddlewareService
	Logins         *LoginThrottle
	Logger         *zap.Logger
}

func NewHandler(store *repository.Store, jwt auth.JWTService, mw providers.AuthMiddlewareService, logger *zap.Logger) *Handler {
	return &Handler{
		Users:          store,
		Categories:     store,
		Assets:         store,
		Requests:       store,
		Images:         store,
		JWT:            jwt,
		AuthMiddleware: mw,
		Logins:         NewLoginThrottle(loginFailureRefill, loginFailureBurst),
		Logger:         logger,
	}
}

// respondStoreError maps repository error kinds to status codes.
func (h *Handler) respondStoreError(w http.ResponseWriter, err error, fallback string) {
	var storeErr *repository.StoreError
	if !errors.As(err, &storeErr) {
		h.Logger.Error(fallback, zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, err, fallback)
		return
	}
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, repository.ErrInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrUnauthorized):
		status = http.StatusUnauthorized
	}
	utils.RespondError(w, status, nil, storeErr.Message)
}

// currentUser resolves the caller from the token claims.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	userID, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "Authentication required")
		return models.User{}, false
	}
	user, err := h.Users.GetUser(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "User no longer exists")
		return models.User{}, false
	}
	return user, true
}

// formValue returns a multipart field, or nil when the field was not sent.
func formValue(r *http.Request, name string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[name]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

// saveUpload stores the named file part. It returns nil when the part is absent.
func (h *Handler) saveUpload(r *http.Request, field string) (*string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", field)
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	key := h.Images.SaveImage(header.Filename, contentType, data)
	return &key, nil
}

func parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Expected multipart form data")
		return false
	}
	return true
}

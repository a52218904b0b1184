package utils

import (
	"assetconsole/models"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 1000
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("failed to serialize response", zap.Error(err))
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(response)
}

// RespondData writes a single-item success envelope.
func RespondData(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	RespondJSON(w, statusCode, map[string]interface{}{
		"data":    data,
		"message": message,
		"success": true,
	})
}

// RespondMessage writes a success envelope without data.
func RespondMessage(w http.ResponseWriter, statusCode int, message string) {
	RespondJSON(w, statusCode, map[string]interface{}{
		"message": message,
		"success": true,
	})
}

func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil {
		zap.L().Warn(message, zap.Int("status", statusCode), zap.Error(err))
	}
	RespondJSON(w, statusCode, map[string]interface{}{
		"message": message,
		"success": false,
	})
}

// GetPageAndSize reads page and pageSize, falling back to the defaults on
// missing or invalid values.
func GetPageAndSize(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = DefaultPage
	}
	size, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

// Paginate cuts one page out of items. Page numbers start at 1.
func Paginate[T any](items []T, page, size int) models.PaginatedResponse[T] {
	total := len(items)
	res := models.PaginatedResponse[T]{
		Data:       []T{},
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: (total + size - 1) / size,
	}
	start := (page - 1) * size
	if start >= total {
		return res
	}
	end := start + size
	if end > total {
		end = total
	}
	res.Data = items[start:end]
	return res
}

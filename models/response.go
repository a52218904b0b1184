package models

// ApiResponse wraps every single-item response. Data is nil on pure actions and errors.
type ApiResponse[T any] struct {
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// PaginatedResponse wraps every list response.
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

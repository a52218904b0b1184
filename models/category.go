package models

type CategoryStatus string

const (
	CategoryActive   CategoryStatus = "ACTIVE"
	CategoryInactive CategoryStatus = "INACTIVE"
)

type Category struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Status      CategoryStatus `json:"status"`
	AssetsCount *int           `json:"assetsCount,omitempty"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

type CreateCategoryReq struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdateCategoryReq struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CategoryFilter struct {
	Page     int
	PageSize int
	Search   string
	Status   CategoryStatus
}

// CategoryStats summarises a list of categories for the category screen.
type CategoryStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Inactive    int `json:"inactive"`
	TotalAssets int `json:"totalAssets"`
}

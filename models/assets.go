package models

import "io"

type AssetStatus string

const (
	AssetAvailable   AssetStatus = "Available"
	AssetAssigned    AssetStatus = "Assigned"
	AssetMaintenance AssetStatus = "Maintenance"
	AssetRetired     AssetStatus = "Retired"
)

type Asset struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	CategoryID   string      `json:"categoryId"`
	Category     Category    `json:"category"`
	SerialNumber string      `json:"serialNumber"`
	PurchaseDate string      `json:"purchaseDate"`
	Status       AssetStatus `json:"status"`
	AssignedToID *string     `json:"assignedToId,omitempty"`
	AssignedTo   *User       `json:"assignedTo,omitempty"`
	AssignedAt   *string     `json:"assignedAt,omitempty"`
	ImageURL     *string     `json:"imageUrl,omitempty"`
	CreatedAt    string      `json:"createdAt"`
	UpdatedAt    string      `json:"updatedAt"`
}

// ImageFile is a binary upload sent as a multipart file part.
type ImageFile struct {
	Name        string
	ContentType string
	Data        io.Reader
}

// CreateAssetReq is sent as multipart form data.
type CreateAssetReq struct {
	Name         string `validate:"required"`
	CategoryID   string `validate:"required"`
	SerialNumber string `validate:"required"`
	PurchaseDate string `validate:"required"`
	Image        *ImageFile
}

// UpdateAssetReq is a partial multipart update; nil fields are omitted from the form.
type UpdateAssetReq struct {
	Name         *string
	CategoryID   *string
	SerialNumber *string
	PurchaseDate *string
	Image        *ImageFile
}

func (r UpdateAssetReq) IsEmpty() bool {
	return r.Name == nil && r.CategoryID == nil && r.SerialNumber == nil && r.PurchaseDate == nil && r.Image == nil
}

type UpdateAssetStatusReq struct {
	Status AssetStatus `json:"status" validate:"required,oneof=Available Assigned Maintenance Retired"`
}

type AssetFilter struct {
	Page     int
	PageSize int
	Search   string
	Status   AssetStatus
	Category string
}

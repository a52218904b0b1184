package models

import "time"

type AssetRequestStatus string

const (
	RequestPending  AssetRequestStatus = "Pending"
	RequestApproved AssetRequestStatus = "Approved"
	RequestRejected AssetRequestStatus = "Rejected"
)

type AssetRequest struct {
	ID            string             `json:"id"`
	AssetID       string             `json:"assetId"`
	UserID        string             `json:"userId"`
	Status        AssetRequestStatus `json:"status"`
	RequestedAt   string             `json:"requestedAt"`
	ProcessedAt   *string            `json:"processedAt,omitempty"`
	ProcessedByID *string            `json:"processedById,omitempty"`
	ProcessedBy   *User              `json:"processedBy,omitempty"`
	Asset         Asset              `json:"asset"`
	User          User               `json:"user"`
}

type CreateAssetRequestReq struct {
	AssetID string `json:"assetId" validate:"required"`
}

type UpdateAssetRequestReq struct {
	Status AssetRequestStatus `json:"status"`
}

// AssetRequestFilter filters the signed-in user's own requests.
type AssetRequestFilter struct {
	Page     int
	PageSize int
	Status   AssetRequestStatus
}

// AdminAssetRequestFilter filters requests across all users.
type AdminAssetRequestFilter struct {
	Page          int
	PageSize      int
	Status        AssetRequestStatus
	Search        string
	RequestedFrom *time.Time
	RequestedTo   *time.Time
	ProcessedFrom *time.Time
	ProcessedTo   *time.Time
}

package models

type DashboardSummary struct {
	TotalAssets      int            `json:"totalAssets"`
	AvailableAssets  int            `json:"availableAssets"`
	AssignedAssets   int            `json:"assignedAssets"`
	PendingRequests  int            `json:"pendingRequests"`
	ApprovedRequests int            `json:"approvedRequests"`
	RecentRequests   []AssetRequest `json:"recentRequests"`
	RecentAssets     []Asset        `json:"recentAssets"`
}

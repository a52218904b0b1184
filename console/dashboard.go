package console

import (
	"assetconsole/models"
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

const (
	dashboardPageSize = 100
	recentLimit       = 5
)

// Dashboard summarises the first page of assets and requests. Admins see every
// request, other users their own.
func (c *Console) Dashboard(ctx context.Context) (models.DashboardSummary, error) {
	admin, err := c.IsAdmin(ctx)
	if err != nil {
		return models.DashboardSummary{}, err
	}

	var (
		assets   models.PaginatedResponse[models.Asset]
		requests models.PaginatedResponse[models.AssetRequest]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assets, err = c.Assets(gctx, models.AssetFilter{PageSize: dashboardPageSize})
		return err
	})
	g.Go(func() error {
		var err error
		if admin {
			requests, err = c.AssetRequests(gctx, models.AdminAssetRequestFilter{PageSize: dashboardPageSize})
		} else {
			requests, err = c.MyAssetRequests(gctx, models.AssetRequestFilter{PageSize: dashboardPageSize})
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return models.DashboardSummary{}, err
	}
	return Summarize(assets.Data, requests.Data), nil
}

// Summarize counts assets and requests by status and picks the most recent of each.
func Summarize(assets []models.Asset, requests []models.AssetRequest) models.DashboardSummary {
	summary := models.DashboardSummary{TotalAssets: len(assets)}
	for _, a := range assets {
		switch a.Status {
		case models.AssetAvailable:
			summary.AvailableAssets++
		case models.AssetAssigned:
			summary.AssignedAssets++
		}
	}
	for _, r := range requests {
		switch r.Status {
		case models.RequestPending:
			summary.PendingRequests++
		case models.RequestApproved:
			summary.ApprovedRequests++
		}
	}

	recentRequests := append([]models.AssetRequest(nil), requests...)
	sort.SliceStable(recentRequests, func(i, j int) bool {
		return models.ParseTimestamp(recentRequests[i].RequestedAt).After(models.ParseTimestamp(recentRequests[j].RequestedAt))
	})
	summary.RecentRequests = head(recentRequests, recentLimit)

	recentAssets := append([]models.Asset(nil), assets...)
	sort.SliceStable(recentAssets, func(i, j int) bool {
		return models.ParseTimestamp(recentAssets[i].CreatedAt).After(models.ParseTimestamp(recentAssets[j].CreatedAt))
	})
	summary.RecentAssets = head(recentAssets, recentLimit)
	return summary
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	if items == nil {
		return []T{}
	}
	return items
}

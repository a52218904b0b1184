package console

import (
	"assetconsole/apiclient"
	"assetconsole/models"
	"assetconsole/providers"
	sessionprovider "assetconsole/providers/sessionProvider"
	"assetconsole/querycache"
	"assetconsole/repository"
	"assetconsole/server"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newBackendConsole(t *testing.T) *Console {
	t.Helper()
	ctrl := gomock.NewController(t)
	cfg := providers.NewMockConfigProvider(ctrl)
	cfg.EXPECT().GetJWTSecret().Return("console-secret").AnyTimes()
	cfg.EXPECT().GetAdminEmail().Return("admin@example.com").AnyTimes()
	cfg.EXPECT().GetAdminPassword().Return("admin123").AnyTimes()
	logger := providers.NewMockZapLoggerProvider(ctrl)
	logger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	srv, err := server.ServerInit(cfg, logger, repository.WithHashCost(bcrypt.MinCost))
	assert.NoError(t, err)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	store := sessionprovider.NewMemoryStore()
	client := apiclient.NewClient(ts.URL+"/api", store, zap.NewNop())
	return New(client, store, querycache.New(time.Minute, nil), zap.NewNop())
}

func TestDashboardAndCategoryScreenAgainstBackend(t *testing.T) {
	ctx := context.Background()
	c := newBackendConsole(t)

	admin, err := c.Login(ctx, models.LoginReq{Email: "admin@example.com", Password: "admin123"})
	assert.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	laptops, err := c.CreateCategory(ctx, models.CreateCategoryReq{Name: "Laptops", Description: "Portable computers"})
	assert.NoError(t, err)
	_, err = c.CreateCategory(ctx, models.CreateCategoryReq{Name: "Monitors", Description: "Displays"})
	assert.NoError(t, err)

	empty, err := c.Dashboard(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, empty.TotalAssets)

	for _, serial := range []string{"SN-1", "SN-2"} {
		_, err := c.CreateAsset(ctx, models.CreateAssetReq{Name: "ThinkPad " + serial, CategoryID: laptops.ID, SerialNumber: serial, PurchaseDate: "2024-01-01"})
		assert.NoError(t, err)
	}
	assets, err := c.Assets(ctx, models.AssetFilter{PageSize: 10})
	assert.NoError(t, err)
	request, err := c.RequestAsset(ctx, assets.Data[0].ID)
	assert.NoError(t, err)

	summary, err := c.Dashboard(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalAssets)
	assert.Equal(t, 2, summary.AvailableAssets)
	assert.Equal(t, 1, summary.PendingRequests)

	_, err = c.ApproveAssetRequest(ctx, request.ID)
	assert.NoError(t, err)
	summary, err = c.Dashboard(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.AssignedAssets)
	assert.Equal(t, 1, summary.ApprovedRequests)

	screen, err := c.BrowseCategories(ctx, "", "", 1)
	assert.NoError(t, err)
	assert.Equal(t, models.CategoryStats{Total: 2, Active: 2, TotalAssets: 2}, screen.Stats)
	assert.Equal(t, 1, screen.TotalPages)

	_, err = c.ToggleCategoryStatus(ctx, laptops.ID)
	assert.NoError(t, err)
	screen, err = c.BrowseCategories(ctx, "portable", models.CategoryInactive, 1)
	assert.NoError(t, err)
	assert.Len(t, screen.Categories, 1)
	assert.Equal(t, "Laptops", screen.Categories[0].Name)

	assert.NoError(t, c.Logout(ctx))
	_, err = c.Dashboard(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

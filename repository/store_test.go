package repository

import (
	"assetconsole/models"
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore() *Store {
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return NewStore(WithHashCost(bcrypt.MinCost), WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))
}

func seedAsset(t *testing.T, s *Store) (models.User, models.User, models.Asset) {
	t.Helper()
	ctx := context.Background()
	admin, err := s.CreateUser(ctx, models.RegisterReq{Email: "admin@example.com", Password: "pw", FirstName: "Ada", LastName: "Admin"}, models.AdminRole)
	assert.NoError(t, err)
	user, err := s.CreateUser(ctx, models.RegisterReq{Email: "jane@example.com", Password: "pw", FirstName: "Jane", LastName: "Doe"}, models.UserRole)
	assert.NoError(t, err)
	category, err := s.CreateCategory(ctx, models.CreateCategoryReq{Name: "Laptops", Description: "Portable computers"})
	assert.NoError(t, err)
	asset, err := s.CreateAsset(ctx, AssetInput{Name: "MacBook", CategoryID: category.ID, SerialNumber: "SN-1", PurchaseDate: "2024-01-01"})
	assert.NoError(t, err)
	return admin, user, asset
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore()
	_, _, _ = seedAsset(t, s)

	testCases := []struct {
		name      string
		email     string
		password  string
		expectErr bool
	}{
		{name: "valid", email: "jane@example.com", password: "pw"},
		{name: "email case-insensitive", email: "JANE@example.com", password: "pw"},
		{name: "wrong password", email: "jane@example.com", password: "nope", expectErr: true},
		{name: "unknown email", email: "who@example.com", password: "pw", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := s.Authenticate(context.Background(), tc.email, tc.password)
			if tc.expectErr {
				assert.True(t, errors.Is(err, ErrUnauthorized))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "Jane", user.FirstName)
		})
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := newTestStore()
	_, _, _ = seedAsset(t, s)

	_, err := s.CreateUser(context.Background(), models.RegisterReq{Email: "Jane@Example.com", Password: "x"}, models.UserRole)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "Email is already registered", err.Error())
}

func TestApproveAssignsAsset(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	admin, user, asset := seedAsset(t, s)

	req, err := s.CreateAssetRequest(ctx, user.ID, asset.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.RequestPending, req.Status)
	assert.Equal(t, "MacBook", req.Asset.Name)
	assert.Equal(t, "jane@example.com", req.User.Email)

	_, err = s.CreateAssetRequest(ctx, user.ID, asset.ID)
	assert.True(t, errors.Is(err, ErrConflict))

	approved, err := s.DecideAssetRequest(ctx, req.ID, admin.ID, models.RequestApproved)
	assert.NoError(t, err)
	assert.Equal(t, models.RequestApproved, approved.Status)
	assert.Equal(t, admin.ID, approved.ProcessedBy.ID)
	assert.NotNil(t, approved.ProcessedAt)

	got, _ := s.GetAsset(ctx, asset.ID)
	assert.Equal(t, models.AssetAssigned, got.Status)
	assert.Equal(t, user.ID, got.AssignedTo.ID)

	_, err = s.DecideAssetRequest(ctx, req.ID, admin.ID, models.RequestRejected)
	assert.True(t, errors.Is(err, ErrConflict))

	_, err = s.CreateAssetRequest(ctx, admin.ID, asset.ID)
	assert.True(t, errors.Is(err, ErrConflict))

	released, err := s.UpdateAssetStatus(ctx, asset.ID, models.AssetAvailable)
	assert.NoError(t, err)
	assert.Nil(t, released.AssignedTo)
}

func TestListAssetRequestsFilters(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	admin, user, asset := seedAsset(t, s)
	first, _ := s.CreateAssetRequest(ctx, user.ID, asset.ID)
	_, _ = s.DecideAssetRequest(ctx, first.ID, admin.ID, models.RequestRejected)
	second, _ := s.CreateAssetRequest(ctx, user.ID, asset.ID)

	processedFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name        string
		query       RequestQuery
		expectedIDs []string
	}{
		{name: "all newest first", query: RequestQuery{}, expectedIDs: []string{second.ID, first.ID}},
		{name: "mine", query: RequestQuery{UserID: admin.ID}, expectedIDs: []string{}},
		{name: "pending", query: RequestQuery{Status: models.RequestPending}, expectedIDs: []string{second.ID}},
		{name: "search by serial", query: RequestQuery{Search: "sn-1"}, expectedIDs: []string{second.ID, first.ID}},
		{name: "search by user", query: RequestQuery{Search: "doe"}, expectedIDs: []string{second.ID, first.ID}},
		{name: "processed only", query: RequestQuery{ProcessedFrom: &processedFrom}, expectedIDs: []string{first.ID}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			requests, err := s.ListAssetRequests(ctx, tc.query)
			assert.NoError(t, err)
			ids := []string{}
			for _, r := range requests {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestCategoryLifecycle(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	_, _, asset := seedAsset(t, s)

	category, err := s.GetCategory(ctx, asset.CategoryID)
	assert.NoError(t, err)
	assert.Equal(t, 1, *category.AssetsCount)

	err = s.DeleteCategory(ctx, category.ID)
	assert.True(t, errors.Is(err, ErrConflict))

	toggled, err := s.ToggleCategoryStatus(ctx, category.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.CategoryInactive, toggled.Status)

	active, _ := s.ListCategories(ctx, "", models.CategoryActive)
	assert.Empty(t, active)

	_, err = s.CreateCategory(ctx, models.CreateCategoryReq{Name: "laptops", Description: "dup"})
	assert.True(t, errors.Is(err, ErrConflict))

	assert.NoError(t, s.DeleteAsset(ctx, asset.ID))
	assert.NoError(t, s.DeleteCategory(ctx, category.ID))
	_, err = s.GetCategory(ctx, category.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateAssetPatch(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	_, _, asset := seedAsset(t, s)

	name := "MacBook Pro"
	updated, err := s.UpdateAsset(ctx, asset.ID, AssetPatch{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "MacBook Pro", updated.Name)
	assert.Equal(t, "SN-1", updated.SerialNumber)
	assert.Equal(t, "Laptops", updated.Category.Name)

	missing := "nope"
	_, err = s.UpdateAsset(ctx, asset.ID, AssetPatch{CategoryID: &missing})
	assert.True(t, errors.Is(err, ErrInvalid))

	_, err = s.UpdateAssetStatus(ctx, asset.ID, models.AssetAssigned)
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestImages(t *testing.T) {
	s := newTestStore()
	key := s.SaveImage("Photo.PNG", "image/png", []byte("PNG"))
	assert.Contains(t, key, ".png")

	img, err := s.GetImage(key)
	assert.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)

	_, err = s.GetImage("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

package console

import (
	"assetconsole/models"
	"assetconsole/querycache"
	"context"
)

func (c *Console) Assets(ctx context.Context, filter models.AssetFilter) (models.PaginatedResponse[models.Asset], error) {
	return cached(ctx, c, querycache.NewKey(FamilyAssets, filter), func(ctx context.Context) (models.PaginatedResponse[models.Asset], error) {
		return c.assets.GetAssets(ctx, filter)
	})
}

func (c *Console) Asset(ctx context.Context, id string) (*models.Asset, error) {
	return cached(ctx, c, querycache.NewKey(FamilyAsset, id), func(ctx context.Context) (*models.Asset, error) {
		return c.assets.GetAsset(ctx, id)
	})
}

func (c *Console) CreateAsset(ctx context.Context, req models.CreateAssetReq) (*models.Asset, error) {
	asset, err := c.assets.CreateAsset(ctx, req)
	return asset, c.mutated(err, FamilyAssets, FamilyAsset, FamilyCategories, FamilyCategory)
}

func (c *Console) UpdateAsset(ctx context.Context, id string, req models.UpdateAssetReq) (*models.Asset, error) {
	asset, err := c.assets.UpdateAsset(ctx, id, req)
	return asset, c.mutated(err, FamilyAssets, FamilyAsset, FamilyCategories, FamilyCategory)
}

func (c *Console) UpdateAssetStatus(ctx context.Context, id string, status models.AssetStatus) (*models.Asset, error) {
	asset, err := c.assets.UpdateAssetStatus(ctx, id, models.UpdateAssetStatusReq{Status: status})
	return asset, c.mutated(err, FamilyAssets, FamilyAsset, FamilyAssetRequests, FamilyAdminAssetRequests)
}

func (c *Console) DeleteAsset(ctx context.Context, id string) error {
	err := c.assets.DeleteAsset(ctx, id)
	return c.mutated(err, FamilyAssets, FamilyAsset, FamilyCategories, FamilyCategory, FamilyAssetRequests, FamilyAdminAssetRequests)
}

func (c *Console) MyAssetRequests(ctx context.Context, filter models.AssetRequestFilter) (models.PaginatedResponse[models.AssetRequest], error) {
	return cached(ctx, c, querycache.NewKey(FamilyAssetRequests, filter), func(ctx context.Context) (models.PaginatedResponse[models.AssetRequest], error) {
		return c.requests.GetMyAssetRequests(ctx, filter)
	})
}

func (c *Console) AssetRequests(ctx context.Context, filter models.AdminAssetRequestFilter) (models.PaginatedResponse[models.AssetRequest], error) {
	return cached(ctx, c, querycache.NewKey(FamilyAdminAssetRequests, filter), func(ctx context.Context) (models.PaginatedResponse[models.AssetRequest], error) {
		return c.requests.GetAssetRequests(ctx, filter)
	})
}

func (c *Console) RequestAsset(ctx context.Context, assetID string) (*models.AssetRequest, error) {
	request, err := c.requests.CreateAssetRequest(ctx, models.CreateAssetRequestReq{AssetID: assetID})
	return request, c.mutated(err, FamilyAssetRequests, FamilyAdminAssetRequests)
}

// DecideAssetRequest approves or rejects a request. Approval changes the asset too.
func (c *Console) DecideAssetRequest(ctx context.Context, id string, status models.AssetRequestStatus) (*models.AssetRequest, error) {
	request, err := c.requests.UpdateAssetRequest(ctx, id, models.UpdateAssetRequestReq{Status: status})
	return request, c.mutated(err, FamilyAssetRequests, FamilyAdminAssetRequests, FamilyAssets, FamilyAsset)
}

func (c *Console) ApproveAssetRequest(ctx context.Context, id string) (*models.AssetRequest, error) {
	return c.DecideAssetRequest(ctx, id, models.RequestApproved)
}

func (c *Console) RejectAssetRequest(ctx context.Context, id string) (*models.AssetRequest, error) {
	return c.DecideAssetRequest(ctx, id, models.RequestRejected)
}

func (c *Console) Users(ctx context.Context, filter models.UserFilter) (models.PaginatedResponse[models.User], error) {
	return cached(ctx, c, querycache.NewKey(FamilyUsers, filter), func(ctx context.Context) (models.PaginatedResponse[models.User], error) {
		return c.users.GetUsers(ctx, filter)
	})
}

func (c *Console) User(ctx context.Context, id string) (*models.User, error) {
	return cached(ctx, c, querycache.NewKey(FamilyUser, id), func(ctx context.Context) (*models.User, error) {
		return c.users.GetUser(ctx, id)
	})
}

func (c *Console) UpdateUser(ctx context.Context, id string, req models.UpdateUserReq) (*models.User, error) {
	user, err := c.users.UpdateUser(ctx, id, req)
	return user, c.userMutated(ctx, user, err)
}

func (c *Console) UploadProfileImage(ctx context.Context, id string, image models.ImageFile) (*models.User, error) {
	user, err := c.users.UploadProfileImage(ctx, id, image)
	return user, c.userMutated(ctx, user, err)
}

func (c *Console) DeleteProfileImage(ctx context.Context, id string) error {
	if err := c.mutated(c.users.DeleteProfileImage(ctx, id), FamilyUsers, FamilyUser, FamilyCurrentUser); err != nil {
		return err
	}
	current, err := c.store.CurrentUser(ctx)
	if err == nil && current != nil && current.ID == id {
		current.ProfileImageURL = nil
		c.refreshStoredUser(ctx, current)
	}
	return nil
}

func (c *Console) userMutated(ctx context.Context, user *models.User, err error) error {
	if err := c.mutated(err, FamilyUsers, FamilyUser, FamilyCurrentUser, FamilyAssets, FamilyAsset, FamilyAssetRequests, FamilyAdminAssetRequests); err != nil {
		return err
	}
	c.refreshStoredUser(ctx, user)
	return nil
}

func (c *Console) Categories(ctx context.Context, filter models.CategoryFilter) (models.PaginatedResponse[models.Category], error) {
	return cached(ctx, c, querycache.NewKey(FamilyCategories, "paged", filter), func(ctx context.Context) (models.PaginatedResponse[models.Category], error) {
		return c.categories.GetCategories(ctx, filter)
	})
}

func (c *Console) AllCategories(ctx context.Context, filter models.CategoryFilter) (models.PaginatedResponse[models.Category], error) {
	return cached(ctx, c, querycache.NewKey(FamilyCategories, "all", filter), func(ctx context.Context) (models.PaginatedResponse[models.Category], error) {
		return c.categories.GetAllCategories(ctx, filter)
	})
}

func (c *Console) Category(ctx context.Context, id string) (*models.Category, error) {
	return cached(ctx, c, querycache.NewKey(FamilyCategory, id), func(ctx context.Context) (*models.Category, error) {
		return c.categories.GetCategory(ctx, id)
	})
}

func (c *Console) CreateCategory(ctx context.Context, req models.CreateCategoryReq) (*models.Category, error) {
	category, err := c.categories.CreateCategory(ctx, req)
	return category, c.mutated(err, FamilyCategories, FamilyCategory, FamilyAssets, FamilyAsset)
}

func (c *Console) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryReq) (*models.Category, error) {
	category, err := c.categories.UpdateCategory(ctx, id, req)
	return category, c.mutated(err, FamilyCategories, FamilyCategory, FamilyAssets, FamilyAsset)
}

func (c *Console) DeleteCategory(ctx context.Context, id string) error {
	err := c.categories.DeleteCategory(ctx, id)
	return c.mutated(err, FamilyCategories, FamilyCategory, FamilyAssets, FamilyAsset)
}

func (c *Console) ToggleCategoryStatus(ctx context.Context, id string) (*models.Category, error) {
	category, err := c.categories.UpdateCategoryStatus(ctx, id)
	return category, c.mutated(err, FamilyCategories, FamilyCategory, FamilyAssets, FamilyAsset)
}

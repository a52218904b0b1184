package assetservice

import (
	"assetconsole/apiclient"
	"assetconsole/models"
	"assetconsole/utils"
	"context"
	"net/http"
)

type AssetService interface {
	GetAssets(ctx context.Context, filter models.AssetFilter) (models.PaginatedResponse[models.Asset], error)
	GetAsset(ctx context.Context, id string) (*models.Asset, error)
	CreateAsset(ctx context.Context, req models.CreateAssetReq) (*models.Asset, error)
	UpdateAsset(ctx context.Context, id string, req models.UpdateAssetReq) (*models.Asset, error)
	UpdateAssetStatus(ctx context.Context, id string, req models.UpdateAssetStatusReq) (*models.Asset, error)
	DeleteAsset(ctx context.Context, id string) error
}

type assetService struct {
	client *apiclient.Client
}

func NewAssetService(client *apiclient.Client) AssetService {
	return &assetService{client: client}
}

func assetPath(id string) string {
	return "/assets/" + apiclient.PathEscape(id)
}

func (s *assetService) GetAssets(ctx context.Context, filter models.AssetFilter) (models.PaginatedResponse[models.Asset], error) {
	query := apiclient.NewQuery().
		Int("page", filter.Page).
		Int("pageSize", filter.PageSize).
		String("search", filter.Search).
		String("status", string(filter.Status)).
		String("category", filter.Category)
	return apiclient.Page[models.Asset](ctx, s.client, "/assets", query.Values())
}

func (s *assetService) GetAsset(ctx context.Context, id string) (*models.Asset, error) {
	return apiclient.Single[models.Asset](ctx, s.client, http.MethodGet, assetPath(id), nil)
}

func (s *assetService) CreateAsset(ctx context.Context, req models.CreateAssetReq) (*models.Asset, error) {
	if err := utils.ValidateStruct(req, "asset"); err != nil {
		return nil, err
	}
	form := apiclient.NewForm().
		Field("name", req.Name).
		Field("categoryId", req.CategoryID).
		Field("serialNumber", req.SerialNumber).
		Field("purchaseDate", req.PurchaseDate).
		File("image", req.Image)
	return apiclient.Single[models.Asset](ctx, s.client, http.MethodPost, "/assets", form)
}

func (s *assetService) UpdateAsset(ctx context.Context, id string, req models.UpdateAssetReq) (*models.Asset, error) {
	form := apiclient.NewForm().
		OptionalField("name", req.Name).
		OptionalField("categoryId", req.CategoryID).
		OptionalField("serialNumber", req.SerialNumber).
		OptionalField("purchaseDate", req.PurchaseDate).
		File("image", req.Image)
	return apiclient.Single[models.Asset](ctx, s.client, http.MethodPut, assetPath(id), form)
}

func (s *assetService) UpdateAssetStatus(ctx context.Context, id string, req models.UpdateAssetStatusReq) (*models.Asset, error) {
	return apiclient.Single[models.Asset](ctx, s.client, http.MethodPatch, assetPath(id)+"/status", apiclient.JSON(req))
}

func (s *assetService) DeleteAsset(ctx context.Context, id string) error {
	return apiclient.Action(ctx, s.client, http.MethodDelete, assetPath(id), nil)
}

package categoryservice

import (
	"assetconsole/apiclient"
	"assetconsole/models"
	"assetconsole/utils"
	"context"
	"net/http"
)

type CategoryService interface {
	GetCategories(ctx context.Context, filter models.CategoryFilter) (models.PaginatedResponse[models.Category], error)
	GetAllCategories(ctx context.Context, filter models.CategoryFilter) (models.PaginatedResponse[models.Category], error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, req models.CreateCategoryReq) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryReq) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	UpdateCategoryStatus(ctx context.Context, id string) (*models.Category, error)
}

type categoryService struct {
	client *apiclient.Client
}

func NewCategoryService(client *apiclient.Client) CategoryService {
	return &categoryService{client: client}
}

func categoryPath(id string) string {
	return "/categories/" + apiclient.PathEscape(id)
}

func categoryQuery(filter models.CategoryFilter) *apiclient.Query {
	return apiclient.NewQuery().
		Int("page", filter.Page).
		Int("pageSize", filter.PageSize).
		String("search", filter.Search).
		String("status", string(filter.Status))
}

func (s *categoryService) GetCategories(ctx context.Context, filter models.CategoryFilter) (models.PaginatedResponse[models.Category], error) {
	return apiclient.Page[models.Category](ctx, s.client, "/categories", categoryQuery(filter).Values())
}

// GetAllCategories is the admin listing that includes inactive categories.
func (s *categoryService) GetAllCategories(ctx context.Context, filter models.CategoryFilter) (models.PaginatedResponse[models.Category], error) {
	return apiclient.Page[models.Category](ctx, s.client, "/categories/all", categoryQuery(filter).Values())
}

func (s *categoryService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	return apiclient.Single[models.Category](ctx, s.client, http.MethodGet, categoryPath(id), nil)
}

func (s *categoryService) CreateCategory(ctx context.Context, req models.CreateCategoryReq) (*models.Category, error) {
	if err := utils.ValidateStruct(req, "category"); err != nil {
		return nil, err
	}
	return apiclient.Single[models.Category](ctx, s.client, http.MethodPost, "/categories", apiclient.JSON(req))
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryReq) (*models.Category, error) {
	return apiclient.Single[models.Category](ctx, s.client, http.MethodPut, categoryPath(id), apiclient.JSON(req))
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	return apiclient.Action(ctx, s.client, http.MethodDelete, categoryPath(id), nil)
}

// UpdateCategoryStatus flips ACTIVE/INACTIVE. The request has no body.
func (s *categoryService) UpdateCategoryStatus(ctx context.Context, id string) (*models.Category, error) {
	return apiclient.Single[models.Category](ctx, s.client, http.MethodPatch, categoryPath(id)+"/status", nil)
}

package userservice

import (
	"assetconsole/apiclient"
	"assetconsole/models"
	"context"
	"errors"
	"net/http"
)

var ErrMissingImage = errors.New("profile image file is required")

type UserService interface {
	GetUsers(ctx context.Context, filter models.UserFilter) (models.PaginatedResponse[models.User], error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserReq) (*models.User, error)
	UploadProfileImage(ctx context.Context, id string, image models.ImageFile) (*models.User, error)
	DeleteProfileImage(ctx context.Context, id string) error
}

type userService struct {
	client *apiclient.Client
}

func NewUserService(client *apiclient.Client) UserService {
	return &userService{client: client}
}

func userPath(id string) string {
	return "/users/" + apiclient.PathEscape(id)
}

func (s *userService) GetUsers(ctx context.Context, filter models.UserFilter) (models.PaginatedResponse[models.User], error) {
	query := apiclient.NewQuery().
		Int("page", filter.Page).
		Int("pageSize", filter.PageSize).
		String("search", filter.Search)
	return apiclient.Page[models.User](ctx, s.client, "/users", query.Values())
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return apiclient.Single[models.User](ctx, s.client, http.MethodGet, userPath(id), nil)
}

func (s *userService) UpdateUser(ctx context.Context, id string, req models.UpdateUserReq) (*models.User, error) {
	return apiclient.Single[models.User](ctx, s.client, http.MethodPut, userPath(id), apiclient.JSON(req))
}

func (s *userService) UploadProfileImage(ctx context.Context, id string, image models.ImageFile) (*models.User, error) {
	if image.Data == nil {
		return nil, ErrMissingImage
	}
	form := apiclient.NewForm().File("imageFile", &image)
	return apiclient.Single[models.User](ctx, s.client, http.MethodPost, userPath(id)+"/profile-image", form)
}

func (s *userService) DeleteProfileImage(ctx context.Context, id string) error {
	return apiclient.Action(ctx, s.client, http.MethodDelete, userPath(id)+"/profile-image", nil)
}

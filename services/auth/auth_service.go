package authservice

import (
	"assetconsole/apiclient"
	"assetconsole/models"
	"assetconsole/utils"
	"context"
	"net/http"
)

type AuthService interface {
	Login(ctx context.Context, req models.LoginReq) (*models.AuthRes, error)
	Register(ctx context.Context, req models.RegisterReq) (*models.AuthRes, error)
	GetCurrentUser(ctx context.Context) (*models.User, error)
}

type authService struct {
	client *apiclient.Client
}

func NewAuthService(client *apiclient.Client) AuthService {
	return &authService{client: client}
}

func (s *authService) Login(ctx context.Context, req models.LoginReq) (*models.AuthRes, error) {
	if err := utils.ValidateStruct(req, "login request"); err != nil {
		return nil, err
	}
	return apiclient.Single[models.AuthRes](ctx, s.client, http.MethodPost, "/auth/login", apiclient.JSON(req))
}

func (s *authService) Register(ctx context.Context, req models.RegisterReq) (*models.AuthRes, error) {
	if err := utils.ValidateStruct(req, "registration request"); err != nil {
		return nil, err
	}
	return apiclient.Single[models.AuthRes](ctx, s.client, http.MethodPost, "/auth/register", apiclient.JSON(req))
}

func (s *authService) GetCurrentUser(ctx context.Context) (*models.User, error) {
	return apiclient.Single[models.User](ctx, s.client, http.MethodGet, "/auth/me", nil)
}

// Package console is the layer a front-end talks to. Reads go through the query
// cache and every successful mutation invalidates the families it affects.
package console

import (
	"assetconsole/apiclient"
	"assetconsole/models"
	"assetconsole/providers"
	"assetconsole/querycache"
	assetservice "assetconsole/services/asset"
	assetrequestservice "assetconsole/services/assetrequest"
	authservice "assetconsole/services/auth"
	categoryservice "assetconsole/services/category"
	userservice "assetconsole/services/user"
	"context"
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrSessionExpired wraps every 401 seen outside of login and registration.
var ErrSessionExpired = errors.New("session expired, please log in again")

// Cache families.
const (
	FamilyAssets             = "assets"
	FamilyAsset              = "asset"
	FamilyCategories         = "categories"
	FamilyCategory           = "category"
	FamilyAssetRequests      = "asset-requests"
	FamilyAdminAssetRequests = "admin-asset-requests"
	FamilyUsers              = "users"
	FamilyUser               = "user"
	FamilyCurrentUser        = "current-user"
)

type Console struct {
	client *apiclient.Client
	store  providers.CredentialStore
	cache  *querycache.Cache
	logger *zap.Logger

	auth       authservice.AuthService
	assets     assetservice.AssetService
	requests   assetrequestservice.AssetRequestService
	users      userservice.UserService
	categories categoryservice.CategoryService

	expired atomic.Bool
}

// New builds a console over client. store must be the credential store the
// client reads its token from. New takes over the client's 401 hook.
func New(client *apiclient.Client, store providers.CredentialStore, cache *querycache.Cache, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Console{
		client:     client,
		store:      store,
		cache:      cache,
		logger:     logger,
		auth:       authservice.NewAuthService(client),
		assets:     assetservice.NewAssetService(client),
		requests:   assetrequestservice.NewAssetRequestService(client),
		users:      userservice.NewUserService(client),
		categories: categoryservice.NewCategoryService(client),
	}
	client.SetUnauthorizedHook(c.sessionExpired)
	return c
}

func (c *Console) sessionExpired() {
	c.expired.Store(true)
	c.cache.Flush()
	c.logger.Info("session expired, cache flushed")
}

// SessionExpired reports whether a 401 was seen since the last sign-in.
func (c *Console) SessionExpired() bool {
	return c.expired.Load()
}

// check marks a 401 as an expired session.
func (c *Console) check(err error) error {
	if err != nil && apiclient.IsUnauthorized(err) {
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	return err
}

// mutated invalidates families after a successful mutation.
func (c *Console) mutated(err error, families ...string) error {
	if err != nil {
		return c.check(err)
	}
	c.cache.Invalidate(families...)
	return nil
}

func cached[T any](ctx context.Context, c *Console, key querycache.Key, fetch func(context.Context) (T, error)) (T, error) {
	value, err := querycache.Fetch(ctx, c.cache, key, fetch)
	return value, c.check(err)
}

func (c *Console) Login(ctx context.Context, req models.LoginReq) (*models.User, error) {
	wasExpired := c.expired.Load()
	res, err := c.auth.Login(ctx, req)
	return c.startSession(ctx, res, err, wasExpired)
}

func (c *Console) Register(ctx context.Context, req models.RegisterReq) (*models.User, error) {
	wasExpired := c.expired.Load()
	res, err := c.auth.Register(ctx, req)
	return c.startSession(ctx, res, err, wasExpired)
}

// startSession saves a successful sign-in. A failed attempt restores the expired
// flag seen before it.
func (c *Console) startSession(ctx context.Context, res *models.AuthRes, err error, wasExpired bool) (*models.User, error) {
	if err != nil {
		c.expired.Store(wasExpired)
		return nil, err
	}
	if res == nil {
		return nil, errors.New("backend returned no session")
	}
	user := res.User
	if err := c.store.Save(ctx, models.Session{Token: res.Token, User: &user}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	c.cache.Flush()
	c.expired.Store(false)
	c.logger.Info("signed in", zap.String("userID", user.ID), zap.String("role", string(user.Role)))
	return &user, nil
}

func (c *Console) Logout(ctx context.Context) error {
	c.cache.Flush()
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentSession returns the stored user, or nil when signed out.
func (c *Console) CurrentSession(ctx context.Context) (*models.User, error) {
	return c.store.CurrentUser(ctx)
}

func (c *Console) IsAdmin(ctx context.Context) (bool, error) {
	user, err := c.store.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return user != nil && user.IsAdmin(), nil
}

// CurrentUser asks the backend who the token belongs to.
func (c *Console) CurrentUser(ctx context.Context) (*models.User, error) {
	return cached(ctx, c, querycache.NewKey(FamilyCurrentUser), c.auth.GetCurrentUser)
}

// refreshStoredUser keeps the stored record in step with edits to the signed-in user.
func (c *Console) refreshStoredUser(ctx context.Context, user *models.User) {
	if user == nil {
		return
	}
	current, err := c.store.CurrentUser(ctx)
	if err != nil || current == nil || current.ID != user.ID {
		return
	}
	token, ok, err := c.store.CurrentToken(ctx)
	if err != nil || !ok {
		return
	}
	updated := *user
	if err := c.store.Save(ctx, models.Session{Token: token, User: &updated}); err != nil {
		c.logger.Warn("failed to refresh stored user", zap.Error(err))
	}
}

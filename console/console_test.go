package console

import (
	"assetconsole/apiclient"
	"assetconsole/apiclient/apitest"
	"assetconsole/models"
	"assetconsole/querycache"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const (
	assetPage      = `{"data":[{"id":"a1","name":"MacBook","status":"Available"}],"total":1,"page":1,"pageSize":10,"totalPages":1}`
	categoryResult = `{"data":{"id":"c1","name":"Laptops","description":"Portable computers","status":"ACTIVE"},"message":"ok","success":true}`
	authResult     = `{"data":{"user":{"id":"u1","email":"jane@example.com","role":"User"},"token":"jwt-1"},"message":"ok","success":true}`
)

func newConsole(t *testing.T, status int, body string) (*Console, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer(t, status, body)
	c := New(srv.Client(), srv.Store, querycache.New(time.Minute, nil), zap.NewNop())
	return c, srv
}

func TestReadsAreCachedUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	c, srv := newConsole(t, http.StatusOK, assetPage)
	srv.SignIn("jwt", &models.User{ID: "u1", Role: models.AdminRole})

	filter := models.AssetFilter{Page: 1, PageSize: 10}
	for i := 0; i < 3; i++ {
		page, err := c.Assets(ctx, filter)
		assert.NoError(t, err)
		assert.Equal(t, 1, page.Total)
	}
	assert.Len(t, srv.Requests(), 1)

	_, err := c.Assets(ctx, models.AssetFilter{Page: 2, PageSize: 10})
	assert.NoError(t, err)
	assert.Len(t, srv.Requests(), 2)

	srv.Respond(http.StatusCreated, categoryResult)
	_, err = c.CreateCategory(ctx, models.CreateCategoryReq{Name: "Laptops", Description: "Portable computers"})
	assert.NoError(t, err)

	srv.Respond(http.StatusOK, assetPage)
	_, err = c.Assets(ctx, filter)
	assert.NoError(t, err)
	assert.Len(t, srv.Requests(), 4)
}

func TestFailedMutationKeepsCache(t *testing.T) {
	ctx := context.Background()
	c, srv := newConsole(t, http.StatusOK, assetPage)
	srv.SignIn("jwt", nil)

	_, _ = c.Assets(ctx, models.AssetFilter{})
	srv.Respond(http.StatusConflict, `{"message":"Category has assets","success":false}`)
	err := c.DeleteCategory(ctx, "c1")
	assert.Equal(t, "Category has assets", apiclient.Message(err))
	assert.False(t, errors.Is(err, ErrSessionExpired))

	srv.Respond(http.StatusOK, assetPage)
	_, _ = c.Assets(ctx, models.AssetFilter{})
	assert.Len(t, srv.Requests(), 2)
}

func TestUnauthorizedExpiresSession(t *testing.T) {
	ctx := context.Background()
	c, srv := newConsole(t, http.StatusOK, assetPage)
	srv.SignIn("stale", &models.User{ID: "u1"})

	_, err := c.Assets(ctx, models.AssetFilter{})
	assert.NoError(t, err)

	srv.Respond(http.StatusUnauthorized, `{"message":"Invalid or expired token","success":false}`)
	_, err = c.Asset(ctx, "a1")
	assert.True(t, errors.Is(err, ErrSessionExpired))
	assert.True(t, apiclient.IsUnauthorized(err))
	assert.True(t, c.SessionExpired())

	user, _ := c.CurrentSession(ctx)
	assert.Nil(t, user)
	_, ok, _ := srv.Store.CurrentToken(ctx)
	assert.False(t, ok)

	_, err = c.Assets(ctx, models.AssetFilter{})
	assert.True(t, errors.Is(err, ErrSessionExpired))
	assert.Len(t, srv.Requests(), 3, "flushed cache forces a refetch")
}

func TestLoginStoresSessionAndFlushes(t *testing.T) {
	ctx := context.Background()
	c, srv := newConsole(t, http.StatusOK, assetPage)
	_, _ = c.Assets(ctx, models.AssetFilter{})

	srv.Respond(http.StatusOK, authResult)
	user, err := c.Login(ctx, models.LoginReq{Email: "jane@example.com", Password: "pw"})
	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.False(t, c.SessionExpired())

	token, ok, _ := srv.Store.CurrentToken(ctx)
	assert.True(t, ok)
	assert.Equal(t, "jwt-1", token)
	isAdmin, _ := c.IsAdmin(ctx)
	assert.False(t, isAdmin)

	srv.Respond(http.StatusOK, assetPage)
	_, _ = c.Assets(ctx, models.AssetFilter{})
	assert.Len(t, srv.Requests(), 3)
	assert.Equal(t, "Bearer jwt-1", srv.Last().Authorization)

	assert.NoError(t, c.Logout(ctx))
	_, ok, _ = srv.Store.CurrentToken(ctx)
	assert.False(t, ok)
}

func TestFailedLoginIsNotAnExpiredSession(t *testing.T) {
	c, _ := newConsole(t, http.StatusUnauthorized, `{"message":"Invalid email or password","success":false}`)

	_, err := c.Login(context.Background(), models.LoginReq{Email: "jane@example.com", Password: "bad"})
	assert.False(t, errors.Is(err, ErrSessionExpired))
	assert.Equal(t, "Invalid email or password", apiclient.Message(err))
	assert.False(t, c.SessionExpired())
}

func TestFailedSignInKeepsExpiredSession(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "validation error", status: http.StatusBadRequest, body: `{"message":"Email and password are required","success":false}`},
		{name: "wrong password", status: http.StatusUnauthorized, body: `{"message":"Invalid email or password","success":false}`},
		{name: "server error", status: http.StatusInternalServerError, body: `{"message":"failed to log in","success":false}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			c, srv := newConsole(t, http.StatusUnauthorized, `{"message":"Invalid or expired token","success":false}`)
			srv.SignIn("stale", &models.User{ID: "u1"})

			_, err := c.Asset(ctx, "a1")
			assert.True(t, errors.Is(err, ErrSessionExpired))
			assert.True(t, c.SessionExpired())

			srv.Respond(tc.status, tc.body)
			_, err = c.Login(ctx, models.LoginReq{Email: "jane@example.com", Password: "pw"})
			assert.Error(t, err)
			assert.True(t, c.SessionExpired())

			srv.Respond(http.StatusOK, authResult)
			_, err = c.Login(ctx, models.LoginReq{Email: "jane@example.com", Password: "pw"})
			assert.NoError(t, err)
			assert.False(t, c.SessionExpired())
		})
	}
}

func TestEditingSignedInUserRefreshesStoredRecord(t *testing.T) {
	ctx := context.Background()
	c, srv := newConsole(t, http.StatusOK, `{"data":{"id":"u1","email":"jane@example.com","firstName":"Janet","role":"User"},"message":"ok","success":true}`)
	srv.SignIn("jwt", &models.User{ID: "u1", FirstName: "Jane"})

	first := "Janet"
	_, err := c.UpdateUser(ctx, "u1", models.UpdateUserReq{FirstName: &first})
	assert.NoError(t, err)

	stored, _ := c.CurrentSession(ctx)
	assert.Equal(t, "Janet", stored.FirstName)
	token, _, _ := srv.Store.CurrentToken(ctx)
	assert.Equal(t, "jwt", token)
}

func TestDecideAssetRequestTranslatesStatus(t *testing.T) {
	c, srv := newConsole(t, http.StatusOK, `{"data":{"id":"r1","status":"Rejected"},"message":"ok","success":true}`)
	srv.SignIn("jwt", nil)

	request, err := c.RejectAssetRequest(context.Background(), "r1")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestRejected, request.Status)
	assert.JSONEq(t, `{"status":2}`, srv.Last().Body)
}

func TestImageURL(t *testing.T) {
	c, _ := newConsole(t, http.StatusOK, "{}")
	ref := func(s string) *string { return &s }

	testCases := []struct {
		name     string
		ref      *string
		expected string
	}{
		{name: "missing", ref: nil, expected: PlaceholderImage},
		{name: "empty", ref: ref(""), expected: PlaceholderImage},
		{name: "absolute https", ref: ref("https://cdn.example.com/a.png"), expected: "https://cdn.example.com/a.png"},
		{name: "absolute http", ref: ref("http://cdn.example.com/a.png"), expected: "http://cdn.example.com/a.png"},
		{name: "file name", ref: ref("a.png"), expected: c.client.BaseURL() + "/assets/images/a.png"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.ImageURL(tc.ref))
		})
	}
	assert.Equal(t, "http://localhost:5000/api/assets/images/x.jpg", ResolveImageURL(apiclient.DefaultBaseURL, ref("x.jpg")))
}

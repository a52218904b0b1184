package userservice

import (
	"assetconsole/apiclient"
	"assetconsole/apiclient/apitest"
	"assetconsole/models"
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const userEnvelope = `{"data":{"id":"u1","email":"jane.doe@example.com","firstName":"Janet","lastName":"Doe","role":"User","profileImageUrl":"u1.png","createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-02-01T00:00:00Z"},"message":"ok","success":true}`

func TestGetUsers(t *testing.T) {
	srv := apitest.NewServer(t, http.StatusOK, `{"data":[{"id":"u1"},{"id":"u2"}],"total":2,"page":1,"pageSize":1000,"totalPages":1}`)
	service := NewUserService(srv.Client())

	page, err := service.GetUsers(context.Background(), models.UserFilter{PageSize: 1000, Search: "doe"})

	assert.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, "/users", srv.Last().Path)
	assert.Equal(t, url.Values{"pageSize": {"1000"}, "search": {"doe"}}, srv.Last().Query)
}

func TestGetUser(t *testing.T) {
	srv := apitest.NewServer(t, http.StatusOK, userEnvelope)
	service := NewUserService(srv.Client())

	user, err := service.GetUser(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, "u1.png", *user.ProfileImageURL)
	assert.Equal(t, "/users/u1", srv.Last().Path)
}

func TestUpdateUserSendsOnlySetFields(t *testing.T) {
	srv := apitest.NewServer(t, http.StatusOK, userEnvelope)
	service := NewUserService(srv.Client())

	first := "Janet"
	user, err := service.UpdateUser(context.Background(), "u1", models.UpdateUserReq{FirstName: &first})

	assert.NoError(t, err)
	assert.Equal(t, "Janet", user.FirstName)
	last := srv.Last()
	assert.Equal(t, http.MethodPut, last.Method)
	assert.JSONEq(t, `{"firstName":"Janet"}`, last.Body)
}

func TestUploadProfileImage(t *testing.T) {
	testCases := []struct {
		name       string
		image      models.ImageFile
		expectCall bool
	}{
		{
			name:       "uploads file part",
			image:      models.ImageFile{Name: "me.png", ContentType: "image/png", Data: strings.NewReader("PNG")},
			expectCall: true,
		},
		{
			name:  "missing data",
			image: models.ImageFile{Name: "me.png"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := apitest.NewServer(t, http.StatusOK, userEnvelope)
			service := NewUserService(srv.Client())

			_, err := service.UploadProfileImage(context.Background(), "u1", tc.image)

			if !tc.expectCall {
				assert.ErrorIs(t, err, ErrMissingImage)
				assert.Empty(t, srv.Requests())
				return
			}
			assert.NoError(t, err)
			last := srv.Last()
			assert.Equal(t, http.MethodPost, last.Method)
			assert.Equal(t, "/users/u1/profile-image", last.Path)
			assert.Equal(t, map[string]string{"imageFile": "PNG"}, last.FormFiles)
			assert.Empty(t, last.FormFields)
		})
	}
}

func TestDeleteProfileImage(t *testing.T) {
	srv := apitest.NewServer(t, http.StatusInternalServerError, `{"message":"storage offline","success":false}`)
	srv.SignIn("jwt", &models.User{ID: "u1"})
	service := NewUserService(srv.Client())

	err := service.DeleteProfileImage(context.Background(), "u1")

	assert.Equal(t, "storage offline", apiclient.Message(err))
	assert.Equal(t, http.MethodDelete, srv.Last().Method)
	assert.Equal(t, "/users/u1/profile-image", srv.Last().Path)
	_, ok, _ := srv.Store.CurrentToken(context.Background())
	assert.True(t, ok)
}

package authservice

import (
	"assetconsole/apiclient"
	"assetconsole/apiclient/apitest"
	"assetconsole/models"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

const authEnvelope = `{"data":{"user":{"id":"u1","email":"jane.doe@example.com","firstName":"Jane","lastName":"Doe","role":"User","createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"},"token":"jwt-token"},"message":"Login successful","success":true}`

func TestLogin(t *testing.T) {
	testCases := []struct {
		name          string
		req           models.LoginReq
		status        int
		body          string
		expectCall    bool
		expectErr     bool
		expectedToken string
	}{
		{
			name:          "success",
			req:           models.LoginReq{Email: "jane.doe@example.com", Password: "secret"},
			status:        http.StatusOK,
			body:          authEnvelope,
			expectCall:    true,
			expectedToken: "jwt-token",
		},
		{
			name:       "bad credentials",
			req:        models.LoginReq{Email: "jane.doe@example.com", Password: "wrong"},
			status:     http.StatusUnauthorized,
			body:       `{"message":"Invalid email or password","success":false}`,
			expectCall: true,
			expectErr:  true,
		},
		{
			name:      "invalid email never reaches the server",
			req:       models.LoginReq{Email: "not-an-email", Password: "secret"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := apitest.NewServer(t, tc.status, tc.body)
			service := NewAuthService(srv.Client())

			res, err := service.Login(context.Background(), tc.req)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedToken, res.Token)
				assert.Equal(t, "u1", res.User.ID)
			}

			if tc.expectCall {
				last := srv.Last()
				assert.Equal(t, http.MethodPost, last.Method)
				assert.Equal(t, "/auth/login", last.Path)
				assert.JSONEq(t, `{"email":"`+tc.req.Email+`","password":"`+tc.req.Password+`"}`, last.Body)
			} else {
				assert.Empty(t, srv.Requests())
			}
		})
	}
}

func TestRegister(t *testing.T) {
	srv := apitest.NewServer(t, http.StatusCreated, authEnvelope)
	service := NewAuthService(srv.Client())

	res, err := service.Register(context.Background(), models.RegisterReq{
		Email: "jane.doe@example.com", Password: "secret", FirstName: "Jane", LastName: "Doe",
	})

	assert.NoError(t, err)
	assert.Equal(t, "jwt-token", res.Token)
	last := srv.Last()
	assert.Equal(t, "/auth/register", last.Path)
	assert.JSONEq(t, `{"email":"jane.doe@example.com","password":"secret","firstName":"Jane","lastName":"Doe"}`, last.Body)

	_, err = service.Register(context.Background(), models.RegisterReq{Email: "jane.doe@example.com"})
	assert.Error(t, err)
	assert.Len(t, srv.Requests(), 1)
}

func TestGetCurrentUser(t *testing.T) {
	srv := apitest.NewServer(t, http.StatusOK, `{"data":{"id":"u1","email":"jane.doe@example.com","role":"Admin"},"message":"","success":true}`)
	srv.SignIn("jwt-token", nil)
	service := NewAuthService(srv.Client())

	user, err := service.GetCurrentUser(context.Background())
	assert.NoError(t, err)
	assert.True(t, user.IsAdmin())
	assert.Equal(t, "Bearer jwt-token", srv.Last().Authorization)

	srv.Respond(http.StatusUnauthorized, `{"message":"Unauthorized","success":false}`)
	_, err = service.GetCurrentUser(context.Background())
	assert.True(t, apiclient.IsUnauthorized(err))

	_, ok, _ := srv.Store.CurrentToken(context.Background())
	assert.False(t, ok)
}

package assetservice

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

const assetEnvelope = `{"data":{"id":"a1","name":"ThinkPad X1","categoryId":"c1","category":{"id":"c1","name":"Laptops","description":"Portable computers","status":"ACTIVE","createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"},"serialNumber":"SN-001","purchaseDate":"2024-01-15","status":"Available","createdAt":"2024-01-16T00:00:00Z","updatedAt":"2024-01-16T00:00:00Z"},"message":"ok","success":true}`

func strPtr(s string) *string { return &s }

func TestGetAssets(t *testing.T) {
	body := `{"data":[{"id":"a1","name":"ThinkPad X1","status":"Available"},{"id":"a2","name":"Dell XPS","status":"Available"}],"total":25,"page":2,"pageSize":10,"totalPages":3}`
	srv := apitest.NewServer(t, http.StatusOK, body)
	service := NewAssetService(srv.Client())

	page, err := service.GetAssets(context.Background(), models.AssetFilter{Page: 2, PageSize: 10, Status: models.AssetAvailable})

	assert.NoError(t, err)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, "Dell XPS", page.Data[1].Name)

	last := srv.Last()
	assert.Equal(t, http.MethodGet, last.Method)
	assert.Equal(t, "/assets", last.Path)
	assert.Equal(t, url.Values{"page": {"2"}, "pageSize": {"10"}, "status": {"Available"}}, last.Query)
}

func TestGetAsset(t *testing.T) {
	srv := apitest.NewServer(t, http.StatusOK, assetEnvelope)
	service := NewAssetService(srv.Client())

	asset, err := service.GetAsset(context.Background(), "a1")
	assert.NoError(t, err)
	assert.Equal(t, "a1", asset.ID)
	assert.Equal(t, "Laptops", asset.Category.Name)
	assert.Equal(t, "/assets/a1", srv.Last().Path)
}

func TestCreateAsset(t *testing.T) {
	testCases := []struct {
		name          string
		req           models.CreateAssetReq
		expectCall    bool
		expectedFiles map[string]string
	}{
		{
			name: "without image",
			req: models.CreateAssetReq{
				Name: "ThinkPad X1", CategoryID: "c1", SerialNumber: "SN-001", PurchaseDate: "2024-01-15",
			},
			expectCall:    true,
			expectedFiles: map[string]string{},
		},
		{
			name: "with image",
			req: models.CreateAssetReq{
				Name: "ThinkPad X1", CategoryID: "c1", SerialNumber: "SN-001", PurchaseDate: "2024-01-15",
				Image: &models.ImageFile{Name: "x1.jpg", ContentType: "image/jpeg", Data: strings.NewReader("JPEG")},
			},
			expectCall:    true,
			expectedFiles: map[string]string{"image": "JPEG"},
		},
		{
			name: "missing serial number",
			req:  models.CreateAssetReq{Name: "ThinkPad X1", CategoryID: "c1", PurchaseDate: "2024-01-15"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := apitest.NewServer(t, http.StatusCreated, assetEnvelope)
			service := NewAssetService(srv.Client())

			asset, err := service.CreateAsset(context.Background(), tc.req)

			if !tc.expectCall {
				assert.Error(t, err)
				assert.Empty(t, srv.Requests())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "a1", asset.ID)

			last := srv.Last()
			assert.Equal(t, http.MethodPost, last.Method)
			assert.Equal(t, "/assets", last.Path)
			assert.True(t, strings.HasPrefix(last.ContentType, "multipart/form-data"))
			assert.Equal(t, map[string]string{
				"name": "ThinkPad X1", "categoryId": "c1", "serialNumber": "SN-001", "purchaseDate": "2024-01-15",
			}, last.FormFields)
			assert.Equal(t, tc.expectedFiles, last.FormFiles)
		})
	}
}

func TestUpdateAssetOmitsAbsentFields(t *testing.T) {
	srv := apitest.NewServer(t, http.StatusOK, assetEnvelope)
	service := NewAssetService(srv.Client())

	_, err := service.UpdateAsset(context.Background(), "a1", models.UpdateAssetReq{
		Name:         strPtr("ThinkPad X1 Gen 11"),
		PurchaseDate: strPtr("2024-02-01"),
	})

	assert.NoError(t, err)
	last := srv.Last()
	assert.Equal(t, http.MethodPut, last.Method)
	assert.Equal(t, "/assets/a1", last.Path)
	assert.Equal(t, map[string]string{"name": "ThinkPad X1 Gen 11", "purchaseDate": "2024-02-01"}, last.FormFields)
	assert.Empty(t, last.FormFiles)
}

func TestUpdateAssetStatus(t *testing.T) {
	srv := apitest.NewServer(t, http.StatusOK, assetEnvelope)
	service := NewAssetService(srv.Client())

	_, err := service.UpdateAssetStatus(context.Background(), "a1", models.UpdateAssetStatusReq{Status: models.AssetMaintenance})

	assert.NoError(t, err)
	last := srv.Last()
	assert.Equal(t, http.MethodPatch, last.Method)
	assert.Equal(t, "/assets/a1/status", last.Path)
	assert.JSONEq(t, `{"status":"Maintenance"}`, last.Body)
}

func TestDeleteAsset(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		expectErr   bool
		expectToken bool
	}{
		{name: "success", status: http.StatusOK, body: `{"message":"Asset deleted","success":true}`, expectToken: true},
		{name: "not found keeps session", status: http.StatusNotFound, body: `{"message":"Asset not found","success":false}`, expectErr: true, expectToken: true},
		{name: "unauthorized clears session", status: http.StatusUnauthorized, body: `{"message":"Unauthorized","success":false}`, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := apitest.NewServer(t, tc.status, tc.body)
			srv.SignIn("jwt", &models.User{ID: "u1"})
			service := NewAssetService(srv.Client())

			err := service.DeleteAsset(context.Background(), "a1")

			if tc.expectErr {
				assert.Equal(t, tc.status, apiclient.StatusCode(err))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, http.MethodDelete, srv.Last().Method)

			_, ok, _ := srv.Store.CurrentToken(context.Background())
			assert.Equal(t, tc.expectToken, ok)
			user, _ := srv.Store.CurrentUser(context.Background())
			assert.Equal(t, tc.expectToken, user != nil)
		})
	}
}

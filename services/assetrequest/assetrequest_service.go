package assetrequestservice

import (
	"assetconsole/apiclient"
	"assetconsole/models"
	"assetconsole/utils"
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// ErrUnsupportedStatus is returned for a status other than Approved or Rejected.
var ErrUnsupportedStatus = errors.New("asset request status must be Approved or Rejected")

// statusCodes maps decisions to the numeric codes the backend expects.
var statusCodes = map[models.AssetRequestStatus]int{
	models.RequestApproved: 1,
	models.RequestRejected: 2,
}

type AssetRequestService interface {
	GetMyAssetRequests(ctx context.Context, filter models.AssetRequestFilter) (models.PaginatedResponse[models.AssetRequest], error)
	GetAssetRequests(ctx context.Context, filter models.AdminAssetRequestFilter) (models.PaginatedResponse[models.AssetRequest], error)
	CreateAssetRequest(ctx context.Context, req models.CreateAssetRequestReq) (*models.AssetRequest, error)
	UpdateAssetRequest(ctx context.Context, id string, req models.UpdateAssetRequestReq) (*models.AssetRequest, error)
}

type assetRequestService struct {
	client *apiclient.Client
}

func NewAssetRequestService(client *apiclient.Client) AssetRequestService {
	return &assetRequestService{client: client}
}

func (s *assetRequestService) GetMyAssetRequests(ctx context.Context, filter models.AssetRequestFilter) (models.PaginatedResponse[models.AssetRequest], error) {
	query := apiclient.NewQuery().
		Int("page", filter.Page).
		Int("pageSize", filter.PageSize).
		String("status", string(filter.Status))
	return apiclient.Page[models.AssetRequest](ctx, s.client, "/asset-requests/self", query.Values())
}

func (s *assetRequestService) GetAssetRequests(ctx context.Context, filter models.AdminAssetRequestFilter) (models.PaginatedResponse[models.AssetRequest], error) {
	query := apiclient.NewQuery().
		Int("page", filter.Page).
		Int("pageSize", filter.PageSize).
		String("status", string(filter.Status)).
		String("search", filter.Search).
		Time("requestedFrom", filter.RequestedFrom).
		Time("requestedTo", filter.RequestedTo).
		Time("processedFrom", filter.ProcessedFrom).
		Time("processedTo", filter.ProcessedTo)
	return apiclient.Page[models.AssetRequest](ctx, s.client, "/asset-requests", query.Values())
}

func (s *assetRequestService) CreateAssetRequest(ctx context.Context, req models.CreateAssetRequestReq) (*models.AssetRequest, error) {
	if err := utils.ValidateStruct(req, "asset request"); err != nil {
		return nil, err
	}
	return apiclient.Single[models.AssetRequest](ctx, s.client, http.MethodPost, "/asset-requests", apiclient.JSON(req))
}

func (s *assetRequestService) UpdateAssetRequest(ctx context.Context, id string, req models.UpdateAssetRequestReq) (*models.AssetRequest, error) {
	code, ok := statusCodes[req.Status]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedStatus, "got %q", req.Status)
	}
	body := apiclient.JSON(map[string]int{"status": code})
	return apiclient.Single[models.AssetRequest](ctx, s.client, http.MethodPut, "/asset-requests/"+apiclient.PathEscape(id), body)
}

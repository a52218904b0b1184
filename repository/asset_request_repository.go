package repository

import (
	"assetconsole/models"
	"context"
	"time"
)

type AssetRequestRepository interface {
	ListAssetRequests(ctx context.Context, query RequestQuery) ([]models.AssetRequest, error)
	CreateAssetRequest(ctx context.Context, userID, assetID string) (models.AssetRequest, error)
	DecideAssetRequest(ctx context.Context, id, adminID string, status models.AssetRequestStatus) (models.AssetRequest, error)
}

// RequestQuery filters requests. An empty UserID matches every user.
type RequestQuery struct {
	UserID        string
	Status        models.AssetRequestStatus
	Search        string
	RequestedFrom *time.Time
	RequestedTo   *time.Time
	ProcessedFrom *time.Time
	ProcessedTo   *time.Time
}

func (q RequestQuery) matches(r models.AssetRequest) bool {
	if q.UserID != "" && r.UserID != q.UserID {
		return false
	}
	if q.Status != "" && r.Status != q.Status {
		return false
	}
	if q.Search != "" {
		user := r.User.Email + " " + r.User.FirstName + " " + r.User.LastName
		if !containsFold(r.Asset.Name, q.Search) && !containsFold(r.Asset.SerialNumber, q.Search) && !containsFold(user, q.Search) {
			return false
		}
	}
	if !within(&r.RequestedAt, q.RequestedFrom, q.RequestedTo) {
		return false
	}
	if (q.ProcessedFrom != nil || q.ProcessedTo != nil) && (r.ProcessedAt == nil || !within(r.ProcessedAt, q.ProcessedFrom, q.ProcessedTo)) {
		return false
	}
	return true
}

func within(value *string, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	t := models.ParseTimestamp(*value)
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func (s *Store) ListAssetRequests(ctx context.Context, query RequestQuery) ([]models.AssetRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := make([]*requestRecord, 0, len(s.requests))
	joined := make(map[*requestRecord]models.AssetRequest, len(s.requests))
	for _, rec := range s.requests {
		r := s.joinRequest(rec.request)
		if !query.matches(r) {
			continue
		}
		recs = append(recs, rec)
		joined[rec] = r
	}
	newestFirst(recs, func(r *requestRecord) uint64 { return r.seq })

	requests := make([]models.AssetRequest, len(recs))
	for i, rec := range recs {
		requests[i] = joined[rec]
	}
	return requests, nil
}

func (s *Store) CreateAssetRequest(ctx context.Context, userID, assetID string) (models.AssetRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return models.AssetRequest{}, newError(ErrUnauthorized, "User no longer exists")
	}
	asset, ok := s.assets[assetID]
	if !ok {
		return models.AssetRequest{}, newError(ErrNotFound, "Asset not found")
	}
	if asset.asset.Status != models.AssetAvailable {
		return models.AssetRequest{}, newError(ErrConflict, "Asset is not available")
	}
	for _, rec := range s.requests {
		r := rec.request
		if r.AssetID == assetID && r.UserID == userID && r.Status == models.RequestPending {
			return models.AssetRequest{}, newError(ErrConflict, "You already have a pending request for this asset")
		}
	}

	rec := &requestRecord{
		request: models.AssetRequest{
			ID:          newID(),
			AssetID:     assetID,
			UserID:      userID,
			Status:      models.RequestPending,
			RequestedAt: s.timestamp(),
		},
		seq: s.nextSeq(),
	}
	s.requests[rec.request.ID] = rec
	return s.joinRequest(rec.request), nil
}

// DecideAssetRequest approves or rejects a pending request. Approval assigns the
// asset to the requester.
func (s *Store) DecideAssetRequest(ctx context.Context, id, adminID string, status models.AssetRequestStatus) (models.AssetRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.requests[id]
	if !ok {
		return models.AssetRequest{}, newError(ErrNotFound, "Asset request not found")
	}
	if rec.request.Status != models.RequestPending {
		return models.AssetRequest{}, newError(ErrConflict, "Asset request was already %s", rec.request.Status)
	}

	now := s.timestamp()
	switch status {
	case models.RequestApproved:
		asset, ok := s.assets[rec.request.AssetID]
		if !ok {
			return models.AssetRequest{}, newError(ErrNotFound, "Asset not found")
		}
		if asset.asset.Status != models.AssetAvailable {
			return models.AssetRequest{}, newError(ErrConflict, "Asset is not available")
		}
		userID := rec.request.UserID
		assignedAt := now
		asset.asset.Status = models.AssetAssigned
		asset.asset.AssignedToID = &userID
		asset.asset.AssignedAt = &assignedAt
		asset.asset.UpdatedAt = now
	case models.RequestRejected:
	default:
		return models.AssetRequest{}, newError(ErrInvalid, "Unknown request status %q", status)
	}

	processedBy := adminID
	processedAt := now
	rec.request.Status = status
	rec.request.ProcessedByID = &processedBy
	rec.request.ProcessedAt = &processedAt
	return s.joinRequest(rec.request), nil
}

// joinRequest must be called with the lock held.
func (s *Store) joinRequest(r models.AssetRequest) models.AssetRequest {
	if rec, ok := s.assets[r.AssetID]; ok {
		r.Asset = s.joinAsset(rec.asset)
	}
	if rec, ok := s.users[r.UserID]; ok {
		r.User = rec.user
	}
	r.ProcessedBy = s.userRef(r.ProcessedByID)
	return r
}

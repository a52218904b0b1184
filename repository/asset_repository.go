package repository

import (
	"assetconsole/models"
	"context"
	"strings"
)

type AssetRepository interface {
	ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error)
	GetAsset(ctx context.Context, id string) (models.Asset, error)
	CreateAsset(ctx context.Context, input AssetInput) (models.Asset, error)
	UpdateAsset(ctx context.Context, id string, patch AssetPatch) (models.Asset, error)
	UpdateAssetStatus(ctx context.Context, id string, status models.AssetStatus) (models.Asset, error)
	DeleteAsset(ctx context.Context, id string) error
}

type AssetInput struct {
	Name         string
	CategoryID   string
	SerialNumber string
	PurchaseDate string
	ImageURL     *string
}

// AssetPatch changes only the fields that are set.
type AssetPatch struct {
	Name         *string
	CategoryID   *string
	SerialNumber *string
	PurchaseDate *string
	ImageURL     *string
}

func (s *Store) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := make([]*assetRecord, 0, len(s.assets))
	for _, rec := range s.assets {
		a := rec.asset
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Category != "" && !s.inCategory(a, filter.Category) {
			continue
		}
		if filter.Search != "" && !containsFold(a.Name, filter.Search) && !containsFold(a.SerialNumber, filter.Search) {
			continue
		}
		recs = append(recs, rec)
	}
	newestFirst(recs, func(r *assetRecord) uint64 { return r.seq })

	assets := make([]models.Asset, len(recs))
	for i, rec := range recs {
		assets[i] = s.joinAsset(rec.asset)
	}
	return assets, nil
}

func (s *Store) GetAsset(ctx context.Context, id string) (models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.assets[id]
	if !ok {
		return models.Asset{}, newError(ErrNotFound, "Asset not found")
	}
	return s.joinAsset(rec.asset), nil
}

func (s *Store) CreateAsset(ctx context.Context, input AssetInput) (models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[input.CategoryID]; !ok {
		return models.Asset{}, newError(ErrInvalid, "Category does not exist")
	}
	serial := strings.TrimSpace(input.SerialNumber)
	if s.assetBySerial(serial) != nil {
		return models.Asset{}, newError(ErrConflict, "Serial number %q is already in use", serial)
	}

	now := s.timestamp()
	rec := &assetRecord{
		asset: models.Asset{
			ID:           newID(),
			Name:         strings.TrimSpace(input.Name),
			CategoryID:   input.CategoryID,
			SerialNumber: serial,
			PurchaseDate: input.PurchaseDate,
			Status:       models.AssetAvailable,
			ImageURL:     input.ImageURL,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		seq: s.nextSeq(),
	}
	s.assets[rec.asset.ID] = rec
	return s.joinAsset(rec.asset), nil
}

func (s *Store) UpdateAsset(ctx context.Context, id string, patch AssetPatch) (models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.assets[id]
	if !ok {
		return models.Asset{}, newError(ErrNotFound, "Asset not found")
	}
	if patch.CategoryID != nil {
		if _, ok := s.categories[*patch.CategoryID]; !ok {
			return models.Asset{}, newError(ErrInvalid, "Category does not exist")
		}
	}
	if patch.SerialNumber != nil {
		serial := strings.TrimSpace(*patch.SerialNumber)
		if other := s.assetBySerial(serial); other != nil && other.asset.ID != id {
			return models.Asset{}, newError(ErrConflict, "Serial number %q is already in use", serial)
		}
	}

	a := &rec.asset
	if patch.Name != nil {
		a.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.CategoryID != nil {
		a.CategoryID = *patch.CategoryID
	}
	if patch.SerialNumber != nil {
		a.SerialNumber = strings.TrimSpace(*patch.SerialNumber)
	}
	if patch.PurchaseDate != nil {
		a.PurchaseDate = *patch.PurchaseDate
	}
	if patch.ImageURL != nil {
		a.ImageURL = patch.ImageURL
	}
	a.UpdatedAt = s.timestamp()
	return s.joinAsset(*a), nil
}

// UpdateAssetStatus moves an asset between states. Assignment only happens by
// approving a request; any other status releases the current holder.
func (s *Store) UpdateAssetStatus(ctx context.Context, id string, status models.AssetStatus) (models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.assets[id]
	if !ok {
		return models.Asset{}, newError(ErrNotFound, "Asset not found")
	}
	a := &rec.asset
	switch status {
	case models.AssetAssigned:
		if a.AssignedToID == nil {
			return models.Asset{}, newError(ErrInvalid, "Assets are assigned by approving a request")
		}
	case models.AssetAvailable, models.AssetMaintenance, models.AssetRetired:
		a.AssignedToID = nil
		a.AssignedAt = nil
	default:
		return models.Asset{}, newError(ErrInvalid, "Unknown asset status %q", status)
	}
	a.Status = status
	a.UpdatedAt = s.timestamp()
	return s.joinAsset(*a), nil
}

// DeleteAsset removes the asset together with its requests.
func (s *Store) DeleteAsset(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assets[id]; !ok {
		return newError(ErrNotFound, "Asset not found")
	}
	delete(s.assets, id)
	for reqID, rec := range s.requests {
		if rec.request.AssetID == id {
			delete(s.requests, reqID)
		}
	}
	return nil
}

// joinAsset must be called with the lock held.
func (s *Store) joinAsset(a models.Asset) models.Asset {
	if rec, ok := s.categories[a.CategoryID]; ok {
		a.Category = rec.category
	} else {
		a.Category = models.Category{ID: a.CategoryID}
	}
	a.AssignedTo = s.userRef(a.AssignedToID)
	return a
}

func (s *Store) inCategory(a models.Asset, category string) bool {
	if a.CategoryID == category {
		return true
	}
	rec, ok := s.categories[a.CategoryID]
	return ok && strings.EqualFold(rec.category.Name, category)
}

func (s *Store) assetBySerial(serial string) *assetRecord {
	for _, rec := range s.assets {
		if strings.EqualFold(rec.asset.SerialNumber, serial) {
			return rec
		}
	}
	return nil
}

package repository

import (
	"assetconsole/models"
	"context"
	"strings"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context, search string, status models.CategoryStatus) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (models.Category, error)
	CreateCategory(ctx context.Context, req models.CreateCategoryReq) (models.Category, error)
	UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryReq) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ToggleCategoryStatus(ctx context.Context, id string) (models.Category, error)
}

func (s *Store) ListCategories(ctx context.Context, search string, status models.CategoryStatus) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := make([]*categoryRecord, 0, len(s.categories))
	for _, rec := range s.categories {
		c := rec.category
		if status != "" && c.Status != status {
			continue
		}
		if search != "" && !containsFold(c.Name, search) && !containsFold(c.Description, search) {
			continue
		}
		recs = append(recs, rec)
	}
	newestFirst(recs, func(r *categoryRecord) uint64 { return r.seq })

	categories := make([]models.Category, len(recs))
	for i, rec := range recs {
		categories[i] = s.joinCategory(rec)
	}
	return categories, nil
}

func (s *Store) GetCategory(ctx context.Context, id string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.categories[id]
	if !ok {
		return models.Category{}, newError(ErrNotFound, "Category not found")
	}
	return s.joinCategory(rec), nil
}

func (s *Store) CreateCategory(ctx context.Context, req models.CreateCategoryReq) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := strings.TrimSpace(req.Name)
	if s.categoryByName(name) != nil {
		return models.Category{}, newError(ErrConflict, "Category %q already exists", name)
	}

	now := s.timestamp()
	rec := &categoryRecord{
		category: models.Category{
			ID:          newID(),
			Name:        name,
			Description: req.Description,
			Status:      models.CategoryActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		seq: s.nextSeq(),
	}
	s.categories[rec.category.ID] = rec
	return s.joinCategory(rec), nil
}

func (s *Store) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryReq) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.categories[id]
	if !ok {
		return models.Category{}, newError(ErrNotFound, "Category not found")
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return models.Category{}, newError(ErrInvalid, "Category name cannot be empty")
		}
		if other := s.categoryByName(name); other != nil && other.category.ID != id {
			return models.Category{}, newError(ErrConflict, "Category %q already exists", name)
		}
		rec.category.Name = name
	}
	if req.Description != nil {
		rec.category.Description = *req.Description
	}
	rec.category.UpdatedAt = s.timestamp()
	return s.joinCategory(rec), nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return newError(ErrNotFound, "Category not found")
	}
	if n := s.countAssets(id); n > 0 {
		return newError(ErrConflict, "Category still has %d assets", n)
	}
	delete(s.categories, id)
	return nil
}

func (s *Store) ToggleCategoryStatus(ctx context.Context, id string) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.categories[id]
	if !ok {
		return models.Category{}, newError(ErrNotFound, "Category not found")
	}
	if rec.category.Status == models.CategoryActive {
		rec.category.Status = models.CategoryInactive
	} else {
		rec.category.Status = models.CategoryActive
	}
	rec.category.UpdatedAt = s.timestamp()
	return s.joinCategory(rec), nil
}

// joinCategory must be called with the lock held.
func (s *Store) joinCategory(rec *categoryRecord) models.Category {
	c := rec.category
	n := s.countAssets(c.ID)
	c.AssetsCount = &n
	return c
}

func (s *Store) countAssets(categoryID string) int {
	n := 0
	for _, rec := range s.assets {
		if rec.asset.CategoryID == categoryID {
			n++
		}
	}
	return n
}

func (s *Store) categoryByName(name string) *categoryRecord {
	for _, rec := range s.categories {
		if strings.EqualFold(rec.category.Name, name) {
			return rec
		}
	}
	return nil
}

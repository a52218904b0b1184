package console

import (
	"assetconsole/models"
	"context"
	"strings"
)

// CategoryPageSize is the page size of the category screen.
const CategoryPageSize = 10

// CategoryPage is one screen of the category list with stats over every match.
type CategoryPage struct {
	Categories []models.Category    `json:"categories"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"totalPages"`
	Stats      models.CategoryStats `json:"stats"`
}

// BrowseCategories loads every category once and filters, pages and counts
// them locally.
func (c *Console) BrowseCategories(ctx context.Context, search string, status models.CategoryStatus, page int) (CategoryPage, error) {
	all, err := c.AllCategories(ctx, models.CategoryFilter{})
	if err != nil {
		return CategoryPage{}, err
	}
	matched := FilterCategories(all.Data, search, status)
	if page < 1 {
		page = 1
	}
	items, totalPages := PageCategories(matched, page)
	return CategoryPage{
		Categories: items,
		Page:       page,
		TotalPages: totalPages,
		Stats:      SummarizeCategories(matched),
	}, nil
}

// FilterCategories keeps categories whose name or description contains search,
// ignoring case, and whose status matches when one is given.
func FilterCategories(categories []models.Category, search string, status models.CategoryStatus) []models.Category {
	search = strings.ToLower(search)
	matched := make([]models.Category, 0, len(categories))
	for _, cat := range categories {
		if status != "" && cat.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(cat.Name), search) &&
			!strings.Contains(strings.ToLower(cat.Description), search) {
			continue
		}
		matched = append(matched, cat)
	}
	return matched
}

// PageCategories returns the 1-based page and the page count.
func PageCategories(categories []models.Category, page int) ([]models.Category, int) {
	totalPages := (len(categories) + CategoryPageSize - 1) / CategoryPageSize
	start := (page - 1) * CategoryPageSize
	if page < 1 || start >= len(categories) {
		return []models.Category{}, totalPages
	}
	end := start + CategoryPageSize
	if end > len(categories) {
		end = len(categories)
	}
	return categories[start:end], totalPages
}

func SummarizeCategories(categories []models.Category) models.CategoryStats {
	stats := models.CategoryStats{Total: len(categories)}
	for _, cat := range categories {
		switch cat.Status {
		case models.CategoryActive:
			stats.Active++
		case models.CategoryInactive:
			stats.Inactive++
		}
		if cat.AssetsCount != nil {
			stats.TotalAssets += *cat.AssetsCount
		}
	}
	return stats
}

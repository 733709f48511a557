package impl

import (
	"smachna/config"
	"smachna/internal/usecase"
)

// normalizePage clamps a pagination request to the configured defaults and cap.
// Out-of-range pages are left as-is; they simply produce an empty result page
// with accurate totals.
func normalizePage(page usecase.Page, cfg *config.Config) usecase.Page {
	defaultPerPage, maxPerPage := config.DefaultPerPage, config.MaxPerPage
	if cfg != nil && cfg.Pagination != nil {
		if cfg.Pagination.DefaultPerPage > 0 {
			defaultPerPage = cfg.Pagination.DefaultPerPage
		}
		if cfg.Pagination.MaxPerPage > 0 {
			maxPerPage = cfg.Pagination.MaxPerPage
		}
	}

	if page.Page < 1 {
		page.Page = 1
	}
	if page.PerPage < 1 {
		page.PerPage = defaultPerPage
	}
	if page.PerPage > maxPerPage {
		page.PerPage = maxPerPage
	}

	return page
}

// buildPagination derives listing metadata from a normalized page and a total count.
func buildPagination(page usecase.Page, total int64) *usecase.Pagination {
	pages := int((total + int64(page.PerPage) - 1) / int64(page.PerPage))

	return &usecase.Pagination{
		Total:   total,
		Page:    page.Page,
		PerPage: page.PerPage,
		Pages:   pages,
	}
}

func pageOffset(page usecase.Page) int {
	return (page.Page - 1) * page.PerPage
}

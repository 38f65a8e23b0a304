package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"bookshelf/backend/internal/catalog"
	"bookshelf/backend/internal/logger"
	"bookshelf/backend/internal/model"
)

const (
	DefaultSeed = "default"

	// upper bounds keep a single page cheap to build
	MaxLikesAverage   = 1_000_000
	MaxReviewsAverage = 50
	MaxPage           = 1_000_000
)

// CatalogQuery selects one synthetic catalog page.
type CatalogQuery struct {
	Seed    string
	Page    int
	Region  string
	Likes   float64
	Reviews float64
}

// Normalize applies defaults and clamps out-of-range values instead of rejecting them.
func (q CatalogQuery) Normalize() CatalogQuery {
	if strings.TrimSpace(q.Seed) == "" {
		q.Seed = DefaultSeed
	}
	q.Page = min(max(q.Page, 1), MaxPage)
	if strings.TrimSpace(q.Region) == "" {
		q.Region = catalog.DefaultRegion
	}
	q.Likes = clampAverage(q.Likes, MaxLikesAverage)
	q.Reviews = clampAverage(q.Reviews, MaxReviewsAverage)
	return q
}

func clampAverage(v, limit float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > limit:
		return limit
	default:
		return v
	}
}

type CatalogService interface {
	// Page returns exactly catalog.PageSize records.
	Page(ctx context.Context, q CatalogQuery) ([]model.BookRecord, error)
	// Regions lists the selectable regions.
	Regions() []model.Region
}

type catalogService struct{}

func NewCatalogService() CatalogService {
	return &catalogService{}
}

func (s *catalogService) Page(ctx context.Context, q CatalogQuery) ([]model.BookRecord, error) {
	q = q.Normalize()

	gen := catalog.NewContext(q.Seed, q.Page, q.Region)
	books, err := gen.GeneratePage(q.Likes, q.Reviews)
	if err != nil {
		logger.Error("catalog page generation failed", "module", "service", "action", "generate", "resource", "catalog", "result", "failed",
			"seed", q.Seed, "page", q.Page, "region", q.Region, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	logger.Debug("catalog page generated", "module", "service", "action", "generate", "resource", "catalog", "result", "ok",
		"seed", q.Seed, "page", q.Page, "region", gen.Locale.Code)
	return books, nil
}

func (s *catalogService) Regions() []model.Region {
	return catalog.Regions()
}

// Package catalog generates deterministic pages of synthetic books.
//
// A page is fully determined by (seed, page, region): the same inputs always
// yield the same titles, authors, publishers, codes and cover URLs. Only the
// record IDs are random per call.
package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"bookshelf/backend/internal/model"
)

const (
	// PageSize is the number of records on every page.
	PageSize = 20

	// CodePattern is the ISBN-like layout; each # becomes a digit.
	CodePattern = "978-#-###-#####-#"
	// CoverURLTemplate renders a cover for a code at a fixed size.
	CoverURLTemplate = "https://picsum.photos/seed/%s/300/450"

	maxCodeAttempts = 10

	FallbackTitle     = "Untitled"
	FallbackAuthor    = "Unknown Author"
	FallbackPublisher = "Unknown Publisher"
)

// stream salts keep the count and review draws independent of the field draws
const (
	countSalt  uint64 = 0x9e3779b97f4a7c15
	reviewSalt uint64 = 0xc2b2ae3d27d4eb4f
)

var ErrGeneration = errors.New("generation failed")

// GenerationContext carries the seeded generators for one page.
// Build one per request; it is not safe for concurrent use.
type GenerationContext struct {
	Seed   string
	Page   int
	Locale Locale

	fields  *gofakeit.Faker
	counts  *gofakeit.Faker
	reviews *gofakeit.Faker
	codes   map[string]struct{}
}

// NewContext derives the generators from seed and page. Unknown regions use DefaultRegion.
func NewContext(seed string, page int, region string) *GenerationContext {
	if page < 1 {
		page = 1
	}
	base := SeedValue(seed, page)
	return &GenerationContext{
		Seed:    seed,
		Page:    page,
		Locale:  LookupLocale(region),
		fields:  gofakeit.New(base),
		counts:  gofakeit.New(nonZero(mix(base ^ countSalt))),
		reviews: gofakeit.New(nonZero(mix(base ^ reviewSalt))),
		codes:   make(map[string]struct{}, PageSize),
	}
}

// SeedValue hashes seed and page into the numeric generator seed.
// Zero is never returned because gofakeit treats it as "seed randomly".
func SeedValue(seed string, page int) uint64 {
	return nonZero(xxhash.Sum64String(seed + strconv.Itoa(page)))
}

// GeneratePage builds the full page. Any panic while generating is reported as
// ErrGeneration and no records are returned.
func (g *GenerationContext) GeneratePage(avgLikes, avgReviews float64) (books []model.BookRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			books = nil
			err = fmt.Errorf("%w: %v", ErrGeneration, r)
		}
	}()

	books = make([]model.BookRecord, 0, PageSize)
	for i := 0; i < PageSize; i++ {
		books = append(books, g.book(i, avgLikes, avgReviews))
	}
	return books, nil
}

func (g *GenerationContext) book(i int, avgLikes, avgReviews float64) model.BookRecord {
	title := orDefault(g.Locale.title(g.fields), FallbackTitle)
	author := orDefault(g.Locale.person(g.fields), FallbackAuthor)
	publisher := orDefault(g.Locale.company(g.fields), FallbackPublisher)
	code := g.code()

	// both draws happen for every book so the stream stays aligned
	likes := FractionalCount(avgLikes, g.counts.Float64())
	reviewCount := FractionalCount(avgReviews, g.counts.Float64())

	return model.BookRecord{
		ID:            uuid.NewString(),
		Index:         (i + 1) + (g.Page-1)*PageSize,
		ISBN:          code,
		Title:         title,
		Author:        author,
		Publisher:     publisher,
		Likes:         likes,
		Reviews:       g.reviewList(reviewCount),
		CoverImageURL: CoverURL(code),
	}
}

func (g *GenerationContext) reviewList(n int) []model.Review {
	out := make([]model.Review, 0, n)
	for j := 0; j < n; j++ {
		out = append(out, model.Review{
			Author: orDefault(g.Locale.person(g.reviews), FallbackAuthor),
			Text:   g.Locale.reviewText(g.reviews),
		})
	}
	return out
}

// code returns a code not yet used on this page. After maxCodeAttempts
// collisions the last candidate is used even though it repeats.
func (g *GenerationContext) code() string {
	var candidate string
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		candidate = g.fields.Numerify(CodePattern)
		if _, taken := g.codes[candidate]; !taken {
			break
		}
	}
	g.codes[candidate] = struct{}{}
	return candidate
}

// CoverURL returns the cover image URL for code.
func CoverURL(code string) string {
	return fmt.Sprintf(CoverURLTemplate, url.PathEscape(code))
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func nonZero(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	return v
}

// mix is the splitmix64 finalizer.
func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

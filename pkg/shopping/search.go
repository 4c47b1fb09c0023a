package shopping

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"fashion-buddy-be/pkg/apperrors"
)

const maxResults = 4

// Product is a price-filtered recommendation ready to show the user.
type Product struct {
	Name     string
	Brand    string
	Price    decimal.Decimal
	URL      string
	ImageURL string
	Color    string
}

// Query describes what to search for.
type Query struct {
	Color    string
	ItemType string
	Material string
	Budget   Window
}

// Searcher runs color-and-budget aware product searches with a short
// lived result cache to keep repeat menu navigation off the provider.
type Searcher struct {
	provider SearchProvider
	cache    *gocache.Cache
}

func NewSearcher(provider SearchProvider) *Searcher {
	return &Searcher{
		provider: provider,
		cache:    gocache.New(15*time.Minute, 30*time.Minute),
	}
}

func (s *Searcher) Search(ctx context.Context, q Query) ([]Product, error) {
	query := buildQuery(q)
	cacheKey := fmt.Sprintf("%s|%s|%s", query, q.Budget.Min.String(), q.Budget.Max.String())

	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]Product), nil
	}

	raw, err := s.provider.Search(ctx, query)
	if err != nil {
		return nil, apperrors.SearchProvider("product search failed", err)
	}

	products := make([]Product, 0, maxResults)
	for _, r := range raw {
		price, ok := ExtractPrice(r.Price)
		if !ok || !q.Budget.Contains(price) {
			continue
		}
		products = append(products, Product{
			Name:     r.Title,
			Brand:    ExtractBrand(r.Title, r.Source),
			Price:    price,
			URL:      r.Link,
			ImageURL: r.Thumbnail,
			Color:    q.Color,
		})
		if len(products) == maxResults {
			break
		}
	}

	s.cache.Set(cacheKey, products, gocache.DefaultExpiration)
	return products, nil
}

func buildQuery(q Query) string {
	parts := []string{strings.TrimSpace(q.Color), strings.TrimSpace(q.ItemType)}
	if q.Material != "" {
		parts = append(parts, strings.TrimSpace(q.Material))
	}
	parts = append(parts, "buy online india")

	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

var priceDigits = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)

// ExtractPrice pulls a numeric rupee amount out of a display price such
// as "₹1,299.00". The second return is false when no amount is present.
func ExtractPrice(display string) (decimal.Decimal, bool) {
	m := priceDigits.FindString(display)
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m, ",", ""))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

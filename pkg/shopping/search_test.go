package shopping

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearchProvider struct {
	results []RawResult
	err     error
	calls   int
}

func (f *fakeSearchProvider) Search(_ context.Context, _ string) ([]RawResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func window(min, max int64) Window {
	return Window{Min: decimal.NewFromInt(min), Max: decimal.NewFromInt(max)}
}

func TestSearcherFiltersAndCaps(t *testing.T) {
	provider := &fakeSearchProvider{results: []RawResult{
		{Title: "Coral Shirt A", Price: "₹999", Source: "Myntra", Link: "https://a"},
		{Title: "Coral Shirt B", Price: "₹4,500", Source: "Ajio", Link: "https://b"},
		{Title: "Coral Shirt C", Price: "₹1,200", Source: "Amazon", Link: "https://c"},
		{Title: "Coral Shirt D", Price: "not listed", Source: "Meesho", Link: "https://d"},
		{Title: "Coral Shirt E", Price: "₹800", Source: "Flipkart", Link: "https://e"},
		{Title: "Coral Shirt F", Price: "₹700", Source: "Nykaa", Link: "https://f"},
		{Title: "Coral Shirt G", Price: "₹600", Source: "Zara", Link: "https://g"},
		{Title: "Coral Shirt H", Price: "₹1,100", Source: "Max", Link: "https://h"},
	}}
	s := NewSearcher(provider)

	products, err := s.Search(context.Background(), Query{
		Color:    "Coral",
		ItemType: "shirt",
		Budget:   window(500, 1500),
	})
	require.NoError(t, err)

	require.Len(t, products, 4)
	for _, p := range products {
		assert.True(t, p.Price.GreaterThanOrEqual(decimal.NewFromInt(500)))
		assert.True(t, p.Price.LessThanOrEqual(decimal.NewFromInt(1500)))
		assert.Equal(t, "Coral", p.Color)
	}
	assert.Equal(t, "Coral Shirt A", products[0].Name)
	assert.Equal(t, "Myntra", products[0].Brand)
}

func TestSearcherEmptyResultsIsNotAnError(t *testing.T) {
	provider := &fakeSearchProvider{results: []RawResult{
		{Title: "Pricey Kurta", Price: "₹9,999", Source: "Fabindia"},
	}}
	s := NewSearcher(provider)

	products, err := s.Search(context.Background(), Query{Color: "Teal", ItemType: "kurta", Budget: window(500, 1500)})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSearcherCachesResults(t *testing.T) {
	provider := &fakeSearchProvider{results: []RawResult{
		{Title: "Navy Tee", Price: "₹750", Source: "HRX"},
	}}
	s := NewSearcher(provider)
	q := Query{Color: "Navy", ItemType: "t-shirt", Budget: window(500, 1500)}

	_, err := s.Search(context.Background(), q)
	require.NoError(t, err)
	_, err = s.Search(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls)
}

func TestSearcherProviderError(t *testing.T) {
	provider := &fakeSearchProvider{err: errors.New("quota exceeded")}
	s := NewSearcher(provider)

	_, err := s.Search(context.Background(), Query{Color: "Red", ItemType: "saree", Budget: window(500, 1500)})
	assert.Error(t, err)
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		display string
		want    string
		ok      bool
	}{
		{"₹1,299.00", "1299", true},
		{"₹799", "799", true},
		{"Rs. 2,450", "2450", true},
		{"free", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			d, ok := ExtractPrice(tt.display)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, d.Equal(decimal.RequireFromString(tt.want)), "got %s", d)
			}
		})
	}
}

func TestRender(t *testing.T) {
	t.Run("products", func(t *testing.T) {
		out := Render([]Product{
			{Name: "Coral Shirt", Brand: "Myntra", Price: decimal.NewFromInt(999), URL: "https://a"},
		})
		assert.Contains(t, out, "Coral Shirt")
		assert.Contains(t, out, "₹999")
		assert.Contains(t, out, "https://a")
	})

	t.Run("empty", func(t *testing.T) {
		out := Render(nil)
		assert.Contains(t, out, "couldn't find products")
	})
}

package shopping

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// RawResult is a single product row as returned by the search provider,
// before price filtering.
type RawResult struct {
	Title     string `json:"title"`
	Price     string `json:"price"`
	Source    string `json:"source"`
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail"`
}

// SearchProvider runs a shopping query against an external index.
type SearchProvider interface {
	Search(ctx context.Context, query string) ([]RawResult, error)
}

// SerpAPIProvider queries the SerpAPI Google Shopping engine.
type SerpAPIProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSerpAPIProvider(apiKey string) *SerpAPIProvider {
	return &SerpAPIProvider{
		apiKey:  apiKey,
		baseURL: "https://serpapi.com/search.json",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type serpAPIResponse struct {
	ShoppingResults []RawResult `json:"shopping_results"`
	Error           string      `json:"error"`
}

func (p *SerpAPIProvider) Search(ctx context.Context, query string) ([]RawResult, error) {
	params := url.Values{}
	params.Set("engine", "google_shopping")
	params.Set("q", query)
	params.Set("num", "20")
	params.Set("location", "Mumbai, Maharashtra, India")
	params.Set("google_domain", "google.co.in")
	params.Set("gl", "in")
	params.Set("hl", "en")
	params.Set("api_key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create serpapi request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call serpapi: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read serpapi response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed serpAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse serpapi response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("serpapi error: %s", parsed.Error)
	}

	return parsed.ShoppingResults, nil
}

package tryon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client generates a virtual try-on image from a person photo and a
// clothing photo.
type Client interface {
	TryOn(ctx context.Context, personURL, clothingURL string) (string, error)
}

// FashnClient drives the Fashn try-on API: submit a job, then poll its
// status until an output image is ready.
type FashnClient struct {
	apiKey       string
	baseURL      string
	client       *http.Client
	pollInterval time.Duration
	maxPolls     int
}

func NewFashnClient(apiKey string) *FashnClient {
	return &FashnClient{
		apiKey:       apiKey,
		baseURL:      "https://api.fashn.ai/v1",
		client:       &http.Client{Timeout: 60 * time.Second},
		pollInterval: 3 * time.Second,
		maxPolls:     20,
	}
}

type runRequest struct {
	ModelImage   string `json:"model_image"`
	GarmentImage string `json:"garment_image"`
	Category     string `json:"category"`
}

type runResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type statusResponse struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	Output []string `json:"output"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *FashnClient) TryOn(ctx context.Context, personURL, clothingURL string) (string, error) {
	jobID, err := c.submit(ctx, personURL, clothingURL)
	if err != nil {
		return "", err
	}

	for i := 0; i < c.maxPolls; i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}

		status, err := c.status(ctx, jobID)
		if err != nil {
			return "", err
		}

		switch status.Status {
		case "completed":
			if len(status.Output) == 0 {
				return "", fmt.Errorf("tryon job %s completed without output", jobID)
			}
			return status.Output[0], nil
		case "failed":
			msg := "unknown error"
			if status.Error != nil {
				msg = status.Error.Message
			}
			return "", fmt.Errorf("tryon job %s failed: %s", jobID, msg)
		}
	}

	return "", fmt.Errorf("tryon job %s did not finish in time", jobID)
}

func (c *FashnClient) submit(ctx context.Context, personURL, clothingURL string) (string, error) {
	payload, err := json.Marshal(runRequest{
		ModelImage:   personURL,
		GarmentImage: clothingURL,
		Category:     "auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal tryon request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/run", bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create tryon request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call tryon api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read tryon response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tryon api error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed runResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse tryon response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("tryon api error: %s", parsed.Error)
	}
	if parsed.ID == "" {
		return "", fmt.Errorf("tryon api returned no job id")
	}

	return parsed.ID, nil
}

func (c *FashnClient) status(ctx context.Context, jobID string) (*statusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status/"+jobID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create status request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call tryon status api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read status response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tryon status api error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed statusResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse status response: %w", err)
	}
	return &parsed, nil
}

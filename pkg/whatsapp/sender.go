package whatsapp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Sender delivers outbound messages. Delivery is fire-and-forget: callers
// do not receive delivery confirmations, only transport-level errors.
type Sender interface {
	SendText(ctx context.Context, to, body string) error
	SendMedia(ctx context.Context, to, body string, mediaURLs []string) error
}

// TwilioSender sends via the Twilio Messages API.
type TwilioSender struct {
	accountSID string
	authToken  string
	fromNumber string
	client     *http.Client
}

func NewTwilioSender(accountSID, authToken, fromNumber string) *TwilioSender {
	return &TwilioSender{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		client:     &http.Client{},
	}
}

func (s *TwilioSender) SendText(ctx context.Context, to, body string) error {
	return s.send(ctx, to, body, nil)
}

func (s *TwilioSender) SendMedia(ctx context.Context, to, body string, mediaURLs []string) error {
	return s.send(ctx, to, body, mediaURLs)
}

func (s *TwilioSender) send(ctx context.Context, to, body string, mediaURLs []string) error {
	form := url.Values{}
	form.Set("From", AddressPrefix+s.fromNumber)
	form.Set("To", AddressPrefix+formatNumber(to))
	form.Set("Body", body)
	for _, mediaURL := range mediaURLs {
		form.Add("MediaUrl", mediaURL)
	}

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", s.accountSID)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		resBody, _ := io.ReadAll(res.Body)
		return fmt.Errorf("twilio api error (status %d): %s", res.StatusCode, string(resBody))
	}
	return nil
}

// formatNumber strips any transport prefix and whitespace so numbers read
// from config or client requests send cleanly.
func formatNumber(number string) string {
	number = strings.TrimPrefix(number, AddressPrefix)
	return strings.TrimSpace(number)
}

package payment

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// CheckoutClient talks to a Stripe-compatible Checkout REST API using
// form-encoded requests.
type CheckoutClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewCheckoutClient(apiKey, baseURL string, timeout time.Duration) *CheckoutClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CheckoutClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *CheckoutClient) CreateSession(item LineItem, customerEmail string, metadata map[string]string, successURL, cancelURL string) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("customer_email", customerEmail)
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	form.Set("line_items[0][price_data][currency]", item.Currency)
	form.Set("line_items[0][price_data][product_data][name]", item.Name)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(item.Amount, 10))
	form.Set("line_items[0][quantity]", strconv.Itoa(item.Quantity))
	for key, val := range metadata {
		form.Set("metadata["+key+"]", val)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build session request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

func (c *CheckoutClient) RetrieveSession(sessionID string) (*Session, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/checkout/sessions/"+url.PathEscape(sessionID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build session request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	return c.do(req)
}

func (c *CheckoutClient) do(req *http.Request) (*Session, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode session response: %w", err)
	}
	return &session, nil
}

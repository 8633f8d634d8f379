package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/FT-Key/Ravello-web-sub001/config"
)

// PreferenceItem is one normalized line item sent to the gateway.
type PreferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id"`
}

// Preference is the gateway-side checkout session: id plus redirect URL.
type Preference struct {
	ID        string
	InitPoint string
}

// PreferenceGateway is what the order orchestrator needs from the payment
// provider. Tests plug in a fake.
type PreferenceGateway interface {
	CreatePreference(items []PreferenceItem, returnURL string) (*Preference, error)
}

// MercadoPago wraps the Mercado Pago checkout-preference API.
type MercadoPago struct {
	baseURL          string
	accessToken      string
	defaultReturnURL string
	client           *http.Client
}

func NewMercadoPago(cfg *config.Config) *MercadoPago {
	return &MercadoPago{
		baseURL:          cfg.MPBaseURL,
		accessToken:      cfg.MPAccessToken,
		defaultReturnURL: cfg.PaymentReturnURL,
		client:           &http.Client{Timeout: 30 * time.Second},
	}
}

// request performs an authenticated call against the Mercado Pago API.
func (m *MercadoPago) request(method, endpoint string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, m.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.accessToken)

	return m.client.Do(req)
}

// CreatePreference creates a hosted-checkout preference. The three back URLs
// are derived from the caller-supplied return URL (trailing slash stripped),
// and auto_return sends approved payers straight back.
func (m *MercadoPago) CreatePreference(items []PreferenceItem, returnURL string) (*Preference, error) {
	if returnURL == "" {
		returnURL = m.defaultReturnURL
	}
	base := strings.TrimRight(returnURL, "/")

	payload := map[string]interface{}{
		"items": items,
		"back_urls": map[string]string{
			"success": base + "/success",
			"failure": base + "/failure",
			"pending": base + "/pending",
		},
		"auto_return": "approved",
	}

	resp, err := m.request("POST", "/checkout/preferences", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("preference creation failed: %s", string(body))
	}

	var result struct {
		ID        string `json:"id"`
		InitPoint string `json:"init_point"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if result.ID == "" {
		return nil, fmt.Errorf("preference response missing id")
	}

	return &Preference{ID: result.ID, InitPoint: result.InitPoint}, nil
}

// FindPaymentStatusByPreference asks the gateway for the latest payment made
// against a preference. Returns "" when the gateway has no payment yet.
func (m *MercadoPago) FindPaymentStatusByPreference(preferenceID string) (string, error) {
	endpoint := "/v1/payments/search?preference_id=" + url.QueryEscape(preferenceID)
	resp, err := m.request("GET", endpoint, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payment search failed: %s", string(body))
	}

	var result struct {
		Results []struct {
			Status string `json:"status"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(result.Results) == 0 {
		return "", nil
	}

	return result.Results[0].Status, nil
}

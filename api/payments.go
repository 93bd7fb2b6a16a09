package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrChargeDeclined is the gateway refusing the charge: an expected business
// outcome, distinct from transport failures.
var ErrChargeDeclined = errors.New("charge declined")

type chargeRequest struct {
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Reason     string  `json:"reason"`
}

// PaymentsClient talks to the external payment authority. A charge is a
// single synchronous round-trip with a binary outcome; the gateway offers no
// idempotency key, so callers must not retry blindly.
type PaymentsClient struct {
	baseURL string
	client  *http.Client
}

func NewPaymentsClient(baseURL string) PaymentsClient {
	if baseURL == "" {
		panic("payments base URL is empty")
	}
	return PaymentsClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c PaymentsClient) Charge(ctx context.Context, customerID string, amount float64, reason string) error {
	body, err := json.Marshal(chargeRequest{
		CustomerID: customerID,
		Amount:     amount,
		Reason:     reason,
	})
	if err != nil {
		return fmt.Errorf("could not marshal charge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments/charges", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not build charge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("charge call failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusUnprocessableEntity:
		return ErrChargeDeclined
	default:
		return fmt.Errorf("unexpected status code from payments gateway: %d", resp.StatusCode)
	}
}

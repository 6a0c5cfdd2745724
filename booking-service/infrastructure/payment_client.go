package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/eventbooking/booking-system/booking-service/domain"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
)

// HTTPPaymentClient implements PaymentGateway against the payment service REST API
type HTTPPaymentClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPPaymentClient creates a new HTTPPaymentClient
func NewHTTPPaymentClient(baseURL string) *HTTPPaymentClient {
	return &HTTPPaymentClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// FetchBalance fetches the user's current balance from the payment service
func (c *HTTPPaymentClient) FetchBalance(ctx context.Context, userID models.ID) (models.Money, error) {
	url := c.baseURL + "/users/" + userID.String() + "/balance"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Money{}, errors.Wrap(err, "failed to build balance request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return models.Money{}, errors.Wrap(domain.ErrGatewayUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return models.Money{}, errors.Wrapf(domain.ErrGatewayUnavailable, "payment service returned %d", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Money{}, errors.Errorf("unexpected status %d from payment service", resp.StatusCode)
	}

	var body struct {
		Balance models.Money `json:"balance"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Money{}, errors.Wrap(err, "failed to decode balance")
	}

	return body.Balance, nil
}

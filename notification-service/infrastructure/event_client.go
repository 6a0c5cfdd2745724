package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/eventbooking/booking-system/notification-service/domain"
	"github.com/eventbooking/booking-system/shared/events"
	"github.com/eventbooking/booking-system/shared/models"
	"github.com/pkg/errors"
)

// HTTPEventClient implements EventGateway against the event catalog REST API
type HTTPEventClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPEventClient creates a new HTTPEventClient
func NewHTTPEventClient(baseURL string) *HTTPEventClient {
	return &HTTPEventClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// FetchEvent fetches an event snapshot from the catalog
func (c *HTTPEventClient) FetchEvent(ctx context.Context, eventID models.ID) (*events.EventSnapshot, error) {
	url := c.baseURL + "/events/" + eventID.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build event request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(domain.ErrGatewayUnavailable, err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrEventNotFound
	case resp.StatusCode >= 500:
		return nil, errors.Wrapf(domain.ErrGatewayUnavailable, "event service returned %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Errorf("unexpected status %d from event service", resp.StatusCode)
	}

	var snapshot events.EventSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to decode event snapshot")
	}

	return &snapshot, nil
}

package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"go.uber.org/zap"
	"multiledger/internal/logger"
)

const (
	latestPath = "latest"
	fromParam  = "from"
	toParam    = "to"
)

type config interface {
	BaseURL() string
	Timeout() int64
}

// Client talks to a frankfurter-compatible rate service. Both endpoints
// answer {"rates": {CODE: number}}.
type Client struct {
	baseURL string
	client  *http.Client
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func New(config config) *Client {
	return &Client{
		baseURL: config.BaseURL(),
		client:  &http.Client{Timeout: time.Duration(config.Timeout()) * time.Second},
	}
}

// HistoricalRate fetches the base->target rate for the given day.
// The date must already be normalized to YYYY-MM-DD.
func (c *Client) HistoricalRate(ctx context.Context, base, target, date string) (float64, error) {
	return c.getRate(ctx, date, base, target)
}

// LatestRate fetches the most recent base->target rate.
func (c *Client) LatestRate(ctx context.Context, base, target string) (float64, error) {
	return c.getRate(ctx, latestPath, base, target)
}

func (c *Client) getRate(ctx context.Context, path, base, target string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path, nil)
	if err != nil {
		return 0, errors.Wrap(err, "building request")
	}

	q := req.URL.Query()
	q.Add(fromParam, base)
	q.Add(toParam, target)
	req.URL.RawQuery = q.Encode()

	res, err := c.client.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "requesting rates")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, errors.Wrap(err, "reading response")
	}

	if res.StatusCode != http.StatusOK {
		logger.Warn("rate service error",
			zap.Int("status", res.StatusCode), zap.String("path", path))
		return 0, fmt.Errorf("rate service status %d", res.StatusCode)
	}

	rates := ratesResponse{}
	err = json.Unmarshal(body, &rates)
	if err != nil {
		return 0, errors.Wrap(err, "unmarshalling response")
	}

	rate, ok := rates.Rates[target]
	if !ok {
		return 0, fmt.Errorf("no rate for %s in response", target)
	}
	return rate, nil
}

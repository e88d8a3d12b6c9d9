package woocommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/config"
	apperrors "github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/errors"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/model"
)

const defaultPageSize = 100

// Client fetches orders from a WooCommerce store over its REST v3 API.
// It implements gateway.OrderSource.
type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	pageSize       int
	client         *http.Client
	logger         *zap.Logger
}

// NewClient creates a new WooCommerce client
func NewClient(cfg config.WooCommerceConfig, logger *zap.Logger) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		consumerKey:    cfg.ConsumerKey,
		consumerSecret: cfg.ConsumerSecret,
		pageSize:       pageSize,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// FetchOrders returns the store's current orders, following pagination until
// a short page comes back. Any request or decode failure aborts with a
// SourceFetchError; an empty store is a valid empty batch.
func (c *Client) FetchOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order

	for page := 1; ; page++ {
		batch, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, apperrors.NewSourceFetchError(err)
		}

		orders = append(orders, batch...)
		if len(batch) < c.pageSize {
			break
		}
	}

	c.logger.Info("Fetched orders from WooCommerce",
		zap.Int("count", len(orders)))

	return orders, nil
}

// fetchPage requests one page of orders.
// GET /wp-json/wc/v3/orders?page={n}&per_page={size}
func (c *Client) fetchPage(ctx context.Context, page int) ([]model.Order, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(c.pageSize))

	reqURL := fmt.Sprintf("%s/wp-json/wc/v3/orders?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// WooCommerce REST API accepts consumer key/secret as basic auth over TLS.
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Order fetch request failed",
			zap.Int("page", page),
			zap.Error(err))
		return nil, fmt.Errorf("order fetch request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Order fetch returned unexpected status",
			zap.Int("page", page),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(body)))
		return nil, fmt.Errorf("order fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var orders []model.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("failed to parse orders response: %w", err)
	}

	return orders, nil
}

package zoho

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/config"
)

const defaultBaseURL = "https://www.zohoapis.com/crm/v8"

// Client issues authenticated calls against the Zoho CRM v8 Contacts and
// Deals resources. It implements gateway.CRMGateway.
type Client struct {
	baseURL     string
	accessToken string
	client      *http.Client
	logger      *zap.Logger
}

// NewClient creates a new Zoho CRM client
func NewClient(cfg config.ZohoConfig, logger *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL:     baseURL,
		accessToken: cfg.AccessToken,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Zoho-oauthtoken "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
}

// searchResponse is the shape shared by the Contacts and Deals search
// endpoints: matched records under data, each with its CRM identifier.
type searchResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// createResponse is the shape shared by the Contacts and Deals create
// endpoints: the new record's identifier nested under data[0].details.id.
type createResponse struct {
	Data []struct {
		Code    string `json:"code"`
		Status  string `json:"status"`
		Details struct {
			ID string `json:"id"`
		} `json:"details"`
	} `json:"data"`
}

package zoho

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	apperrors "github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/errors"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/gateway"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/model"
)

// FindDealByName searches Zoho deals by exact deal name.
// GET /Deals/search?criteria=(Deal_Name:equals:{name})
func (c *Client) FindDealByName(ctx context.Context, name string) gateway.DealLookup {
	criteria := fmt.Sprintf("(Deal_Name:equals:%s)", name)
	reqURL := fmt.Sprintf("%s/Deals/search?criteria=%s", c.baseURL, url.QueryEscape(criteria))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return gateway.DealLookupFailed(fmt.Errorf("failed to create request: %w", err))
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Deal search request failed",
			zap.String("deal_name", name),
			zap.Error(err))
		return gateway.DealLookupFailed(fmt.Errorf("deal search request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return gateway.DealNotFound()
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Deal search returned unexpected status",
			zap.String("deal_name", name),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(body)))
		return gateway.DealLookupFailed(fmt.Errorf("deal search returned status %d", resp.StatusCode))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return gateway.DealLookupFailed(fmt.Errorf("failed to parse deal search response: %w", err))
	}
	if len(result.Data) == 0 {
		return gateway.DealNotFound()
	}

	return gateway.DealFound()
}

// CreateDeal creates a Zoho deal, linked to a contact when deal.ContactID is
// set. POST /Deals with body {data:[{Deal_Name, Amount, Stage, Contact_Name}]}
func (c *Client) CreateDeal(ctx context.Context, deal model.NewDeal) error {
	record := map[string]interface{}{
		"Deal_Name": deal.Name,
		"Amount":    deal.Amount.String(),
		"Stage":     deal.Stage,
	}
	if deal.ContactID != "" {
		record["Contact_Name"] = deal.ContactID
	}
	body := map[string]interface{}{
		"data": []map[string]interface{}{record},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to prepare deal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/Deals", bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Deal create request failed",
			zap.String("deal_name", deal.Name),
			zap.Error(err))
		return fmt.Errorf("deal create request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read deal create response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		c.logger.Error("Deal create failed",
			zap.String("deal_name", deal.Name),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(respBody)))
		return apperrors.NewCRMWriteError("deal", resp.StatusCode, string(respBody))
	}

	return nil
}

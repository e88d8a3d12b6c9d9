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

// FindContactByEmail searches Zoho contacts by exact email match.
// GET /Contacts/search?criteria=(Email:equals:{email})
// Zoho answers 204 No Content when nothing matches.
func (c *Client) FindContactByEmail(ctx context.Context, email string) gateway.ContactLookup {
	criteria := fmt.Sprintf("(Email:equals:%s)", email)
	reqURL := fmt.Sprintf("%s/Contacts/search?criteria=%s", c.baseURL, url.QueryEscape(criteria))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return gateway.ContactLookupFailed(fmt.Errorf("failed to create request: %w", err))
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Contact search request failed",
			zap.String("email", email),
			zap.Error(err))
		return gateway.ContactLookupFailed(fmt.Errorf("contact search request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return gateway.ContactNotFound()
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Contact search returned unexpected status",
			zap.String("email", email),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(body)))
		return gateway.ContactLookupFailed(fmt.Errorf("contact search returned status %d", resp.StatusCode))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return gateway.ContactLookupFailed(fmt.Errorf("failed to parse contact search response: %w", err))
	}
	if len(result.Data) == 0 {
		return gateway.ContactNotFound()
	}

	return gateway.ContactFound(result.Data[0].ID)
}

// CreateContact creates a Zoho contact and returns its identifier.
// POST /Contacts with body {data:[{First_Name, Last_Name, Email}]}
func (c *Client) CreateContact(ctx context.Context, contact model.NewContact) (string, error) {
	body := map[string]interface{}{
		"data": []map[string]interface{}{
			{
				"First_Name": contact.FirstName,
				"Last_Name":  contact.LastName,
				"Email":      contact.Email,
			},
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to prepare contact request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/Contacts", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Contact create request failed",
			zap.String("email", contact.Email),
			zap.Error(err))
		return "", fmt.Errorf("contact create request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read contact create response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		c.logger.Error("Contact create failed",
			zap.String("email", contact.Email),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(respBody)))
		return "", apperrors.NewCRMWriteError("contact", resp.StatusCode, string(respBody))
	}

	var result createResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse contact create response: %w", err)
	}
	if len(result.Data) == 0 || result.Data[0].Details.ID == "" {
		return "", apperrors.NewCRMWriteError("contact", resp.StatusCode, string(respBody))
	}

	return result.Data[0].Details.ID, nil
}

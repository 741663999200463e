// Package ipfs pins metadata documents via Pinata and returns gateway URIs.
// The client's contract is that it always hands back a usable URI: on missing
// credentials or any upload failure it synthesizes a placeholder instead of
// surfacing an error, so issuance never fails on the content store.
package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"tamga/internal/platform/config"
)

const gatewayPrefix = "https://gateway.pinata.cloud/ipfs/"

// Uploader is the collaborator interface the issuance sequencer consumes.
type Uploader interface {
	Upload(ctx context.Context, doc any, name string) string
}

// Client talks to the Pinata pinning API.
type Client struct {
	apiKey     string
	secretKey  string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New constructs a Pinata client. Without credentials every upload yields a
// placeholder URI, which keeps the demo flow working offline.
func New(cfg config.PinataConfig, logger *slog.Logger) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		secretKey:  cfg.SecretKey,
		baseURL:    "https://api.pinata.cloud",
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type pinRequest struct {
	PinataContent  any            `json:"pinataContent"`
	PinataMetadata pinataMetadata `json:"pinataMetadata"`
}

type pinataMetadata struct {
	Name string `json:"name"`
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// Upload pins doc as JSON under the given name and returns a gateway URI.
// Never returns an error: failures are logged and absorbed into a
// placeholder URI.
func (c *Client) Upload(ctx context.Context, doc any, name string) string {
	if c.apiKey == "" || c.secretKey == "" {
		if c.logger != nil {
			c.logger.InfoContext(ctx, "pinata credentials not configured, using placeholder uri", "name", name)
		}
		return placeholderURI()
	}

	body, err := json.Marshal(pinRequest{
		PinataContent:  doc,
		PinataMetadata: pinataMetadata{Name: name},
	})
	if err != nil {
		c.warn(ctx, name, err)
		return placeholderURI()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/pinning/pinJSONToIPFS", bytes.NewReader(body))
	if err != nil {
		c.warn(ctx, name, err)
		return placeholderURI()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("pinata_api_key", c.apiKey)
	req.Header.Set("pinata_secret_api_key", c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.warn(ctx, name, err)
		return placeholderURI()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.warn(ctx, name, fmt.Errorf("pinata returned status %d", resp.StatusCode))
		return placeholderURI()
	}

	var pinned pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&pinned); err != nil || pinned.IpfsHash == "" {
		c.warn(ctx, name, fmt.Errorf("decode pinata response: %v", err))
		return placeholderURI()
	}
	return gatewayPrefix + pinned.IpfsHash
}

func (c *Client) warn(ctx context.Context, name string, err error) {
	if c.logger != nil {
		c.logger.WarnContext(ctx, "ipfs upload failed, using placeholder uri",
			"name", name,
			"error", err.Error(),
		)
	}
}

func placeholderURI() string {
	return gatewayPrefix + "QmMockHash" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

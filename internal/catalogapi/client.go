package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rjcampbel/DisneyMagic/internal/config"
	"github.com/rjcampbel/DisneyMagic/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "DisneyMagic/1.0"
)

// Client implements domain.CatalogRepository and domain.Fetcher over HTTP
type Client struct {
	cfg        config.CatalogConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new catalog API client
func NewClient(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Fetch performs a GET and returns the response body
func (c *Client) Fetch(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "url", reqURL, "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrServerOffline, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, reqURL)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog request error", "url", reqURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// GetHome fetches the home document and returns its collections in order
func (c *Client) GetHome(ctx context.Context) ([]domain.CollectionDescriptor, error) {
	body, err := c.Fetch(ctx, c.cfg.HomeURL())
	if err != nil {
		return nil, err
	}

	var resp HomeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse home document: %w", err)
	}

	containers := resp.Data.StandardCollection.Containers
	if containers == nil {
		return nil, fmt.Errorf("%w: data.StandardCollection.containers", domain.ErrMissingField)
	}

	collections := make([]domain.CollectionDescriptor, 0, len(containers))
	for i, raw := range containers {
		coll, errs := MapContainer(raw, c.cfg.AspectRatio)
		if coll.Err != nil {
			c.logger.Warn("malformed collection", "index", i, "title", coll.Title, "error", coll.Err)
		}
		c.logSkipped(coll.Title, coll.Items, errs)
		collections = append(collections, coll)
	}

	c.logger.Info("loaded home document", "collections", len(collections))
	return collections, nil
}

// GetSet fetches a referenced set and returns its items in order
func (c *Client) GetSet(ctx context.Context, refID string) ([]domain.ItemDescriptor, error) {
	if refID == "" {
		return nil, fmt.Errorf("%w: refId", domain.ErrMissingField)
	}

	body, err := c.Fetch(ctx, c.cfg.SetURL(url.PathEscape(refID)))
	if err != nil {
		return nil, err
	}

	var resp SetResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "refId", refID, "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse set %s: %w", refID, err)
	}

	rawSet, err := c.singleSet(refID, resp.Data)
	if err != nil {
		return nil, err
	}
	var set Set
	if err := json.Unmarshal(rawSet, &set); err != nil {
		c.logger.Error("JSON parse error", "refId", refID, "error", err)
		return nil, fmt.Errorf("failed to parse set %s: %w: %v", refID, domain.ErrMalformed, err)
	}
	if set.Items == nil {
		return nil, fmt.Errorf("%w: data.*.items in set %s", domain.ErrMissingField, refID)
	}

	items, errs := MapItems(set.Items, c.cfg.AspectRatio)
	c.logSkipped(refID, items, errs)
	return items, nil
}

// singleSet returns the one entry under data, whatever its key
func (c *Client) singleSet(refID string, data map[string]json.RawMessage) (json.RawMessage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: set %s", domain.ErrEmptyDocument, refID)
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 1 {
		c.logger.Warn("set document has several data entries, using first", "refId", refID, "keys", keys)
	}
	return data[keys[0]], nil
}

// logSkipped reports, once each, items that were left out and items kept
// as KindUnknown
func (c *Client) logSkipped(owner string, kept []domain.ItemDescriptor, errs []error) {
	for _, err := range errs {
		if errors.Is(err, domain.ErrUnknownItemType) {
			c.logger.Warn("unknown item type skipped", "collection", owner, "error", err)
			continue
		}
		c.logger.Warn("item skipped", "collection", owner, "error", err)
	}
	for _, d := range kept {
		if d.Kind == domain.KindUnknown {
			c.logger.Warn("unknown item type kept", "collection", owner, "type", d.Type, "title", d.Title)
		}
	}
}

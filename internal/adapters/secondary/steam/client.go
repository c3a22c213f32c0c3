package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"tf2schema-service/internal/config"
	"tf2schema-service/internal/core/domain"
	ports "tf2schema-service/internal/core/ports/output"
)

const (
	defaultBaseURL = "https://api.steampowered.com"

	schemaItemsPath    = "/IEconItems_440/GetSchemaItems/v0001/"
	schemaOverviewPath = "/IEconItems_440/GetSchemaOverview/v0001/"

	// Steam rejects requests without a browser-looking User-Agent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	defaultRetries = 5
)

type steamClient struct {
	apiKey  string
	baseURL string
	retries int
	client  *http.Client
}

// NewClient creates a Steam Web API client adapter.
func NewClient(cfg *config.SteamConfig) ports.SteamClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	retries := cfg.Retries
	if retries <= 0 {
		retries = defaultRetries
	}

	return &steamClient{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		retries: retries,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Steam API response envelopes
type schemaItemsResponse struct {
	Result *schemaItemsResult `json:"result"`
}

type schemaItemsResult struct {
	Status int                 `json:"status"`
	Items  []domain.SchemaItem `json:"items"`
	Next   *int                `json:"next"`
}

type schemaOverviewResponse struct {
	Result *schemaOverviewResult `json:"result"`
}

type schemaOverviewResult struct {
	Status       int               `json:"status"`
	Qualities    map[string]int    `json:"qualities"`
	QualityNames map[string]string `json:"qualityNames"`
	Particles    []domain.Particle `json:"attribute_controlled_attached_particles"`
}

func (c *steamClient) FetchSchema(ctx context.Context) (*domain.Schema, error) {
	if c.apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	items, err := c.fetchItems(ctx)
	if err != nil {
		return nil, err
	}

	qualities, effects, err := c.fetchOverview(ctx)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"items":   len(items),
		"effects": len(effects),
	}).Info("schema fetched from Steam")

	return domain.NewSchema(items, qualities, effects, time.Now().UTC()), nil
}

// fetchItems walks the paginated GetSchemaItems endpoint until the
// result no longer carries a next cursor.
func (c *steamClient) fetchItems(ctx context.Context) ([]domain.SchemaItem, error) {
	var items []domain.SchemaItem
	start := 0

	for {
		params := url.Values{}
		params.Set("key", c.apiKey)
		params.Set("language", "en")
		if start > 0 {
			params.Set("start", strconv.Itoa(start))
		}

		var page schemaItemsResponse
		if err := c.fetchPage(ctx, schemaItemsPath, params, &page, func() bool {
			return page.Result != nil
		}); err != nil {
			return nil, err
		}

		items = append(items, page.Result.Items...)

		if page.Result.Next == nil {
			return items, nil
		}
		start = *page.Result.Next
	}
}

func (c *steamClient) fetchOverview(ctx context.Context) (map[int]string, []domain.Particle, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("language", "en")

	var overview schemaOverviewResponse
	if err := c.fetchPage(ctx, schemaOverviewPath, params, &overview, func() bool {
		return overview.Result != nil
	}); err != nil {
		return nil, nil, err
	}

	qualities := make(map[int]string, len(overview.Result.Qualities))
	for internal, id := range overview.Result.Qualities {
		display := overview.Result.QualityNames[internal]
		if display == "" {
			display = internal
		}
		qualities[id] = display
	}

	return qualities, overview.Result.Particles, nil
}

// fetchPage issues one GET with a bounded number of attempts. A non-2xx
// status or a payload failing the validity check counts as a failed
// attempt; the last error is returned once attempts run out.
func (c *steamClient) fetchPage(ctx context.Context, path string, params url.Values, dst interface{}, valid func() bool) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = c.doOnce(ctx, reqURL, dst, valid)
		if lastErr == nil {
			return nil
		}
		log.WithError(lastErr).WithFields(log.Fields{
			"path":    path,
			"attempt": attempt,
		}).Error("failed to fetch schema page")
	}

	return fmt.Errorf("%w: %v", domain.ErrSteamUnavailable, lastErr)
}

func (c *steamClient) doOnce(ctx context.Context, reqURL string, dst interface{}, valid func() bool) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}
	if !valid() {
		return domain.ErrInvalidResponse
	}

	return nil
}

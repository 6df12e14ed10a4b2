package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"yardura-service/internal/domain/pricing"
	"yardura-service/internal/platform/httpclient"
	"yardura-service/internal/platform/logger"
)

const (
	defaultBaseURL = "https://api.stripe.com"

	// Stripe acepta hasta 10 lookup_keys por listado.
	lookupKeysPerPage = 10
)

var (
	ErrNotConfigured = errors.New("stripe client not configured")
)

type Config struct {
	APIKey  string
	BaseURL string // override solo para tests
	Timeout time.Duration
}

// Client sincroniza el catálogo de precios contra la API de Stripe.
// Implementa billing.CatalogSyncer.
type Client struct {
	http   *httpclient.Client
	apiKey string
	log    logger.Logger
}

func NewClient(cfg Config, log logger.Logger) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}

	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
		log:    log,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

type price struct {
	ID        string `json:"id"`
	LookupKey string `json:"lookup_key"`
}

type priceList struct {
	Data []price `json:"data"`
}

// SyncCatalog asegura que cada entrada del catálogo exista en Stripe como
// precio con su lookup key. Es idempotente: las keys ya publicadas se
// saltean, las que faltan se crean.
func (c *Client) SyncCatalog(ctx context.Context, catalog []pricing.PriceConfig) (int, error) {
	if !c.IsConfigured() {
		return 0, ErrNotConfigured
	}

	existing, err := c.existingLookupKeys(ctx, catalog)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, cfg := range catalog {
		if existing[cfg.LookupKey] {
			continue
		}
		if err := c.createPrice(ctx, cfg); err != nil {
			return created, fmt.Errorf("stripe: create price %s: %w", cfg.LookupKey, err)
		}
		created++
	}

	if c.log != nil {
		c.log.Info("stripe: catalog sync done", map[string]any{
			"total":   len(catalog),
			"created": created,
		})
	}
	return created, nil
}

// existingLookupKeys consulta qué lookup keys ya tienen precio publicado,
// de a páginas de 10 (límite de la API).
func (c *Client) existingLookupKeys(ctx context.Context, catalog []pricing.PriceConfig) (map[string]bool, error) {
	out := make(map[string]bool, len(catalog))

	for start := 0; start < len(catalog); start += lookupKeysPerPage {
		end := start + lookupKeysPerPage
		if end > len(catalog) {
			end = len(catalog)
		}

		q := url.Values{}
		q.Set("limit", strconv.Itoa(lookupKeysPerPage))
		for _, cfg := range catalog[start:end] {
			q.Add("lookup_keys[]", cfg.LookupKey)
		}

		var page priceList
		err := c.http.DoForm(ctx, http.MethodGet, "/v1/prices?"+q.Encode(), c.authHeaders(), nil, &page)
		if err != nil {
			return nil, fmt.Errorf("stripe: list prices: %w", err)
		}

		for _, p := range page.Data {
			if p.LookupKey != "" {
				out[p.LookupKey] = true
			}
		}
	}

	return out, nil
}

func (c *Client) createPrice(ctx context.Context, cfg pricing.PriceConfig) error {
	form := url.Values{}
	form.Set("currency", "usd")
	form.Set("unit_amount", strconv.FormatInt(cfg.UnitAmountCents, 10))
	form.Set("lookup_key", cfg.LookupKey)
	form.Set("transfer_lookup_key", "true")
	form.Set("product_data[name]", cfg.Description)
	form.Set("metadata[frequency]", string(cfg.Frequency))
	form.Set("metadata[yard_size]", string(cfg.YardSize))
	form.Set("metadata[dogs]", strconv.Itoa(cfg.Dogs))

	// Los servicios recurrentes se cobran por visita en ciclo semanal;
	// bi-weekly cada 2 semanas. one-time queda como precio suelto.
	switch cfg.Frequency {
	case pricing.FrequencyWeekly, pricing.FrequencyTwiceWeekly:
		form.Set("recurring[interval]", "week")
		form.Set("recurring[interval_count]", "1")
	case pricing.FrequencyBiWeekly:
		form.Set("recurring[interval]", "week")
		form.Set("recurring[interval_count]", "2")
	}

	var created price
	return c.http.DoForm(ctx, http.MethodPost, "/v1/prices", c.authHeaders(), form, &created)
}

func (c *Client) authHeaders() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}
}

// Package providers lists the AI providers offered by the agent backend,
// reports which of them have API keys stored, and derives the active ones.
//
// Example usage:
//
//	client := providers.NewClient(providers.StaticConfig{
//		URL:    "http://127.0.0.1:3000",
//		Secret: os.Getenv("PROVIDERKEYS_SECRET_KEY"),
//	})
//	names := client.GetActiveProviderNames(ctx)
package providers

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agentstation/providerkeys/internal/metrics"
	"github.com/agentstation/providerkeys/internal/transport"
	"github.com/agentstation/providerkeys/pkg/constants"
	"github.com/agentstation/providerkeys/pkg/logging"
)

// Client talks to the agent backend's provider and secrets endpoints.
type Client struct {
	config    Config
	transport *transport.Client
	metrics   *metrics.Metrics
	logger    *zerolog.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
	timeout    time.Duration
	metrics    *metrics.Metrics
	logger     *zerolog.Logger
}

// WithHTTPClient sets the HTTP client used for backend requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithTimeout bounds each backend request. Zero keeps the default.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithMetrics records backend traffic and the active provider count in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithLogger sets the logger used when the call context carries none.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewClient creates a Client reading its settings from cfg.
func NewClient(cfg Config, opts ...Option) *Client {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	transportOpts := []transport.Option{
		transport.WithHTTPClient(o.httpClient),
		transport.WithMetrics(o.metrics),
	}
	if o.timeout > 0 {
		transportOpts = append(transportOpts, transport.WithTimeout(o.timeout))
	}

	return &Client{
		config:    cfg,
		transport: transport.New(transportOpts...),
		metrics:   o.metrics,
		logger:    o.logger,
	}
}

// ListProviders fetches the provider catalog and normalizes every entry.
// Providers are returned in the order the backend lists them.
func (c *Client) ListProviders(ctx context.Context) ([]Provider, error) {
	ctx = c.operationContext(ctx, "list_providers")

	resp, err := c.transport.Get(ctx, c.url(constants.ProvidersPath))
	if err != nil {
		return nil, err
	}

	var entries []catalogEntry
	if err := transport.DecodeResponse(resp, &entries, ""); err != nil {
		return nil, err
	}

	providers := make([]Provider, 0, len(entries))
	for _, entry := range entries {
		providers = append(providers, entry.normalize())
	}

	logging.FromContext(ctx).Debug().
		Int("count", len(providers)).
		Msg("Fetched provider catalog")

	return providers, nil
}

// GetSecretsStatus reports, for every catalog provider, which of its keys
// are stored. The catalog is fetched first; its failure is returned as is.
func (c *Client) GetSecretsStatus(ctx context.Context) (SecretsStatus, error) {
	ctx = c.operationContext(ctx, "secrets_status")

	providers, err := c.ListProviders(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(providers))
	for _, p := range providers {
		ids = append(ids, p.ID)
	}

	resp, err := c.transport.PostJSON(ctx,
		c.url(constants.SecretsStatusPath),
		secretsRequest{Providers: ids},
		transport.SecretKeyAuth(),
		c.config.SecretKey(),
	)
	if err != nil {
		return nil, err
	}

	var status SecretsStatus
	if err := transport.DecodeResponse(resp, &status, constants.ErrMsgSecretsFetch); err != nil {
		return nil, err
	}

	logProviderStatus(ctx, ids, status)
	return status, nil
}

// logProviderStatus writes one debug line per requested provider.
func logProviderStatus(ctx context.Context, ids []string, status SecretsStatus) {
	if logging.FromContext(ctx).GetLevel() > zerolog.DebugLevel {
		return
	}
	for _, id := range ids {
		log := logging.FromContext(logging.WithProvider(ctx, id))
		resp, ok := status[id]
		if !ok {
			log.Debug().Msg("Provider missing from secrets status")
			continue
		}
		set := 0
		for _, s := range resp.SecretStatus {
			if s.IsSet {
				set++
			}
		}
		log.Debug().
			Int("keys", len(resp.SecretStatus)).
			Int("keys_set", set).
			Bool("active", resp.IsActive()).
			Msg("Provider secrets status")
	}
}

// GetActiveProviderNames returns the display names of providers with at
// least one key set, ordered by provider id. It never fails: any error is
// logged and an empty list returned.
func (c *Client) GetActiveProviderNames(ctx context.Context) []string {
	ctx = c.operationContext(ctx, "active_providers")

	status, err := c.GetSecretsStatus(ctx)
	if err != nil {
		logging.FromContext(ctx).Error().
			Err(err).
			Msg("Failed to get active providers")
		return []string{}
	}

	names := ActiveProviderNames(status)
	c.metrics.SetActiveProviders(len(names))
	return names
}

// ActiveProviderNames derives the active provider names from status,
// ordered by provider id.
func ActiveProviderNames(status SecretsStatus) []string {
	ids := make([]string, 0, len(status))
	for id := range status {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	names := []string{}
	for _, id := range ids {
		if resp := status[id]; resp.IsActive() {
			names = append(names, resp.DisplayName())
		}
	}
	return names
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.config.BaseURL(), "/") + path
}

// operationContext tags the outermost call of a chain with a request id and
// the operation name. Nested calls keep the tags of their caller.
func (c *Client) operationContext(ctx context.Context, operation string) context.Context {
	if logging.RequestID(ctx) != "" {
		return ctx
	}
	if c.logger != nil && logging.FromContext(ctx) == logging.Default() {
		ctx = logging.WithLogger(ctx, c.logger)
	}
	ctx = logging.WithRequestID(ctx, uuid.NewString())
	return logging.WithOperation(ctx, operation)
}

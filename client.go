package imggen

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 1
	defaultUserAgent  = "imggen-go/" + Version
)

// Client is the AI Image Generator API client.
//
// A Client holds only settings fixed at construction time, so it is safe
// for concurrent use by multiple goroutines.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	userAgent  string
	logger     zerolog.Logger
	metrics    *clientMetrics
}

// Config holds connection settings for [NewClientFromConfig].
type Config struct {
	// BaseURL is the service root, e.g. "https://api.img-gen.ai". Required.
	BaseURL string

	// APIKey is sent as a bearer token when non-empty.
	APIKey string

	// Timeout bounds each request. Zero means the 30 second default.
	Timeout time.Duration
}

// NewClient creates a new client for the service at baseURL.
//
// A trailing slash on baseURL is stripped. Options are applied in order:
//
//	client := imggen.NewClient("https://api.img-gen.ai",
//	    imggen.WithAPIKey(os.Getenv("AI_IMG_GEN_API_KEY")),
//	    imggen.WithTimeout(time.Minute),
//	)
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		userAgent:  defaultUserAgent,
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = withoutRedirects(c.httpClient)

	return c
}

// NewClientFromConfig creates a client from a [Config] value. Extra options
// are applied after the config fields.
func NewClientFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, newError(CodeValidation, "base URL is required", 0, nil)
	}
	if cfg.Timeout < 0 {
		return nil, newError(CodeValidation, "timeout must be positive", 0, nil)
	}

	base := []Option{WithAPIKey(cfg.APIKey)}
	if cfg.Timeout > 0 {
		base = append(base, WithTimeout(cfg.Timeout))
	}

	return NewClient(cfg.BaseURL, append(base, opts...)...), nil
}

// BaseURL returns the normalized service root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// withoutRedirects returns a shallow copy of hc that hands 3xx responses back
// to the caller instead of following them. The service answers some image
// endpoints with a redirect to the stored asset and the Location is the result.
func withoutRedirects(hc *http.Client) *http.Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	cp := *hc
	cp.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &cp
}

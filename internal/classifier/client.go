package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/net/proxy"

	"github.com/nao1215/spamscan/internal/model"
)

const (
	// DefaultEndpoint is the address of the local classification service.
	DefaultEndpoint = "http://127.0.0.1:8000/analyze"

	// DefaultTimeout bounds a single classification call.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies spamscan in requests.
	DefaultUserAgent = "spamscan/1.0 (+https://github.com/nao1215/spamscan)"

	// DefaultMaxBodySize limits how much of a response body is read.
	DefaultMaxBodySize = 1 << 20 // 1MiB

	// RequestIDHeader carries the request ID to the service.
	RequestIDHeader = "X-Request-ID"
)

// Client talks to the classification service over HTTP.
// A Client is safe for concurrent use.
type Client struct {
	endpoint     string
	httpClient   *http.Client
	timeout      time.Duration
	proxyAddress string
	userAgent    string
	maxBodySize  int64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout of the underlying HTTP client.
// It is ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithProxy routes requests through the SOCKS5 proxy at address (host:port).
// It is ignored when WithHTTPClient is used.
func WithProxy(address string) Option {
	return func(c *Client) {
		c.proxyAddress = address
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithMaxBodySize sets the response body limit in bytes.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		if size > 0 {
			c.maxBodySize = size
		}
	}
}

// NewClient creates a Client for the given endpoint.
// An empty endpoint means DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if !isValidEndpoint(endpoint) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}

	c := &Client{
		endpoint:    endpoint,
		timeout:     DefaultTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		httpClient, err := newHTTPClient(c.timeout, c.proxyAddress)
		if err != nil {
			return nil, err
		}
		c.httpClient = httpClient
	}

	return c, nil
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Classify sends the request content to the service and parses the verdict.
func (c *Client) Classify(ctx context.Context, req model.AnalysisRequest) (*model.Verdict, error) {
	payload, err := json.Marshal(analyzeRequest{Content: req.Content})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	if req.ID != "" {
		httpReq.Header.Set(RequestIDHeader, req.ID)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) > c.maxBodySize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, c.maxBodySize)
	}

	return ParseVerdict(body)
}

// analyzeRequest is the request body of the wire contract.
type analyzeRequest struct {
	Content string `json:"content"`
}

// analyzeResponse is the response body of the wire contract.
// Reason stays raw because its content is only defined for spam verdicts.
type analyzeResponse struct {
	IsSpam *bool           `json:"is_spam"` //nolint:tagliatelle // wire contract
	Reason json.RawMessage `json:"reason"`
}

// ParseVerdict decodes a response body into a Verdict.
// is_spam is required; reason is required and must be a string when
// is_spam is true, and is ignored otherwise.
func ParseVerdict(body []byte) (*model.Verdict, error) {
	var resp analyzeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if resp.IsSpam == nil {
		return nil, fmt.Errorf("%w: is_spam", ErrMissingField)
	}

	if !*resp.IsSpam {
		return &model.Verdict{IsSpam: false}, nil
	}

	if len(resp.Reason) == 0 || string(resp.Reason) == "null" {
		return nil, fmt.Errorf("%w: reason", ErrMissingField)
	}

	var reason string
	if err := json.Unmarshal(resp.Reason, &reason); err != nil {
		return nil, fmt.Errorf("%w: reason is not a string", ErrMalformedResponse)
	}

	return &model.Verdict{IsSpam: true, Reason: reason}, nil
}

// newHTTPClient builds the default HTTP client, optionally dialing through SOCKS5.
func newHTTPClient(timeout time.Duration, proxyAddress string) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert

	if proxyAddress != "" {
		if !isValidProxyAddress(proxyAddress) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxyAddress, proxyAddress)
		}

		dialer, err := proxy.SOCKS5("tcp", proxyAddress, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}

		transport.Proxy = nil
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}

// isValidEndpoint reports whether endpoint is an absolute http(s) URL with a host.
func isValidEndpoint(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// isValidProxyAddress reports whether address is host:port with a port in 1-65535.
func isValidProxyAddress(address string) bool {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return false
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 65535
}

// Package fetch implements the Fetcher interface.
// Pages are retrieved through a public CORS relay: the target URL travels
// as a query parameter and the relay answers with the raw page HTML.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/net/html/charset"

	"github.com/gaurav-prasanna/textkit/core"
	"github.com/gaurav-prasanna/textkit/logger"
)

const (
	DefaultRelayURL  = "https://api.allorigins.win/raw"
	DefaultTimeout   = 30 * time.Second
	defaultUserAgent = "textkit/1.0 (https://github.com/gaurav-prasanna/textkit)"
)

// ErrTransport wraps transport-level failures (DNS, refused, timeout).
var ErrTransport = core.NewError(core.KindNetwork, "Failed to fetch the URL. Check your connection and try again.")

// StatusError reports a non-2xx response from the relay.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.Code, e.URL)
}

func (e *StatusError) Kind() core.Kind { return core.KindNetwork }

func (e *StatusError) UserMessage() string {
	return fmt.Sprintf("Failed to fetch the URL. Status: %d", e.Code)
}

var _ core.Classified = (*StatusError)(nil)

// Options configures a RelayFetcher. Zero values use the defaults.
type Options struct {
	RelayURL string
	Timeout  time.Duration
	Client   *http.Client
}

// RelayFetcher fetches web pages through the relay.
type RelayFetcher struct {
	relay  string
	client *http.Client
}

var _ core.Fetcher = (*RelayFetcher)(nil)

// New creates a RelayFetcher with the default relay and timeout.
func New() *RelayFetcher {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a RelayFetcher from opts.
func NewWithOptions(opts Options) *RelayFetcher {
	if opts.RelayURL == "" {
		opts.RelayURL = DefaultRelayURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &RelayFetcher{relay: opts.RelayURL, client: client}
}

// Fetch retrieves the HTML of target through the relay. The body is
// decoded to UTF-8 according to the response Content-Type.
func (f *RelayFetcher) Fetch(ctx context.Context, target string) (*core.FetchResult, error) {
	log := logger.ForComponent("fetch")

	target, err := NormalizeTarget(target)
	if err != nil {
		return nil, err
	}
	reqURL, err := relayURL(f.relay, target)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	log.Debug("requesting page", "target", target, "relay", f.relay)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %w", ErrTransport, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debug("relay refused", "target", target, "status", resp.StatusCode)
		return nil, &StatusError{Code: resp.StatusCode, URL: target}
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding response body: %w", ErrTransport, err)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", ErrTransport, err)
	}

	log.Debug("fetched page", "target", target, "status", resp.StatusCode, "size", humanize.Bytes(uint64(len(data))))
	return &core.FetchResult{
		URL:        target,
		StatusCode: resp.StatusCode,
		HTML:       string(data),
	}, nil
}

// Package hsds is a typed client for the HDF Scalable Data Service
// (HSDS) REST API. The client maps each API method onto one HTTP
// request against a configured endpoint, applies a pluggable
// credential strategy to every request, and classifies non-2xx
// responses into typed errors.
//
// A Client is safe for concurrent use; it holds only the underlying
// HTTP connection pool and the credential strategy. The library never
// retries and keeps no client-side state: every operation is a
// stateless request/response round trip.
package hsds

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const defaultTimeout = 30 * time.Second

// ClientConfig holds configuration for a Client.
type ClientConfig struct {
	// Endpoint is the HSDS server base URL, e.g. "http://localhost:5101".
	Endpoint string

	// Credentials applied to every request. Default: NoAuth.
	Credentials Credentials

	// HTTPClient overrides the default client (30s timeout). Timeout
	// and cancellation semantics are whatever this client provides.
	HTTPClient *http.Client

	// Logger (optional).
	Logger hclog.Logger
}

// Client is an HSDS API client. Access resource operations through
// the service fields: c.Domains, c.Groups, c.Links, c.Datasets,
// c.Datatypes, c.Attributes.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	creds   Credentials
	logger  hclog.Logger

	Domains    *DomainService
	Groups     *GroupService
	Links      *LinkService
	Datasets   *DatasetService
	Datatypes  *DatatypeService
	Attributes *AttributeService
}

// NewClient creates an HSDS client for the given endpoint.
func NewClient(config ClientConfig) (*Client, error) {
	if config.Endpoint == "" {
		return nil, invalidParamf("endpoint is required")
	}

	base, err := url.Parse(config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("hsds: parsing endpoint: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, invalidParamf("endpoint must use http or https scheme, got %q", base.Scheme)
	}

	if config.Credentials == nil {
		config.Credentials = NoAuth{}
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	if config.Logger == nil {
		config.Logger = hclog.NewNullLogger()
	}

	c := &Client{
		baseURL: base,
		http:    config.HTTPClient,
		creds:   config.Credentials,
		logger:  config.Logger.Named("hsds"),
	}

	c.Domains = &DomainService{client: c}
	c.Groups = &GroupService{client: c}
	c.Links = &LinkService{client: c}
	c.Datasets = &DatasetService{client: c}
	c.Datatypes = &DatatypeService{client: c}
	c.Attributes = &AttributeService{client: c}

	return c, nil
}

// Endpoint returns the configured base URL.
func (c *Client) Endpoint() string {
	return c.baseURL.String()
}

// newRequest builds a request for (method, path), encodes query and
// body, and asks the credential strategy to inject auth headers. path
// must already be escaped where it embeds user-supplied names.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	endpoint := strings.TrimSuffix(c.baseURL.String(), "/") + path

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("hsds: parsing request URL: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("hsds: marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("hsds: creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if err := c.creds.Apply(req); err != nil {
		return nil, err
	}

	c.logger.Debug("request",
		"method", method,
		"path", path,
		"query", u.RawQuery,
	)

	return req, nil
}

// do sends the request and decodes a 2xx JSON response into out.
// Pass nil out to discard the body.
func (c *Client) do(req *http.Request, out interface{}) error {
	body, err := c.send(req)
	if err != nil {
		return err
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("hsds: decoding response: %w", err)
		}
	}
	return nil
}

// doRaw sends the request and returns the 2xx response body verbatim.
func (c *Client) doRaw(req *http.Request) ([]byte, error) {
	return c.send(req)
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hsds: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("hsds: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyError(resp.StatusCode, body)
	}
	return body, nil
}

// classifyError turns a non-2xx response into an *APIError, pulling
// the message out of the server's JSON error body when present.
func classifyError(status int, body []byte) error {
	message := fmt.Sprintf("HTTP %d", status)

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Message != "":
			message = errResp.Message
		case errResp.Error != "":
			message = errResp.Error
		}
	}

	return &APIError{StatusCode: status, Message: message}
}

// withDomain returns query values carrying the domain path parameter,
// which every operation sends.
func withDomain(domain string) url.Values {
	q := url.Values{}
	q.Set("domain", domain)
	return q
}

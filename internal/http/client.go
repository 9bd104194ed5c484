package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/stytch-mgmt/internal/auth"
	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
)

// HTTP methods used by the management API.
const (
	MethodGet    = http.MethodGet
	MethodPost   = http.MethodPost
	MethodPut    = http.MethodPut
	MethodPatch  = http.MethodPatch
	MethodDelete = http.MethodDelete
)

// Logger is the logging interface used by the HTTP client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the HTTP client shared by every resource client. It holds no
// mutable state after construction and is safe for concurrent use.
type Client struct {
	baseURL       string
	httpClient    *retryablehttp.Client
	authenticator auth.Authenticator
	userAgent     string
	timeout       time.Duration
	logger        Logger
	debug         bool
}

// Option configures the HTTP client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-request deadline. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a new HTTP client. Requests are sent exactly once; the
// retrying transport is configured never to retry. A nil authenticator sends
// no Authorization header.
func NewClient(baseURL string, authenticator auth.Authenticator, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	client := &Client{
		baseURL:       baseURL,
		httpClient:    retryClient,
		authenticator: authenticator,
		userAgent:     constants.DefaultUserAgent,
		timeout:       constants.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func neverRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}

// BaseURL returns the resolved base URL. It always ends with a slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request deadline.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Request represents an HTTP request. Path is a template relative to the
// base URL whose {name} placeholders are filled from PathParams.
type Request struct {
	Method     string
	Path       string
	PathParams map[string]string
	Query      url.Values
	Body       interface{}
	Headers    map[string]string
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	URL        string
}

// RequestID returns the request id reported by the server, if any.
func (r *Response) RequestID() string {
	return r.Headers.Get(constants.HeaderRequestID)
}

// Do executes an HTTP request. A response is returned together with an
// *mgmt.APIError for non-2xx statuses; path validation failures return
// *mgmt.ClientError and transport failures *mgmt.RequestError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	path, err := ExpandPath(req.Path, req.PathParams)
	if err != nil {
		return nil, err
	}

	fullURL := c.baseURL + strings.TrimPrefix(path, "/")
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var rawBody interface{}

	if req.Body != nil {
		body, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &mgmt.RequestError{Method: req.Method, URL: fullURL, Err: fmt.Errorf("encoding request body: %w", err)}
		}

		rawBody = body
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, &mgmt.RequestError{Method: req.Method, URL: fullURL, Err: err}
	}

	c.setHeaders(httpReq, req)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &mgmt.RequestError{Method: req.Method, URL: fullURL, Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &mgmt.RequestError{Method: req.Method, URL: fullURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
		URL:        fullURL,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
			"request_id":  response.RequestID(),
			"duration":    time.Since(start).String(),
		})
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return response, parseAPIError(response)
	}

	return response, nil
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *Request) {
	httpReq.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	httpReq.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)

	if c.authenticator != nil {
		httpReq.Header.Set(constants.HeaderAuthorization, c.authenticator.AuthorizationHeader())
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

// parseAPIError decodes the error envelope. Bodies that are not an envelope
// still produce an APIError carrying the HTTP status and the raw body.
func parseAPIError(resp *Response) *mgmt.APIError {
	apiErr := &mgmt.APIError{}

	err := json.Unmarshal(resp.Body, apiErr)
	if err != nil || (apiErr.ErrorType == "" && apiErr.ErrorMessage == "") {
		apiErr = &mgmt.APIError{ErrorMessage: strings.TrimSpace(string(resp.Body))}
		if apiErr.ErrorMessage == "" {
			apiErr.ErrorMessage = http.StatusText(resp.StatusCode)
		}
	}

	if apiErr.StatusCode == 0 {
		apiErr.StatusCode = resp.StatusCode
	}

	if apiErr.RequestID == "" {
		apiErr.RequestID = resp.RequestID()
	}

	return apiErr
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: MethodPatch,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: MethodDelete,
		Path:   path,
	})
}

// Execute sends req and decodes a 2xx body into T. When T carries response
// metadata, a missing status code or request id is filled in from the HTTP
// response. A 2xx body that cannot be decoded is a *mgmt.RequestError.
func Execute[T any](ctx context.Context, c *Client, req *Request) (*T, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	result := new(T)

	if len(bytes.TrimSpace(resp.Body)) > 0 {
		err = json.Unmarshal(resp.Body, result)
		if err != nil {
			return nil, &mgmt.RequestError{
				Method: req.Method,
				URL:    resp.URL,
				Err:    fmt.Errorf("decoding response body: %w", err),
			}
		}
	}

	if withMeta, ok := any(result).(interface{ Meta() *mgmt.ResponseMeta }); ok {
		meta := withMeta.Meta()
		if meta.StatusCode == 0 {
			meta.StatusCode = resp.StatusCode
		}

		if meta.RequestID == "" {
			meta.RequestID = resp.RequestID()
		}
	}

	return result, nil
}

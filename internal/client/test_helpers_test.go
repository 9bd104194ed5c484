package client_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fivetwenty-io/stytch-mgmt/internal/client"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKeyID     = "workspace-key-prod-4881d1c8-0b77-4d6a-9ab2-5e46d3ff9e1b"
	testKeySecret = "test-workspace-secret"
	testProject   = "project-test-123"
	testEnv       = "test"
	testRequestID = "request-id-test-55555555-5555-4555-8555-555555555555"
)

// newTestClient creates a client pointed at a TLS test server.
func newTestClient(t *testing.T, server *httptest.Server) *client.Client {
	t.Helper()

	c, err := client.New(&mgmt.Config{
		WorkspaceKeyID:     testKeyID,
		WorkspaceKeySecret: testKeySecret,
		BaseURL:            server.URL,
		HTTPClient:         server.Client(),
	})
	require.NoError(t, err)

	return c
}

// countingTransport counts round trips and fails every one of them.
type countingTransport struct {
	calls atomic.Int32
}

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	c.calls.Add(1)

	return nil, assert.AnError
}

// newOfflineClient creates a client whose transport records every call.
func newOfflineClient(t *testing.T) (*client.Client, *countingTransport) {
	t.Helper()

	transport := &countingTransport{}

	c, err := client.New(&mgmt.Config{
		WorkspaceKeyID:     testKeyID,
		WorkspaceKeySecret: testKeySecret,
		HTTPClient:         &http.Client{Transport: transport},
	})
	require.NoError(t, err)

	return c, transport
}

// TestOperation describes one resource operation and the request it must produce.
type TestOperation struct {
	Name string
	Call func(context.Context, *client.Client) (interface{}, error)

	ExpectedMethod string
	// ExpectedPath is the escaped request path.
	ExpectedPath  string
	ExpectedQuery string
	// ExpectedBody is compared as JSON; empty means no body is expected.
	ExpectedBody string

	StatusCode int
	Response   string
	Check      func(*testing.T, interface{})
}

// RunOperationTests runs each operation against a server that verifies the request.
func RunOperationTests(t *testing.T, tests []TestOperation) {
	t.Helper()

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedMethod, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.URL.EscapedPath())
				assert.Equal(t, testCase.ExpectedQuery, request.URL.RawQuery)

				body, err := io.ReadAll(request.Body)
				assert.NoError(t, err)

				if testCase.ExpectedBody == "" {
					assert.Empty(t, body)
				} else {
					assert.JSONEq(t, testCase.ExpectedBody, string(body))
				}

				statusCode := testCase.StatusCode
				if statusCode == 0 {
					statusCode = http.StatusOK
				}

				writer.Header().Set("Content-Type", "application/json")
				writer.Header().Set("X-Request-Id", testRequestID)
				writer.WriteHeader(statusCode)
				_, _ = io.WriteString(writer, testCase.Response)
			}))
			defer server.Close()

			result, err := testCase.Call(context.Background(), newTestClient(t, server))
			require.NoError(t, err)
			require.NotNil(t, result)

			if withMeta, ok := result.(interface{ Meta() *mgmt.ResponseMeta }); ok {
				assert.Equal(t, testRequestID, withMeta.Meta().RequestID)
			}

			if testCase.Check != nil {
				testCase.Check(t, result)
			}
		})
	}
}

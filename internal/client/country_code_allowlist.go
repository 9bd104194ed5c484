package client

import (
	"context"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// CountryCodeAllowlistClient implements mgmt.CountryCodeAllowlistClient
type CountryCodeAllowlistClient struct {
	httpClient *http.Client
}

// NewCountryCodeAllowlistClient creates a new country code allowlist client
func NewCountryCodeAllowlistClient(httpClient *http.Client) *CountryCodeAllowlistClient {
	return &CountryCodeAllowlistClient{
		httpClient: httpClient,
	}
}

// GetAllowedSMSCountryCodes implements mgmt.CountryCodeAllowlistClient.GetAllowedSMSCountryCodes
func (c *CountryCodeAllowlistClient) GetAllowedSMSCountryCodes(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.CountryCodesResponse, error) {
	return c.get(ctx, constants.APIPathSMSCountryCodes, request)
}

// SetAllowedSMSCountryCodes implements mgmt.CountryCodeAllowlistClient.SetAllowedSMSCountryCodes
func (c *CountryCodeAllowlistClient) SetAllowedSMSCountryCodes(ctx context.Context, request *mgmt.SetCountryCodesRequest) (*mgmt.CountryCodesResponse, error) {
	return c.set(ctx, constants.APIPathSMSCountryCodes, request)
}

// GetAllowedWhatsAppCountryCodes implements mgmt.CountryCodeAllowlistClient.GetAllowedWhatsAppCountryCodes
func (c *CountryCodeAllowlistClient) GetAllowedWhatsAppCountryCodes(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.CountryCodesResponse, error) {
	return c.get(ctx, constants.APIPathWhatsAppCountryCodes, request)
}

// SetAllowedWhatsAppCountryCodes implements mgmt.CountryCodeAllowlistClient.SetAllowedWhatsAppCountryCodes
func (c *CountryCodeAllowlistClient) SetAllowedWhatsAppCountryCodes(ctx context.Context, request *mgmt.SetCountryCodesRequest) (*mgmt.CountryCodesResponse, error) {
	return c.set(ctx, constants.APIPathWhatsAppCountryCodes, request)
}

func (c *CountryCodeAllowlistClient) get(ctx context.Context, path string, request *mgmt.EnvironmentRequest) (*mgmt.CountryCodesResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.CountryCodesResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       path,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
	})
}

// set replaces the whole allowlist for one channel.
func (c *CountryCodeAllowlistClient) set(ctx context.Context, path string, request *mgmt.SetCountryCodesRequest) (*mgmt.CountryCodesResponse, error) {
	if request == nil {
		request = &mgmt.SetCountryCodesRequest{}
	}

	return http.Execute[mgmt.CountryCodesResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPut,
		Path:       path,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
		Body:       request,
	})
}

// Package client implements the HTTP client for the Renegade external
// matching API: request signing, per-network endpoints, and the wire types
// exchanged with the auth server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	// Auth server base URLs per network
	ArbitrumOneBaseURL     = "https://arbitrum-one.auth-server.renegade.fi"
	ArbitrumSepoliaBaseURL = "https://arbitrum-sepolia.auth-server.renegade.fi"
	BaseMainnetBaseURL     = "https://base-mainnet.auth-server.renegade.fi"
	BaseSepoliaBaseURL     = "https://base-sepolia.auth-server.renegade.fi"

	apiKeyHeader     = "x-renegade-api-key"
	sdkVersionHeader = "x-renegade-sdk-version"

	requestExternalMatchRoute = "/v0/matching-engine/request-external-match"

	disableGasSponsorshipParam = "disable_gas_sponsorship"
	gasRefundAddressParam      = "refund_address"

	sdkVersion = "go-v0.1.0"
)

// APIError is returned when the matching API replies with an unexpected status
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("matching API returned status %d: %s", e.StatusCode, e.Body)
}

// MatchOptions configures an external match request
type MatchOptions struct {
	DoGasEstimation       bool
	ReceiverAddress       string
	RequestGasSponsorship bool
	GasRefundAddress      string
	UpdatedOrder          *ExternalOrder
}

// NewMatchOptions returns the default options
func NewMatchOptions() *MatchOptions {
	return &MatchOptions{}
}

// WithGasEstimation toggles gas estimation on the settlement transaction
func (o *MatchOptions) WithGasEstimation(doGasEstimation bool) *MatchOptions {
	o.DoGasEstimation = doGasEstimation
	return o
}

// WithReceiverAddress sets the address receiving the match output
func (o *MatchOptions) WithReceiverAddress(receiverAddress string) *MatchOptions {
	o.ReceiverAddress = receiverAddress
	return o
}

// WithGasSponsorship requests gas sponsorship, optionally directing the refund
// to the given address
func (o *MatchOptions) WithGasSponsorship(requestGasSponsorship bool, gasRefundAddress string) *MatchOptions {
	o.RequestGasSponsorship = requestGasSponsorship
	o.GasRefundAddress = gasRefundAddress
	return o
}

// WithUpdatedOrder replaces the order submitted on the wire, for callers that
// revise amounts after an earlier quote
func (o *MatchOptions) WithUpdatedOrder(updatedOrder *ExternalOrder) *MatchOptions {
	o.UpdatedOrder = updatedOrder
	return o
}

// BuildRequestPath builds the request path with its query parameters
func (o *MatchOptions) BuildRequestPath() string {
	disableSponsorship := "true"
	if o.RequestGasSponsorship {
		disableSponsorship = "false"
	}

	path := fmt.Sprintf("%s?%s=%s", requestExternalMatchRoute, disableGasSponsorshipParam, disableSponsorship)
	if o.GasRefundAddress != "" {
		path += fmt.Sprintf("&%s=%s", gasRefundAddressParam, o.GasRefundAddress)
	}
	return path
}

// ExternalMatchClient requests quotes from the Renegade external matching API.
// Construction is cheap; a client holds no state beyond its credentials and
// endpoint, so callers may build one per call or share one freely.
type ExternalMatchClient struct {
	apiKey     string
	httpClient *relayerHTTPClient
}

// New creates a client against the given auth server base URL
func New(baseURL, apiKey, apiSecret string) *ExternalMatchClient {
	return &ExternalMatchClient{
		apiKey:     apiKey,
		httpClient: newRelayerHTTPClient(baseURL, apiSecret),
	}
}

// NewArbitrumOneClient creates a client configured for Arbitrum One
func NewArbitrumOneClient(apiKey, apiSecret string) *ExternalMatchClient {
	return New(ArbitrumOneBaseURL, apiKey, apiSecret)
}

// NewArbitrumSepoliaClient creates a client configured for the Arbitrum Sepolia testnet
func NewArbitrumSepoliaClient(apiKey, apiSecret string) *ExternalMatchClient {
	return New(ArbitrumSepoliaBaseURL, apiKey, apiSecret)
}

// NewBaseMainnetClient creates a client configured for Base mainnet
func NewBaseMainnetClient(apiKey, apiSecret string) *ExternalMatchClient {
	return New(BaseMainnetBaseURL, apiKey, apiSecret)
}

// NewBaseSepoliaClient creates a client configured for the Base Sepolia testnet
func NewBaseSepoliaClient(apiKey, apiSecret string) *ExternalMatchClient {
	return New(BaseSepoliaBaseURL, apiKey, apiSecret)
}

// RequestExternalMatch requests a match for the order with the default
// options, which include gas sponsorship. A nil response with a nil error
// means the venue declined to quote the order.
func (c *ExternalMatchClient) RequestExternalMatch(ctx context.Context, order *ExternalOrder) (*ExternalMatchResponse, error) {
	options := NewMatchOptions().WithGasSponsorship(true, "")
	return c.RequestExternalMatchWithOptions(ctx, order, options)
}

// RequestExternalMatchWithOptions requests a match for the order
func (c *ExternalMatchClient) RequestExternalMatchWithOptions(ctx context.Context, order *ExternalOrder, options *MatchOptions) (*ExternalMatchResponse, error) {
	if options.UpdatedOrder != nil {
		order = options.UpdatedOrder
	}
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}

	request := ExternalMatchRequest{
		DoGasEstimation: options.DoGasEstimation,
		ReceiverAddress: options.ReceiverAddress,
		ExternalOrder:   order,
	}

	path := options.BuildRequestPath()
	resp, err := c.httpClient.PostWithHeaders(ctx, path, request, c.headers())
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusNoContent:
		// No quote available for this order
		return nil, nil
	case http.StatusOK:
		var matchResp ExternalMatchResponse
		if err := json.Unmarshal(resp.Body, &matchResp); err != nil {
			return nil, fmt.Errorf("failed to decode match response: %w", err)
		}
		if err := matchResp.MatchBundle.Validate(); err != nil {
			return nil, fmt.Errorf("malformed match response: %w", err)
		}
		return &matchResp, nil
	default:
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(resp.Body),
		}
	}
}

// headers returns the API key and SDK version headers attached to every call
func (c *ExternalMatchClient) headers() http.Header {
	headers := make(http.Header)
	headers.Set(apiKeyHeader, c.apiKey)
	headers.Set(sdkVersionHeader, sdkVersion)
	return headers
}

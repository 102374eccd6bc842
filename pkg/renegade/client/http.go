package client

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	authHeader           = "x-renegade-auth"
	authExpirationHeader = "x-renegade-auth-expiration"

	// signatureTTL is how long a request signature remains valid
	signatureTTL = 10 * time.Second

	requestTimeout = 30 * time.Second
)

// relayerHTTPClient performs authenticated POSTs against the auth server. Every
// request carries an HMAC over the path, the expiration header, and the body,
// keyed by the API secret.
type relayerHTTPClient struct {
	baseURL string
	authKey []byte
	client  *http.Client
}

// relayerResponse carries the status code and raw body of a relayer reply
type relayerResponse struct {
	StatusCode int
	Body       []byte
}

func newRelayerHTTPClient(baseURL, apiSecret string) *relayerHTTPClient {
	return &relayerHTTPClient{
		baseURL: baseURL,
		authKey: decodeAuthKey(apiSecret),
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// decodeAuthKey interprets the API secret as base64url key material, falling
// back to the raw bytes if it does not decode
func decodeAuthKey(apiSecret string) []byte {
	if key, err := base64.RawURLEncoding.DecodeString(apiSecret); err == nil {
		return key
	}
	return []byte(apiSecret)
}

// PostWithHeaders sends a signed JSON POST to the given path. The caller's
// headers are attached before the auth headers are computed.
func (c *relayerHTTPClient) PostWithHeaders(ctx context.Context, path string, body interface{}, headers http.Header) (*relayerResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	c.signRequest(req, path, payload)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &relayerResponse{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}

// signRequest attaches the expiration and signature headers to the request
func (c *relayerHTTPClient) signRequest(req *http.Request, path string, body []byte) {
	expiration := time.Now().Add(signatureTTL).UnixMilli()
	expirationStr := strconv.FormatInt(expiration, 10)
	req.Header.Set(authExpirationHeader, expirationStr)

	mac := hmac.New(sha256.New, c.authKey)
	mac.Write([]byte(path))
	mac.Write([]byte(expirationStr))
	mac.Write(body)

	signature := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	req.Header.Set(authHeader, signature)
}

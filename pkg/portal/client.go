package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	UserAgent string
	client    *http.Client
	transport *http.Transport
	OnHeaders func(req *http.Request)
}

func GetDefaultTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
}

func NewDefaultClient(transport *http.Transport) *Client {
	if transport == nil {
		transport = GetDefaultTransport()
	}

	return &Client{
		client: &http.Client{
			Transport: transport,
			Timeout:   15 * time.Second,
		},
		transport: transport,
		UserAgent: "mi-portafolio",
	}
}

// PostJSON sends payload as a JSON body and returns the response body. Non-2xx
// responses are reported as errors carrying the upstream message.
func (f *Client) PostJSON(ctx context.Context, url string, payload any) ([]byte, error) {
	if f == nil || f.client == nil {
		return nil, fmt.Errorf("client is nil")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", f.UserAgent)

	if f.OnHeaders != nil {
		f.OnHeaders(req)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer CloseWithLog(resp.Body)

	data, err := ReadWithSizeLimit(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return data, fmt.Errorf("received non-2xx status code %d: %s", resp.StatusCode, string(data))
	}

	return data, nil
}

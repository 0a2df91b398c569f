package inspectorclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alovak/cardinfo/inspector/models"
)

type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

func (c *Client) Inspect(ctx context.Context, req models.InspectRequest) (*models.Inspection, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	var out models.Inspection
	if err := c.do(ctx, http.MethodPost, "/cards/inspect", "application/json", b, &out); err != nil {
		return nil, fmt.Errorf("inspect: %w", err)
	}
	return &out, nil
}

func (c *Client) InspectISO8583(ctx context.Context, raw []byte) (*models.Inspection, error) {
	var out models.Inspection
	if err := c.do(ctx, http.MethodPost, "/iso8583/inspect", "application/octet-stream", raw, &out); err != nil {
		return nil, fmt.Errorf("inspect iso8583: %w", err)
	}
	return &out, nil
}

func (c *Client) Brands(ctx context.Context) ([]models.BrandInfo, error) {
	var out []models.BrandInfo
	if err := c.do(ctx, http.MethodGet, "/brands", "", nil, &out); err != nil {
		return nil, fmt.Errorf("brands: %w", err)
	}
	return out, nil
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status=%d body=%s", e.StatusCode, e.Body)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte, out any) error {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

package imagehost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
)

// Client uploads payment proof screenshots to an external image host and
// returns a public URL.
type Client interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}

// HTTPClient implements Client against an imgbb-style upload API.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the upload API payload. Only the display URL is used.
type response struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
}

// NewHTTPClient creates an upload client with default timeout.
func NewHTTPClient(baseURL, apiKey string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse image host url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("image host url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Upload posts the file as multipart form data and returns the hosted URL.
func (c *HTTPClient) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var body []byte
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("image", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, content); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	endpoint := *c.baseURL
	query := endpoint.Query()
	query.Set("key", c.apiKey)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), pr)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domainErrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ = io.ReadAll(resp.Body)
		c.logger.Error("image upload failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return "", fmt.Errorf("%w: image host returned %s", domainErrors.ErrUpstreamUnavailable, resp.Status)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var data response
	if err := json.Unmarshal(body, &data); err != nil {
		return "", err
	}
	if !data.Success || data.Data.URL == "" {
		return "", fmt.Errorf("%w: image host rejected upload", domainErrors.ErrUpstreamUnavailable)
	}
	return data.Data.URL, nil
}

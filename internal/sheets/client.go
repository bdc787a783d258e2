// Package sheets implements the Store interface over a remote
// spreadsheet-style endpoint. The endpoint is addressed by a fixed URL and
// speaks plain CSV: GET returns the full sheet, PUT replaces it.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantry-tools/grocer/pkg/types"
)

const (
	contentTypeCSV = "text/csv"

	// requestTimeout bounds a single round trip to the sheet endpoint.
	// The design otherwise has no cancellation model; a hung remote call
	// would block the session forever without this.
	requestTimeout = 30 * time.Second

	// maxBodyBytes caps the response body read. A grocery sheet is a
	// handful of rows; anything near this limit is a misconfigured URL.
	maxBodyBytes = 8 << 20
)

// Client performs whole-sheet reads and writes against the remote endpoint.
type Client struct {
	url  string
	http *http.Client
	log  *zap.Logger
}

// NewClient creates a client for the given sheet URL.
func NewClient(url string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		url:  url,
		http: &http.Client{Timeout: requestTimeout},
		log:  logger,
	}
}

// Read fetches the full sheet as CSV. A 404 from the endpoint is treated as
// an empty sheet, matching a freshly created list.
func (c *Client) Read(ctx context.Context) ([]byte, error) {
	reqID := requestID()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build read request: %w", err)
	}
	req.Header.Set("Accept", contentTypeCSV)
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("sheet read failed", zap.String("request_id", reqID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", types.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.log.Debug("sheet not found, treating as empty", zap.String("request_id", reqID))
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: read returned status %d", types.ErrRemoteUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", types.ErrRemoteUnavailable, err)
	}

	c.log.Debug("sheet read",
		zap.String("request_id", reqID),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))
	return body, nil
}

// Update replaces the full sheet contents with the given CSV payload.
func (c *Client) Update(ctx context.Context, data []byte) error {
	reqID := requestID()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.url, strings.NewReader(string(data)))
	if err != nil {
		return fmt.Errorf("build update request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeCSV)
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("sheet update failed", zap.String("request_id", reqID), zap.Error(err))
		return fmt.Errorf("%w: %v", types.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: update returned status %d", types.ErrRemoteUnavailable, resp.StatusCode)
	}

	c.log.Debug("sheet updated",
		zap.String("request_id", reqID),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// requestID returns a UUID v7 correlation id for one HTTP round trip.
// Falls back to the zero UUID if generation fails.
func requestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}

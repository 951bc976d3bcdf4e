package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/pluqqy/docdesk/pkg/models"
)

// RequestIDHeader carries a per-call id so client and server logs can be joined.
const RequestIDHeader = "X-Request-ID"

const documentsPath = "/api/documents"

// DocumentService is the remote document API as seen by the views and commands.
type DocumentService interface {
	List(ctx context.Context, search string) ([]models.Document, error)
	Get(ctx context.Context, id models.DocumentID) (*models.Document, error)
	Create(ctx context.Context, input models.DocumentInput) (*models.Document, error)
	Delete(ctx context.Context, id models.DocumentID) error
}

// Options configures a Client
type Options struct {
	BaseURL string
	// Timeout bounds each request. Zero means no timeout.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
	Metrics    *Metrics
}

// Client talks to the document service over HTTP.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	logger  *zap.Logger
	metrics *Metrics
}

var _ DocumentService = (*Client)(nil)

// New creates a client for the service rooted at opts.BaseURL. Without an
// explicit HTTP client, requests go through an otelhttp transport so they
// join the active trace.
func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", opts.BaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", opts.BaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: base,
		http:    httpClient,
		timeout: opts.Timeout,
		logger:  logger,
		metrics: opts.Metrics,
	}, nil
}

// BaseURL returns the service root the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// List fetches all documents, narrowed server-side by search when it is non-empty.
func (c *Client) List(ctx context.Context, search string) ([]models.Document, error) {
	const op = "documents.list"

	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}

	var body models.DocumentList
	if err := c.do(ctx, op, http.MethodGet, documentsPath, query, nil, &body); err != nil {
		return nil, err
	}
	if body.Documents == nil {
		return []models.Document{}, nil
	}
	return body.Documents, nil
}

// Get fetches one document. Every non-2xx response is reported as ErrNotFound.
func (c *Client) Get(ctx context.Context, id models.DocumentID) (*models.Document, error) {
	const op = "documents.get"

	var doc models.Document
	err := c.do(ctx, op, http.MethodGet, documentPath(id), nil, nil, &doc)
	if err != nil {
		if se, ok := err.(*StatusError); ok {
			se.Err = ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Create submits a new document and returns the server's representation of it.
func (c *Client) Create(ctx context.Context, input models.DocumentInput) (*models.Document, error) {
	const op = "documents.create"

	var doc models.Document
	if err := c.do(ctx, op, http.MethodPost, documentsPath, nil, input, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes a document. The response body is ignored.
func (c *Client) Delete(ctx context.Context, id models.DocumentID) error {
	const op = "documents.delete"
	return c.do(ctx, op, http.MethodDelete, documentPath(id), nil, nil, nil)
}

// documentPath returns the escaped path of a single document
func documentPath(id models.DocumentID) string {
	return documentsPath + "/" + url.PathEscape(string(id))
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, in, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target, err := url.Parse(c.baseURL.String() + path)
	if err != nil {
		return fmt.Errorf("%s: build url: %w", op, err)
	}
	target.RawQuery = query.Encode()

	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return fmt.Errorf("%s: new request: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With(
		zap.String("op", op),
		zap.String("method", method),
		zap.String("url", target.String()),
		zap.String("request_id", requestID),
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.observe(op, "error", elapsed)
		log.Warn("request failed", zap.Duration("duration", elapsed), zap.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	c.metrics.observe(op, strconv.Itoa(resp.StatusCode), elapsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		log.Warn("unexpected status", zap.Int("status", resp.StatusCode), zap.Duration("duration", elapsed))
		return &StatusError{Op: op, StatusCode: resp.StatusCode}
	}

	log.Debug("request completed", zap.Int("status", resp.StatusCode), zap.Duration("duration", elapsed))

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

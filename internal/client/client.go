// Package client talks to the remote catalog service over its REST/JSON
// surface.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sushimenu/internal/logger"
	"sushimenu/internal/sushi"

	"go.uber.org/zap"
)

// Catalog is the remote catalog service contract used by the admin side.
type Catalog interface {
	GetAll(ctx context.Context) ([]sushi.Sushi, error)
	GetOne(ctx context.Context, id string) (*sushi.Sushi, error)
	Create(ctx context.Context, input sushi.CreateInput) (*sushi.Sushi, error)
	Archive(ctx context.Context, id string) (*sushi.Sushi, error)
}

// RequestError is a non-success HTTP outcome from the catalog service.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("catalog request failed with status %d: %s", e.StatusCode, e.Message)
}

type catalogClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) Catalog {
	if baseURL == "" {
		logger.L().Warn("catalog base URL is empty")
	}

	return &catalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *catalogClient) GetAll(ctx context.Context) ([]sushi.Sushi, error) {
	log := logger.FromCtx(ctx).With(zap.String("endpoint", "GET /sushi"))

	body, err := c.do(ctx, http.MethodGet, "/sushi", nil)
	if err != nil {
		return nil, err
	}

	var items []sushi.Sushi
	if err := json.Unmarshal(body, &items); err != nil {
		log.Error("failed decoding sushi list", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", sushi.ErrSchemaMismatch, err)
	}

	for i := range items {
		if err := items[i].ValidateShape(); err != nil {
			log.Error("sushi list failed schema validation",
				zap.Int("index", i),
				zap.Error(err),
			)
			return nil, err
		}
	}

	log.Debug("fetched sushi list", zap.Int("count", len(items)))
	return items, nil
}

func (c *catalogClient) GetOne(ctx context.Context, id string) (*sushi.Sushi, error) {
	body, err := c.do(ctx, http.MethodGet, "/sushi/"+id, nil)
	if err != nil {
		return nil, err
	}

	return decodeSushi(ctx, body)
}

func (c *catalogClient) Create(ctx context.Context, input sushi.CreateInput) (*sushi.Sushi, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("endpoint", "POST /sushi"),
		zap.String("name", input.Name),
	)

	payload, err := json.Marshal(input)
	if err != nil {
		log.Error("failed to marshal create payload", zap.Error(err))
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, "/sushi", payload)
	if err != nil {
		return nil, err
	}

	created, err := decodeSushi(ctx, body)
	if err != nil {
		return nil, err
	}

	log.Info("sushi created", zap.String("id", created.ID))
	return created, nil
}

func (c *catalogClient) Archive(ctx context.Context, id string) (*sushi.Sushi, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("endpoint", "DELETE /sushi/{id}"),
		zap.String("id", id),
	)

	body, err := c.do(ctx, http.MethodDelete, "/sushi/"+id, nil)
	if err != nil {
		return nil, err
	}

	archived, err := decodeSushi(ctx, body)
	if err != nil {
		return nil, err
	}

	log.Info("sushi archived")
	return archived, nil
}

// do performs one request and returns the response body, translating
// non-2xx statuses into a RequestError carrying the service's error
// message when one is present.
func (c *catalogClient) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", method),
		zap.String("path", path),
	)

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("catalog request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Warn("catalog returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(bodyBytes),
		}
	}

	return bodyBytes, nil
}

func decodeSushi(ctx context.Context, body []byte) (*sushi.Sushi, error) {
	var s sushi.Sushi
	if err := json.Unmarshal(body, &s); err != nil {
		logger.FromCtx(ctx).Error("failed decoding sushi", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", sushi.ErrSchemaMismatch, err)
	}

	if err := s.ValidateShape(); err != nil {
		return nil, err
	}

	return &s, nil
}

func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}

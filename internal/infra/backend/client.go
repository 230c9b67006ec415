// Package backend is the gateway's HTTP client for the hotel REST API. One
// file per resource group; every call carries the caller's credential and
// request id from the context.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"golang.org/x/time/rate"

	"hotel-portal/internal/infra"
	"hotel-portal/internal/pkg/config"
	"hotel-portal/internal/pkg/errs"
)

const (
	defaultMaxBodyBytes = 32 << 20
	headerRequestID     = "X-Request-ID"
)

type Client struct {
	baseURL    string
	http       *http.Client
	limiter    *rate.Limiter
	metrics    *Metrics
	logger     *slog.Logger
	loc        *time.Location
	thumbWidth int
	maxBody    int64
}

// NewClient reads the backend section for transport settings, the hotel
// time zone for LocalDateTime values and the thumbnail width for listings.
func NewClient(cfg config.Config, metrics *Metrics, logger *slog.Logger) (*Client, error) {
	loc, err := cfg.Hotel.Location()
	if err != nil {
		return nil, err
	}
	limit := rate.Inf
	if cfg.Backend.RPS > 0 {
		limit = rate.Limit(cfg.Backend.RPS)
	}
	burst := cfg.Backend.Burst
	if burst < 1 {
		burst = 1
	}
	maxBody := cfg.Backend.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.Backend.BaseURL, "/"),
		http:       &http.Client{Timeout: cfg.Backend.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		metrics:    metrics,
		logger:     logger,
		loc:        loc,
		thumbWidth: cfg.Image.ThumbnailWidth,
		maxBody:    maxBody,
	}, nil
}

type call struct {
	op          string
	method      string
	path        string
	query       any
	body        io.Reader
	contentType string
}

type response struct {
	body        []byte
	contentType string
}

func (c *Client) do(ctx context.Context, r call) (*response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errs.Mark(infra.WrapStoreErr(c.logger, infra.KindUnavailable, r.op+": rate limiter", err), ErrUnavailable)
	}

	target := c.baseURL + r.path
	if r.query != nil {
		values, err := query.Values(r.query)
		if err != nil {
			return nil, errs.Wrapf(err, "%s: encode query", r.op)
		}
		if encoded := values.Encode(); encoded != "" {
			target += "?" + encoded
		}
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, r.body)
	if err != nil {
		return nil, errs.Wrapf(err, "%s: build request", r.op)
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if token := credentialFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set(headerRequestID, id)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(r.op, 0, time.Since(start))
		return nil, errs.Mark(infra.WrapStoreErr(c.logger, infra.KindUnavailable, r.op, err), ErrUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	c.metrics.observe(r.op, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, errs.Mark(infra.WrapStoreErr(c.logger, infra.KindUnavailable, r.op+": read body", err), ErrUnavailable)
	}
	if int64(len(body)) > c.maxBody {
		return nil, errs.Mark(infra.WrapStoreErr(c.logger, infra.KindDecode, r.op+": read body", ErrBodyTooLarge), ErrBodyTooLarge)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := parseAPIError(resp.StatusCode, body)
		c.logger.Warn("backend call failed",
			slog.String("op", r.op),
			slog.String("request_id", RequestIDFrom(ctx)),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message),
		)
		return nil, apiErr
	}
	return &response{body: body, contentType: resp.Header.Get("Content-Type")}, nil
}

func (c *Client) decode(op string, body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return infra.WrapStoreErr(c.logger, infra.KindDecode, op+": decode response", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, q any, out any) error {
	resp, err := c.do(ctx, call{op: op, method: http.MethodGet, path: path, query: q})
	if err != nil {
		return err
	}
	return c.decode(op, resp.body, out)
}

// sendJSON sends in as a JSON body. A nil in sends no body.
func (c *Client) sendJSON(ctx context.Context, op, method, path string, in any, out any) error {
	r := call{op: op, method: method, path: path}
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errs.Wrapf(err, "%s: encode body", op)
		}
		r.body = bytes.NewReader(b)
		r.contentType = "application/json"
	}
	resp, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	return c.decode(op, resp.body, out)
}

func (c *Client) sendForm(ctx context.Context, op, method, path string, form *multipartForm, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return errs.Wrapf(err, "%s: encode form", op)
	}
	resp, err := c.do(ctx, call{op: op, method: method, path: path, body: body, contentType: contentType})
	if err != nil {
		return err
	}
	return c.decode(op, resp.body, out)
}

func (c *Client) getRaw(ctx context.Context, op, path string) (*response, error) {
	return c.do(ctx, call{op: op, method: http.MethodGet, path: path})
}

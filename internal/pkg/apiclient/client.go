package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
)

const refreshTimeout = 10 * time.Second

var (
	errNoRefreshToken = errors.New("no refresh token")
	errNoAccessToken  = errors.New("refresh response without access token")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request describes one backend call. Anonymous requests carry no bearer token and
// never go through the refresh flow.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      any
	Anonymous bool
}

// Response holds the envelope fields besides data.
type Response struct {
	Status  int
	Message string
	Meta    *PageMeta
}

type envelope struct {
	Success *bool             `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
	Data    json.RawMessage   `json:"data"`
	Meta    *PageMeta         `json:"meta"`
}

type Client struct {
	baseURL   string
	http      HTTPClient
	endpoints Endpoints
	log       *logrus.Logger

	refreshGroup singleflight.Group
}

func NewClient(baseURL string, httpClient HTTPClient, endpoints Endpoints, log *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      httpClient,
		endpoints: endpoints,
		log:       log,
	}
}

func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// Do sends req and decodes the envelope data into out (out may be nil).
//
// A 401 on an authenticated request triggers one refresh with the stored refresh token and a
// single replay. If the backend rejects the refresh the store is cleared and ErrSessionExpired is
// returned; a refresh that gets no answer leaves the credentials in place.
func (c *Client) Do(ctx context.Context, req Request, out any) (*Response, error) {
	var store TokenStore
	if !req.Anonymous {
		s, ok := TokenStoreFrom(ctx)
		if !ok {
			return nil, apperrors.ErrSessionExpired
		}
		store = s
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	retried := false
	for {
		var used Tokens
		if store != nil {
			used, err = store.Tokens(ctx)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", apperrors.ErrSessionExpired, err)
			}
			if used.AccessToken == "" && used.RefreshToken == "" {
				return nil, apperrors.ErrSessionExpired
			}
		}

		status, raw, err := c.send(ctx, req, body, used.AccessToken)
		if err != nil {
			return nil, err
		}

		if status == http.StatusUnauthorized && store != nil && !retried {
			retried = true
			if err := c.refresh(ctx, store, used); err != nil {
				return nil, err
			}
			continue
		}

		return c.decode(req, status, raw, out)
	}
}

func (c *Client) refresh(ctx context.Context, store TokenStore, used Tokens) error {
	ch := c.refreshGroup.DoChan(store.Key(), func() (any, error) {
		// The refresh is shared by every waiting request, so one caller going away must not cancel it.
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		current, err := store.Tokens(refreshCtx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrSessionExpired, err)
		}
		// Another request already rotated the tokens while ours was in flight.
		if current.AccessToken != "" && current.AccessToken != used.AccessToken {
			return current, nil
		}
		if current.RefreshToken == "" {
			return nil, errNoRefreshToken
		}

		var fresh Tokens
		_, err = c.Do(refreshCtx, Request{
			Method:    http.MethodPost,
			Path:      c.endpoints.RefreshToken,
			Body:      map[string]string{"refresh_token": current.RefreshToken},
			Anonymous: true,
		}, &fresh)
		if err != nil {
			return nil, err
		}
		if fresh.AccessToken == "" {
			return nil, errNoAccessToken
		}
		if fresh.RefreshToken == "" {
			fresh.RefreshToken = current.RefreshToken
		}
		if err := store.SaveTokens(refreshCtx, fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res = <-ch:
	}
	if res.Err == nil {
		return nil
	}

	logger := c.log.WithFields(logrus.Fields{
		"store":  store.Key(),
		"shared": res.Shared,
	}).WithError(res.Err)

	if !refreshRejected(res.Err) {
		logger.Warn("Token refresh did not complete, keeping credentials")
		return fmt.Errorf("refresh token: %w", res.Err)
	}

	logger.Warn("Token refresh failed, clearing credentials")
	if clearErr := store.ClearTokens(context.WithoutCancel(ctx)); clearErr != nil {
		c.log.WithError(clearErr).Warn("Failed to clear credentials after refresh failure")
	}
	return fmt.Errorf("%w: %v", apperrors.ErrSessionExpired, res.Err)
}

// refreshRejected reports whether the backend actually refused the refresh token, as opposed to
// the refresh not getting an answer.
func refreshRejected(err error) bool {
	if errors.Is(err, errNoRefreshToken) || errors.Is(err, errNoAccessToken) || errors.Is(err, apperrors.ErrSessionExpired) {
		return true
	}
	apiErr, ok := apperrors.AsAPIError(err)
	return ok && apiErr.Status < http.StatusInternalServerError
}

func (c *Client) send(ctx context.Context, req Request, body []byte, accessToken string) (int, []byte, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("build request %s %s: %w", req.Method, req.Path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if lang := languageFrom(ctx); lang != "" {
		httpReq.Header.Set("Accept-Language", lang)
	}
	if !req.Anonymous && accessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.WithFields(logrus.Fields{"method": req.Method, "path": req.Path}).WithError(err).Error("Backend request failed")
		return 0, nil, fmt.Errorf("%w: %v", apperrors.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: read body: %v", apperrors.ErrBackendUnavailable, err)
	}

	c.log.WithFields(logrus.Fields{
		"method":  req.Method,
		"path":    req.Path,
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	}).Debug("Backend request")

	return resp.StatusCode, raw, nil
}

func (c *Client) decode(req Request, status int, raw []byte, out any) (*Response, error) {
	var env envelope
	isEnvelope := len(bytes.TrimSpace(raw)) > 0 && json.Unmarshal(raw, &env) == nil

	if status >= http.StatusBadRequest || (isEnvelope && env.Success != nil && !*env.Success) {
		apiErr := &apperrors.APIError{
			Status: status,
			Method: req.Method,
			Path:   req.Path,
		}
		if apiErr.Status < http.StatusBadRequest {
			apiErr.Status = http.StatusBadRequest
		}
		if isEnvelope {
			apiErr.Message = env.Message
			if apiErr.Message == "" {
				apiErr.Message = env.Error
			}
			apiErr.Fields = env.Errors
		}
		return nil, apiErr
	}

	res := &Response{Status: status}
	if isEnvelope {
		res.Message = env.Message
		res.Meta = env.Meta
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return res, nil
	}

	payload := raw
	if isEnvelope && env.Data != nil {
		payload = env.Data
	}
	if string(bytes.TrimSpace(payload)) == "null" {
		return res, nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return nil, fmt.Errorf("decode %s %s response: %w", req.Method, req.Path, err)
	}
	return res, nil
}

func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidRequestPayload, err)
	}
	return b, nil
}

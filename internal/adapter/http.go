package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/channel-console/internal/config"
	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/internal/utils"
	"github.com/MKhiriev/channel-console/models"
)

const (
	usersPath        = "/users/"
	channelsPath     = "/channels/"
	userChannelsPath = "/user-channels/"
)

type httpAPIAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs the resty implementation of [APIAdapter].
// It normalises and validates the base URL from adapterCfg.BaseURL and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPAPIAdapter(adapterCfg config.Adapter, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	return &httpAPIAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ── Users ───────────────────────────────────────────────────────────────────

func (h *httpAPIAdapter) ListUsers(ctx context.Context, params models.ListParams) ([]models.User, error) {
	return list[models.User](ctx, h, usersPath, params)
}

func (h *httpAPIAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	return call[models.User](ctx, h, http.MethodGet, itemPath(usersPath, id), nil)
}

func (h *httpAPIAdapter) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	return call[models.User](ctx, h, http.MethodPost, usersPath, user)
}

func (h *httpAPIAdapter) UpdateUser(ctx context.Context, id int64, user models.UserCreate) (models.User, error) {
	return call[models.User](ctx, h, http.MethodPut, itemPath(usersPath, id), user)
}

func (h *httpAPIAdapter) DeleteUser(ctx context.Context, id int64) error {
	_, err := h.do(ctx, http.MethodDelete, itemPath(usersPath, id), nil, nil)
	return err
}

// ── Channels ────────────────────────────────────────────────────────────────

func (h *httpAPIAdapter) ListChannels(ctx context.Context, params models.ListParams) ([]models.Channel, error) {
	return list[models.Channel](ctx, h, channelsPath, params)
}

func (h *httpAPIAdapter) GetChannel(ctx context.Context, id int64) (models.Channel, error) {
	return call[models.Channel](ctx, h, http.MethodGet, itemPath(channelsPath, id), nil)
}

func (h *httpAPIAdapter) CreateChannel(ctx context.Context, channel models.ChannelCreate) (models.Channel, error) {
	return call[models.Channel](ctx, h, http.MethodPost, channelsPath, channel)
}

func (h *httpAPIAdapter) UpdateChannel(ctx context.Context, id int64, channel models.ChannelCreate) (models.Channel, error) {
	return call[models.Channel](ctx, h, http.MethodPut, itemPath(channelsPath, id), channel)
}

func (h *httpAPIAdapter) DeleteChannel(ctx context.Context, id int64) error {
	_, err := h.do(ctx, http.MethodDelete, itemPath(channelsPath, id), nil, nil)
	return err
}

// ── User-channel mappings ───────────────────────────────────────────────────

func (h *httpAPIAdapter) ListUserChannels(ctx context.Context, params models.ListParams) ([]models.UserChannel, error) {
	return list[models.UserChannel](ctx, h, userChannelsPath, params)
}

func (h *httpAPIAdapter) GetUserChannel(ctx context.Context, id int64) (models.UserChannel, error) {
	return call[models.UserChannel](ctx, h, http.MethodGet, itemPath(userChannelsPath, id), nil)
}

func (h *httpAPIAdapter) CreateUserChannel(ctx context.Context, mapping models.UserChannelCreate) (models.UserChannel, error) {
	return call[models.UserChannel](ctx, h, http.MethodPost, userChannelsPath, mapping)
}

func (h *httpAPIAdapter) UpdateUserChannel(ctx context.Context, id int64, mapping models.UserChannelCreate) (models.UserChannel, error) {
	return call[models.UserChannel](ctx, h, http.MethodPut, itemPath(userChannelsPath, id), mapping)
}

func (h *httpAPIAdapter) DeleteUserChannel(ctx context.Context, id int64) error {
	_, err := h.do(ctx, http.MethodDelete, itemPath(userChannelsPath, id), nil, nil)
	return err
}

// ── plumbing ────────────────────────────────────────────────────────────────

// do sends one request and returns the response body, or nil for 204 and
// empty bodies. The X-Request-ID is taken from ctx when present.
func (h *httpAPIAdapter) do(ctx context.Context, method, path string, query map[string]string, body any) ([]byte, error) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}
	log := h.logger.WithRequestID(requestID)

	req := h.client.R().
		SetContext(ctx).
		SetHeader(utils.RequestIDHeader, requestID).
		SetQueryParams(query)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("api request failed")
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode()).Msg("api error response")
		return nil, err
	}

	if resp.StatusCode() == http.StatusNoContent || len(bytes.TrimSpace(resp.Body())) == 0 {
		return nil, nil
	}
	return resp.Body(), nil
}

// call sends a request and decodes the body into T. An empty body yields the
// zero T.
func call[T any](ctx context.Context, h *httpAPIAdapter, method, path string, body any) (T, error) {
	var out T

	data, err := h.do(ctx, method, path, nil, body)
	if err != nil || data == nil {
		return out, err
	}
	if err = decode(data, &out); err != nil {
		return out, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return out, nil
}

func list[T any](ctx context.Context, h *httpAPIAdapter, path string, params models.ListParams) ([]T, error) {
	data, err := h.do(ctx, http.MethodGet, path, params.Query(), nil)
	if err != nil {
		return nil, err
	}

	items := []T{}
	if data == nil {
		return items, nil
	}
	if err = decode(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s list response: %w", path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// decode keeps numbers inside config and contact_details as json.Number so
// that they are sent back unchanged.
func decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func itemPath(collection string, id int64) string {
	return collection + strconv.FormatInt(id, 10)
}

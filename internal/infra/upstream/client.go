// Package upstream implements the repository interfaces against the remote
// tracking REST API. Responses are duck-typed: a collection may arrive as a
// bare array, or wrapped in a data or result field; normalization happens
// in exactly one place here, with a named error when no shape matches.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"fleetgate/config"
	"fleetgate/internal/errors"

	"go.uber.org/fx"
)

// ErrUnexpectedFormat is returned when a response body is well-formed JSON
// but matches none of the accepted collection shapes.
var ErrUnexpectedFormat = errors.New("Format response tidak sesuai")

// Error is a failed upstream call reduced to a user-facing message.
// StatusCode is zero for transport and parse failures.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// IsStatus reports whether err is an upstream Error with the given status.
func IsStatus(err error, code int) bool {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.StatusCode == code
	}

	return false
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client is the shared HTTP transport for all upstream repositories.
type Client struct {
	httpClient *http.Client
	baseURL    string
	version    string
	logger     *slog.Logger
}

// NewClient creates the upstream API client.
func NewClient(params Params) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: params.Config.Upstream.Timeout},
		baseURL:    strings.TrimRight(params.Config.Upstream.BaseURL, "/"),
		version:    params.Config.Upstream.Version,
		logger:     params.Logger,
	}
}

// do issues one request and reads the full body. A non-nil error here is a
// transport failure; HTTP status handling is the caller's job.
func (c *Client) do(ctx context.Context, method, path, token string, deviceAuth bool, payload any) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to encode payload")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build request")
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		if deviceAuth {
			// The device endpoints expect the token a second time in a
			// legacy header.
			req.Header.Set("x-access-token", token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read response body")
	}

	c.logger.Debug("upstream call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	return resp, raw, nil
}

// envelope covers the wrapped response shapes.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Result json.RawMessage `json:"result"`
}

// decodeList normalizes a collection response. Accepted shapes, in order:
// bare array, {"data": [...]}, {"result": [...]}. Anything else is
// ErrUnexpectedFormat.
func decodeList[T any](raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrUnexpectedFormat
	}

	if trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, ErrUnexpectedFormat
		}

		return out, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, ErrUnexpectedFormat
	}

	for _, field := range []json.RawMessage{env.Data, env.Result} {
		if isJSONArray(field) {
			var out []T
			if err := json.Unmarshal(field, &out); err != nil {
				return nil, ErrUnexpectedFormat
			}

			return out, nil
		}
	}

	return nil, ErrUnexpectedFormat
}

// decodeRecords is the tolerant variant used for direct lookups: data and
// result may hold either an array or a single object, and an unrecognized
// shape yields an empty list rather than an error.
func decodeRecords[T any](raw []byte) []T {
	if out, err := decodeList[T](raw); err == nil {
		return out
	}

	trimmed := bytes.TrimSpace(raw)
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil
	}

	for _, field := range []json.RawMessage{env.Data, env.Result} {
		if isJSONObject(field) {
			var one T
			if err := json.Unmarshal(field, &one); err == nil {
				return []T{one}
			}
		}
	}

	return nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) > 0 && trimmed[0] == '['
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) > 0 && trimmed[0] == '{'
}

// bodyMessage pulls a human-readable message out of an error body, trying
// error.message then message.
func bodyMessage(raw []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ""
	}
	if parsed.Error.Message != "" {
		return parsed.Error.Message
	}

	return parsed.Message
}

// statusError maps an HTTP error status to its fixed user-facing message.
// action is the failed operation in Indonesian, e.g. "mengambil data device".
func statusError(status int, raw []byte, action string) *Error {
	extracted := bodyMessage(raw)
	var message string

	switch status {
	case http.StatusBadRequest:
		message = fallback(extracted, "Data tidak valid. Periksa kembali input Anda.")
	case http.StatusUnauthorized:
		message = "Sesi Anda telah berakhir. Silakan login kembali."
	case http.StatusForbidden:
		message = "Anda tidak memiliki izin untuk " + action + "."
	case http.StatusNotFound:
		message = "Endpoint API tidak ditemukan."
	case http.StatusConflict:
		message = fallback(extracted, "Data sudah ada.")
	case http.StatusUnprocessableEntity:
		message = fallback(extracted, "Data tidak dapat diproses. Periksa format input.")
	case http.StatusInternalServerError:
		message = "Terjadi kesalahan pada server. Silakan coba lagi nanti."
	default:
		message = fallback(extracted, fmt.Sprintf("HTTP %d: Gagal %s.", status, action))
	}

	return &Error{StatusCode: status, Message: message}
}

// transportError reduces a fetch or parse failure to a generic message.
func transportError(action string) *Error {
	return &Error{Message: "Terjadi kesalahan saat " + action + "."}
}

func fallback(preferred, alternative string) string {
	if preferred != "" {
		return preferred
	}

	return alternative
}

// cleanPayload drops empty-string and nil values so optional fields are
// omitted from the request body entirely.
func cleanPayload(payload map[string]any) map[string]any {
	cleaned := make(map[string]any, len(payload))
	for key, value := range payload {
		if value == nil || value == "" {
			continue
		}
		cleaned[key] = value
	}

	return cleaned
}

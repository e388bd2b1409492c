package astroApi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/tidwall/gjson"
)

const (
	EndpointCities         = "cities"
	EndpointBirthChart     = "birth-chart"
	EndpointGeneratePDF    = "generate-pdf"
	EndpointKundliMatching = "kundli-matching"
	EndpointDailyHoroscope = "daily-horoscope"
	EndpointChat           = "chat"
	EndpointChatHistory    = "chat-history"
)

const (
	OutcomeOK             = "ok"
	OutcomeServiceError   = "service_error"
	OutcomeTransportError = "transport_error"
)

// CallObserver получает сведения о каждом вызове сервиса (метрики)
type CallObserver interface {
	ObserveAstroCall(endpoint, outcome string, duration time.Duration)
}

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client - клиент для работы с сервисом ведических расчётов
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
	observer   CallObserver
}

// NewClient создаёт новый клиент для работы с астро-API
func NewClient(cfg *Config, log *slog.Logger, observer CallObserver) *Client {
	transport := &http.Transport{}

	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout(),
		},
		Log:      log,
		observer: observer,
	}
}

// buildURL собирает полный URL из BaseURL, Prefix и endpoint
func (c *Client) buildURL(endpoint string, segments ...string) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	parts := []string{"/", c.cfg.Prefix, endpoint}
	for _, s := range segments {
		parts = append(parts, url.PathEscape(s))
	}
	return baseURL + path.Join(parts...)
}

// setHeaders устанавливает стандартные заголовки для запросов к API
func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)
	}
}

func (c *Client) observe(endpoint, outcome string, started time.Time) {
	if c.observer != nil {
		c.observer.ObserveAstroCall(endpoint, outcome, time.Since(started))
	}
}

// do выполняет запрос и возвращает тело ответа со статусом 2xx.
// Любой другой статус превращается в *domain.ServiceError с detail из ответа.
func (c *Client) do(ctx context.Context, endpoint, method, rawURL string, payload any) ([]byte, error) {
	started := time.Now()

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s request: %w", endpoint, err)
		}
		body = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}
	c.setHeaders(httpReq, payload != nil)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.observe(endpoint, OutcomeTransportError, started)
		c.Log.Debug("astro API request failed", "endpoint", endpoint, "error", err)
		return nil, &domain.ServiceError{Err: fmt.Errorf("%s: %w", endpoint, err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(endpoint, OutcomeTransportError, started)
		return nil, &domain.ServiceError{Err: fmt.Errorf("%s: read response: %w", endpoint, err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.observe(endpoint, OutcomeServiceError, started)
		// Ошибка внешнего API - Debug
		c.Log.Debug("astro API returned non-2xx status",
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(respBody), 200),
		)
		return nil, &domain.ServiceError{
			Status: resp.StatusCode,
			Detail: parseDetail(resp.StatusCode, respBody),
		}
	}

	c.observe(endpoint, OutcomeOK, started)
	return respBody, nil
}

// parseDetail достаёт человекочитаемое сообщение из поля detail.
// detail бывает строкой или списком ошибок валидации с полем msg.
func parseDetail(status int, body []byte) string {
	if gjson.ValidBytes(body) {
		detail := gjson.GetBytes(body, "detail")
		switch {
		case detail.Type == gjson.String:
			return detail.String()
		case detail.IsArray():
			var msgs []string
			detail.ForEach(func(_, item gjson.Result) bool {
				if msg := item.Get("msg"); msg.Exists() {
					msgs = append(msgs, msg.String())
				}
				return true
			})
			if len(msgs) > 0 {
				return strings.Join(msgs, "; ")
			}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && !gjson.ValidBytes(body) {
		return truncateString(text, 500)
	}
	return http.StatusText(status)
}

func (c *Client) decode(endpoint string, body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		c.Log.Debug("failed to unmarshal astro API response",
			"endpoint", endpoint,
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("astro API %s unmarshal failed: %w", endpoint, err)
	}
	return nil
}

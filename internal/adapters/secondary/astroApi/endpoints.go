package astroApi

import (
	"context"
	"net/http"
	"net/url"
)

// GetCities возвращает каталог городов
func (c *Client) GetCities(ctx context.Context) (*CitiesResponse, error) {
	body, err := c.do(ctx, EndpointCities, http.MethodGet, c.buildURL(EndpointCities), nil)
	if err != nil {
		return nil, err
	}
	var resp CitiesResponse
	if err := c.decode(EndpointCities, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CalculateBirthChart рассчитывает карту; возвращает исходный JSON ответа
func (c *Client) CalculateBirthChart(ctx context.Context, req BirthDetails) ([]byte, error) {
	return c.do(ctx, EndpointBirthChart, http.MethodPost, c.buildURL(EndpointBirthChart), req)
}

// GetBirthChart получает ранее рассчитанную карту по id
func (c *Client) GetBirthChart(ctx context.Context, chartID string) ([]byte, error) {
	return c.do(ctx, EndpointBirthChart, http.MethodGet, c.buildURL(EndpointBirthChart, chartID), nil)
}

// GeneratePDF возвращает PDF-документ по карте
func (c *Client) GeneratePDF(ctx context.Context, chartID string) ([]byte, error) {
	return c.do(ctx, EndpointGeneratePDF, http.MethodPost, c.buildURL(EndpointGeneratePDF, chartID), nil)
}

func (c *Client) KundliMatching(ctx context.Context, req MatchingRequest) (*MatchingResponse, error) {
	body, err := c.do(ctx, EndpointKundliMatching, http.MethodPost, c.buildURL(EndpointKundliMatching), req)
	if err != nil {
		return nil, err
	}
	var resp MatchingResponse
	if err := c.decode(EndpointKundliMatching, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DailyHoroscope возвращает исходный JSON гороскопа; date в формате YYYY-MM-DD, может быть пустым
func (c *Client) DailyHoroscope(ctx context.Context, rashi, date string) ([]byte, error) {
	rawURL := c.buildURL(EndpointDailyHoroscope, rashi)
	if date != "" {
		rawURL += "?" + url.Values{"date": {date}}.Encode()
	}
	return c.do(ctx, EndpointDailyHoroscope, http.MethodGet, rawURL, nil)
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	body, err := c.do(ctx, EndpointChat, http.MethodPost, c.buildURL(EndpointChat), req)
	if err != nil {
		return nil, err
	}
	var resp ChatResponse
	if err := c.decode(EndpointChat, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ChatHistory(ctx context.Context, sessionID string) (*ChatHistoryResponse, error) {
	body, err := c.do(ctx, EndpointChatHistory, http.MethodGet, c.buildURL(EndpointChatHistory, sessionID), nil)
	if err != nil {
		return nil, err
	}
	var resp ChatHistoryResponse
	if err := c.decode(EndpointChatHistory, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

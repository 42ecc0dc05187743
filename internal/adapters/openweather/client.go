package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"weather-page-service/internal/domain"

	"github.com/go-resty/resty/v2"
)

const providerName = "openweather"

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Client implements WeatherProvider and Geocoder against the OpenWeather APIs.
//
// Every request carries the API key and, for weather calls, imperial units.
// Failed calls are not retried. The client is safe for concurrent use.
type Client struct {
	session *resty.Client
	apiKey  string
	baseURL string
	geoURL  string
}

func NewClient(apiKey, baseURL, geoURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openweather api key is empty")
	}

	session := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	return &Client{
		session: session,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		geoURL:  strings.TrimRight(geoURL, "/"),
	}, nil
}

// getJSON issues a GET and decodes a 2xx body into out.
// Any failure is reported as a domain.UpstreamError.
func (c *Client) getJSON(ctx context.Context, url string, query map[string]string, out any) error {
	resp, err := c.session.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetQueryParam("appid", c.apiKey).
		Get(url)
	if err != nil {
		return &domain.UpstreamError{Provider: providerName, Err: fmt.Errorf("execute request: %w", err)}
	}

	if !resp.IsSuccess() {
		return &domain.UpstreamError{
			Provider: providerName,
			Status:   resp.StatusCode(),
			Err: &httpStatusError{
				Code: resp.StatusCode(),
				Body: strings.TrimSpace(resp.String()),
			},
		}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &domain.UpstreamError{Provider: providerName, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}

func malformed(format string, args ...any) error {
	return &domain.UpstreamError{Provider: providerName, Err: fmt.Errorf("malformed response: "+format, args...)}
}

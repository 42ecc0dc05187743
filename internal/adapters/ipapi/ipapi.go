package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/platform/obs"
	"weather-page-service/internal/ports"

	"github.com/go-resty/resty/v2"
)

const providerName = "ipapi"

var _ ports.IPLocator = (*Locator)(nil)

type lookupResponse struct {
	City        string   `json:"city"`
	RegionCode  string   `json:"region_code"`
	CountryName string   `json:"country_name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`

	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// Locator resolves the calling address through ipapi.co's /json/ endpoint.
// No address is sent; the service infers it from the connection.
type Locator struct {
	session *resty.Client
	baseURL string
}

func NewLocator(baseURL string, timeout time.Duration) *Locator {
	return &Locator{
		session: resty.New().SetTimeout(timeout).SetRetryCount(0),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func upstream(status int, err error) error {
	return &domain.UpstreamError{Provider: providerName, Status: status, Err: err}
}

func (l *Locator) LocateByIP(ctx context.Context) (_ domain.Place, err error) {
	defer obs.Time(ctx, "ipapi.LocateByIP")(&err)

	resp, err := l.session.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(l.baseURL + "/json/")
	if err != nil {
		return domain.Place{}, upstream(0, fmt.Errorf("execute request: %w", err))
	}
	if !resp.IsSuccess() {
		return domain.Place{}, upstream(resp.StatusCode(), fmt.Errorf("unexpected status: %s", strings.TrimSpace(resp.String())))
	}

	var decoded lookupResponse
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return domain.Place{}, upstream(0, fmt.Errorf("decode response: %w", err))
	}

	if decoded.Error {
		return domain.Place{}, upstream(0, fmt.Errorf("lookup rejected: %s", decoded.Reason))
	}

	missing := make([]string, 0, 4)
	if decoded.Latitude == nil {
		missing = append(missing, "latitude")
	}
	if decoded.Longitude == nil {
		missing = append(missing, "longitude")
	}
	if strings.TrimSpace(decoded.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(decoded.CountryName) == "" {
		missing = append(missing, "country_name")
	}
	if len(missing) > 0 {
		return domain.Place{}, upstream(0, fmt.Errorf("malformed response: missing %s", strings.Join(missing, ", ")))
	}

	return domain.Place{
		City:        decoded.City,
		Region:      decoded.RegionCode,
		Country:     decoded.CountryName,
		Coordinates: domain.Coordinates{Lat: *decoded.Latitude, Lon: *decoded.Longitude},
	}, nil
}

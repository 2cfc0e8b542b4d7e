// Package geocode wraps a nominatim-style reverse geocoding endpoint,
// resolving coordinates to a displayable city and country.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sulemanahsancui/quran-pak/internal/logger"
)

// Location is a resolved place for a coordinate pair.
type Location struct {
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type reverseResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

type Client struct {
	http   *resty.Client
	logger logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	// nominatim usage policy requires an identifying User-Agent
	httpClient.SetHeader("User-Agent", "quran-pak-shell")

	return &Client{http: httpClient, logger: log}
}

// Reverse resolves a coordinate pair to a city and country. Falls back to
// "Unknown City"/"Unknown Country" when the response has no usable address.
func (c *Client) Reverse(ctx context.Context, latitude, longitude float64) (*Location, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("format", "json").
		SetQueryParam("lat", fmt.Sprintf("%f", latitude)).
		SetQueryParam("lon", fmt.Sprintf("%f", longitude)).
		Get("/reverse")
	if err != nil {
		return nil, fmt.Errorf("reverse geocoding failed: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("reverse geocoding: status %d", res.StatusCode())
	}

	var rr reverseResponse
	if err := json.Unmarshal(res.Body(), &rr); err != nil {
		return nil, fmt.Errorf("reverse geocoding: malformed response: %w", err)
	}

	city := rr.Address.City
	if city == "" {
		city = rr.Address.Town
	}
	if city == "" {
		city = rr.Address.Village
	}
	if city == "" {
		city = "Unknown City"
	}
	country := rr.Address.Country
	if country == "" {
		country = "Unknown Country"
	}

	return &Location{
		City:      city,
		Country:   country,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}

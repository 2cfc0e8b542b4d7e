// Package prayerapi wraps the public aladhan-style REST API for prayer
// timings and Gregorian-to-Hijri calendar conversion.
package prayerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/sulemanahsancui/quran-pak/internal/cache"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
)

// Timings holds the five daily prayers plus sunrise, as "HH:MM" local time.
type Timings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// Prayers returns name/time pairs for the five prayers, in day order.
func (t Timings) Prayers() []Prayer {
	return []Prayer{
		{Name: "Fajr", Time: t.Fajr},
		{Name: "Dhuhr", Time: t.Dhuhr},
		{Name: "Asr", Time: t.Asr},
		{Name: "Maghrib", Time: t.Maghrib},
		{Name: "Isha", Time: t.Isha},
	}
}

// Prayer is a named prayer and its local wall-clock time.
type Prayer struct {
	Name string `json:"name"`
	Time string `json:"time"` // "HH:MM"
}

// HijriMonth describes a month of the Islamic calendar.
type HijriMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
	Ar     string `json:"ar"`
}

// HijriDate is a date in the Islamic lunar calendar.
type HijriDate struct {
	Date     string     `json:"date"`
	Day      string     `json:"day"`
	Month    HijriMonth `json:"month"`
	Year     string     `json:"year"`
	Holidays []string   `json:"holidays"`
}

// timings endpoint wrappers
type timingsData struct {
	Timings Timings `json:"timings"`
}

type gToHData struct {
	Hijri HijriDate `json:"hijri"`
}

type envelope struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type Client struct {
	http     *resty.Client
	cache    cache.Cache
	cacheTTL time.Duration
	attempts uint
	logger   logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, attempts uint, store cache.Cache, ttl time.Duration, log logger.Logger) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("Accept", "application/json")

	return &Client{
		http:     httpClient,
		cache:    store,
		cacheTTL: ttl,
		attempts: attempts,
		logger:   log,
	}
}

// GetTimings returns the prayer timings for one date and coordinate.
// method selects the calculation method understood by the API.
func (c *Client) GetTimings(ctx context.Context, date time.Time, latitude, longitude float64, method int) (*Timings, error) {
	day := date.Format("02-01-2006")
	path := fmt.Sprintf("/timings/%s?latitude=%f&longitude=%f&method=%d",
		day, latitude, longitude, method)
	key := fmt.Sprintf("timings:%s:%.4f:%.4f:%d", day, latitude, longitude, method)

	data, err := c.getJSON(ctx, path, key)
	if err != nil {
		return nil, err
	}
	var td timingsData
	if err := json.Unmarshal(data, &td); err != nil {
		return nil, fmt.Errorf("failed to decode timings: %w", err)
	}
	return &td.Timings, nil
}

// GToH converts a Gregorian date to its Hijri equivalent.
func (c *Client) GToH(ctx context.Context, date time.Time) (*HijriDate, error) {
	day := date.Format("02-01-2006")

	data, err := c.getJSON(ctx, "/gToH/"+day, "gtoh:"+day)
	if err != nil {
		return nil, err
	}
	var gd gToHData
	if err := json.Unmarshal(data, &gd); err != nil {
		return nil, fmt.Errorf("failed to decode hijri date: %w", err)
	}
	return &gd.Hijri, nil
}

func (c *Client) getJSON(ctx context.Context, path, cacheKey string) (json.RawMessage, error) {
	key := "prayer:" + cacheKey
	if data, ok := c.cache.Get(ctx, key); ok {
		return data, nil
	}

	var data json.RawMessage
	err := retry.Do(
		func() error {
			res, err := c.http.R().SetContext(ctx).Get(path)
			if err != nil {
				return fmt.Errorf("request %s failed: %w", path, err)
			}
			if res.StatusCode() != http.StatusOK {
				err := fmt.Errorf("request %s: status %d", path, res.StatusCode())
				if res.StatusCode() >= 400 && res.StatusCode() < 500 {
					return retry.Unrecoverable(err)
				}
				return err
			}
			var env envelope
			if err := json.Unmarshal(res.Body(), &env); err != nil {
				return fmt.Errorf("request %s: malformed envelope: %w", path, err)
			}
			if env.Code != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("request %s: api code %d", path, env.Code))
			}
			data = env.Data
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}

	c.cache.Set(ctx, key, data, c.cacheTTL)
	return data, nil
}

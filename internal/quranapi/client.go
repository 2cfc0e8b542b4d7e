// Package quranapi wraps the public alquran.cloud-style REST API serving
// Quran text, translations and edition metadata. The shell proxies these
// reads so UI surfaces talk to a single trusted origin; responses are cached
// for the configured TTL.
package quranapi

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

// Surah is one chapter summary as served by the surah listing.
type Surah struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

// Ayah is one verse within a surah or page response.
type Ayah struct {
	Number        int    `json:"number"`
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
	Juz           int    `json:"juz"`
	Page          int    `json:"page"`
}

// SurahDetail is a surah with its verses in a given edition.
type SurahDetail struct {
	Surah
	Ayahs []Ayah `json:"ayahs"`
}

// Page is one mushaf page: the verses on it plus the surahs they span.
type Page struct {
	Number int              `json:"number"`
	Ayahs  []Ayah           `json:"ayahs"`
	Surahs map[string]Surah `json:"surahs"`
}

// Edition is a text variant (script or translation) served by the API.
type Edition struct {
	Identifier  string `json:"identifier"`
	Language    string `json:"language"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	Format      string `json:"format"`
	Type        string `json:"type"`
}

// envelope is the API's uniform response wrapper.
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

// ListSurahs returns the 114 surah summaries.
func (c *Client) ListSurahs(ctx context.Context) ([]Surah, error) {
	data, err := c.getJSON(ctx, "/surah", "surah:list")
	if err != nil {
		return nil, err
	}
	var surahs []Surah
	if err := json.Unmarshal(data, &surahs); err != nil {
		return nil, fmt.Errorf("failed to decode surah list: %w", err)
	}
	return surahs, nil
}

// GetSurah fetches one surah with its verses. An empty edition uses the
// API's default Arabic text.
func (c *Client) GetSurah(ctx context.Context, number int, edition string) (*SurahDetail, error) {
	if number < 1 || number > 114 {
		return nil, fmt.Errorf("surah number out of range: %d", number)
	}
	path := fmt.Sprintf("/surah/%d", number)
	key := fmt.Sprintf("surah:%d", number)
	if edition != "" {
		path = fmt.Sprintf("/surah/%d/%s", number, edition)
		key = fmt.Sprintf("surah:%d:%s", number, edition)
	}

	data, err := c.getJSON(ctx, path, key)
	if err != nil {
		return nil, err
	}
	var detail SurahDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, fmt.Errorf("failed to decode surah %d: %w", number, err)
	}
	return &detail, nil
}

// GetPage fetches one mushaf page in the given edition (defaults to the
// Uthmani script).
func (c *Client) GetPage(ctx context.Context, number int, edition string) (*Page, error) {
	if number < 1 {
		return nil, fmt.Errorf("page number out of range: %d", number)
	}
	if edition == "" {
		edition = "quran-uthmani"
	}

	data, err := c.getJSON(ctx,
		fmt.Sprintf("/page/%d/%s", number, edition),
		fmt.Sprintf("page:%d:%s", number, edition))
	if err != nil {
		return nil, err
	}
	var page Page
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to decode page %d: %w", number, err)
	}
	return &page, nil
}

// ListEditions returns the available editions, optionally filtered by type
// (ex: "translation").
func (c *Client) ListEditions(ctx context.Context, editionType string) ([]Edition, error) {
	path := "/edition"
	key := "edition:list"
	if editionType != "" {
		path = "/edition?type=" + editionType
		key = "edition:list:" + editionType
	}

	data, err := c.getJSON(ctx, path, key)
	if err != nil {
		return nil, err
	}
	var editions []Edition
	if err := json.Unmarshal(data, &editions); err != nil {
		return nil, fmt.Errorf("failed to decode editions: %w", err)
	}
	return editions, nil
}

// getJSON fetches the envelope's data member for path, going through the
// response cache and retrying transient failures.
func (c *Client) getJSON(ctx context.Context, path, cacheKey string) (json.RawMessage, error) {
	key := "quran:" + cacheKey
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
				return retry.Unrecoverable(fmt.Errorf("request %s: api code %d (%s)", path, env.Code, env.Status))
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

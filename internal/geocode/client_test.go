package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sulemanahsancui/quran-pak/internal/logger"
)

func newTestClient(t *testing.T, body string, status int) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("path = %q, want /reverse", r.URL.Path)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format = %q, want json", got)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, logger.Nop())
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantCity    string
		wantCountry string
	}{
		{
			name:        "city present",
			body:        `{"address":{"city":"Karachi","country":"Pakistan"}}`,
			wantCity:    "Karachi",
			wantCountry: "Pakistan",
		},
		{
			name:        "town fallback",
			body:        `{"address":{"town":"Murree","country":"Pakistan"}}`,
			wantCity:    "Murree",
			wantCountry: "Pakistan",
		},
		{
			name:        "village fallback",
			body:        `{"address":{"village":"Saidpur","country":"Pakistan"}}`,
			wantCity:    "Saidpur",
			wantCountry: "Pakistan",
		},
		{
			name:        "empty address",
			body:        `{"address":{}}`,
			wantCity:    "Unknown City",
			wantCountry: "Unknown Country",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.body, http.StatusOK)
			loc, err := c.Reverse(context.Background(), 24.8607, 67.0011)
			if err != nil {
				t.Fatalf("Reverse() error = %v", err)
			}
			if loc.City != tt.wantCity {
				t.Errorf("City = %q, want %q", loc.City, tt.wantCity)
			}
			if loc.Country != tt.wantCountry {
				t.Errorf("Country = %q, want %q", loc.Country, tt.wantCountry)
			}
			if loc.Latitude != 24.8607 || loc.Longitude != 67.0011 {
				t.Errorf("coordinates echoed = %v,%v", loc.Latitude, loc.Longitude)
			}
		})
	}
}

func TestReverseUpstreamError(t *testing.T) {
	c := newTestClient(t, "too many requests", http.StatusTooManyRequests)
	if _, err := c.Reverse(context.Background(), 1, 2); err == nil {
		t.Error("Reverse() error = nil, want status error")
	}
}

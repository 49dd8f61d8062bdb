package ipcountryblocker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// newBlockedCountryProvider builds a provider directly, bypassing NewProvider's
// GeoLite2 database open: the country-matching logic under test never
// touches the database.
func newBlockedCountryProvider(blocked ...string) *provider {
	set := make(map[string]struct{}, len(blocked))
	for _, c := range blocked {
		set[c] = struct{}{}
	}
	logger, _ := zap.NewDevelopment()
	return &provider{blockedCountries: set, logger: logger}
}

func TestProvider_IsBlockedCountry(t *testing.T) {
	p := newBlockedCountryProvider("US", "CN")

	tests := []struct {
		name     string
		country  string
		expected bool
	}{
		{"blocked country US", "US", true},
		{"blocked country CN", "CN", true},
		{"non-blocked country GB", "GB", false},
		{"empty country code", "", false},
		{"lowercase does not match", "us", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.IsBlockedCountry(tt.country))
		})
	}
}

func TestProvider_IsBlockedIP_NilIPFailsSafe(t *testing.T) {
	p := newBlockedCountryProvider("US")
	assert.False(t, p.IsBlockedIP(context.Background(), nil))
}

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validator-ops/solana-version-check/config"
	"github.com/validator-ops/solana-version-check/internal/domain"
	"github.com/validator-ops/solana-version-check/internal/logger"
)

const criteriaData = `{
  "props": {
    "pageProps": {
      "mbData": {
        "baselineCriteria": [
          {"metric": "Commission", "needed": "≤ 10%"},
          {"metric": "Solana release", "needed": "≥ 2.1.13"}
        ]
      },
      "tnData": {
        "baselineCriteria": [
          {"metric": "Solana release", "needed": "≥ 2.2.0"},
          {"metric": "Solana release", "needed": "≥ 9.9.9"}
        ]
      }
    }
  }
}`

func criteriaPage(data string) string {
	return `<!DOCTYPE html><html><head><title>Delegation Criteria</title>
<script src="/_next/static/chunks/main.js"></script></head>
<body><div id="__next"></div>
<script id="__NEXT_DATA__" type="application/json">` + data + `</script>
</body></html>`
}

func newTestSource(t *testing.T, handler http.HandlerFunc) *DelegationCriteriaSource {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.DefaultConfig().Source
	cfg.URL = server.URL
	cfg.Timeout = 5
	return NewDelegationCriteriaSource(cfg)
}

func TestExtractRequiredVersion(t *testing.T) {
	tests := []struct {
		name     string
		network  domain.Network
		expected string
	}{
		{name: "mainnet reads mbData", network: domain.Mainnet, expected: "2.1.13"},
		{name: "testnet reads tnData", network: domain.Testnet, expected: "2.2.0"},
		{name: "devnet shares testnet data", network: domain.Devnet, expected: "2.2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			needed, err := ExtractRequiredVersion(criteriaPage(criteriaData), tt.network)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, needed)
		})
	}
}

func TestExtractRequiredVersion_Errors(t *testing.T) {
	tests := []struct {
		name          string
		page          string
		errorContains string
	}{
		{
			name:          "no next data script",
			page:          "<html><body><script>var x = 1;</script></body></html>",
			errorContains: "could not find __NEXT_DATA__ script tag",
		},
		{
			name:          "invalid JSON",
			page:          criteriaPage(`{"props": `),
			errorContains: "failed to parse __NEXT_DATA__ JSON data",
		},
		{
			name:          "missing network data",
			page:          criteriaPage(`{"props": {"pageProps": {}}}`),
			errorContains: `failed to find "props.pageProps.tnData.baselineCriteria"`,
		},
		{
			name:          "no release criterion",
			page:          criteriaPage(`{"props": {"pageProps": {"tnData": {"baselineCriteria": [{"metric": "Uptime", "needed": "≥ 97%"}]}}}}`),
			errorContains: "no baseline criterion for Solana release",
		},
		{
			name:          "empty release requirement",
			page:          criteriaPage(`{"props": {"pageProps": {"tnData": {"baselineCriteria": [{"metric": "Solana release", "needed": "≥ "}]}}}}`),
			errorContains: "has no required value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractRequiredVersion(tt.page, domain.Testnet)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestNormalizeRequirement(t *testing.T) {
	assert.Equal(t, "2.1.13", normalizeRequirement("≥ 2.1.13"))
	assert.Equal(t, "2.1.13", normalizeRequirement(">= 2.1.13"))
	assert.Equal(t, "v2.1.13", normalizeRequirement("  v2.1.13 "))
}

func TestDelegationCriteriaSource_MinimumVersion(t *testing.T) {
	var gotUserAgent, gotCacheControl string
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotCacheControl = r.Header.Get("Cache-Control")
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, criteriaPage(criteriaData))
	})

	ctx, logs := logger.TestContext()
	version, err := source.MinimumVersion(ctx, domain.Mainnet)
	require.NoError(t, err)

	assert.Equal(t, "2.1.13", version.String())
	assert.Equal(t, config.DefaultUserAgent, gotUserAgent)
	assert.Equal(t, "no-cache", gotCacheControl)
	assert.Equal(t, 1, logs.FilterMessage("Resolved required version").Len())
}

func TestDelegationCriteriaSource_LookupErrors(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		errorContains string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
			},
			errorContains: "HTTP 503",
		},
		{
			name: "page without data",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, "<html><body>maintenance</body></html>")
			},
			errorContains: "could not find __NEXT_DATA__ script tag",
		},
		{
			name: "malformed version",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, criteriaPage(`{"props": {"pageProps": {"tnData": {"baselineCriteria": [{"metric": "Solana release", "needed": "≥ latest"}]}}}}`))
			},
			errorContains: "invalid semantic version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := newTestSource(t, tt.handler)

			_, err := source.MinimumVersion(logger.NopContext(), domain.Testnet)

			var lookupErr *domain.LookupError
			require.True(t, errors.As(err, &lookupErr))
			assert.Equal(t, domain.Testnet, lookupErr.Network)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestDelegationCriteriaSource_ResponseTooLarge(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		errorContains string
	}{
		{
			name: "declared content length",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, strings.Repeat("x", 1500))
			},
			errorContains: "response too large: 1500 bytes (max: 1024 bytes)",
		},
		{
			name: "chunked body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, strings.Repeat("x", 512))
				w.(http.Flusher).Flush()
				_, _ = fmt.Fprint(w, strings.Repeat("x", 4096))
			},
			errorContains: "response too large: more than 1024 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			cfg := config.DefaultConfig().Source
			cfg.URL = server.URL
			cfg.MaxSize = 1024
			source := NewDelegationCriteriaSource(cfg)

			_, err := source.MinimumVersion(logger.NopContext(), domain.Testnet)

			var lookupErr *domain.LookupError
			require.ErrorAs(t, err, &lookupErr)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestDelegationCriteriaSource_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	source := NewDelegationCriteriaSource(config.SourceConfig{URL: server.URL, Timeout: 5})

	ctx, cancel := context.WithTimeout(logger.NopContext(), 50*time.Millisecond)
	defer cancel()

	_, err := source.MinimumVersion(ctx, domain.Devnet)

	var lookupErr *domain.LookupError
	assert.ErrorAs(t, err, &lookupErr)
}

func TestDelegationCriteriaSource_InvalidNetwork(t *testing.T) {
	source := NewDelegationCriteriaSource(config.SourceConfig{URL: "http://127.0.0.1:0", Timeout: 1})

	_, err := source.MinimumVersion(logger.NopContext(), domain.Network("localnet"))

	var networkErr *domain.InvalidNetworkError
	assert.ErrorAs(t, err, &networkErr)
}

func TestStaticSource(t *testing.T) {
	source := StaticSource{Version: domain.MustParseVersion("1.18.0")}

	version, err := source.MinimumVersion(context.Background(), domain.Mainnet)
	require.NoError(t, err)
	assert.Equal(t, "1.18.0", version.String())

	_, err = StaticSource{}.MinimumVersion(context.Background(), domain.Mainnet)
	var lookupErr *domain.LookupError
	assert.ErrorAs(t, err, &lookupErr)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/validator-ops/solana-version-check/config"
	"github.com/validator-ops/solana-version-check/internal/domain"
	"github.com/validator-ops/solana-version-check/internal/logger"
)

// ReleaseMetric is the baseline criterion that carries the required validator release
const ReleaseMetric = "Solana release"

const nextDataScriptID = "__NEXT_DATA__"

var (
	errNextDataMissing  = errors.New("could not find __NEXT_DATA__ script tag")
	errReleaseNotListed = errors.New("no baseline criterion for " + ReleaseMetric)
)

// DelegationCriteriaSource resolves minimum versions from the Solana Foundation
// delegation criteria page. The page is a Next.js build that embeds its data as JSON
// in a __NEXT_DATA__ script tag.
type DelegationCriteriaSource struct {
	url     string
	maxSize int64
	client  *resty.Client
}

// NewDelegationCriteriaSource creates a source from the lookup configuration
func NewDelegationCriteriaSource(cfg config.SourceConfig) *DelegationCriteriaSource {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Cache-Control", "no-cache")

	return &DelegationCriteriaSource{
		url:     cfg.URL,
		maxSize: cfg.MaxSize,
		client:  client,
	}
}

// MinimumVersion fetches the criteria page and extracts the release requirement for network
func (s *DelegationCriteriaSource) MinimumVersion(ctx context.Context, network domain.Network) (domain.Version, error) {
	if err := network.Validate(); err != nil {
		return domain.Version{}, err
	}

	body, err := s.fetch(ctx)
	if err != nil {
		return domain.Version{}, s.lookupError(network, err)
	}

	needed, err := ExtractRequiredVersion(body, network)
	if err != nil {
		return domain.Version{}, s.lookupError(network, err)
	}

	version, err := domain.ParseVersion(needed)
	if err != nil {
		return domain.Version{}, s.lookupError(network, err)
	}

	logger.FromContext(ctx).Debug("Resolved required version",
		zap.String("network", network.String()),
		zap.String("version", version.String()))
	return version, nil
}

func (s *DelegationCriteriaSource) fetch(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug("Fetching delegation criteria", zap.String("url", s.url))

	resp, err := s.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(s.url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch delegation criteria: %w", err)
	}
	body := resp.RawBody()
	defer func() { _ = body.Close() }()

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.Status())
	}

	reader := io.Reader(body)
	if s.maxSize > 0 {
		if length := resp.RawResponse.ContentLength; length > s.maxSize {
			return "", fmt.Errorf("response too large: %d bytes (max: %d bytes)", length, s.maxSize)
		}
		reader = io.LimitReader(body, s.maxSize+1)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if s.maxSize > 0 && int64(len(content)) > s.maxSize {
		return "", fmt.Errorf("response too large: more than %d bytes", s.maxSize)
	}

	log.Debug("Fetched delegation criteria",
		zap.Int("status", resp.StatusCode()),
		zap.Int("size", len(content)))
	return string(content), nil
}

func (s *DelegationCriteriaSource) lookupError(network domain.Network, err error) error {
	return &domain.LookupError{Network: network, Source: s.url, Err: err}
}

// ExtractRequiredVersion returns the raw required release string for network from a
// delegation criteria page
func ExtractRequiredVersion(page string, network domain.Network) (string, error) {
	data, err := extractNextData(page)
	if err != nil {
		return "", err
	}

	if !gjson.Valid(data) {
		return "", fmt.Errorf("failed to parse %s JSON data", nextDataScriptID)
	}

	path := "props.pageProps." + networkDataKey(network) + ".baselineCriteria"
	criteria := gjson.Get(data, path)
	if !criteria.IsArray() {
		return "", fmt.Errorf("failed to find %q in %s JSON data", path, nextDataScriptID)
	}

	for _, criterion := range criteria.Array() {
		if criterion.Get("metric").String() != ReleaseMetric {
			continue
		}
		needed := normalizeRequirement(criterion.Get("needed").String())
		if needed == "" {
			return "", fmt.Errorf("baseline criterion %q has no required value", ReleaseMetric)
		}
		return needed, nil
	}

	return "", errReleaseNotListed
}

// networkDataKey maps a network to its page data block. Testnet and devnet share the
// testnet program data.
func networkDataKey(network domain.Network) string {
	if network == domain.Mainnet {
		return "mbData"
	}
	return "tnData"
}

func normalizeRequirement(needed string) string {
	needed = strings.TrimSpace(needed)
	for _, prefix := range []string{"≥", ">="} {
		needed = strings.TrimPrefix(needed, prefix)
	}
	return strings.TrimSpace(needed)
}

func extractNextData(page string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(page))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return "", errNextDataMissing
			}
			return "", fmt.Errorf("failed to tokenize page: %w", z.Err())
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "script" || !hasAttr || !hasID(z, nextDataScriptID) {
				continue
			}
			if z.Next() != html.TextToken {
				return "", errNextDataMissing
			}
			return string(z.Text()), nil
		}
	}
}

func hasID(z *html.Tokenizer, id string) bool {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "id" && string(val) == id {
			return true
		}
		if !more {
			return false
		}
	}
}

// StaticSource returns a fixed minimum version for every network. It backs the
// source.override setting for offline runs.
type StaticSource struct {
	Version domain.Version
}

// MinimumVersion implements domain.VersionSource
func (s StaticSource) MinimumVersion(ctx context.Context, network domain.Network) (domain.Version, error) {
	if err := network.Validate(); err != nil {
		return domain.Version{}, err
	}
	if s.Version.IsZero() {
		return domain.Version{}, &domain.LookupError{Network: network, Source: "override", Err: errors.New("no version configured")}
	}
	return s.Version, nil
}

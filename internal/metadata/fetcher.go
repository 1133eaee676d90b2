package metadata

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/types"
	"github.com/tokentreat/treat-service/internal/uri"
)

var (
	errEmptyURI       = errors.New("empty token uri")
	errNotJSONDataURI = errors.New("data uri is not json")
)

// Fetcher fetches the off-chain metadata document of a treat
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/metadata_fetcher.go -package=mocks -mock_names=Fetcher=MockMetadataFetcher
type Fetcher interface {
	// Fetch resolves tokenURI through the gateway and parses the JSON document
	Fetch(ctx context.Context, tokenURI string) (*domain.TreatMetadata, error)
}

type fetcher struct {
	httpClient  adapter.HTTPClient
	uriResolver uri.Resolver
	json        adapter.JSON
}

// NewFetcher creates a new metadata fetcher
func NewFetcher(httpClient adapter.HTTPClient, uriResolver uri.Resolver, json adapter.JSON) Fetcher {
	return &fetcher{
		httpClient:  httpClient,
		uriResolver: uriResolver,
		json:        json,
	}
}

func (f *fetcher) Fetch(ctx context.Context, tokenURI string) (*domain.TreatMetadata, error) {
	tokenURI = strings.TrimSpace(tokenURI)
	if tokenURI == "" {
		return nil, &domain.MetadataFetchError{Err: errEmptyURI}
	}

	var body []byte
	var url string
	if types.IsDataURI(tokenURI) {
		// Inline documents never touch the network
		dataURI, err := types.ParseDataURI(tokenURI)
		if err != nil {
			return nil, &domain.MetadataFetchError{URL: "data:", Err: err}
		}
		if !strings.Contains(dataURI.MimeType, "json") && dataURI.MimeType != "text/plain" {
			return nil, &domain.MetadataFetchError{URL: "data:", Err: errNotJSONDataURI}
		}
		url = "data:"
		body = dataURI.DecodedData
	} else {
		url = f.uriResolver.Resolve(tokenURI)
		logger.DebugCtx(ctx, "Fetching treat metadata", zap.String("uri", tokenURI), zap.String("url", url))

		var err error
		body, err = f.httpClient.GetBytes(ctx, url)
		if err != nil {
			return nil, &domain.MetadataFetchError{URL: url, Err: err}
		}
	}

	var raw map[string]interface{}
	if err := f.json.Unmarshal(body, &raw); err != nil {
		return nil, &domain.MetadataFetchError{URL: url, Err: err}
	}
	if raw == nil {
		return nil, &domain.MetadataFetchError{URL: url, Err: errors.New("metadata document is not an object")}
	}

	return f.normalize(raw), nil
}

// normalize maps the document onto the OpenSea-style fields a treat carries
func (f *fetcher) normalize(raw map[string]interface{}) *domain.TreatMetadata {
	md := &domain.TreatMetadata{Raw: raw}
	if n, ok := raw["name"].(string); ok {
		md.Name = n
	}
	if d, ok := raw["description"].(string); ok {
		md.Description = d
	}
	if i, ok := raw["image"].(string); ok {
		md.Image = f.uriResolver.Resolve(i)
	}
	return md
}

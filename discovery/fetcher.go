package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/go-oidc-params/oauth2"
	"github.com/rs/zerolog/log"
)

// Fetcher retrieves and validates remote provider metadata.
// Documents are cached per issuer until Invalidate is called.
type Fetcher struct {
	client *http.Client

	docs     map[string]*oauth2.DiscoveryDocument
	docsLock sync.RWMutex
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient sets the client used to reach providers.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{docs: make(map[string]*oauth2.DiscoveryDocument)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the discovery document of issuer. The provider must report the
// same issuer it was fetched from, and the document must satisfy the schema.
func (f *Fetcher) Fetch(ctx context.Context, issuer string) (*oauth2.DiscoveryDocument, error) {
	f.docsLock.RLock()
	doc, exists := f.docs[issuer]
	f.docsLock.RUnlock()
	if exists {
		return doc, nil
	}

	if f.client != nil {
		ctx = oidc.ClientContext(ctx, f.client)
	}
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("[Fetcher.Fetch] failed to discover %s: %w", issuer, err)
	}

	var raw json.RawMessage
	if err := provider.Claims(&raw); err != nil {
		return nil, fmt.Errorf("[Fetcher.Fetch] failed to read metadata of %s: %w", issuer, err)
	}
	doc, err = oauth2.DecodeDiscoveryDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("[Fetcher.Fetch] invalid metadata from %s: %w", issuer, err)
	}

	f.docsLock.Lock()
	f.docs[issuer] = doc
	f.docsLock.Unlock()

	log.Debug().Str("issuer", issuer).Strs("grant_types", doc.GrantTypesSupported).Msg("Fetched discovery document")
	return doc, nil
}

// Invalidate drops the cached document of issuer.
func (f *Fetcher) Invalidate(issuer string) {
	f.docsLock.Lock()
	delete(f.docs, issuer)
	f.docsLock.Unlock()
}

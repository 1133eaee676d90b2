package uri

import (
	"strings"

	"github.com/tokentreat/treat-service/internal/domain"
)

// Config holds configuration for the URI resolver
type Config struct {
	// IPFSGateway is the gateway base used to serve ipfs:// URIs
	IPFSGateway string
}

// Resolver rewrites content-addressed URIs into fetchable URLs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Resolve rewrites ipfs://<cid> into <gateway>/ipfs/<cid>; other URIs are returned unchanged
	Resolve(uri string) string

	// IPFS returns the ipfs:// URI of a CID
	IPFS(cid string) string
}

type resolver struct {
	prefix string
}

// NewResolver creates a new URI resolver
func NewResolver(config Config) Resolver {
	gateway := config.IPFSGateway
	if gateway == "" {
		gateway = domain.DEFAULT_IPFS_GATEWAY
	}
	return &resolver{prefix: strings.TrimRight(gateway, "/") + "/ipfs/"}
}

// Resolve performs a fixed prefix substitution without probing the gateway
func (r *resolver) Resolve(uri string) string {
	if cid, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		// ipfs://ipfs/<cid> is a common malformed variant
		cid = strings.TrimPrefix(cid, "ipfs/")
		return r.prefix + cid
	}
	return uri
}

func (r *resolver) IPFS(cid string) string {
	return "ipfs://" + cid
}

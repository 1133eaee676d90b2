package registry

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/domain"
)

// TokenRegistry lists the payment tokens a treat may be denominated in
//
//go:generate mockgen -source=tokens.go -destination=../mocks/token_registry.go -package=mocks -mock_names=TokenRegistry=MockTokenRegistry
type TokenRegistry interface {
	// Tokens returns the offered tokens of chain in file order, native first
	Tokens(chain domain.Chain) []TokenEntry

	// IsSupported reports whether address may be used on chain; empty and zero addresses mean native
	IsSupported(chain domain.Chain, address string) bool
}

// TokenEntry is one offered token. Symbol and decimals are read from the chain.
type TokenEntry struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// TokenRegistryData is the structure of the token registry file: chain id -> tokens
type TokenRegistryData map[string][]TokenEntry

type tokenRegistry struct {
	tokens    map[domain.Chain][]TokenEntry
	supported map[string]bool // "chain:address"
}

// TokenRegistryLoader loads token registries from JSON files
type TokenRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewTokenRegistryLoader creates a new loader
func NewTokenRegistryLoader(fs adapter.FileSystem, json adapter.JSON) *TokenRegistryLoader {
	return &TokenRegistryLoader{fs: fs, json: json}
}

// Load reads and validates the registry at path
func (l *TokenRegistryLoader) Load(path string) (TokenRegistry, error) {
	raw, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token registry file: %w", err)
	}

	var data TokenRegistryData
	if err := l.json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse token registry JSON: %w", err)
	}

	return NewTokenRegistry(data)
}

// NewTokenRegistry indexes data; every chain gets the native token even when the file omits it
func NewTokenRegistry(data TokenRegistryData) (TokenRegistry, error) {
	r := &tokenRegistry{
		tokens:    make(map[domain.Chain][]TokenEntry),
		supported: make(map[string]bool),
	}

	for chainID, entries := range data {
		chain := domain.Chain(strings.ToLower(strings.TrimSpace(chainID)))
		if !chain.Valid() {
			return nil, fmt.Errorf("invalid chain in token registry: %s", chainID)
		}

		list := []TokenEntry{{Name: "Native", Address: domain.ETHEREUM_ZERO_ADDRESS}}
		for _, entry := range entries {
			if !common.IsHexAddress(entry.Address) {
				return nil, fmt.Errorf("invalid token address in registry for %s: %q", chainID, entry.Address)
			}
			address := common.HexToAddress(entry.Address).Hex()
			if domain.IsZeroAddress(address) {
				if entry.Name != "" {
					list[0].Name = entry.Name
				}
				continue
			}
			if r.supported[key(chain, address)] {
				continue
			}
			list = append(list, TokenEntry{Name: entry.Name, Address: address})
			r.supported[key(chain, address)] = true
		}
		r.tokens[chain] = list
	}

	return r, nil
}

func (r *tokenRegistry) Tokens(chain domain.Chain) []TokenEntry {
	if list, ok := r.tokens[chain]; ok {
		return list
	}
	return []TokenEntry{{Name: "Native", Address: domain.ETHEREUM_ZERO_ADDRESS}}
}

func (r *tokenRegistry) IsSupported(chain domain.Chain, address string) bool {
	if address == "" || domain.IsZeroAddress(address) {
		return true
	}
	if !common.IsHexAddress(address) {
		return false
	}
	return r.supported[key(chain, common.HexToAddress(address).Hex())]
}

// openRegistry accepts every address; used when no registry file is configured
type openRegistry struct{}

// NewOpenTokenRegistry returns a registry that offers only the native token and accepts any address
func NewOpenTokenRegistry() TokenRegistry {
	return openRegistry{}
}

func (openRegistry) Tokens(domain.Chain) []TokenEntry {
	return []TokenEntry{{Name: "Native", Address: domain.ETHEREUM_ZERO_ADDRESS}}
}

func (openRegistry) IsSupported(domain.Chain, string) bool {
	return true
}

func key(chain domain.Chain, address string) string {
	return strings.ToLower(string(chain) + ":" + address)
}

package renegade

import "fmt"

// Chain identifies a network the venue settles on
type Chain string

const (
	ChainArbitrumOne     Chain = "arbitrum_one"
	ChainArbitrumSepolia Chain = "arbitrum_sepolia"
	ChainBaseMainnet     Chain = "base_mainnet"
	ChainBaseSepolia     Chain = "base_sepolia"
)

// SupportedChains returns the chains the venue settles on
func SupportedChains() []Chain {
	return []Chain{ChainArbitrumOne, ChainArbitrumSepolia, ChainBaseMainnet, ChainBaseSepolia}
}

// UnsupportedChainError is returned when fixed parameters name a chain the
// venue does not settle on. It indicates a configuration mistake, not a
// runtime condition, and is never converted to an absent quote.
type UnsupportedChainError struct {
	Chain string
}

func (e *UnsupportedChainError) Error() string {
	return fmt.Sprintf("unsupported chain: %s", e.Chain)
}

// ParseChain parses a chain selector from fixed parameters
func ParseChain(chain string) (Chain, error) {
	switch Chain(chain) {
	case ChainArbitrumOne, ChainArbitrumSepolia, ChainBaseMainnet, ChainBaseSepolia:
		return Chain(chain), nil
	default:
		return "", &UnsupportedChainError{Chain: chain}
	}
}

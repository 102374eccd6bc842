package renegade

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"renegade-swap/pkg/types"
)

// knownTokens is a per-chain table of tokens tradable on the venue, used to
// resolve symbols typed on the command line. Pair classification never uses
// this table; it compares addresses against the reference-asset registry.
var knownTokens = map[Chain][]types.Token{
	ChainArbitrumOne: {
		types.NewToken("0xaf88d065e77c8cc2239327c5edb3a432268e5831", "USDC", 6, decimal.Zero),
		types.NewToken("0x82af49447d8a07e3bd95bd0d56f35241523fbab1", "WETH", 18, decimal.Zero),
		types.NewToken("0x2f2a2543b76a4166549f7aab2e75bef0aefc5b0f", "WBTC", 8, decimal.Zero),
	},
	ChainArbitrumSepolia: {
		types.NewToken("0xdf8d259c04020562717557f2b5a3cf28e92707d1", "USDC", 6, decimal.Zero),
	},
	ChainBaseMainnet: {
		types.NewToken("0x833589fcd6edb6e08f4c7c32d4f71b54bda02913", "USDC", 6, decimal.Zero),
		types.NewToken("0x4200000000000000000000000000000000000006", "WETH", 18, decimal.Zero),
	},
	ChainBaseSepolia: {
		types.NewToken("0xd9961bb4cb27192f8dad20a662be081f546b0e74", "USDC", 6, decimal.Zero),
	},
}

// KnownTokens returns the tokens recognized on the given chain
func KnownTokens(chain Chain) []types.Token {
	return knownTokens[chain]
}

// FindToken resolves a token by symbol on the given chain
func FindToken(chain Chain, symbol string) (types.Token, error) {
	for _, token := range knownTokens[chain] {
		if strings.EqualFold(token.Symbol, symbol) {
			return token, nil
		}
	}
	return types.Token{}, fmt.Errorf("token '%s' not found on chain '%s'", symbol, chain)
}

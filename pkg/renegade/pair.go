package renegade

import (
	"github.com/ethereum/go-ethereum/common"

	"renegade-swap/pkg/types"
)

// referenceAssets holds the canonical USDC contract address per network. All
// pairs on the venue are USDC quoted, so classification is by address rather
// than by display symbol, which collides across chains and is spoofable.
var referenceAssets = map[Chain]common.Address{
	ChainArbitrumOne:     common.HexToAddress("0xaf88d065e77c8cc2239327c5edb3a432268e5831"),
	ChainArbitrumSepolia: common.HexToAddress("0xdf8d259c04020562717557f2b5a3cf28e92707d1"),
	ChainBaseMainnet:     common.HexToAddress("0x833589fcd6edb6e08f4c7c32d4f71b54bda02913"),
	ChainBaseSepolia:     common.HexToAddress("0xd9961bb4cb27192f8dad20a662be081f546b0e74"),
}

// IsReferenceAsset reports whether the token is the reference (quote) asset on
// the given chain
func IsReferenceAsset(chain Chain, token types.Token) bool {
	address, ok := referenceAssets[chain]
	return ok && token.Address == address
}

// ValidatePair reports whether the venue can quote the pair: exactly one side
// must be the reference asset. Reference-to-reference and pairs with no
// reference side are both rejected.
func ValidatePair(chain Chain, inputToken, outputToken types.Token) bool {
	refIn := IsReferenceAsset(chain, inputToken)
	refOut := IsReferenceAsset(chain, outputToken)

	return refIn != refOut
}

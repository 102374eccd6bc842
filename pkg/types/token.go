package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Token represents a token within a liquidity module
type Token struct {
	Address  common.Address
	Symbol   string
	Decimals uint8
	// ReferencePrice is the price of the token relative to the chain's native asset
	ReferencePrice decimal.Decimal
}

// NewToken creates a token from a hex address string
func NewToken(address, symbol string, decimals uint8, referencePrice decimal.Decimal) Token {
	return Token{
		Address:        common.HexToAddress(address),
		Symbol:         symbol,
		Decimals:       decimals,
		ReferencePrice: referencePrice,
	}
}

// FixedParameters identifies the backend network and credentials for a single call
type FixedParameters struct {
	Chain     string
	APIKey    string
	APISecret string
}

// PoolState is the opaque venue state passed to yield and TVL computations
type PoolState map[string]any

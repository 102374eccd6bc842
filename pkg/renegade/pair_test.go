package renegade

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"renegade-swap/pkg/types"
)

func TestIsReferenceAsset(t *testing.T) {
	assert.True(t, IsReferenceAsset(ChainArbitrumOne, usdcToken()))
	assert.False(t, IsReferenceAsset(ChainArbitrumOne, wethToken()))
}

func TestIsReferenceAsset_CaseInsensitive(t *testing.T) {
	// Classification is by address, independent of the hex casing the caller used
	upper := types.NewToken(strings.ToUpper(strings.TrimPrefix(usdcAddress, "0x")), "USDC", 6, decimal.NewFromInt(1))
	assert.True(t, IsReferenceAsset(ChainArbitrumOne, upper))
}

func TestIsReferenceAsset_SymbolIsIgnored(t *testing.T) {
	// A token merely named USDC at another address must not classify as the
	// reference asset
	spoofed := types.NewToken("0x0000000000000000000000000000000000000456", "USDC", 6, decimal.NewFromInt(1))
	assert.False(t, IsReferenceAsset(ChainArbitrumOne, spoofed))
}

func TestIsReferenceAsset_PerChain(t *testing.T) {
	// Arbitrum USDC is not the reference asset on Base
	assert.False(t, IsReferenceAsset(ChainBaseMainnet, usdcToken()))

	baseUSDC := types.NewToken("0x833589fcd6edb6e08f4c7c32d4f71b54bda02913", "USDC", 6, decimal.NewFromInt(1))
	assert.True(t, IsReferenceAsset(ChainBaseMainnet, baseUSDC))
}

func TestValidatePair(t *testing.T) {
	other := types.NewToken("0x0000000000000000000000000000000000000123", "TEST", 18, decimal.NewFromInt(1))

	tests := []struct {
		name        string
		inputToken  types.Token
		outputToken types.Token
		want        bool
	}{
		{name: "reference to base", inputToken: usdcToken(), outputToken: wethToken(), want: true},
		{name: "base to reference", inputToken: wethToken(), outputToken: usdcToken(), want: true},
		{name: "no reference side", inputToken: wethToken(), outputToken: other, want: false},
		{name: "reference to reference", inputToken: usdcToken(), outputToken: usdcToken(), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidatePair(ChainArbitrumOne, tc.inputToken, tc.outputToken))
		})
	}
}

func TestParseChain(t *testing.T) {
	for _, chain := range SupportedChains() {
		parsed, err := ParseChain(string(chain))
		assert.NoError(t, err)
		assert.Equal(t, chain, parsed)
	}

	_, err := ParseChain("optimism")
	assert.Error(t, err)
}

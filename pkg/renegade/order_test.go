package renegade

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renegade-swap/pkg/renegade/client"
)

func TestOrderFromInput_ReferenceIn(t *testing.T) {
	order := orderFromInput(ChainArbitrumOne, usdcToken(), wethToken(), quoteAmount)

	assert.Equal(t, usdcToken().Address, order.QuoteMint)
	assert.Equal(t, wethToken().Address, order.BaseMint)
	assert.Equal(t, client.SideBuy, order.Side)
	assert.Equal(t, quoteAmount, order.QuoteAmount)
	require.NoError(t, order.Validate())
}

func TestOrderFromInput_ReferenceOut(t *testing.T) {
	order := orderFromInput(ChainArbitrumOne, wethToken(), usdcToken(), baseAmount)

	assert.Equal(t, usdcToken().Address, order.QuoteMint)
	assert.Equal(t, wethToken().Address, order.BaseMint)
	assert.Equal(t, client.SideSell, order.Side)
	assert.Equal(t, baseAmount, order.BaseAmount)
	require.NoError(t, order.Validate())
}

func TestOrderFromOutput_ReferenceIn(t *testing.T) {
	order := orderFromOutput(ChainArbitrumOne, usdcToken(), wethToken(), baseAmount)

	assert.Equal(t, usdcToken().Address, order.QuoteMint)
	assert.Equal(t, wethToken().Address, order.BaseMint)
	assert.Equal(t, client.SideBuy, order.Side)
	assert.Equal(t, baseAmount, order.ExactBaseOutput)
	require.NoError(t, order.Validate())
}

func TestOrderFromOutput_ReferenceOut(t *testing.T) {
	order := orderFromOutput(ChainArbitrumOne, wethToken(), usdcToken(), quoteAmount)

	assert.Equal(t, usdcToken().Address, order.QuoteMint)
	assert.Equal(t, wethToken().Address, order.BaseMint)
	assert.Equal(t, client.SideSell, order.Side)
	assert.Equal(t, quoteAmount, order.ExactQuoteOutput)
	require.NoError(t, order.Validate())
}

// Each builder must populate exactly one amount constraint
func TestBuiltOrders_SingleConstraint(t *testing.T) {
	orders := []*client.ExternalOrder{
		orderFromInput(ChainArbitrumOne, usdcToken(), wethToken(), quoteAmount),
		orderFromInput(ChainArbitrumOne, wethToken(), usdcToken(), baseAmount),
		orderFromOutput(ChainArbitrumOne, usdcToken(), wethToken(), baseAmount),
		orderFromOutput(ChainArbitrumOne, wethToken(), usdcToken(), quoteAmount),
	}

	for _, order := range orders {
		set := 0
		for _, amount := range []*big.Int{order.BaseAmount, order.QuoteAmount, order.ExactBaseOutput, order.ExactQuoteOutput} {
			if amount != nil {
				set++
			}
		}
		assert.Equal(t, 1, set)
	}
}

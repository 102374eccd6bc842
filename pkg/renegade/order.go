package renegade

import (
	"math/big"

	"renegade-swap/pkg/renegade/client"
	"renegade-swap/pkg/types"
)

// The venue always denominates pairs with USDC on the quote side. "Buy" means
// acquiring the base (non-USDC) asset, "Sell" means disposing of it, so the
// order side and the constraint field follow from which leg of the swap is
// USDC and which amount the caller has fixed:
//
//	input is USDC, fixing input   -> Buy,  quote_amount
//	input is USDC, fixing output  -> Buy,  exact_base_output
//	input not USDC, fixing input  -> Sell, base_amount
//	input not USDC, fixing output -> Sell, exact_quote_output
//
// Both builders assume the pair has already been validated.

// orderFromInput builds an order constraining the input amount
func orderFromInput(chain Chain, inputToken, outputToken types.Token, inputAmount *big.Int) *client.ExternalOrder {
	if IsReferenceAsset(chain, inputToken) {
		return &client.ExternalOrder{
			QuoteMint:   inputToken.Address,
			BaseMint:    outputToken.Address,
			Side:        client.SideBuy,
			QuoteAmount: inputAmount,
		}
	}

	return &client.ExternalOrder{
		QuoteMint:  outputToken.Address,
		BaseMint:   inputToken.Address,
		Side:       client.SideSell,
		BaseAmount: inputAmount,
	}
}

// orderFromOutput builds an order constraining the output amount
func orderFromOutput(chain Chain, inputToken, outputToken types.Token, outputAmount *big.Int) *client.ExternalOrder {
	if IsReferenceAsset(chain, inputToken) {
		return &client.ExternalOrder{
			QuoteMint:       inputToken.Address,
			BaseMint:        outputToken.Address,
			Side:            client.SideBuy,
			ExactBaseOutput: outputAmount,
		}
	}

	return &client.ExternalOrder{
		QuoteMint:        outputToken.Address,
		BaseMint:         inputToken.Address,
		Side:             client.SideSell,
		ExactQuoteOutput: outputAmount,
	}
}

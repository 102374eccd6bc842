// Package liquidity defines the contract that every venue adapter must satisfy
// and a registry that maps venue identifiers to their implementations.
package liquidity

import (
	"context"
	"math/big"

	"github.com/shopspring/decimal"

	"renegade-swap/pkg/types"
)

// Module computes swap economics for a single liquidity venue.
//
// QuoteGivenInput and QuoteGivenOutput return the fee in terms of the input
// token and the quoted amount. Both are nil, with a nil error, when the pair is
// invalid or the venue has no liquidity for it. A non-nil error is returned
// only for configuration problems such as an unsupported chain.
type Module interface {
	// QuoteGivenInput computes the amount of output token received for
	// inputAmount of the input token.
	QuoteGivenInput(ctx context.Context, fixed types.FixedParameters, inputToken, outputToken types.Token, inputAmount *big.Int) (fee, amountOut *big.Int, err error)

	// QuoteGivenOutput computes the amount of input token required to receive
	// outputAmount of the output token.
	QuoteGivenOutput(ctx context.Context, fixed types.FixedParameters, inputToken, outputToken types.Token, outputAmount *big.Int) (fee, amountIn *big.Int, err error)

	// EstimatedYield computes the annualized yield paid to liquidity providers.
	EstimatedYield(ctx context.Context, poolState types.PoolState) (decimal.Decimal, error)

	// LockedValue computes the total value locked in the venue, in USD. When
	// token is non-nil the value is scoped to that token if the venue supports
	// per-token accounting.
	LockedValue(ctx context.Context, poolState types.PoolState, token *types.Token) (decimal.Decimal, error)
}

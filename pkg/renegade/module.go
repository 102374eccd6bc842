// Package renegade implements the liquidity module for the Renegade dark
// pool. Quotes are sourced from the external matching API rather than from
// on-chain pool state: a swap request is translated into a signed order, and
// the venue's match bundle is translated back into the generic (fee, amount)
// contract.
package renegade

import (
	"context"
	"math/big"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"renegade-swap/pkg/renegade/client"
	"renegade-swap/pkg/types"
)

// Venue is the identifier this module is registered under
const Venue = "renegade"

// The venue takes its fees out of the receive leg before quoting, so the fee
// in terms of the input token is always zero and the quoted receive amount is
// already net of fees.
const noInputFee = int64(0)

// matchRequester is the slice of the match client the module depends on
type matchRequester interface {
	RequestExternalMatch(ctx context.Context, order *client.ExternalOrder) (*client.ExternalMatchResponse, error)
}

// Module sources swap quotes from the Renegade external matching API. It
// holds no per-call state; a fresh match client is resolved from the fixed
// parameters on every call, and calls may be issued concurrently.
type Module struct {
	logger     *zap.Logger
	httpClient *http.Client
	tvlURL     string

	// newClient resolves a match client from fixed parameters; swapped out in
	// tests to point at a fake venue
	newClient func(fixed types.FixedParameters) (matchRequester, error)
}

// New creates a Renegade liquidity module. A nil logger disables logging.
func New(logger *zap.Logger) *Module {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Module{
		logger: logger,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		tvlURL: defaultLockedValueURL,
	}
	m.newClient = m.resolveClient
	return m
}

// QuoteGivenInput computes the amount of output token received for
// inputAmount of the input token. Both amounts are nil when the pair is not
// quotable on the venue or no liquidity is available.
func (m *Module) QuoteGivenInput(ctx context.Context, fixed types.FixedParameters, inputToken, outputToken types.Token, inputAmount *big.Int) (*big.Int, *big.Int, error) {
	chain, err := ParseChain(fixed.Chain)
	if err != nil {
		return nil, nil, err
	}

	if !ValidatePair(chain, inputToken, outputToken) {
		return nil, nil, nil
	}

	matchClient, err := m.newClient(fixed)
	if err != nil {
		return nil, nil, err
	}

	order := orderFromInput(chain, inputToken, outputToken, inputAmount)
	match, err := matchClient.RequestExternalMatch(ctx, order)
	if err != nil {
		m.logger.Error("failed to fetch renegade quote",
			zap.String("chain", string(chain)),
			zap.Error(err))
		return nil, nil, nil
	}

	if match == nil {
		return nil, nil, nil
	}

	// Fees are netted into the receive leg, which is denominated in the
	// output token on this path
	return big.NewInt(noInputFee), new(big.Int).Set(match.MatchBundle.Receive.Amount), nil
}

// QuoteGivenOutput computes the amount of input token required to receive
// outputAmount of the output token. Both amounts are nil when the pair is not
// quotable on the venue or no liquidity is available.
func (m *Module) QuoteGivenOutput(ctx context.Context, fixed types.FixedParameters, inputToken, outputToken types.Token, outputAmount *big.Int) (*big.Int, *big.Int, error) {
	chain, err := ParseChain(fixed.Chain)
	if err != nil {
		return nil, nil, err
	}

	if !ValidatePair(chain, inputToken, outputToken) {
		return nil, nil, nil
	}

	matchClient, err := m.newClient(fixed)
	if err != nil {
		return nil, nil, err
	}

	order := orderFromOutput(chain, inputToken, outputToken, outputAmount)
	match, err := matchClient.RequestExternalMatch(ctx, order)
	if err != nil {
		m.logger.Error("failed to fetch renegade quote",
			zap.String("chain", string(chain)),
			zap.Error(err))
		return nil, nil, nil
	}

	if match == nil {
		return nil, nil, nil
	}

	// The send leg is what the counterparty gives up, denominated in the
	// input token on this path
	return big.NewInt(noInputFee), new(big.Int).Set(match.MatchBundle.Send.Amount), nil
}

// EstimatedYield returns zero: the dark pool pays no yield to liquidity
// providers, its fees accrue to the relayer and protocol.
func (m *Module) EstimatedYield(_ context.Context, _ types.PoolState) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

// resolveClient maps the chain selector in fixed parameters to a match client
// bound to that network's auth server
func (m *Module) resolveClient(fixed types.FixedParameters) (matchRequester, error) {
	chain, err := ParseChain(fixed.Chain)
	if err != nil {
		return nil, err
	}

	switch chain {
	case ChainArbitrumOne:
		return client.NewArbitrumOneClient(fixed.APIKey, fixed.APISecret), nil
	case ChainArbitrumSepolia:
		return client.NewArbitrumSepoliaClient(fixed.APIKey, fixed.APISecret), nil
	case ChainBaseMainnet:
		return client.NewBaseMainnetClient(fixed.APIKey, fixed.APISecret), nil
	case ChainBaseSepolia:
		return client.NewBaseSepoliaClient(fixed.APIKey, fixed.APISecret), nil
	default:
		return nil, &UnsupportedChainError{Chain: string(chain)}
	}
}

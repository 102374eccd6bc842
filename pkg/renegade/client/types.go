package client

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// OrderSide is the direction of an order from the venue's perspective.
// Buy acquires the base (non-USDC) asset, Sell disposes of it.
type OrderSide string

const (
	SideBuy  OrderSide = "Buy"
	SideSell OrderSide = "Sell"
)

// ExternalOrder is the order submitted to the matching engine. Exactly one of
// the four amount fields must be set.
type ExternalOrder struct {
	QuoteMint common.Address `json:"quote_mint"`
	BaseMint  common.Address `json:"base_mint"`
	Side      OrderSide      `json:"side"`

	BaseAmount       *big.Int `json:"base_amount,omitempty"`
	QuoteAmount      *big.Int `json:"quote_amount,omitempty"`
	ExactBaseOutput  *big.Int `json:"exact_base_output,omitempty"`
	ExactQuoteOutput *big.Int `json:"exact_quote_output,omitempty"`

	MinFillSize uint64 `json:"min_fill_size"`
}

// Validate checks that exactly one amount constraint is set on the order
func (o *ExternalOrder) Validate() error {
	set := 0
	for _, amount := range []*big.Int{o.BaseAmount, o.QuoteAmount, o.ExactBaseOutput, o.ExactQuoteOutput} {
		if amount != nil && amount.Sign() != 0 {
			set++
		}
	}

	switch {
	case set == 0:
		return fmt.Errorf("one of base_amount, quote_amount, exact_base_output, or exact_quote_output must be set")
	case set > 1:
		return fmt.Errorf("only one of base_amount, quote_amount, exact_base_output, or exact_quote_output can be set")
	}
	return nil
}

// ExternalMatchRequest is the request body for the external match route
type ExternalMatchRequest struct {
	DoGasEstimation bool           `json:"do_gas_estimation"`
	ReceiverAddress string         `json:"receiver_address,omitempty"`
	ExternalOrder   *ExternalOrder `json:"external_order"`
}

// MatchResult describes the matched amounts for the pair
type MatchResult struct {
	QuoteMint   common.Address `json:"quote_mint"`
	BaseMint    common.Address `json:"base_mint"`
	QuoteAmount *big.Int       `json:"quote_amount"`
	BaseAmount  *big.Int       `json:"base_amount"`
	Direction   OrderSide      `json:"direction"`
}

// FeeTake holds the fee components taken out of the received leg
type FeeTake struct {
	RelayerFee  *big.Int `json:"relayer_fee"`
	ProtocolFee *big.Int `json:"protocol_fee"`
}

// Total returns the sum of the fee components
func (f FeeTake) Total() *big.Int {
	total := new(big.Int)
	if f.RelayerFee != nil {
		total.Add(total, f.RelayerFee)
	}
	if f.ProtocolFee != nil {
		total.Add(total, f.ProtocolFee)
	}
	return total
}

// AssetTransfer is one leg of the match: an asset and an amount
type AssetTransfer struct {
	Mint   common.Address `json:"mint"`
	Amount *big.Int       `json:"amount"`
}

// MatchBundle is the venue's filled-order artifact. Send and Receive refer to
// opposite assets of the pair; fees are already netted into the Receive leg.
// The settlement transaction is opaque to this module and submitted on-chain
// by the caller.
type MatchBundle struct {
	MatchResult  MatchResult     `json:"match_result"`
	Fees         FeeTake         `json:"fees"`
	Receive      AssetTransfer   `json:"receive"`
	Send         AssetTransfer   `json:"send"`
	SettlementTx json.RawMessage `json:"settlement_tx"`
}

// Validate checks that both legs carry an amount. JSON decoding leaves a leg
// amount nil when the field is absent, so a bundle must be validated before
// its amounts are consumed.
func (b *MatchBundle) Validate() error {
	if b.Receive.Amount == nil {
		return fmt.Errorf("match bundle receive leg has no amount")
	}
	if b.Send.Amount == nil {
		return fmt.Errorf("match bundle send leg has no amount")
	}
	return nil
}

// GasSponsorshipInfo describes the gas refund attached to a sponsored match
type GasSponsorshipInfo struct {
	RefundAmount    *big.Int `json:"refund_amount"`
	RefundNativeEth bool     `json:"refund_native_eth"`
	RefundAddress   string   `json:"refund_address,omitempty"`
}

// ExternalMatchResponse is the response to an external match request
type ExternalMatchResponse struct {
	MatchBundle MatchBundle `json:"match_bundle"`
	// GasSponsored reports whether the bundle is routed through the gas rebate
	// contract that refunds the match's gas to the configured address
	GasSponsored       bool                `json:"is_sponsored"`
	GasSponsorshipInfo *GasSponsorshipInfo `json:"gas_sponsorship_info,omitempty"`
}

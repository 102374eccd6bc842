package client

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalOrderValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *ExternalOrder)
		wantErr bool
	}{
		{
			name:   "quote amount only",
			mutate: func(o *ExternalOrder) { o.QuoteAmount = big.NewInt(1) },
		},
		{
			name:   "base amount only",
			mutate: func(o *ExternalOrder) { o.BaseAmount = big.NewInt(1) },
		},
		{
			name:   "exact base output only",
			mutate: func(o *ExternalOrder) { o.ExactBaseOutput = big.NewInt(1) },
		},
		{
			name:   "exact quote output only",
			mutate: func(o *ExternalOrder) { o.ExactQuoteOutput = big.NewInt(1) },
		},
		{
			name:    "no constraint",
			mutate:  func(o *ExternalOrder) {},
			wantErr: true,
		},
		{
			name:    "zero does not count as set",
			mutate:  func(o *ExternalOrder) { o.QuoteAmount = big.NewInt(0) },
			wantErr: true,
		},
		{
			name: "two constraints",
			mutate: func(o *ExternalOrder) {
				o.QuoteAmount = big.NewInt(1)
				o.BaseAmount = big.NewInt(1)
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			order := &ExternalOrder{
				QuoteMint: testQuoteMint,
				BaseMint:  testBaseMint,
				Side:      SideBuy,
			}
			tc.mutate(order)

			err := order.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatchBundleValidate(t *testing.T) {
	bundle := func() MatchBundle {
		return MatchBundle{
			Send:    AssetTransfer{Mint: testQuoteMint, Amount: big.NewInt(2_000_000_000)},
			Receive: AssetTransfer{Mint: testBaseMint, Amount: big.NewInt(1)},
		}
	}

	valid := bundle()
	assert.NoError(t, valid.Validate())

	noReceive := bundle()
	noReceive.Receive.Amount = nil
	assert.Error(t, noReceive.Validate())

	noSend := bundle()
	noSend.Send.Amount = nil
	assert.Error(t, noSend.Validate())
}

// Unset constraint fields must be omitted on the wire entirely, not sent as null
func TestExternalOrderWireShape(t *testing.T) {
	payload, err := json.Marshal(testOrder())
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &fields))

	assert.Contains(t, fields, "quote_mint")
	assert.Contains(t, fields, "base_mint")
	assert.Contains(t, fields, "side")
	assert.Contains(t, fields, "quote_amount")
	assert.Contains(t, fields, "min_fill_size")

	assert.NotContains(t, fields, "base_amount")
	assert.NotContains(t, fields, "exact_base_output")
	assert.NotContains(t, fields, "exact_quote_output")
}

func TestExternalMatchResponseDecode(t *testing.T) {
	raw := `{
		"match_bundle": {
			"match_result": {
				"quote_mint": "0xaf88d065e77c8cc2239327c5edb3a432268e5831",
				"base_mint": "0x82af49447d8a07e3bd95bd0d56f35241523fbab1",
				"quote_amount": 2000000000,
				"base_amount": 1000000000000000000,
				"direction": "Buy"
			},
			"fees": {"relayer_fee": 3, "protocol_fee": 4},
			"send": {"mint": "0xaf88d065e77c8cc2239327c5edb3a432268e5831", "amount": 2000000000},
			"receive": {"mint": "0x82af49447d8a07e3bd95bd0d56f35241523fbab1", "amount": 1000000000000000000},
			"settlement_tx": {"to": "0xdef0", "data": "0x1234", "value": "0"}
		},
		"is_sponsored": true,
		"gas_sponsorship_info": {"refund_amount": 100, "refund_native_eth": true}
	}`

	var resp ExternalMatchResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	assert.Equal(t, SideBuy, resp.MatchBundle.MatchResult.Direction)
	assert.Equal(t, testQuoteMint, resp.MatchBundle.Send.Mint)
	assert.Equal(t, big.NewInt(1_000_000_000_000_000_000), resp.MatchBundle.Receive.Amount)
	assert.Equal(t, big.NewInt(7), resp.MatchBundle.Fees.Total())
	assert.True(t, resp.GasSponsored)
	require.NotNil(t, resp.GasSponsorshipInfo)
	assert.Equal(t, big.NewInt(100), resp.GasSponsorshipInfo.RefundAmount)
	assert.True(t, resp.GasSponsorshipInfo.RefundNativeEth)
	assert.NotEmpty(t, resp.MatchBundle.SettlementTx)
}

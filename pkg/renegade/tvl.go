package renegade

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"renegade-swap/pkg/types"
)

// defaultLockedValueURL is the DefiLlama protocol TVL endpoint, which returns
// the aggregate USD value as a bare number
const defaultLockedValueURL = "https://api.llama.fi/tvl/renegade"

// LockedValue reports the total value locked in the venue, in USD. The venue
// exposes only an aggregate figure, so the token argument is ignored. Any
// transport failure or malformed payload degrades to zero rather than an
// error; the lookup is best effort.
func (m *Module) LockedValue(ctx context.Context, _ types.PoolState, _ *types.Token) (decimal.Decimal, error) {
	value, err := m.fetchLockedValue(ctx)
	if err != nil {
		m.logger.Warn("failed to fetch renegade TVL, reporting zero", zap.Error(err))
		return decimal.Zero, nil
	}
	return value, nil
}

func (m *Module) fetchLockedValue(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.tvlURL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create TVL request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("TVL request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("TVL endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read TVL response: %w", err)
	}

	value, err := decimal.NewFromString(strings.TrimSpace(string(body)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed TVL payload: %w", err)
	}
	return value, nil
}

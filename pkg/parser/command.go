package parser

import (
	"fmt"
	"regexp"
	"strings"

	"renegade-swap/pkg/types"
)

// ParseQuoteCommand parses a natural language quote command
// Examples:
//   - "quote 2000 USDC to WETH"
//   - "1.5 WETH to USDC"
func ParseQuoteCommand(command string) (*types.QuoteRequest, error) {
	// Normalize the command
	command = strings.TrimSpace(strings.ToUpper(command))

	// Remove the word "QUOTE" if present at the beginning
	command = strings.TrimPrefix(command, "QUOTE ")

	// Pattern: <amount> <input_token> TO <output_token>
	// Matches: "2000 USDC TO WETH", "1.5 WETH TO USDC"
	pattern := regexp.MustCompile(`^(\d+\.?\d*)\s+([A-Z0-9]+)\s+TO\s+([A-Z0-9]+)$`)

	matches := pattern.FindStringSubmatch(command)
	if matches == nil {
		return nil, fmt.Errorf("invalid quote command format. Expected: 'quote <amount> <token> to <token>' (e.g., 'quote 2000 USDC to WETH')")
	}

	return &types.QuoteRequest{
		Amount:      matches[1],
		InputToken:  NormalizeTokenSymbol(matches[2]),
		OutputToken: NormalizeTokenSymbol(matches[3]),
	}, nil
}

// NormalizeTokenSymbol normalizes token symbols to the wrapped forms the
// venue trades
func NormalizeTokenSymbol(symbol string) string {
	symbol = strings.TrimSpace(strings.ToUpper(symbol))

	// The venue trades wrapped assets only
	aliases := map[string]string{
		"ETH": "WETH",
		"BTC": "WBTC",
	}

	if normalized, exists := aliases[symbol]; exists {
		return normalized
	}

	return symbol
}

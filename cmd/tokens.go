package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"renegade-swap/pkg/renegade"
	"renegade-swap/pkg/types"
)

var filterChain string

var tokensCmd = &cobra.Command{
	Use:     "list-tokens",
	Aliases: []string{"tokens", "ls"},
	Short:   "List tokens tradable on the dark pool",
	Long: `List the tokens this tool recognizes per settlement chain. Every pair
is quoted against USDC, the reference asset.

Examples:
  renegade-swap list-tokens
  renegade-swap list-tokens --chain base_mainnet`,
	Run: runListTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVar(&filterChain, "chain", "", "Filter by settlement chain")
}

func runListTokens(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	chains, err := listedChains(filterChain)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		output := make(map[string][]map[string]interface{})
		for _, chain := range chains {
			for _, token := range renegade.KnownTokens(chain) {
				output[string(chain)] = append(output[string(chain)], map[string]interface{}{
					"address":   token.Address.Hex(),
					"symbol":    token.Symbol,
					"decimals":  token.Decimals,
					"reference": renegade.IsReferenceAsset(chain, token),
				})
			}
		}
		jsonData, _ := json.MarshalIndent(output, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
	color.Green("                             TRADABLE TOKENS")
	fmt.Println(strings.Repeat("=", 80))

	for _, chain := range chains {
		tokens := renegade.KnownTokens(chain)
		if len(tokens) == 0 {
			continue
		}

		fmt.Println()
		color.Cyan("%s:", chain)
		for _, token := range tokens {
			displayToken(chain, token)
		}
	}
	fmt.Println()
}

// listedChains resolves the --chain filter, rejecting unknown chains rather
// than printing an empty table for them
func listedChains(filter string) ([]renegade.Chain, error) {
	if filter == "" {
		return renegade.SupportedChains(), nil
	}

	chain, err := renegade.ParseChain(filter)
	if err != nil {
		return nil, err
	}
	return []renegade.Chain{chain}, nil
}

func displayToken(chain renegade.Chain, token types.Token) {
	marker := " "
	if renegade.IsReferenceAsset(chain, token) {
		marker = color.YellowString("*")
	}
	fmt.Printf("  %s %-6s %s (%d decimals)\n", marker, token.Symbol, token.Address.Hex(), token.Decimals)
}

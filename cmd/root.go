package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "renegade-swap",
	Short: "A CLI for swap quotes from the Renegade dark pool",
	Long: `renegade-swap fetches swap quotes from the Renegade external matching
engine. Pairs are quoted against USDC; fees are taken out of the receive leg,
so quoted amounts are already net of fees.

Examples:
  renegade-swap quote 2000 USDC to WETH
  renegade-swap quote 1 WETH to USDC --chain base_mainnet
  renegade-swap list-tokens
  renegade-swap tvl`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

func printError(err error) {
	fmt.Printf("\nError: %v\n\n", err)
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"renegade-swap/config"
	"renegade-swap/pkg/liquidity"
	"renegade-swap/pkg/parser"
	"renegade-swap/pkg/renegade"
	"renegade-swap/pkg/types"
)

var (
	quoteChain  string
	exactOutput bool
)

var quoteCmd = &cobra.Command{
	Use:   "quote <amount> <input-token> to <output-token>",
	Short: "Fetch a swap quote from the dark pool",
	Long: `Fetch a swap quote from the Renegade external matching engine.

The amount constrains the input token by default; pass --exact-output to
constrain the output token instead (the quote then reports the required
input amount). One side of the pair must be USDC.

Examples:
  renegade-swap quote 2000 USDC to WETH
  renegade-swap quote 1 WETH to USDC
  renegade-swap quote 1 USDC to WETH --exact-output
  renegade-swap quote 2000 USDC to WETH --chain base_mainnet`,
	Args: cobra.MinimumNArgs(1),
	Run:  runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVar(&quoteChain, "chain", "", "Settlement chain (defaults to the configured chain)")
	quoteCmd.Flags().BoolVar(&exactOutput, "exact-output", false, "Treat the amount as the desired output amount")
}

func runQuote(cmd *cobra.Command, args []string) {
	// Parse the command
	commandStr := strings.Join(args, " ")
	quoteReq, err := parser.ParseQuoteCommand(commandStr)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	chainStr := cfg.Chain
	if quoteChain != "" {
		chainStr = quoteChain
	}

	chain, err := renegade.ParseChain(chainStr)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	// Resolve the tokens
	inputToken, err := renegade.FindToken(chain, quoteReq.InputToken)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	outputToken, err := renegade.FindToken(chain, quoteReq.OutputToken)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	// Scale the human amount by the constrained token's decimals
	humanAmount, err := decimal.NewFromString(quoteReq.Amount)
	if err != nil {
		printError(fmt.Errorf("invalid amount: %w", err))
		os.Exit(1)
	}
	constrained := inputToken
	if exactOutput {
		constrained = outputToken
	}
	rawAmount := humanAmount.Shift(int32(constrained.Decimals)).BigInt()

	logger := zap.NewNop()
	if verbose {
		logger, _ = zap.NewDevelopment()
	}

	registry := liquidity.NewRegistry()
	registry.Register(renegade.Venue, renegade.New(logger))

	module, err := registry.Get(renegade.Venue)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	fixed := types.FixedParameters{
		Chain:     chainStr,
		APIKey:    cfg.APIKey,
		APISecret: cfg.APISecret,
	}

	// Fetch the quote with spinner
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Fetching quote..."
		s.Start()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var fee, amount *big.Int
	if exactOutput {
		fee, amount, err = module.QuoteGivenOutput(ctx, fixed, inputToken, outputToken, rawAmount)
	} else {
		fee, amount, err = module.QuoteGivenInput(ctx, fixed, inputToken, outputToken, rawAmount)
	}

	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if amount == nil {
		if jsonOutput {
			fmt.Println(`{"status": "no_quote"}`)
		} else {
			color.Yellow("\nNo quote available for this pair.\n")
		}
		return
	}

	// The quoted side is the opposite of the constrained one
	quoted := outputToken
	if exactOutput {
		quoted = inputToken
	}
	quotedAmount := decimal.NewFromBigInt(amount, -int32(quoted.Decimals))

	if jsonOutput {
		output := map[string]interface{}{
			"chain":        chainStr,
			"input_token":  inputToken.Symbol,
			"output_token": outputToken.Symbol,
			"amount":       quotedAmount.String(),
			"amount_raw":   amount.String(),
			"fee":          fee.String(),
			"status":       "quoted",
		}
		jsonData, _ := json.MarshalIndent(output, "", "  ")
		fmt.Println(string(jsonData))
	} else {
		displayQuote(quoteReq, chainStr, quoted.Symbol, quotedAmount, exactOutput)
	}
}

func displayQuote(req *types.QuoteRequest, chain, quotedSymbol string, quotedAmount decimal.Decimal, exactOutput bool) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                      SWAP QUOTE")
	fmt.Println(strings.Repeat("=", 60))

	if exactOutput {
		fmt.Printf("\n  For:               %s %s\n", req.Amount, color.YellowString(req.OutputToken))
		fmt.Printf("  You provide:       ~%s %s\n", quotedAmount.String(), color.YellowString(quotedSymbol))
	} else {
		fmt.Printf("\n  From:              %s %s\n", req.Amount, color.YellowString(req.InputToken))
		fmt.Printf("  To:                ~%s %s\n", quotedAmount.String(), color.YellowString(quotedSymbol))
	}
	fmt.Printf("  Chain:             %s\n", chain)
	fmt.Printf("  Input-side fee:    0 (fees are netted into the received amount)\n")
	fmt.Println()
}

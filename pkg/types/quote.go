package types

// QuoteRequest represents a user's quote command
type QuoteRequest struct {
	Amount      string
	InputToken  string
	OutputToken string
	Chain       string
	ExactOutput bool
}

// Package pipeline turns a raw receivables export into two tables: an
// interest detail sheet and importable debit notes. Each stage is a pure
// function from records plus configuration to new records; nothing here
// touches the network, disk or clock except the generation date on
// notes, which callers can pin via Config.InvoiceDate.
package pipeline

// Run executes the full transformation: clean, price, aggregate.
// Configuration is validated first, so an invalid parameter fails the
// run before any row is touched. A run either returns both tables or
// returns an error and no partial state.
func Run(rows [][]string, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	txns, err := Clean(rows, cfg)
	if err != nil {
		return nil, err
	}
	interest := CalculateInterest(txns, cfg)
	notes := GenerateDebitNotes(interest, cfg)
	return &Result{Interest: interest, Notes: notes}, nil
}

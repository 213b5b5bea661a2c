package pipeline

import "github.com/shopspring/decimal"

// Defaults mirror the rates and numbering the AR team bills with today.
const (
	DefaultPerDayRate        = 0.06
	DefaultDueDaysThreshold  = 150
	DefaultMaxWorkingDays    = 31
	DefaultInvoicePrefix     = "CDN/SA-"
	DefaultStartingNumber    = 311
	DefaultOpeningBalanceAge = 300
	DefaultDescription       = "OD Charges Dec-2025"

	// Invoice counters are zero-padded to six digits.
	MaxStartingNumber = 999999
)

// Config captures one invocation's parameters. Values are fixed at call
// time and never shared across runs.
type Config struct {
	PerDayRate        decimal.Decimal
	DueDaysThreshold  int
	MaxWorkingDays    int
	InvoicePrefix     string
	StartingNumber    int
	OpeningBalanceAge int
	Description       string
	InvoiceDate       string // YYYY-MM-DD; empty means generation date
}

func DefaultConfig() Config {
	return Config{
		PerDayRate:        decimal.NewFromFloat(DefaultPerDayRate),
		DueDaysThreshold:  DefaultDueDaysThreshold,
		MaxWorkingDays:    DefaultMaxWorkingDays,
		InvoicePrefix:     DefaultInvoicePrefix,
		StartingNumber:    DefaultStartingNumber,
		OpeningBalanceAge: DefaultOpeningBalanceAge,
		Description:       DefaultDescription,
	}
}

// Validate rejects parameters that would produce nonsense notes, naming
// the offending parameter.
func (c Config) Validate() error {
	if c.PerDayRate.IsNegative() {
		return &ConfigError{Param: "per_day_rate", Reason: "must not be negative"}
	}
	if c.DueDaysThreshold < 0 {
		return &ConfigError{Param: "due_days_threshold", Reason: "must not be negative"}
	}
	if c.MaxWorkingDays < 1 {
		return &ConfigError{Param: "max_working_days", Reason: "must be at least 1"}
	}
	if c.StartingNumber < 1 || c.StartingNumber > MaxStartingNumber {
		return &ConfigError{Param: "starting_number", Reason: "must be between 1 and 999999"}
	}
	if c.OpeningBalanceAge < 0 {
		return &ConfigError{Param: "opening_balance_age", Reason: "must not be negative"}
	}
	return nil
}

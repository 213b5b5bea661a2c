package pipeline

import "github.com/shopspring/decimal"

// Required upload columns, matched byte-for-byte against the header row.
const (
	ColRegion         = "Region"
	ColAreaName       = "Area Name"
	ColMarket         = "Market"
	ColCustomerName   = "Customer Name"
	ColCustomerNumber = "Customer Number"
	ColDate           = "Date"
	ColTransaction    = "Transaction#"
	ColType           = "Type"
	ColStatus         = "Status"
	ColDueDate        = "Due Date"
	ColAmount         = "Amount"
	ColBalanceDue     = "Balance Due"
	ColAge            = "Age"
	ColSalesPerson    = "Sales person"
)

// Some exports carry a second, abbreviated salesperson column. It is
// dropped during cleaning; its absence is not an error.
const ColSalesPersonVariant = "Sale person"

var requiredColumns = []string{
	ColRegion, ColAreaName, ColMarket, ColCustomerName, ColCustomerNumber,
	ColDate, ColTransaction, ColType, ColStatus, ColDueDate, ColAmount,
	ColBalanceDue, ColAge, ColSalesPerson,
}

// Transaction is one cleaned ledger row from the receivables export.
// Amount and BalanceDue are already numeric; Age is in days.
type Transaction struct {
	Region         string
	AreaName       string
	Market         string
	CustomerName   string
	CustomerNumber string
	Date           string
	TransactionRef string
	Type           string
	Status         string
	DueDate        string
	Amount         decimal.Decimal
	BalanceDue     decimal.Decimal
	Age            int
	SalesPerson    string
}

// InterestRecord is a transaction priced for the current billing window.
type InterestRecord struct {
	Transaction
	DueDays              int
	PreviousInterestDays int
	WorkingDays          int
	PerDayRate           decimal.Decimal
	WorkingInterestPct   decimal.Decimal
	InterestAmount       decimal.Decimal
}

// DebitNote is one importable accounting document charging a customer
// the interest accrued across all of their qualifying transactions.
type DebitNote struct {
	InvoiceDate          string
	InvoiceNo            string
	InvoiceStatus        string
	AccountsReceivable   string
	CustomerID           string
	CustomerName         string
	IsInclusiveTax       bool
	SubTotal             int64
	Total                int64
	Balance              int64
	Notes                string
	InvoiceType          string
	LocationName         string
	ItemDesc             string
	Quantity             int
	ItemTotal            int64
	ItemPrice            int64
	SalesPerson          string
	ItemType             string
	Reason               string
	Account              string
	LineItemLocationName string
	SupplyType           string
	BillType             string
}

// Result holds both output tables of one pipeline invocation.
type Result struct {
	Interest []InterestRecord
	Notes    []DebitNote
}

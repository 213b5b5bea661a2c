package pipeline

import (
	"errors"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
)

func rawHeader() []string {
	return []string{
		"Region", "Area Name", "Market", "Customer Name", "Customer Number",
		"Date", "Transaction#", "Type", "Status", "Due Date", "Amount",
		"Balance Due", "Age", "Sales person",
	}
}

// rawRow builds one upload row with sane defaults, overridable by column name.
func rawRow(over map[string]string) []string {
	vals := map[string]string{
		ColRegion:         "South",
		ColAreaName:       "Area 1",
		ColMarket:         "General",
		ColCustomerName:   "Acme Traders",
		ColCustomerNumber: "C-1001",
		ColDate:           "2025-06-01",
		ColTransaction:    "INV-1",
		ColType:           "Invoice",
		ColStatus:         StatusOverdue,
		ColDueDate:        "2025-07-01",
		ColAmount:         "₹1,000.00",
		ColBalanceDue:     "₹1,000.00",
		ColAge:            "200 Days",
		ColSalesPerson:    "Ravi",
	}
	for k, v := range over {
		vals[k] = v
	}
	header := rawHeader()
	row := make([]string, len(header))
	for i, col := range header {
		row[i] = vals[col]
	}
	return row
}

func transactionsEqual(a, b Transaction) bool {
	return a.Region == b.Region && a.AreaName == b.AreaName &&
		a.Market == b.Market && a.CustomerName == b.CustomerName &&
		a.CustomerNumber == b.CustomerNumber && a.Date == b.Date &&
		a.TransactionRef == b.TransactionRef && a.Type == b.Type &&
		a.Status == b.Status && a.DueDate == b.DueDate &&
		a.Amount.Equal(b.Amount) && a.BalanceDue.Equal(b.BalanceDue) &&
		a.Age == b.Age && a.SalesPerson == b.SalesPerson
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"₹12,345.00", "12345"},
		{"₹1,00,000.50", "100000.5"},
		{"12345.67", "12345.67"},
		{" 500 ", "500"},
		{"abc", "0"},
		{"", "0"},
	}
	for _, tt := range tests {
		got := ParseCurrency(tt.in)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParseCurrency(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"200 Days", 200},
		{"200", 200},
		{" 45 Days ", 45},
		{"abc", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := ParseAge(tt.in); got != tt.want {
			t.Errorf("ParseAge(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCleanFiltersOverdueOnly(t *testing.T) {
	rows := [][]string{
		rawHeader(),
		rawRow(map[string]string{ColStatus: StatusOverdue}),
		rawRow(map[string]string{ColStatus: "Open"}),
		rawRow(map[string]string{ColStatus: "overdue"}), // case matters
		rawRow(map[string]string{ColStatus: StatusOverdue}),
	}
	txns, err := Clean(rows, DefaultConfig())
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 overdue rows, got %d", len(txns))
	}
	for _, tx := range txns {
		if tx.Status != StatusOverdue {
			t.Errorf("non-overdue row survived: %+v", tx)
		}
	}
}

func TestCleanOpeningBalanceOverride(t *testing.T) {
	rows := [][]string{
		rawHeader(),
		rawRow(map[string]string{ColType: TypeOpeningBalance, ColAge: "12 Days"}),
		rawRow(map[string]string{ColType: TypeOpeningBalance, ColAge: "garbage"}),
		rawRow(map[string]string{ColAge: "12 Days"}),
	}
	txns, err := Clean(rows, DefaultConfig())
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if txns[0].Age != DefaultOpeningBalanceAge || txns[1].Age != DefaultOpeningBalanceAge {
		t.Errorf("opening balance rows should be forced to %d, got %d and %d",
			DefaultOpeningBalanceAge, txns[0].Age, txns[1].Age)
	}
	if txns[2].Age != 12 {
		t.Errorf("ordinary row age = %d, want 12", txns[2].Age)
	}

	cfg := DefaultConfig()
	cfg.OpeningBalanceAge = 450
	txns, err = Clean(rows, cfg)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if txns[0].Age != 450 {
		t.Errorf("configured override ignored: age = %d, want 450", txns[0].Age)
	}
}

func TestCleanMissingColumn(t *testing.T) {
	header := rawHeader()
	// drop "Balance Due"
	var trimmed []string
	for _, col := range header {
		if col != ColBalanceDue {
			trimmed = append(trimmed, col)
		}
	}
	_, err := Clean([][]string{trimmed}, DefaultConfig())
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnError, got %T", err)
	}
	if missing.Column != ColBalanceDue {
		t.Errorf("error names column %q, want %q", missing.Column, ColBalanceDue)
	}
}

func TestCleanEmptyTable(t *testing.T) {
	if _, err := Clean(nil, DefaultConfig()); err == nil {
		t.Fatal("expected error for empty table")
	}
	txns, err := Clean([][]string{rawHeader()}, DefaultConfig())
	if err != nil {
		t.Fatalf("header-only table should clean: %v", err)
	}
	if len(txns) != 0 {
		t.Errorf("expected 0 rows, got %d", len(txns))
	}
}

func TestCleanIgnoresSalePersonVariant(t *testing.T) {
	header := append(rawHeader(), ColSalesPersonVariant)
	row := append(rawRow(nil), "Duplicate Name")
	txns, err := Clean([][]string{header, row}, DefaultConfig())
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if txns[0].SalesPerson != "Ravi" {
		t.Errorf("salesperson = %q, want value from %q column", txns[0].SalesPerson, ColSalesPerson)
	}
}

func TestCleanIdempotent(t *testing.T) {
	rows := [][]string{
		rawHeader(),
		rawRow(map[string]string{ColAmount: "₹2,500.75", ColBalanceDue: "₹1,200.00", ColAge: "180 Days"}),
		rawRow(map[string]string{ColType: TypeOpeningBalance, ColAge: "7 Days"}),
	}
	cfg := DefaultConfig()
	first, err := Clean(rows, cfg)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	// Re-serialize the cleaned table and clean it again.
	again := [][]string{rawHeader()}
	for _, tx := range first {
		again = append(again, []string{
			tx.Region, tx.AreaName, tx.Market, tx.CustomerName,
			tx.CustomerNumber, tx.Date, tx.TransactionRef, tx.Type,
			tx.Status, tx.DueDate, tx.Amount.String(),
			tx.BalanceDue.String(), strconv.Itoa(tx.Age), tx.SalesPerson,
		})
	}
	second, err := Clean(again, cfg)
	if err != nil {
		t.Fatalf("second Clean failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("row count changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !transactionsEqual(first[i], second[i]) {
			t.Errorf("row %d changed on re-clean:\n first: %+v\nsecond: %+v", i, first[i], second[i])
		}
	}
}

package pipeline

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Status and type literals matched exactly against the export.
const (
	StatusOverdue      = "Overdue"
	TypeOpeningBalance = "Customer Opening Balance"
)

// bindHeader maps required column names to their positions. The first
// occurrence wins when a header repeats.
func bindHeader(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, &MissingColumnError{Column: col}
		}
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// ParseCurrency strips the rupee symbol and thousands separators and
// parses the remainder as a decimal. Unparseable input becomes zero; the
// exports are known to mix formatted text with plain numbers.
func ParseCurrency(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseAge strips the " Days" suffix and parses the remainder.
// Unparseable input becomes zero, which the interest filter drops later.
func ParseAge(s string) int {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "Days")
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return int(d.IntPart())
}

// Clean binds the upload's header row, keeps only Overdue rows and
// normalizes the numeric fields. Opening-balance carry-forward rows are
// always treated as maximally aged, whatever their Age cell says. The
// legacy "Sale person" duplicate column is ignored when present.
func Clean(rows [][]string, cfg Config) ([]Transaction, error) {
	if len(rows) == 0 {
		return nil, &MissingColumnError{Column: requiredColumns[0]}
	}
	idx, err := bindHeader(rows[0])
	if err != nil {
		return nil, err
	}
	txns := make([]Transaction, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if cell(row, idx[ColStatus]) != StatusOverdue {
			continue
		}
		t := Transaction{
			Region:         cell(row, idx[ColRegion]),
			AreaName:       cell(row, idx[ColAreaName]),
			Market:         cell(row, idx[ColMarket]),
			CustomerName:   cell(row, idx[ColCustomerName]),
			CustomerNumber: cell(row, idx[ColCustomerNumber]),
			Date:           cell(row, idx[ColDate]),
			TransactionRef: cell(row, idx[ColTransaction]),
			Type:           cell(row, idx[ColType]),
			Status:         StatusOverdue,
			DueDate:        cell(row, idx[ColDueDate]),
			Amount:         ParseCurrency(cell(row, idx[ColAmount])),
			BalanceDue:     ParseCurrency(cell(row, idx[ColBalanceDue])),
			Age:            ParseAge(cell(row, idx[ColAge])),
			SalesPerson:    cell(row, idx[ColSalesPerson]),
		}
		if t.Type == TypeOpeningBalance {
			t.Age = cfg.OpeningBalanceAge
		}
		txns = append(txns, t)
	}
	return txns, nil
}

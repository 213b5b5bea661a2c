package pipeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Fixed document fields expected by the accounting import.
const (
	InvoiceStatusOpen     = "Open"
	AccountsReceivableLit = "Accounts Receivable"
	InvoiceTypeDebitNotes = "Debit Notes"
	LocationHeadOffice    = "Head Office"
	LineItemHeadOffice    = "HEAD OFFICE"
	ItemTypeService       = "service"
	ReasonOthers          = "Others"
	AccountODCharges      = "OD CHARGES"
	SupplyTypeOutOfScope  = "Out of Scope"
	BillTypeCredit        = "Credit"
)

// noteKey is the full grouping key. Customer number alone is not enough:
// a customer served by two salespeople gets two notes.
type noteKey struct {
	customerNumber string
	customerName   string
	areaName       string
	region         string
	salesPerson    string
}

// GenerateDebitNotes folds interest rows into one note per grouping key,
// rounds each total half up to the whole rupee, and numbers the notes
// sequentially over the table sorted by customer id. Numbering is purely
// positional after the sort; it has no relation to upload order.
func GenerateDebitNotes(recs []InterestRecord, cfg Config) []DebitNote {
	sums := make(map[noteKey]decimal.Decimal)
	for _, r := range recs {
		k := noteKey{
			customerNumber: r.CustomerNumber,
			customerName:   r.CustomerName,
			areaName:       r.AreaName,
			region:         r.Region,
			salesPerson:    r.SalesPerson,
		}
		sums[k] = sums[k].Add(r.InterestAmount)
	}

	keys := make([]noteKey, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	// Customer id is the sort the import expects; the remaining fields
	// only break ties so output order is deterministic.
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.customerNumber != b.customerNumber {
			return a.customerNumber < b.customerNumber
		}
		if a.customerName != b.customerName {
			return a.customerName < b.customerName
		}
		return a.salesPerson < b.salesPerson
	})

	invoiceDate := cfg.InvoiceDate
	if invoiceDate == "" {
		invoiceDate = time.Now().Format("2006-01-02")
	}

	notes := make([]DebitNote, 0, len(keys))
	for i, k := range keys {
		total := sums[k].Round(0).IntPart()
		notes = append(notes, DebitNote{
			InvoiceDate:          invoiceDate,
			InvoiceNo:            fmt.Sprintf("%s%06d", cfg.InvoicePrefix, cfg.StartingNumber+i),
			InvoiceStatus:        InvoiceStatusOpen,
			AccountsReceivable:   AccountsReceivableLit,
			CustomerID:           k.customerNumber,
			CustomerName:         k.customerName,
			IsInclusiveTax:       true,
			SubTotal:             total,
			Total:                total,
			Balance:              total,
			Notes:                cfg.Description,
			InvoiceType:          InvoiceTypeDebitNotes,
			LocationName:         LocationHeadOffice,
			ItemDesc:             cfg.Description,
			Quantity:             1,
			ItemTotal:            total,
			ItemPrice:            total,
			SalesPerson:          k.salesPerson,
			ItemType:             ItemTypeService,
			Reason:               ReasonOthers,
			Account:              AccountODCharges,
			LineItemLocationName: LineItemHeadOffice,
			SupplyType:           SupplyTypeOutOfScope,
			BillType:             BillTypeCredit,
		})
	}
	return notes
}

package xlsxio

import (
	"github.com/xuri/excelize/v2"

	"DebitNoteEngine/internal/pipeline"
)

// Sheet names in the downloaded workbook.
const (
	SheetInterest   = "Interest Detail"
	SheetDebitNotes = "Debit Notes"
)

// InterestHeader is the fixed interest-sheet column order. The importing
// accounting system matches columns by header text, so these strings are
// part of the contract.
var InterestHeader = []string{
	"Region", "Area Name", "Market", "Customer Name", "Customer Number",
	"Date", "Transaction#", "Type", "Status", "Due Date", "Amount",
	"Balance Due", "Age", "Due days", "Previous interest",
	"Interest working days", "Per-day interest %", "Working interest %",
	"Interest amount", "Sale Person",
}

// DebitNoteHeader is the fixed debit-note-sheet column order.
var DebitNoteHeader = []string{
	"Invoice Date", "Invoice No.", "Invoice Status", "Accounts Receivable",
	"Customer ID", "Customer Name", "Is Inclusive Tax", "SubTotal", "Total",
	"Balance", "Notes", "Invoice Type", "Location Name", "Item Desc",
	"Quantity", "Item Total", "Item Price", "Sales person", "Item Type",
	"Reason for issuing Debit Note", "Account", "Line Item Location Name",
	"Supply Type", "CF.Bill Type",
}

// InterestRow flattens one record into interest-sheet cell values, in
// InterestHeader order.
func InterestRow(r pipeline.InterestRecord) []interface{} {
	amount, _ := r.Amount.Float64()
	balance, _ := r.BalanceDue.Float64()
	perDay, _ := r.PerDayRate.Float64()
	pct, _ := r.WorkingInterestPct.Float64()
	interest, _ := r.InterestAmount.Float64()
	return []interface{}{
		r.Region, r.AreaName, r.Market, r.CustomerName, r.CustomerNumber,
		r.Date, r.TransactionRef, r.Type, r.Status, r.DueDate, amount,
		balance, r.Age, r.DueDays, r.PreviousInterestDays, r.WorkingDays,
		perDay, pct, interest, r.SalesPerson,
	}
}

// DebitNoteRow flattens one note into debit-note-sheet cell values, in
// DebitNoteHeader order.
func DebitNoteRow(n pipeline.DebitNote) []interface{} {
	return []interface{}{
		n.InvoiceDate, n.InvoiceNo, n.InvoiceStatus, n.AccountsReceivable,
		n.CustomerID, n.CustomerName, n.IsInclusiveTax, n.SubTotal, n.Total,
		n.Balance, n.Notes, n.InvoiceType, n.LocationName, n.ItemDesc,
		n.Quantity, n.ItemTotal, n.ItemPrice, n.SalesPerson, n.ItemType,
		n.Reason, n.Account, n.LineItemLocationName, n.SupplyType,
		n.BillType,
	}
}

// BuildWorkbook writes both result tables into a two-sheet workbook.
// Empty results still produce sheets with header rows.
func BuildWorkbook(res *pipeline.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetInterest); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetDebitNotes); err != nil {
		return nil, err
	}

	interestRows := make([][]interface{}, 0, len(res.Interest))
	for _, r := range res.Interest {
		interestRows = append(interestRows, InterestRow(r))
	}
	if err := writeSheet(f, SheetInterest, InterestHeader, interestRows); err != nil {
		return nil, err
	}

	noteRows := make([][]interface{}, 0, len(res.Notes))
	for _, n := range res.Notes {
		noteRows = append(noteRows, DebitNoteRow(n))
	}
	if err := writeSheet(f, SheetDebitNotes, DebitNoteHeader, noteRows); err != nil {
		return nil, err
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := setRow(f, sheet, 1, head); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, vals []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &vals)
}

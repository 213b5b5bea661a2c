package xlsxio

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Ext returns the lower-cased file extension.
func Ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// ParseUpload reads an uploaded export into raw rows, header first. CSV
// and xlsx are read directly; legacy xls workbooks go through the OLE2
// reader. Only the first sheet of a workbook is read.
func ParseUpload(file io.ReadSeeker, ext string) ([][]string, error) {
	switch ext {
	case ".csv":
		r := csv.NewReader(file)
		r.FieldsPerRecord = -1
		return r.ReadAll()
	case ".xlsx":
		f, err := excelize.OpenReader(file)
		if err != nil {
			return nil, err
		}
		sheet := f.GetSheetName(0)
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, err
		}
		return rows, nil
	case ".xls":
		return parseXLS(file)
	}
	return nil, errors.New("unsupported file type")
}

func parseXLS(file io.ReadSeeker) ([][]string, error) {
	wb, err := xls.OpenReader(file, "utf-8")
	if err != nil {
		return nil, err
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("xls workbook has no sheets")
	}
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		// Keep column positions aligned even when leading cells are empty.
		vals := make([]string, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			vals[c] = row.Col(c)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"healthsurvey/internal/domain"
)

const sheetName = "Survey Responses"

// Column widths are sized to content, clamped to this range.
const (
	minColWidth = 12
	maxColWidth = 50
)

// WriteResponsesExcel writes rows as a styled .xlsx workbook: bold white
// header on an indigo fill, thin borders, content-sized columns.
func WriteResponsesExcel(w io.Writer, rows []domain.Response) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"667EEA"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return err
	}

	header := make([]any, len(domain.ResponseColumns))
	widths := make([]int, len(domain.ResponseColumns))
	for i, col := range domain.ResponseColumns {
		header[i] = col
		widths[i] = len(col)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, r := range rows {
		record := responseRecord(r)
		cells := make([]any, len(record))
		for j, field := range record {
			cells[j] = field
			if len(field) > widths[j] {
				widths[j] = len(field)
			}
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(domain.ResponseColumns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	if len(rows) > 0 {
		lastCell := fmt.Sprintf("%s%d", lastCol, len(rows)+1)
		if err := f.SetCellStyle(sheetName, "A2", lastCell, cellStyle); err != nil {
			return err
		}
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		w := width + 2
		if w < minColWidth {
			w = minColWidth
		}
		if w > maxColWidth {
			w = maxColWidth
		}
		if err := f.SetColWidth(sheetName, col, col, float64(w)); err != nil {
			return err
		}
	}
	if err := f.SetRowHeight(sheetName, 1, 25); err != nil {
		return err
	}

	return f.Write(w)
}

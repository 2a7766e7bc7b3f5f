package extract

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// Excel linearizes .xlsx workbooks: a "Sheet: <name>" header per sheet,
// then one tab-joined line per non-empty row, in row-major order.
type Excel struct{}

func (Excel) Type() domain.FileType { return domain.FileTypeExcel }

func (Excel) Extract(path string) (string, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return "", err
	}
	defer workbook.Close()

	var parts []string
	for _, sheet := range workbook.GetSheetList() {
		parts = append(parts, "Sheet: "+sheet)
		rows, err := workbook.GetRows(sheet)
		if err != nil {
			return "", err
		}
		for _, row := range rows {
			line := strings.Join(row, "\t")
			if strings.TrimSpace(line) == "" {
				continue
			}
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "\n"), nil
}

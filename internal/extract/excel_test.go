package extract

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.xlsx")

	workbook := excelize.NewFile()
	require.NoError(t, workbook.SetCellValue("Sheet1", "A1", "name"))
	require.NoError(t, workbook.SetCellValue("Sheet1", "B1", "age"))
	require.NoError(t, workbook.SetCellValue("Sheet1", "A2", "alice"))
	require.NoError(t, workbook.SetCellValue("Sheet1", "B2", 30))
	require.NoError(t, workbook.SaveAs(path))
	require.NoError(t, workbook.Close())

	got, err := Excel{}.Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "Sheet: Sheet1\nname\tage\nalice\t30", got)
}

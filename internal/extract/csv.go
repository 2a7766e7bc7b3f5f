package extract

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// CSV linearizes delimited tables: one tab-joined line per non-empty row.
type CSV struct{}

func (CSV) Type() domain.FileType { return domain.FileTypeCSV }

func (CSV) Extract(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are fine
	records, err := reader.ReadAll()
	if err != nil {
		return "", err
	}

	var parts []string
	for _, row := range records {
		line := strings.Join(row, "\t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, "\n"), nil
}

package extract

import (
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// PDF extracts the plain text layer of .pdf files, page by page.
type PDF struct{}

func (PDF) Type() domain.FileType { return domain.FileTypePDF }

func (PDF) Extract(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest of the document.
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

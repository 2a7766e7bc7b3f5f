package extract

import (
	"os"
	"strings"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// Text reads plain .txt files as-is.
type Text struct{}

func (Text) Type() domain.FileType { return domain.FileTypeText }

func (Text) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

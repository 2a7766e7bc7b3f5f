package extract

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// JSON re-encodes .json files with two-space indentation so the structure
// reads top to bottom. Non-ASCII text is kept as-is.
type JSON struct{}

func (JSON) Type() domain.FileType { return domain.FileTypeJSON }

func (JSON) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

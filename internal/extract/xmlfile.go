package extract

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// XML collects the character data of .xml files in document order, one
// line per text node. Token order equals a depth-first walk with trailing
// tail text, so nested structure reads top to bottom.
type XML struct{}

func (XML) Type() domain.FileType { return domain.FileTypeXML }

func (XML) Extract(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	decoder := xml.NewDecoder(file)
	var parts []string
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		chardata, ok := token.(xml.CharData)
		if !ok {
			continue
		}
		text := strings.TrimSpace(string(chardata))
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n"), nil
}

package extract

import (
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// HTML strips markup from .html/.htm files. Script, style and noscript
// contents are dropped entirely; remaining text is emitted one line per
// block, preserving document order.
type HTML struct{}

func (HTML) Type() domain.FileType { return domain.FileTypeHTML }

func (HTML) Extract(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	tokenizer := html.NewTokenizer(file)
	var lines []string
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF means the document ended; tolerate malformed tails.
			return strings.Join(lines, "\n"), nil
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isSkippedTag(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isSkippedTag(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text == "" {
				continue
			}
			lines = append(lines, text)
		}
	}
}

func isSkippedTag(name string) bool {
	switch name {
	case "script", "style", "noscript":
		return true
	}
	return false
}

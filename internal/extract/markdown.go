package extract

import (
	"os"
	"regexp"
	"strings"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// Markdown reduces .md files to plain text: formatting markers are removed
// and links keep their visible label.
type Markdown struct{}

func (Markdown) Type() domain.FileType { return domain.FileTypeMarkdown }

var (
	mdCodeFence   = regexp.MustCompile("(?s)```.*?```")
	mdInlineCode  = regexp.MustCompile("`([^`]*)`")
	mdImage       = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	mdLink        = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	mdHeading     = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	mdBlockquote  = regexp.MustCompile(`(?m)^>\s?`)
	mdListMarker  = regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+\.)\s+`)
	mdEmphasis    = regexp.MustCompile(`(\*{1,3}|_{1,3})([^*_]+)(\*{1,3}|_{1,3})`)
	mdHorizontal  = regexp.MustCompile(`(?m)^\s*(?:-{3,}|\*{3,}|_{3,})\s*$`)
	mdBlankRun    = regexp.MustCompile(`\n{3,}`)
)

func (Markdown) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return stripMarkdown(string(data)), nil
}

func stripMarkdown(content string) string {
	content = mdCodeFence.ReplaceAllString(content, "")
	content = mdImage.ReplaceAllString(content, "")
	content = mdLink.ReplaceAllString(content, "$1")
	content = mdInlineCode.ReplaceAllString(content, "$1")
	content = mdHeading.ReplaceAllString(content, "")
	content = mdBlockquote.ReplaceAllString(content, "")
	content = mdListMarker.ReplaceAllString(content, "")
	content = mdEmphasis.ReplaceAllString(content, "$2")
	content = mdHorizontal.ReplaceAllString(content, "")
	content = mdBlankRun.ReplaceAllString(content, "\n\n")

	lines := strings.Split(content, "\n")
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

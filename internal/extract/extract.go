// Package extract converts files of supported formats into plain text
// documents. Each extractor is a best-effort linearization: structured
// formats are flattened to approximately what a human would read.
package extract

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// Extractor converts one file into plain text.
type Extractor interface {
	Type() domain.FileType
	Extract(path string) (string, error)
}

// DefaultRegistry maps each supported extension to its extractor.
// Dispatch is by extension, evaluated once per file.
func DefaultRegistry() map[string]Extractor {
	return map[string]Extractor{
		".txt":  Text{},
		".pdf":  PDF{},
		".docx": Docx{},
		".xlsx": Excel{},
		".csv":  CSV{},
		".json": JSON{},
		".html": HTML{},
		".htm":  HTML{},
		".md":   Markdown{},
		".xml":  XML{},
	}
}

// LoadDocuments scans root recursively and extracts every file whose
// extension appears in the registry. filepath.WalkDir visits entries in
// lexical order, so document order is reproducible across runs.
//
// A file that fails to extract is recorded as a failure and skipped; it
// never aborts the walk. Both lists are returned for the caller to inspect.
func LoadDocuments(root string, registry map[string]Extractor) ([]domain.Document, []domain.ExtractionFailure, error) {
	var docs []domain.Document
	var failures []domain.ExtractionFailure
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		extractor, ok := registry[ext]
		if !ok {
			return nil
		}
		text, exErr := extractor.Extract(path)
		if exErr != nil {
			failures = append(failures, domain.ExtractionFailure{
				Path: path,
				Type: extractor.Type(),
				Err:  exErr,
			})
			return nil
		}
		docs = append(docs, domain.Document{
			ID:     stem(path),
			Text:   strings.TrimSpace(text),
			Source: path,
			Type:   extractor.Type(),
		})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return docs, failures, nil
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

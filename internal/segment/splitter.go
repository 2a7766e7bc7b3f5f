// Package segment provides sentence boundary detection for document text.
package segment

import (
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Splitter splits text into sentences using a Punkt tokenizer.
// Vietnamese uses Latin sentence punctuation, so the trained English model
// handles the mixed Vietnamese/English corpora this system targets.
type Splitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSplitter creates a sentence splitter backed by the bundled model.
func NewSplitter() (*Splitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &Splitter{tokenizer: tokenizer}, nil
}

// Split returns the non-empty sentences of text in order of appearance.
// Segmentation operates on a single document's text only; callers must not
// concatenate documents before splitting.
func (s *Splitter) Split(text string) []string {
	raw := s.tokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		cleaned := strings.TrimSpace(sent.Text)
		if cleaned == "" {
			continue
		}
		out = append(out, cleaned)
	}
	return out
}

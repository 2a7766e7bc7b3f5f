// Package answer grounds a language model's reply in retrieved context.
package answer

import (
	"context"
	"fmt"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// Fallback is the fixed sentence mandated when the context does not
// contain the answer.
const Fallback = "Tôi xin lỗi, tôi không tìm thấy thông tin cần thiết trong cơ sở dữ liệu."

// groundingInstruction restricts the model to the supplied context. This is
// a behavioural contract on the prompt; enforcement is best-effort since
// the hosted model controls instruction priority.
const groundingInstruction = "You are an expert Q&A system. Your sole function is to process the user's question and the retrieved context provided below. " +
	"You MUST ONLY generate a concise and direct final answer based STRICTLY and EXCLUSIVELY on the \"Retrieved Context\". " +
	"If the retrieved context does not contain the answer, you MUST respond by saying \"" + Fallback + "\" or a similar phrase, and DO NOT use your internal knowledge."

// Answerer sends question and context to a language model under the
// grounding instruction.
type Answerer struct {
	generator domain.Generator
}

// New creates an answerer using the given generator backend.
func New(generator domain.Generator) *Answerer {
	return &Answerer{generator: generator}
}

// Answer returns the model's reply for the question given the assembled
// context. A failed call is retried once; a second failure surfaces as
// ErrServiceFailure.
func (a *Answerer) Answer(ctx context.Context, question, contextText string) (string, error) {
	user := userMessage(question, contextText)
	reply, err := a.generator.Generate(ctx, groundingInstruction, user)
	if err != nil {
		reply, err = a.generator.Generate(ctx, groundingInstruction, user)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrServiceFailure, err)
	}
	return reply, nil
}

func userMessage(question, contextText string) string {
	return fmt.Sprintf(
		"User Input (Câu hỏi): %s\nRetrieved Context (Thông tin từ Vector DB): %s\n\nBased ONLY on the Retrieved Context, generate the final response for the User Input.",
		question, contextText,
	)
}

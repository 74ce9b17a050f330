// ABOUTME: Answer synthesizer: retrieve context, assemble messages, generate a validated answer
// ABOUTME: Empty context still goes to the model; the system prompt handles insufficiency
package core

import (
	"context"

	"docqa/internal/models"
	"docqa/internal/retriever"
)

// StructuredGenerator produces output constrained to out's JSON
// schema. A generation that does not conform fails, it is never
// coerced.
type StructuredGenerator interface {
	GenerateStructured(ctx context.Context, messages []models.Message, schemaName string, out any) error
}

// Answerer drives the read path: question → retrieved context →
// message assembly → structured generation.
type Answerer struct {
	retriever *retriever.Retriever
	generator StructuredGenerator
}

// NewAnswerer creates an Answerer.
func NewAnswerer(r *retriever.Retriever, g StructuredGenerator) *Answerer {
	return &Answerer{retriever: r, generator: g}
}

// Answer retrieves context for the question and asks the model for a
// schema-constrained answer. history, if any, is prior exchange turns
// in their original order.
func (a *Answerer) Answer(ctx context.Context, question string, history []models.Message) (*models.StructuredAnswer, error) {
	contextText, err := a.retriever.Retrieve(ctx, question)
	if err != nil {
		return nil, err
	}

	messages := buildMessages(question, contextText, history)

	var answer models.StructuredAnswer
	if err := a.generator.GenerateStructured(ctx, messages, "rag_answer", &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

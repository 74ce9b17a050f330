// ABOUTME: Fixed policy prompts and message assembly for answer synthesis
// ABOUTME: The model may only use supplied context and must mirror the question's language
package core

import (
	"fmt"

	"docqa/internal/models"
)

// InsufficientContextAnswer is the literal sentence the model is
// instructed to return when the context does not cover the question.
const InsufficientContextAnswer = "The provided documents do not contain this information."

const systemPrompt = `You are an assistant inside a Retrieval-Augmented Generation (RAG) pipeline.
You must answer the user's question **only** using the document context provided in the prompt.

Rules:
- Use only the retrieved context — no assumptions, no external knowledge.
- If the answer is not in the context, respond: "` + InsufficientContextAnswer + `"
- Keep responses concise and technical.
- **Never** mention embeddings, chunking, or any system internals.
- Always answer in the same language as the question.

Respond strictly in this JSON format:

{
    "answer": "<your answer>",
    "references": [
        "<relevant excerpts from the retrieved context>"
    ]
}
`

const contextPromptFormat = "Context that might be related to the user question.\nUse only the following context to answer the question:\n\n%s\n\n"

// buildMessages assembles the model input in the fixed order: system
// instruction, prior exchange in original order, retrieved context as
// an assistant turn, then the question as a user turn.
func buildMessages(question, contextText string, history []models.Message) []models.Message {
	messages := make([]models.Message, 0, len(history)+3)
	messages = append(messages, models.Message{Role: models.RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages,
		models.Message{Role: models.RoleAssistant, Content: fmt.Sprintf(contextPromptFormat, contextText)},
		models.Message{Role: models.RoleUser, Content: question},
	)
	return messages
}

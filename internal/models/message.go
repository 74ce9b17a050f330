// ABOUTME: Chat message types fed to the generative model
// ABOUTME: An ordered message slice is the model's whole input, nothing persists
package models

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Message is one turn in the sequence sent to the generative model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ABOUTME: OpenAI client for embeddings and schema-constrained chat completions
// ABOUTME: Retries transient failures with backoff, validates structured output strictly
package llm

import (
	"context"
	"fmt"
	"reflect"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"docqa/internal/config"
	"docqa/internal/models"
	"docqa/internal/util"
)

// Client wraps the OpenAI API with retry logic for the embedding and
// generation paths.
type Client struct {
	client         *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
	temperature    float32
	maxRetries     int
	retryDelay     time.Duration
	timeout        time.Duration
}

// NewClient creates a Client from the pipeline configuration.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &Client{
		client:         openai.NewClient(cfg.OpenAIKey),
		chatModel:      cfg.ChatModel,
		embeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		temperature:    cfg.Temperature,
		maxRetries:     cfg.MaxRetries,
		retryDelay:     cfg.RetryDelay,
		timeout:        cfg.Timeout,
	}, nil
}

// EmbedBatch maps each text to its embedding vector, in input order.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var lastErr error
	attempts := 0

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.Backoff(c.retryDelay, attempt))
		}
		attempts++

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.CreateEmbeddings(callCtx, openai.EmbeddingRequestStrings{
			Input: texts,
			Model: c.embeddingModel,
		})
		cancel()

		if err != nil {
			lastErr = err
			if !isTransient(err) {
				break
			}
			continue
		}
		if len(resp.Data) != len(texts) {
			lastErr = fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
			continue
		}

		vectors := make([][]float32, len(texts))
		for _, d := range resp.Data {
			if d.Index < 0 || d.Index >= len(vectors) {
				return nil, &ProviderError{Op: "embedding", Attempts: attempts,
					Err: fmt.Errorf("embedding index %d out of range", d.Index)}
			}
			vectors[d.Index] = d.Embedding
		}
		return vectors, nil
	}

	return nil, &ProviderError{Op: "embedding", Attempts: attempts, Err: lastErr}
}

// Embed embeds a single text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// GenerateStructured sends the message sequence to the chat model with
// output constrained to out's JSON schema, then decodes the response
// into out. Unknown fields, missing required fields, and malformed
// JSON all fail with SchemaValidationError.
func (c *Client) GenerateStructured(ctx context.Context, messages []models.Message, schemaName string, out any) error {
	target := reflect.ValueOf(out)
	for target.Kind() == reflect.Pointer {
		target = target.Elem()
	}
	schema, err := jsonschema.GenerateSchemaForType(target.Interface())
	if err != nil {
		return fmt.Errorf("generating schema %s: %w", schemaName, err)
	}

	request := openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Temperature: c.temperature,
		Messages:    toChatMessages(messages),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schemaName,
				Schema: schema,
				Strict: true,
			},
		},
	}

	var lastErr error
	attempts := 0

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.Backoff(c.retryDelay, attempt))
		}
		attempts++

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.CreateChatCompletion(callCtx, request)
		cancel()

		if err != nil {
			lastErr = err
			if !isTransient(err) {
				break
			}
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("no completion choices returned")
			continue
		}

		return DecodeStrict(resp.Choices[0].Message.Content, out)
	}

	return &ProviderError{Op: "generation", Attempts: attempts, Err: lastErr}
}

func toChatMessages(messages []models.Message) []openai.ChatCompletionMessage {
	converted := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		converted[i] = openai.ChatCompletionMessage{
			Role:    chatRole(m.Role),
			Content: m.Content,
		}
	}
	return converted
}

func chatRole(role models.Role) string {
	switch role {
	case models.RoleSystem:
		return openai.ChatMessageRoleSystem
	case models.RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}

package adapter

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model identifier is configured.
const DefaultModel = "gpt-3.5-turbo"

// ErrEmptyCompletion is returned when the service answers without choices.
var ErrEmptyCompletion = errors.New("generator returned no choices")

// TextGenerator turns a prompt into generated text.
type TextGenerator interface {
	Build(ctx context.Context, prompt string) (string, error)
}

// GeneratorOptions configures the OpenAI backed generator.
type GeneratorOptions struct {
	APIKey      string
	Model       string
	Temperature float32
	BaseURL     string
}

// OpenAIGenerator implements TextGenerator with the chat completions API.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIGenerator constructs an OpenAIGenerator from options.
func NewOpenAIGenerator(opts GeneratorOptions) *OpenAIGenerator {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: opts.Temperature,
	}
}

// Build sends prompt as a single user message and returns the sanitized reply.
func (g *OpenAIGenerator) Build(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return SanitizeCompletion(resp.Choices[0].Message.Content), nil
}

var (
	fencedBlockPattern = regexp.MustCompile("```[\\s\\S]*?```")
	fenceLinePattern   = regexp.MustCompile("```.*")
)

// SanitizeCompletion strips markdown code fences from a completion. Fence
// lines are removed only when the text holds at least one closed fence.
func SanitizeCompletion(content string) string {
	if !fencedBlockPattern.MatchString(content) {
		return content
	}

	return fenceLinePattern.ReplaceAllString(content, "")
}

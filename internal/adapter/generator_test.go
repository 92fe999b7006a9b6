package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeCompletion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "const a = 1\n", want: "const a = 1\n"},
		{name: "fenced block", in: "```js\nconst a = 1\n```", want: "\nconst a = 1\n"},
		{name: "unclosed fence", in: "```js\nconst a = 1\n", want: "```js\nconst a = 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeCompletion(tt.in))
		})
	}
}

func newCompletionServer(t *testing.T, content []string, got *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(got))

		resp := openai.ChatCompletionResponse{}
		for _, c := range content {
			resp.Choices = append(resp.Choices, openai.ChatCompletionChoice{
				Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: c},
			})
		}

		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestOpenAIGenerator_Build(t *testing.T) {
	var req openai.ChatCompletionRequest

	srv := newCompletionServer(t, []string{"```ts\nexport const a = 1\n```"}, &req)

	gen := NewOpenAIGenerator(GeneratorOptions{APIKey: "test-key", BaseURL: srv.URL + "/v1", Temperature: 0.2})

	out, err := gen.Build(context.Background(), "write a")

	require.NoError(t, err)
	assert.Equal(t, "\nexport const a = 1\n", out)
	assert.Equal(t, DefaultModel, req.Model)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[0].Role)
	assert.Equal(t, "write a", req.Messages[0].Content)
}

func TestOpenAIGenerator_NoChoices(t *testing.T) {
	var req openai.ChatCompletionRequest

	srv := newCompletionServer(t, nil, &req)

	gen := NewOpenAIGenerator(GeneratorOptions{APIKey: "test-key", BaseURL: srv.URL + "/v1", Model: "gpt-4o"})

	_, err := gen.Build(context.Background(), "write a")

	require.ErrorIs(t, err, ErrEmptyCompletion)
	assert.Equal(t, "gpt-4o", req.Model)
}

package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"slider-bot/api/internal/llm"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string     { return "gpt" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Complete(ctx context.Context, prompt string) (string, int, error) {
	if e.APIKey == "" {
		return "", 0, errors.New("OPENAI_API_KEY is empty")
	}
	client := openai.NewClient(option.WithAPIKey(e.APIKey))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(e.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
	})
	if err != nil {
		return "", 0, classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", 0, fmt.Errorf("openai: empty choices")
	}
	choice := resp.Choices[0]
	if choice.FinishReason == "length" {
		return "", 0, llm.ErrTooLarge
	}
	return choice.Message.Content, int(resp.Usage.TotalTokens), nil
}

func classify(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusTooManyRequests, http.StatusServiceUnavailable:
			return fmt.Errorf("%w: %v", llm.ErrOverloaded, err)
		case http.StatusRequestEntityTooLarge:
			return fmt.Errorf("%w: %v", llm.ErrTooLarge, err)
		}
	}
	return err
}

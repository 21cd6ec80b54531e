package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

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

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Complete(ctx context.Context, prompt string) (string, int, error) {
	if e.APIKey == "" {
		return "", 0, errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", 0, err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.GenerationConfig = genai.GenerationConfig{Temperature: ptrFloat32(0.7)}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", 0, classify(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", 0, fmt.Errorf("gemini: empty response")
	}
	cand := resp.Candidates[0]
	if cand.FinishReason == genai.FinishReasonMaxTokens {
		return "", 0, llm.ErrTooLarge
	}

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}

	tokens := 0
	if resp.UsageMetadata != nil {
		tokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return b.String(), tokens, nil
}

func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests, http.StatusServiceUnavailable:
			return fmt.Errorf("%w: %v", llm.ErrOverloaded, err)
		case http.StatusRequestEntityTooLarge:
			return fmt.Errorf("%w: %v", llm.ErrTooLarge, err)
		}
	}
	return err
}

func ptrFloat32(v float32) *float32 { return &v }

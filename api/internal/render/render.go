// Package render talks to the document rendering service that turns the
// structured outline/deck models into office file bytes.
package render

import (
	"context"

	"slider-bot/api/internal/doc"
)

type Output struct {
	Bytes    []byte
	Filename string
}

type Renderer interface {
	RenderOutline(ctx context.Context, d doc.Document) (Output, error)
	// RenderDeck рендерит колоду в выбранном шаблоне оформления.
	RenderDeck(ctx context.Context, d doc.Deck, templateID string) (Output, error)
}

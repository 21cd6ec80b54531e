package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"slider-bot/api/internal/doc"
	"slider-bot/api/internal/images"
	"slider-bot/api/internal/tagtext"
)

// HTTPRenderer posts the structured document to the render service and
// resolves image queries through the image provider first. A failed image
// lookup drops the picture, never the document.
type HTTPRenderer struct {
	BaseURL string
	Images  images.Provider
	httpc   *http.Client
}

func NewHTTPRenderer(baseURL string, imgs images.Provider) *HTTPRenderer {
	return &HTTPRenderer{
		BaseURL: baseURL,
		Images:  imgs,
		httpc:   &http.Client{Timeout: 120 * time.Second},
	}
}

type sectionPayload struct {
	Kind        string `json:"kind"`
	Level       int    `json:"level,omitempty"`
	Text        string `json:"text,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
}

type outlinePayload struct {
	Title    string           `json:"title"`
	Sections []sectionPayload `json:"sections"`
}

type slidePayload struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Content     string `json:"content,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
}

type deckPayload struct {
	Title    string         `json:"title"`
	Template string         `json:"template"`
	Slides   []slidePayload `json:"slides"`
}

func (r *HTTPRenderer) RenderOutline(ctx context.Context, d doc.Document) (Output, error) {
	p := outlinePayload{Title: d.Title}
	for _, s := range d.Sections {
		switch s.Kind {
		case doc.HeadingSection:
			p.Sections = append(p.Sections, sectionPayload{Kind: "heading", Level: s.Level, Text: s.Text})
		case doc.ParagraphSection:
			p.Sections = append(p.Sections, sectionPayload{Kind: "paragraph", Text: s.Text})
		case doc.ImageSection:
			p.Sections = append(p.Sections, sectionPayload{Kind: "image", Text: s.Text, ImageBase64: r.lookup(ctx, s.Text)})
		}
	}
	data, err := r.post(ctx, "/render/outline", p)
	if err != nil {
		return Output{}, err
	}
	return Output{Bytes: data, Filename: d.Title + ".docx"}, nil
}

func (r *HTTPRenderer) RenderDeck(ctx context.Context, d doc.Deck, templateID string) (Output, error) {
	p := deckPayload{Title: d.Title, Template: templateID}
	for _, s := range d.Slides {
		sp := slidePayload{
			Kind:     slideKindName(s),
			Title:    s.Title,
			Subtitle: s.Subtitle,
			Content:  s.Content,
		}
		if s.ImageQuery != "" {
			sp.ImageBase64 = r.lookup(ctx, s.ImageQuery)
		}
		p.Slides = append(p.Slides, sp)
	}
	data, err := r.post(ctx, "/render/deck", p)
	if err != nil {
		return Output{}, err
	}
	return Output{Bytes: data, Filename: d.Title + ".pptx"}, nil
}

// lookup resolves an image query; empty string on any failure.
func (r *HTTPRenderer) lookup(ctx context.Context, query string) string {
	if r.Images == nil || query == "" {
		return ""
	}
	data, err := r.Images.Fetch(ctx, query)
	if err != nil {
		if !errors.Is(err, images.ErrNotFound) {
			log.Printf("render: image lookup %q: %v", query, err)
		}
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

func (r *HTTPRenderer) post(ctx context.Context, path string, payload any) ([]byte, error) {
	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("render %d: %s", resp.StatusCode, string(x))
	}
	return io.ReadAll(resp.Body)
}

func slideKindName(s doc.Slide) string {
	switch s.Kind {
	case tagtext.TitleSlide:
		return "title"
	case tagtext.ContentSlide:
		return "content"
	case tagtext.ImageSlide:
		return "image"
	default:
		return "thanks"
	}
}

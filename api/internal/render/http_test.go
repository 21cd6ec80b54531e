package render

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"slider-bot/api/internal/doc"
	"slider-bot/api/internal/images"
	"slider-bot/api/internal/tagtext"
)

type fakeImages struct {
	data map[string][]byte
}

func (f *fakeImages) Fetch(ctx context.Context, query string) ([]byte, error) {
	if b, ok := f.data[query]; ok {
		return b, nil
	}
	return nil, images.ErrNotFound
}

func TestRenderDeckAbsorbsImageFailure(t *testing.T) {
	var got deckPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		_, _ = w.Write([]byte("PPTX"))
	}))
	defer srv.Close()

	r := NewHTTPRenderer(srv.URL, &fakeImages{data: map[string][]byte{"Everest": []byte("img")}})
	deck := doc.Deck{
		Title: "Everest",
		Slides: []doc.Slide{
			{Kind: tagtext.ImageSlide, Title: "Found", ImageQuery: "Everest"},
			{Kind: tagtext.ImageSlide, Title: "Missing", ImageQuery: "No Such Thing"},
		},
	}
	out, err := r.RenderDeck(context.Background(), deck, "Mountains")
	if err != nil {
		t.Fatalf("RenderDeck: %v", err)
	}
	if out.Filename != "Everest.pptx" {
		t.Fatalf("filename = %q", out.Filename)
	}
	if string(out.Bytes) != "PPTX" {
		t.Fatalf("bytes = %q", out.Bytes)
	}
	if got.Template != "Mountains" || len(got.Slides) != 2 {
		t.Fatalf("payload = %+v", got)
	}
	if got.Slides[0].ImageBase64 == "" {
		t.Fatalf("resolved image missing from payload")
	}
	if got.Slides[1].ImageBase64 != "" {
		t.Fatalf("failed lookup must render slide without image")
	}
}

func TestRenderOutline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/render/outline" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte("DOCX"))
	}))
	defer srv.Close()

	r := NewHTTPRenderer(srv.URL, nil)
	d := doc.Document{Title: "Mars", Sections: []doc.Section{
		{Kind: doc.HeadingSection, Level: 0, Text: "Mars"},
		{Kind: doc.ParagraphSection, Text: "Fourth from the Sun."},
	}}
	out, err := r.RenderOutline(context.Background(), d)
	if err != nil {
		t.Fatalf("RenderOutline: %v", err)
	}
	if out.Filename != "Mars.docx" || string(out.Bytes) != "DOCX" {
		t.Fatalf("out = %+v", out)
	}
}

func TestRenderErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "template not found", http.StatusBadRequest)
	}))
	defer srv.Close()

	r := NewHTTPRenderer(srv.URL, nil)
	_, err := r.RenderDeck(context.Background(), doc.Deck{Title: "X"}, "Nope")
	if err == nil || errors.Is(err, images.ErrNotFound) {
		t.Fatalf("err = %v, want renderer error", err)
	}
}

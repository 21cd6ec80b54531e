package telegram

import (
	"context"
	"errors"
	"testing"

	"slider-bot/api/internal/doc"
	"slider-bot/api/internal/flow"
	"slider-bot/api/internal/render"
	"slider-bot/api/internal/tagtext"
)

type fakeRenderer struct {
	lastOutline doc.Document
	lastDeck    doc.Deck
	lastTmpl    string
}

func (f *fakeRenderer) RenderOutline(ctx context.Context, d doc.Document) (render.Output, error) {
	f.lastOutline = d
	return render.Output{Bytes: []byte("docx"), Filename: d.Title + ".docx"}, nil
}

func (f *fakeRenderer) RenderDeck(ctx context.Context, d doc.Deck, templateID string) (render.Output, error) {
	f.lastDeck = d
	f.lastTmpl = templateID
	return render.Output{Bytes: []byte("pptx"), Filename: d.Title + ".pptx"}, nil
}

func TestBuildFromReplyOutline(t *testing.T) {
	fr := &fakeRenderer{}
	r := &Router{Renderer: fr}
	req := flow.Request{Kind: flow.Outline, Language: "English", Tone: "Ilmiy", Topic: "Mars"}

	reply := "```\n[TITLE]Mars[/TITLE]\n[HEADING]Orbit[/HEADING]\n[CONTENT]Fourth planet.[/CONTENT]\n```"
	out, err := r.buildFromReply(context.Background(), req, reply)
	if err != nil {
		t.Fatalf("buildFromReply: %v", err)
	}
	if out.Filename != "Mars.docx" {
		t.Fatalf("filename = %q, want Mars.docx", out.Filename)
	}
	if len(fr.lastOutline.Sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(fr.lastOutline.Sections))
	}
}

func TestBuildFromReplyOutlineFallbackTitle(t *testing.T) {
	fr := &fakeRenderer{}
	r := &Router{Renderer: fr}
	req := flow.Request{Kind: flow.Outline}

	out, err := r.buildFromReply(context.Background(), req, "[HEADING]Orbit[/HEADING]")
	if err != nil {
		t.Fatalf("buildFromReply: %v", err)
	}
	if out.Filename != "hujjat.docx" {
		t.Fatalf("filename = %q, want hujjat.docx", out.Filename)
	}
}

func TestBuildFromReplyDeck(t *testing.T) {
	fr := &fakeRenderer{}
	r := &Router{Renderer: fr}
	req := flow.Request{Kind: flow.Deck, Template: "Mountains"}

	reply := "[L_TS]\n[TITLE]Everest[/TITLE]\n[SLIDEBREAK]\n[L_CS]\n[TITLE]Facts[/TITLE]\n[CONTENT]8848 m[/CONTENT]"
	out, err := r.buildFromReply(context.Background(), req, reply)
	if err != nil {
		t.Fatalf("buildFromReply: %v", err)
	}
	if out.Filename != "Everest.pptx" {
		t.Fatalf("filename = %q, want Everest.pptx", out.Filename)
	}
	if fr.lastTmpl != "Mountains" {
		t.Fatalf("template = %q, want Mountains", fr.lastTmpl)
	}
	if len(fr.lastDeck.Slides) != 2 {
		t.Fatalf("slides = %d, want 2", len(fr.lastDeck.Slides))
	}
}

func TestBuildFromReplyDeckAllSlidesDropped(t *testing.T) {
	r := &Router{Renderer: &fakeRenderer{}}
	req := flow.Request{Kind: flow.Deck, Template: "Minimal"}

	// маркеры без тегов: все группы отбрасываются
	_, err := r.buildFromReply(context.Background(), req, "[L_TS]\n[SLIDEBREAK]\n[L_CS]")
	if !errors.Is(err, tagtext.ErrEmpty) {
		t.Fatalf("err = %v, want tagtext.ErrEmpty", err)
	}
}

func TestBuildFromReplyEmpty(t *testing.T) {
	r := &Router{Renderer: &fakeRenderer{}}
	_, err := r.buildFromReply(context.Background(), flow.Request{Kind: flow.Outline}, "no tags here")
	if !errors.Is(err, tagtext.ErrEmpty) {
		t.Fatalf("err = %v, want tagtext.ErrEmpty", err)
	}
}

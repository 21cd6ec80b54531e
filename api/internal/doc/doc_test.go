package doc

import (
	"errors"
	"testing"

	"slider-bot/api/internal/tagtext"
)

func TestBuildOutlineMars(t *testing.T) {
	blocks, err := tagtext.ParseBlocks("[TITLE]Mars[/TITLE][SUBTITLE]The Red Planet[/SUBTITLE][HEADING]Overview[/HEADING][CONTENT]Mars is fourth from the Sun.[/CONTENT]")
	if err != nil {
		t.Fatalf("ParseBlocks: %v", err)
	}
	d, err := BuildOutline(blocks)
	if err != nil {
		t.Fatalf("BuildOutline: %v", err)
	}
	if d.Title != "Mars" {
		t.Fatalf("title = %q", d.Title)
	}
	want := []Section{
		{HeadingSection, 0, "Mars"},
		{HeadingSection, 1, "The Red Planet"},
		{HeadingSection, 2, "Overview"},
		{ParagraphSection, 0, "Mars is fourth from the Sun."},
	}
	if len(d.Sections) != len(want) {
		t.Fatalf("sections = %d, want %d", len(d.Sections), len(want))
	}
	for i := range want {
		if d.Sections[i] != want[i] {
			t.Fatalf("section %d = %+v, want %+v", i, d.Sections[i], want[i])
		}
	}
}

func TestBuildOutlineMissingTitle(t *testing.T) {
	d, err := BuildOutline([]tagtext.Block{{Kind: tagtext.Heading, Text: "Only heading"}})
	if !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("err = %v, want ErrMissingTitle", err)
	}
	if len(d.Sections) != 1 {
		t.Fatalf("document must still carry its sections, got %d", len(d.Sections))
	}
}

func TestBuildDeck(t *testing.T) {
	raw := "[L_TS][TITLE]Everest[/TITLE][SUBTITLE]Apex[/SUBTITLE][SLIDEBREAK]" +
		"[L_IS][TITLE]Facts[/TITLE][CONTENT]Tall.[/CONTENT][IMAGE]Mount Everest[/IMAGE][SLIDEBREAK]" +
		"[L_THS][TITLE]Thanks[/TITLE]"
	groups, err := tagtext.ParseSlides(raw)
	if err != nil {
		t.Fatalf("ParseSlides: %v", err)
	}
	deck, err := BuildDeck(groups)
	if err != nil {
		t.Fatalf("BuildDeck: %v", err)
	}
	if deck.Title != "Everest" {
		t.Fatalf("deck title = %q", deck.Title)
	}
	if len(deck.Slides) != 3 {
		t.Fatalf("slides = %d, want 3", len(deck.Slides))
	}
	for i, s := range deck.Slides {
		if s.Title == "" {
			t.Fatalf("slide %d has empty title", i)
		}
	}
	if deck.Slides[1].ImageQuery != "Mount Everest" {
		t.Fatalf("image query = %q", deck.Slides[1].ImageQuery)
	}
	if deck.Slides[0].Subtitle != "Apex" {
		t.Fatalf("subtitle = %q", deck.Slides[0].Subtitle)
	}
}

func TestBuildDeckDropsUntitled(t *testing.T) {
	groups := []tagtext.SlideGroup{
		{Kind: tagtext.TitleSlide, Blocks: []tagtext.Block{{Kind: tagtext.Title, Text: "Top"}}},
		{Kind: tagtext.ContentSlide, Blocks: []tagtext.Block{{Kind: tagtext.Paragraph, Text: "no title here"}}},
	}
	deck, err := BuildDeck(groups)
	if err != nil {
		t.Fatalf("BuildDeck: %v", err)
	}
	if len(deck.Slides) != 1 {
		t.Fatalf("untitled slide must be dropped, got %d slides", len(deck.Slides))
	}
}

func TestBuildDeckMissingTitleSlide(t *testing.T) {
	groups := []tagtext.SlideGroup{
		{Kind: tagtext.ContentSlide, Blocks: []tagtext.Block{{Kind: tagtext.Title, Text: "Body"}}},
	}
	deck, err := BuildDeck(groups)
	if !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("err = %v, want ErrMissingTitle", err)
	}
	if len(deck.Slides) != 1 {
		t.Fatalf("slides must survive missing deck title, got %d", len(deck.Slides))
	}
}

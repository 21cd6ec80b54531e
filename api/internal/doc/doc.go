// Package doc turns parsed tag blocks into the renderer-agnostic document
// structures: an outline (research paper skeleton) or a slide deck.
package doc

import (
	"errors"
	"strings"

	"slider-bot/api/internal/tagtext"
)

// ErrMissingTitle — в ответе нет ни одного TITLE; вызывающий подставляет
// запасное имя файла, падать нельзя.
var ErrMissingTitle = errors.New("doc: no title block")

type SectionKind int

const (
	HeadingSection SectionKind = iota
	ParagraphSection
	ImageSection
)

// Section is one outline entry. Level is meaningful for HeadingSection only:
// 0 = title, 1 = subtitle, 2 = heading.
type Section struct {
	Kind  SectionKind
	Level int
	Text  string
}

type Document struct {
	Title    string
	Sections []Section
}

type Slide struct {
	Kind       tagtext.SlideKind
	Title      string
	Subtitle   string
	Content    string
	ImageQuery string
}

type Deck struct {
	Title  string
	Slides []Slide
}

// BuildOutline maps blocks onto outline sections in reply order. The display
// title is the first Title block; its absence is reported as ErrMissingTitle
// alongside the otherwise complete document.
func BuildOutline(blocks []tagtext.Block) (Document, error) {
	var d Document
	for _, b := range blocks {
		switch b.Kind {
		case tagtext.Title:
			if d.Title == "" {
				d.Title = b.Text
			}
			d.Sections = append(d.Sections, Section{Kind: HeadingSection, Level: 0, Text: b.Text})
		case tagtext.Subtitle:
			d.Sections = append(d.Sections, Section{Kind: HeadingSection, Level: 1, Text: b.Text})
		case tagtext.Heading:
			d.Sections = append(d.Sections, Section{Kind: HeadingSection, Level: 2, Text: b.Text})
		case tagtext.Paragraph:
			d.Sections = append(d.Sections, Section{Kind: ParagraphSection, Text: b.Text})
		case tagtext.ImageQuery:
			d.Sections = append(d.Sections, Section{Kind: ImageSection, Text: b.Text})
		}
	}
	if d.Title == "" {
		return d, ErrMissingTitle
	}
	return d, nil
}

// BuildDeck resolves each slide group's fields. Repeated same-kind spans are
// concatenated the way the original reply interleaved them. A group whose
// resolved title is blank is dropped, so the deck never renders an untitled
// slide. The deck title is the first title slide's title.
func BuildDeck(groups []tagtext.SlideGroup) (Deck, error) {
	var deck Deck
	for _, g := range groups {
		s := Slide{Kind: g.Kind}
		for _, b := range g.Blocks {
			switch b.Kind {
			case tagtext.Title:
				s.Title += b.Text
			case tagtext.Subtitle:
				s.Subtitle += b.Text
			case tagtext.Paragraph:
				s.Content += b.Text
			case tagtext.ImageQuery:
				s.ImageQuery += b.Text
			}
		}
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		if deck.Title == "" && g.Kind == tagtext.TitleSlide {
			deck.Title = strings.TrimSpace(s.Title)
		}
		deck.Slides = append(deck.Slides, s)
	}
	if deck.Title == "" {
		return deck, ErrMissingTitle
	}
	return deck, nil
}

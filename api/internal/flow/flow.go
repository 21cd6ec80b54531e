// Package flow is the guided parameter-collection state machine. A session
// walks the ordered selection states, committing one request field per
// state; a field can only be written from the state that owns it, so a
// dispatchable request always has every required field.
package flow

import (
	"errors"

	"slider-bot/api/internal/keyboard"
	"slider-bot/api/internal/prompt"
)

type State int

const (
	SelectingLanguage State = iota
	SelectingTemplate
	SelectingType
	SelectingSlideCount
	AwaitingTopic
	AwaitingManualReply
	Done
)

type DocKind int

const (
	Outline DocKind = iota
	Deck
)

var (
	ErrBadTransition = errors.New("flow: selection does not belong to the current state")
	ErrIncomplete    = errors.New("flow: request is missing required fields")
)

// OutlineDraft and DeckDraft are the per-branch field holders. Keeping them
// as separate types makes slide-count access on the outline branch a
// compile error instead of a runtime surprise.
type OutlineDraft struct {
	Language string `json:"language"`
	Tone     string `json:"tone"`
	Topic    string `json:"topic"`
}

type DeckDraft struct {
	Language   string `json:"language"`
	Template   string `json:"template"`
	Tone       string `json:"tone"`
	SlideCount string `json:"slide_count"`
	Topic      string `json:"topic"`
}

// Session is the ephemeral per-chat selection state. Serializable so the
// session store can keep it out of process.
type Session struct {
	State         State         `json:"state"`
	Kind          DocKind       `json:"kind"`
	Outline       *OutlineDraft `json:"outline,omitempty"`
	Deck          *DeckDraft    `json:"deck,omitempty"`
	Page          int           `json:"page"`
	MenuMessageID int           `json:"menu_message_id"`
}

func NewSession(kind DocKind) *Session {
	s := &Session{State: SelectingLanguage, Kind: kind, Page: 1}
	if kind == Deck {
		s.Deck = &DeckDraft{}
	} else {
		s.Outline = &OutlineDraft{}
	}
	return s
}

// Step describes what the current selection state paginates over.
type Step struct {
	State   State
	Prefix  string
	Options []keyboard.Option
}

// Step returns the catalog for the current state. Nil options for the text
// input states: there is nothing to paginate.
func (s *Session) Step() Step {
	switch s.State {
	case SelectingLanguage:
		return Step{s.State, LanguagePrefix, Languages()}
	case SelectingTemplate:
		return Step{s.State, TemplatePrefix, Templates()}
	case SelectingType:
		return Step{s.State, TypePrefix, Types()}
	case SelectingSlideCount:
		return Step{s.State, SlideCountPrefix, SlideCounts()}
	default:
		return Step{State: s.State}
	}
}

// Select commits value into the field owned by the current state and
// advances. Pagination goes through SetPage, not here.
func (s *Session) Select(value string) error {
	switch s.State {
	case SelectingLanguage:
		if s.Kind == Deck {
			s.Deck.Language = value
			s.State = SelectingTemplate
		} else {
			s.Outline.Language = value
			s.State = SelectingType
		}
	case SelectingTemplate:
		if s.Kind != Deck {
			return ErrBadTransition
		}
		s.Deck.Template = value
		s.State = SelectingType
	case SelectingType:
		if s.Kind == Deck {
			s.Deck.Tone = value
			s.State = SelectingSlideCount
		} else {
			s.Outline.Tone = value
			s.State = AwaitingTopic
		}
	case SelectingSlideCount:
		if s.Kind != Deck {
			return ErrBadTransition
		}
		s.Deck.SlideCount = value
		s.State = AwaitingTopic
	default:
		return ErrBadTransition
	}
	s.Page = 1
	return nil
}

// SetTopic accepts the free-text topic and completes field collection.
func (s *Session) SetTopic(topic string) error {
	if s.State != AwaitingTopic {
		return ErrBadTransition
	}
	if s.Kind == Deck {
		s.Deck.Topic = topic
	} else {
		s.Outline.Topic = topic
	}
	s.State = Done
	return nil
}

// AwaitManualReply re-arms the session for manual mode: the next text
// message is the user's pasted completion output. A parse failure leaves
// the session in this state so the user can paste corrected output.
func (s *Session) AwaitManualReply() { s.State = AwaitingManualReply }

// ReopenTopic returns the session to topic input, e.g. when the topic
// could not be sent back to the user verbatim.
func (s *Session) ReopenTopic() { s.State = AwaitingTopic }

func (s *Session) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	s.Page = p
}

// Request is the immutable generation request handed to the dispatcher.
type Request struct {
	Kind       DocKind
	Language   string
	Template   string
	Tone       string
	SlideCount string
	Topic      string
}

// BuildRequest snapshots the collected fields. ErrIncomplete when any
// required field for the branch is absent — cannot happen through the
// state machine, but the dispatcher should not trust callers.
func (s *Session) BuildRequest() (Request, error) {
	if s.Kind == Deck {
		d := s.Deck
		if d == nil || d.Language == "" || d.Template == "" || d.Tone == "" || d.SlideCount == "" || d.Topic == "" {
			return Request{}, ErrIncomplete
		}
		return Request{Kind: Deck, Language: d.Language, Template: d.Template, Tone: d.Tone, SlideCount: d.SlideCount, Topic: d.Topic}, nil
	}
	o := s.Outline
	if o == nil || o.Language == "" || o.Tone == "" || o.Topic == "" {
		return Request{}, ErrIncomplete
	}
	return Request{Kind: Outline, Language: o.Language, Tone: o.Tone, Topic: o.Topic}, nil
}

// Prompt assembles the completion prompt for the request.
func (r Request) Prompt() string {
	if r.Kind == Deck {
		return prompt.Deck(r.Language, r.Tone, r.SlideCount, r.Topic)
	}
	return prompt.Outline(r.Language, r.Tone, r.Topic)
}

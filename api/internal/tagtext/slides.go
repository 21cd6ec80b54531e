package tagtext

import "strings"

// SlideBreak separates slide candidates in a presentation reply.
const SlideBreak = "[SLIDEBREAK]"

type SlideKind int

const (
	TitleSlide SlideKind = iota
	ContentSlide
	ImageSlide
	ThanksSlide
)

// SlideGroup is the ordered block sequence of one slide candidate, tagged
// with the kind resolved from its leading marker.
type SlideGroup struct {
	Kind   SlideKind
	Blocks []Block
}

// Marker priority mirrors the prompt: a candidate carrying several markers
// is classified by the first one in this list.
var markers = []struct {
	tag  string
	kind SlideKind
}{
	{"[L_TS]", TitleSlide},
	{"[L_CS]", ContentSlide},
	{"[L_IS]", ImageSlide},
	{"[L_THS]", ThanksSlide},
}

// ParseSlides splits raw on SlideBreak and classifies each candidate by its
// marker tag. Candidates without a recognized marker are dropped silently.
// ErrEmpty when no candidate survives.
func ParseSlides(raw string) ([]SlideGroup, error) {
	var groups []SlideGroup
	for _, candidate := range strings.Split(raw, SlideBreak) {
		kind, ok := classify(candidate)
		if !ok {
			continue
		}
		blocks, err := ParseBlocks(candidate)
		if err != nil {
			// маркер есть, тегов нет — группа пустая, билдер её отбросит
			blocks = nil
		}
		groups = append(groups, SlideGroup{Kind: kind, Blocks: blocks})
	}
	if len(groups) == 0 {
		return nil, ErrEmpty
	}
	return groups, nil
}

func classify(candidate string) (SlideKind, bool) {
	for _, m := range markers {
		if strings.Contains(candidate, m.tag) {
			return m.kind, true
		}
	}
	return 0, false
}

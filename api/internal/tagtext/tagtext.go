// Package tagtext decodes the tagged mini-language the completion engines
// are prompted to answer in: non-nested [NAME]...[/NAME] pairs over a closed
// vocabulary, plus [SLIDEBREAK]-separated slide groups for presentations.
//
// LLM output is routinely malformed, so nothing here is fatal: unknown and
// unterminated tags are skipped, a reply without a single recognized tag
// yields ErrEmpty so the caller can ask the user to retry.
package tagtext

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmpty — в ответе не нашлось ни одного распознанного тега.
var ErrEmpty = errors.New("tagtext: no recognized tags")

type Kind int

const (
	Title Kind = iota
	Subtitle
	Heading
	Paragraph
	ImageQuery
)

// Block is one decoded tag pair, in reply order. Immutable once parsed.
type Block struct {
	Kind Kind
	Text string
}

var vocab = []struct {
	name string
	kind Kind
}{
	{"TITLE", Title},
	{"SUBTITLE", Subtitle},
	{"HEADING", Heading},
	{"CONTENT", Paragraph},
	{"IMAGE", ImageQuery},
}

var imageSpanRe = regexp.MustCompile(`(?s)\[IMAGE\].*?\[/IMAGE\]`)

// ParseBlocks scans raw for tag pairs from the closed vocabulary, in order
// of appearance. Content runs to the first matching close tag. An [IMAGE]
// span that ended up inside a captured text field is stripped out: content
// and image annotations are mutually exclusive in rendered text.
func ParseBlocks(raw string) ([]Block, error) {
	var blocks []Block
	pos := 0
	for {
		name, kind, start := nextStartTag(raw, pos)
		if start < 0 {
			break
		}
		open := "[" + name + "]"
		close := "[/" + name + "]"
		body := start + len(open)
		end := strings.Index(raw[body:], close)
		if end < 0 {
			// незакрытый тег — пропускаем
			pos = body
			continue
		}
		text := raw[body : body+end]
		if kind != ImageQuery {
			text = imageSpanRe.ReplaceAllString(text, "")
		}
		blocks = append(blocks, Block{Kind: kind, Text: text})
		pos = body + end + len(close)
	}
	if len(blocks) == 0 {
		return nil, ErrEmpty
	}
	return blocks, nil
}

// nextStartTag finds the earliest vocabulary start tag at or after pos.
func nextStartTag(raw string, pos int) (name string, kind Kind, at int) {
	at = -1
	for _, v := range vocab {
		i := strings.Index(raw[pos:], "["+v.name+"]")
		if i < 0 {
			continue
		}
		if at < 0 || pos+i < at {
			name, kind, at = v.name, v.kind, pos+i
		}
	}
	return name, kind, at
}

package keyboard

import "strconv"

// BackData — callback payload кнопки возврата в меню.
const BackData = "back"

// Option is one selectable catalog entry. Value goes into the callback
// payload after the prefix, Label is what the user sees.
type Option struct {
	Label string
	Value string
}

type Button struct {
	Label string
	Data  string
}

// Page is a rendered keyboard page: item rows in two columns plus
// navigation controls. Prev/Next are nil when there is nothing to page to.
type Page struct {
	Rows [][]Button
	Prev *Button
	Next *Button
	Back Button
}

// BuildPage slices opts into the given 1-indexed page of pageSize entries.
// Callback payloads are prefix+value for selections and "page_"+prefix+N for
// navigation. A page past the end yields no rows but keeps the Prev control.
func BuildPage(opts []Option, page, pageSize int, prefix string) Page {
	p := Page{Back: Button{Label: "⬅️Back", Data: BackData}}
	if page < 1 || pageSize < 1 {
		return p
	}

	lo := (page - 1) * pageSize
	hi := lo + pageSize
	if lo > len(opts) {
		lo = len(opts)
	}
	if hi > len(opts) {
		hi = len(opts)
	}

	for i, opt := range opts[lo:hi] {
		btn := Button{Label: opt.Label, Data: prefix + opt.Value}
		if i%2 == 0 {
			p.Rows = append(p.Rows, []Button{btn})
		} else {
			p.Rows[len(p.Rows)-1] = append(p.Rows[len(p.Rows)-1], btn)
		}
	}

	if page > 1 {
		p.Prev = &Button{Label: "<<", Data: "page_" + prefix + strconv.Itoa(page-1)}
	}
	if len(opts) > page*pageSize {
		p.Next = &Button{Label: ">>", Data: "page_" + prefix + strconv.Itoa(page+1)}
	}
	return p
}

// PageFromCallback extracts the target page from a "page_"+prefix+N payload.
// Returns 1 when data is not a navigation payload for this prefix.
func PageFromCallback(data, prefix string) int {
	const nav = "page_"
	if len(data) <= len(nav)+len(prefix) || data[:len(nav)+len(prefix)] != nav+prefix {
		return 1
	}
	n, err := strconv.Atoi(data[len(nav)+len(prefix):])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

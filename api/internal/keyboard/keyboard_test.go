package keyboard

import "testing"

func opts(n int) []Option {
	out := make([]Option, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Option{Label: "L" + string(rune('A'+i)), Value: "v" + string(rune('A'+i))})
	}
	return out
}

func countButtons(p Page) int {
	n := 0
	for _, row := range p.Rows {
		n += len(row)
	}
	return n
}

func TestBuildPageFirstOfTwo(t *testing.T) {
	p := BuildPage(opts(15), 1, 12, "type_")
	if got := countButtons(p); got != 12 {
		t.Fatalf("page 1 buttons = %d, want 12", got)
	}
	if p.Prev != nil {
		t.Fatalf("page 1 must not have prev")
	}
	if p.Next == nil {
		t.Fatalf("page 1 must have next")
	}
	if p.Next.Data != "page_type_2" {
		t.Fatalf("next data = %q", p.Next.Data)
	}
	if p.Rows[0][0].Data != "type_vA" {
		t.Fatalf("first button data = %q", p.Rows[0][0].Data)
	}
}

func TestBuildPageLast(t *testing.T) {
	p := BuildPage(opts(15), 2, 12, "type_")
	if got := countButtons(p); got != 3 {
		t.Fatalf("page 2 buttons = %d, want 3", got)
	}
	if p.Next != nil {
		t.Fatalf("last page must not have next")
	}
	if p.Prev == nil || p.Prev.Data != "page_type_1" {
		t.Fatalf("prev = %+v", p.Prev)
	}
}

func TestBuildPageTwoColumns(t *testing.T) {
	p := BuildPage(opts(5), 1, 12, "x_")
	if len(p.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(p.Rows))
	}
	if len(p.Rows[0]) != 2 || len(p.Rows[2]) != 1 {
		t.Fatalf("row widths = %d/%d", len(p.Rows[0]), len(p.Rows[2]))
	}
}

func TestBuildPagePastEnd(t *testing.T) {
	p := BuildPage(opts(4), 3, 12, "x_")
	if countButtons(p) != 0 {
		t.Fatalf("page past end must be empty")
	}
	if p.Prev == nil {
		t.Fatalf("page past end keeps prev when page > 1")
	}
	if p.Back.Data != BackData {
		t.Fatalf("back data = %q", p.Back.Data)
	}
}

func TestBuildPageStable(t *testing.T) {
	a := BuildPage(opts(15), 2, 12, "t_")
	b := BuildPage(opts(15), 2, 12, "t_")
	if len(a.Rows) != len(b.Rows) {
		t.Fatalf("unstable output")
	}
	for i := range a.Rows {
		for j := range a.Rows[i] {
			if a.Rows[i][j] != b.Rows[i][j] {
				t.Fatalf("unstable button at %d/%d", i, j)
			}
		}
	}
}

func TestPageFromCallback(t *testing.T) {
	if got := PageFromCallback("page_type_3", "type_"); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if got := PageFromCallback("type_Jiddiy", "type_"); got != 1 {
		t.Fatalf("non-nav payload must map to page 1, got %d", got)
	}
	if got := PageFromCallback("page_type_x", "type_"); got != 1 {
		t.Fatalf("bad number must map to page 1, got %d", got)
	}
}

package session

import (
	"context"
	"testing"

	"slider-bot/api/internal/flow"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	if s, err := st.Get(ctx, 1); err != nil || s != nil {
		t.Fatalf("empty store Get = %v, %v", s, err)
	}

	in := flow.NewSession(flow.Deck)
	if err := st.Put(ctx, 1, in); err != nil {
		t.Fatalf("Put: %v", err)
	}
	out, err := st.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out == nil || out.Kind != flow.Deck {
		t.Fatalf("Get = %+v", out)
	}

	if err := st.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s, _ := st.Get(ctx, 1); s != nil {
		t.Fatalf("session survived Delete")
	}
}

package job

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"slider-bot/api/internal/ledger"
	"slider-bot/api/internal/llm"
)

type fakeAccounts struct {
	mu        sync.Mutex
	available int64
	used      int64
}

func (f *fakeAccounts) Balance(ctx context.Context, userID int64) (int64, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.available, f.used, nil
}

func (f *fakeAccounts) ApplyUsage(ctx context.Context, userID int64, tokens int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.available -= tokens
	f.used += tokens
	return nil
}

func (f *fakeAccounts) AddTokens(ctx context.Context, userID int64, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.available += amount
	return nil
}

func TestSubmitInsufficientBalance(t *testing.T) {
	acc := &fakeAccounts{available: 0}
	d := NewDispatcher(ledger.New(acc))

	calls := 0
	_, err := d.Submit(context.Background(), 7, 7, func(ctx context.Context) (Output, error) {
		calls++
		return Output{}, nil
	})
	if !errors.Is(err, ledger.ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
	if calls != 0 {
		t.Fatalf("runner must not be invoked, got %d calls", calls)
	}
}

func TestSuccessfulJobSettlesLedger(t *testing.T) {
	acc := &fakeAccounts{available: 500}
	d := NewDispatcher(ledger.New(acc))

	j, err := d.Submit(context.Background(), 7, 7, func(ctx context.Context) (Output, error) {
		return Output{Bytes: []byte("pptx"), Filename: "Mars.pptx", Tokens: 120}, nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	res := <-j.Done
	if res.Err != nil {
		t.Fatalf("job failed: %v", res.Err)
	}
	if res.Output.Filename != "Mars.pptx" {
		t.Fatalf("filename = %q", res.Output.Filename)
	}
	// дебет обязан быть видим после получения результата
	available, used, _ := acc.Balance(context.Background(), 7)
	if available != 380 || used != 120 {
		t.Fatalf("ledger after job = %d/%d, want 380/120", available, used)
	}
	if j.State() != Succeeded {
		t.Fatalf("state = %v", j.State())
	}
}

func TestFailedJobLeavesLedgerUntouched(t *testing.T) {
	acc := &fakeAccounts{available: 500, used: 40}
	d := NewDispatcher(ledger.New(acc))

	j, err := d.Submit(context.Background(), 7, 7, func(ctx context.Context) (Output, error) {
		return Output{}, llm.ErrOverloaded
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	res := <-j.Done
	if !errors.Is(res.Err, llm.ErrOverloaded) {
		t.Fatalf("result err = %v", res.Err)
	}
	available, used, _ := acc.Balance(context.Background(), 7)
	if available != 500 || used != 40 {
		t.Fatalf("ledger mutated on failure: %d/%d", available, used)
	}
	if j.State() != Failed {
		t.Fatalf("state = %v", j.State())
	}
}

func TestOneJobPerChat(t *testing.T) {
	acc := &fakeAccounts{available: 100}
	d := NewDispatcher(ledger.New(acc))

	release := make(chan struct{})
	j1, err := d.Submit(context.Background(), 7, 7, func(ctx context.Context) (Output, error) {
		<-release
		return Output{Tokens: 1}, nil
	})
	if err != nil {
		t.Fatalf("first Submit: %v", err)
	}

	if _, err := d.Submit(context.Background(), 7, 7, func(ctx context.Context) (Output, error) {
		return Output{}, nil
	}); !errors.Is(err, ErrBusy) {
		t.Fatalf("second submit err = %v, want ErrBusy", err)
	}

	close(release)
	<-j1.Done

	// после разрешения первой задачи чат снова свободен
	deadline := time.After(time.Second)
	for d.Inflight(7) {
		select {
		case <-deadline:
			t.Fatalf("inflight entry not cleared")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	if _, err := d.Submit(context.Background(), 7, 7, func(ctx context.Context) (Output, error) {
		return Output{Tokens: 1}, nil
	}); err != nil {
		t.Fatalf("resubmit after completion: %v", err)
	}
}

func TestOtherChatNotBlocked(t *testing.T) {
	acc := &fakeAccounts{available: 100}
	d := NewDispatcher(ledger.New(acc))

	release := make(chan struct{})
	_, err := d.Submit(context.Background(), 7, 7, func(ctx context.Context) (Output, error) {
		<-release
		return Output{Tokens: 1}, nil
	})
	if err != nil {
		t.Fatalf("Submit chat 7: %v", err)
	}
	j2, err := d.Submit(context.Background(), 8, 8, func(ctx context.Context) (Output, error) {
		return Output{Tokens: 2}, nil
	})
	if err != nil {
		t.Fatalf("Submit chat 8 blocked: %v", err)
	}
	<-j2.Done
	close(release)
}

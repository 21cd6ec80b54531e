// Package job runs generation work in the background so the conversation
// loop stays responsive. Admission is gated twice: by the ledger balance
// and by the one-job-per-chat rule. A running job is never interrupted;
// its resolution comes back over the job's channel.
package job

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"slider-bot/api/internal/ledger"
)

// ErrBusy — в этом чате уже идёт генерация.
var ErrBusy = errors.New("job: generation already in flight for this chat")

type State int32

const (
	Pending State = iota
	Running
	Succeeded
	Failed
)

// Output is what a runner produces: the rendered file and the token cost
// reported by the completion backend.
type Output struct {
	Bytes    []byte
	Filename string
	Tokens   int64
}

// Runner performs one full generation: completion, parse, build, render.
type Runner func(ctx context.Context) (Output, error)

type Result struct {
	Output Output
	Err    error
}

type Job struct {
	ID     string
	UserID int64
	ChatID int64
	// Done receives exactly one Result after the job resolves. The ledger
	// debit for a successful job is applied before the send.
	Done chan Result

	mu    sync.Mutex
	state State
}

func (j *Job) State() State {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

func (j *Job) setState(s State) {
	j.mu.Lock()
	j.state = s
	j.mu.Unlock()
}

type Dispatcher struct {
	ledger *ledger.Ledger

	mu       sync.Mutex
	inflight map[int64]*Job // chatID -> job
}

func NewDispatcher(l *ledger.Ledger) *Dispatcher {
	return &Dispatcher{ledger: l, inflight: make(map[int64]*Job)}
}

// Submit admits and starts a job, returning immediately. The balance is
// read fresh; ErrInsufficientBalance means the runner was never invoked.
func (d *Dispatcher) Submit(ctx context.Context, userID, chatID int64, run Runner) (*Job, error) {
	if err := d.ledger.Check(ctx, userID); err != nil {
		return nil, err
	}

	d.mu.Lock()
	if _, busy := d.inflight[chatID]; busy {
		d.mu.Unlock()
		return nil, ErrBusy
	}
	j := &Job{
		ID:     uuid.NewString(),
		UserID: userID,
		ChatID: chatID,
		Done:   make(chan Result, 1),
	}
	d.inflight[chatID] = j
	d.mu.Unlock()

	go d.run(j, run)
	return j, nil
}

// Inflight reports whether a job is pending or running for the chat.
func (d *Dispatcher) Inflight(chatID int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.inflight[chatID]
	return ok
}

func (d *Dispatcher) run(j *Job, run Runner) {
	defer func() {
		d.mu.Lock()
		delete(d.inflight, j.ChatID)
		d.mu.Unlock()
	}()

	// Дедлайн на бэкенд здесь не накладываем: долгий вызов просто
	// задерживает разрешение задачи.
	ctx := context.Background()
	j.setState(Running)

	out, err := run(ctx)
	if err != nil {
		// Неудачная генерация токены не расходует.
		j.setState(Failed)
		j.Done <- Result{Err: err}
		return
	}

	if err := d.ledger.Settle(ctx, j.UserID, out.Tokens); err != nil {
		log.Printf("job %s: settle for user %d failed: %v", j.ID, j.UserID, err)
	}
	j.setState(Succeeded)
	j.Done <- Result{Output: out}
}

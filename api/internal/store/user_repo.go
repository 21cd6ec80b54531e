package store

import (
	"context"
	"database/sql"
	"time"
)

var ErrNotFound = sql.ErrNoRows

// Chat modes. "auto" runs generation through the configured engine;
// "manual" hands the assembled prompt to the user for copy-paste.
const (
	ModeManual = "manual"
	ModeAuto   = "auto"
)

type User struct {
	ID              int64
	ChatID          int64
	Username        string
	FirstName       string
	LastName        string
	Mode            string
	AvailableTokens int64
	UsedTokens      int64
	LastInteraction time.Time
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) Exists(ctx context.Context, userID int64) (bool, error) {
	const q = `select exists(select 1 from users where user_id=$1)`
	var ok bool
	err := r.DB.QueryRowContext(ctx, q, userID).Scan(&ok)
	return ok, err
}

// Create регистрирует пользователя с начальным балансом. Повторная
// регистрация — no-op.
func (r *UserRepo) Create(ctx context.Context, u User, initialTokens int64) error {
	const q = `
insert into users (user_id, chat_id, username, first_name, last_name,
                   current_chat_mode, n_available_tokens, n_used_tokens, last_interaction)
values ($1,$2,$3,$4,$5,$6,$7,0,now())
on conflict (user_id) do nothing`
	mode := u.Mode
	if mode == "" {
		mode = ModeManual
	}
	_, err := r.DB.ExecContext(ctx, q,
		u.ID, u.ChatID, u.Username, u.FirstName, u.LastName, mode, initialTokens)
	return err
}

func (r *UserRepo) Get(ctx context.Context, userID int64) (User, error) {
	const q = `
select user_id, chat_id,
       coalesce(username,''), coalesce(first_name,''), coalesce(last_name,''),
       current_chat_mode, n_available_tokens, n_used_tokens, last_interaction
from users where user_id=$1`
	var u User
	err := r.DB.QueryRowContext(ctx, q, userID).Scan(
		&u.ID, &u.ChatID, &u.Username, &u.FirstName, &u.LastName,
		&u.Mode, &u.AvailableTokens, &u.UsedTokens, &u.LastInteraction)
	return u, err
}

func (r *UserRepo) SetMode(ctx context.Context, userID int64, mode string) error {
	const q = `update users set current_chat_mode=$2 where user_id=$1`
	_, err := r.DB.ExecContext(ctx, q, userID, mode)
	return err
}

// Touch обновляет время последнего обращения.
func (r *UserRepo) Touch(ctx context.Context, userID int64) error {
	const q = `update users set last_interaction=now() where user_id=$1`
	_, err := r.DB.ExecContext(ctx, q, userID)
	return err
}

func (r *UserRepo) Balance(ctx context.Context, userID int64) (available, used int64, err error) {
	const q = `select n_available_tokens, n_used_tokens from users where user_id=$1`
	err = r.DB.QueryRowContext(ctx, q, userID).Scan(&available, &used)
	return available, used, err
}

// ApplyUsage debits the balance and credits the cumulative counter in one
// statement, so concurrent jobs cannot lose an update at the SQL level.
// The balance may transiently go negative: usage is debited post-hoc.
func (r *UserRepo) ApplyUsage(ctx context.Context, userID int64, tokens int64) error {
	const q = `
update users
set n_available_tokens = n_available_tokens - $2,
    n_used_tokens = n_used_tokens + $2
where user_id=$1`
	res, err := r.DB.ExecContext(ctx, q, userID, tokens)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepo) AddTokens(ctx context.Context, userID int64, amount int64) error {
	const q = `update users set n_available_tokens = n_available_tokens + $2 where user_id=$1`
	res, err := r.DB.ExecContext(ctx, q, userID, amount)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return ErrNotFound
	}
	return nil
}

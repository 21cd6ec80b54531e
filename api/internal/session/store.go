// Package session keeps the per-chat selection sessions. The default
// driver is in-memory; a Redis driver is available so the bot survives
// restarts without dropping half-finished selections.
package session

import (
	"context"

	"slider-bot/api/internal/flow"
)

type Store interface {
	// Get returns nil when the chat has no session (not an error).
	Get(ctx context.Context, chatID int64) (*flow.Session, error)
	Put(ctx context.Context, chatID int64, s *flow.Session) error
	Delete(ctx context.Context, chatID int64) error
}

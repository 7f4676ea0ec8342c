package db

import (
	"context"

	"golang.org/x/xerrors"
)

var ErrNotFound = xerrors.New("Record Not Found")

//go:generate go run github.com/golang/mock/mockgen -source=db.go -package=db -destination=mock.go IOperators,IChats,IWelcome

// IOperators is the operator set: the configured owner plus persisted admins.
// The owner is always a member; removing it is a no-op.
type IOperators interface {
	Add(ctx context.Context, userID int) error
	Remove(ctx context.Context, userID int) error
	Contains(ctx context.Context, userID int) bool
	List(ctx context.Context) ([]int, error)
	Owner() int
}

// IChats is the set of conversations the bot has seen, i.e. the broadcast
// recipient universe. Add is idempotent.
type IChats interface {
	Add(ctx context.Context, chatID int64) error
	List(ctx context.Context) ([]int64, error)
}

// IWelcome stores per-chat welcome templates set via /setwelcome.
type IWelcome interface {
	Set(ctx context.Context, chatID int64, text string) error
	Get(ctx context.Context, chatID int64) (string, error)
}

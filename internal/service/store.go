package service

import (
	"context"

	"stickynotes/internal/model"
)

// AccountStore is what the auth service needs from the document store.
// *repo.AccountRepo satisfies it; tests plug in an in-memory fake.
type AccountStore interface {
	Create(ctx context.Context, account *model.Account) error
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	GetByID(ctx context.Context, userID string) (*model.Account, error)
}

type NoteStore interface {
	Create(ctx context.Context, note *model.Note) error
	ListByOwner(ctx context.Context, userID string) ([]model.Note, error)
	GetByID(ctx context.Context, userID, noteID string) (*model.Note, error)
	Update(ctx context.Context, userID, noteID string, fields map[string]interface{}) error
	MarkDeleted(ctx context.Context, userID, noteID string, mtime int64) error
}

package repository

import (
	"context"

	"github.com/oksasatya/go-notes-api/internal/domain/entity"
)

// NoteRepository persists notes. Every method takes the owning user id and
// implementations must include it in the filter of every statement, so a
// note id alone never addresses a row.
type NoteRepository interface {
	Create(ctx context.Context, n *entity.Note) error
	ListByUser(ctx context.Context, userID string) ([]entity.Note, error)
	Update(ctx context.Context, userID, noteID string, upd entity.NoteUpdate) (*entity.Note, error)
	SetPinned(ctx context.Context, userID, noteID string, pinned bool) (*entity.Note, error)
	Delete(ctx context.Context, userID, noteID string) error
	Search(ctx context.Context, userID, query string) ([]entity.Note, error)
	ListTags(ctx context.Context, userID string) ([]string, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-notes-api/internal/domain/entity"
	"github.com/oksasatya/go-notes-api/internal/domain/repository"
)

const noteColumns = `id::text, user_id::text, title, content, tags, is_pinned, created_at, updated_at`

const noteOrder = ` ORDER BY is_pinned DESC, created_at DESC`

// NoteRepository stores notes in Postgres. user_id is part of the WHERE
// clause of every statement.
type NoteRepository struct {
	db DBTX
}

func NewNoteRepository(db DBTX) *NoteRepository {
	return &NoteRepository{db: db}
}

var _ repository.NoteRepository = (*NoteRepository)(nil)

func (r *NoteRepository) Create(ctx context.Context, n *entity.Note) error {
	if n.Tags == nil {
		n.Tags = []string{}
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO notes (user_id, title, content, tags, is_pinned)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text, created_at, updated_at
	`, n.UserID, n.Title, n.Content, n.Tags, n.IsPinned)
	return row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

func (r *NoteRepository) ListByUser(ctx context.Context, userID string) ([]entity.Note, error) {
	return r.list(ctx, `SELECT `+noteColumns+` FROM notes WHERE user_id = $1`+noteOrder, userID)
}

func (r *NoteRepository) Update(ctx context.Context, userID, noteID string, upd entity.NoteUpdate) (*entity.Note, error) {
	if !isUUID(noteID) {
		return nil, repository.ErrNotFound
	}
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Content != nil {
		add("content", *upd.Content)
	}
	if upd.Tags != nil {
		add("tags", *upd.Tags)
	}
	if upd.IsPinned != nil {
		add("is_pinned", *upd.IsPinned)
	}
	if len(sets) == 0 {
		return nil, errors.New("update note: no fields")
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, noteID, userID)

	q := fmt.Sprintf(`UPDATE notes SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args)-1, len(args), noteColumns)
	return r.getOne(ctx, q, args...)
}

func (r *NoteRepository) SetPinned(ctx context.Context, userID, noteID string, pinned bool) (*entity.Note, error) {
	if !isUUID(noteID) {
		return nil, repository.ErrNotFound
	}
	return r.getOne(ctx, `
		UPDATE notes SET is_pinned = $1, updated_at = now()
		WHERE id = $2 AND user_id = $3
		RETURNING `+noteColumns, pinned, noteID, userID)
}

func (r *NoteRepository) Delete(ctx context.Context, userID, noteID string) error {
	if !isUUID(noteID) {
		return repository.ErrNotFound
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, noteID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Search matches query literally and case-insensitively against the title
// and each tag.
func (r *NoteRepository) Search(ctx context.Context, userID, query string) ([]entity.Note, error) {
	pattern := "%" + escapeLike(query) + "%"
	return r.list(ctx, `
		SELECT `+noteColumns+` FROM notes
		WHERE user_id = $1
		  AND (title ILIKE $2 ESCAPE '\'
		       OR EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE t ILIKE $2 ESCAPE '\'))`+noteOrder,
		userID, pattern)
}

func (r *NoteRepository) ListTags(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT tag FROM notes, unnest(tags) AS tag
		WHERE user_id = $1
		ORDER BY tag
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *NoteRepository) getOne(ctx context.Context, query string, args ...any) (*entity.Note, error) {
	n := &entity.Note{}
	if err := scanNote(r.db.QueryRow(ctx, query, args...), n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (r *NoteRepository) list(ctx context.Context, query string, args ...any) ([]entity.Note, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []entity.Note{}
	for rows.Next() {
		var n entity.Note
		if err := scanNote(rows, &n); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func scanNote(row pgx.Row, n *entity.Note) error {
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Tags, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return err
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return nil
}

// A malformed id would make Postgres reject the uuid cast instead of
// matching nothing.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

package application

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/oksasatya/go-notes-api/internal/domain/entity"
	repo "github.com/oksasatya/go-notes-api/internal/domain/repository"
)

// NoteService applies the ownership policy: every call is scoped to the
// caller's user id and a note that belongs to someone else is reported
// exactly like a missing one.
type NoteService struct {
	Repo repo.NoteRepository
}

func NewNoteService(repo repo.NoteRepository) *NoteService {
	return &NoteService{Repo: repo}
}

type CreateNoteInput struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
}

type searchInput struct {
	Query string `json:"query" validate:"required"`
}

func (s *NoteService) Create(ctx context.Context, userID string, in CreateNoteInput) (*entity.Note, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	n := &entity.Note{
		UserID:  userID,
		Title:   in.Title,
		Content: in.Content,
		Tags:    tags,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

// List returns the caller's notes, pinned first. When tags is non-empty only
// notes carrying all of them are kept.
func (s *NoteService) List(ctx context.Context, userID string, tags []string) ([]entity.Note, error) {
	notes, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if len(tags) == 0 {
		return nonNil(notes), nil
	}
	out := make([]entity.Note, 0, len(notes))
	for i := range notes {
		if notes[i].HasTags(tags) {
			out = append(out, notes[i])
		}
	}
	return out, nil
}

func (s *NoteService) Update(ctx context.Context, userID, noteID string, upd entity.NoteUpdate) (*entity.Note, error) {
	if !validNoteID(noteID) {
		return nil, ErrNoteNotFound
	}
	if upd.Empty() {
		return nil, &ValidationError{Message: "No changes provided"}
	}
	if upd.Title != nil && *upd.Title == "" {
		return nil, &ValidationError{Field: "title", Message: requiredMessages["title"]}
	}
	if upd.Content != nil && *upd.Content == "" {
		return nil, &ValidationError{Field: "content", Message: requiredMessages["content"]}
	}
	if upd.Tags != nil && *upd.Tags == nil {
		empty := []string{}
		upd.Tags = &empty
	}
	n, err := s.Repo.Update(ctx, userID, noteID, upd)
	return s.scoped(n, err, "update note")
}

func (s *NoteService) SetPinned(ctx context.Context, userID, noteID string, pinned bool) (*entity.Note, error) {
	if !validNoteID(noteID) {
		return nil, ErrNoteNotFound
	}
	n, err := s.Repo.SetPinned(ctx, userID, noteID, pinned)
	return s.scoped(n, err, "pin note")
}

func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {
	if !validNoteID(noteID) {
		return ErrNoteNotFound
	}
	if err := s.Repo.Delete(ctx, userID, noteID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// Search matches query as a case-insensitive substring of the title or of
// any tag.
func (s *NoteService) Search(ctx context.Context, userID, query string) ([]entity.Note, error) {
	if err := validate(searchInput{Query: query}); err != nil {
		return nil, err
	}
	notes, err := s.Repo.Search(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return nonNil(notes), nil
}

// Tags returns the distinct tags across the caller's notes, sorted.
func (s *NoteService) Tags(ctx context.Context, userID string) ([]string, error) {
	tags, err := s.Repo.ListTags(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out, nil
}

func (s *NoteService) scoped(n *entity.Note, err error, op string) (*entity.Note, error) {
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// Ids that are not canonical UUIDs cannot match any row.
func validNoteID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

func nonNil(notes []entity.Note) []entity.Note {
	if notes == nil {
		return []entity.Note{}
	}
	return notes
}

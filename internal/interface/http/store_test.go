package handlers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-notes-api/internal/domain/entity"
	"github.com/oksasatya/go-notes-api/internal/domain/repository"
)

// memUsers and memNotes are in-memory repositories for handler tests.
type memUsers struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]entity.User{}} }

func (s *memUsers) Create(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	u.CreatedOn = time.Now().UTC()
	s.users[u.ID] = *u
	return nil
}

func (s *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memNotes struct {
	mu    sync.Mutex
	notes map[string]entity.Note
	clock time.Time
}

func newMemNotes() *memNotes {
	return &memNotes{notes: map[string]entity.Note{}, clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (s *memNotes) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memNotes) owned(userID, noteID string) (entity.Note, bool) {
	n, ok := s.notes[noteID]
	if !ok || n.UserID != userID {
		return entity.Note{}, false
	}
	return n, true
}

func (s *memNotes) Create(_ context.Context, n *entity.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = uuid.NewString()
	n.CreatedAt = s.tick()
	n.UpdatedAt = n.CreatedAt
	n.Tags = append([]string{}, n.Tags...)
	s.notes[n.ID] = *n
	return nil
}

func (s *memNotes) ListByUser(_ context.Context, userID string) ([]entity.Note, error) {
	return s.filter(userID, func(entity.Note) bool { return true }), nil
}

func (s *memNotes) Update(_ context.Context, userID, noteID string, upd entity.NoteUpdate) (*entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.owned(userID, noteID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.Title != nil {
		n.Title = *upd.Title
	}
	if upd.Content != nil {
		n.Content = *upd.Content
	}
	if upd.Tags != nil {
		n.Tags = append([]string{}, (*upd.Tags)...)
	}
	if upd.IsPinned != nil {
		n.IsPinned = *upd.IsPinned
	}
	n.UpdatedAt = s.tick()
	s.notes[noteID] = n
	return &n, nil
}

func (s *memNotes) SetPinned(ctx context.Context, userID, noteID string, pinned bool) (*entity.Note, error) {
	return s.Update(ctx, userID, noteID, entity.NoteUpdate{IsPinned: &pinned})
}

func (s *memNotes) Delete(_ context.Context, userID, noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owned(userID, noteID); !ok {
		return repository.ErrNotFound
	}
	delete(s.notes, noteID)
	return nil
}

func (s *memNotes) Search(_ context.Context, userID, query string) ([]entity.Note, error) {
	q := strings.ToLower(query)
	return s.filter(userID, func(n entity.Note) bool {
		if strings.Contains(strings.ToLower(n.Title), q) {
			return true
		}
		for _, t := range n.Tags {
			if strings.Contains(strings.ToLower(t), q) {
				return true
			}
		}
		return false
	}), nil
}

func (s *memNotes) ListTags(_ context.Context, userID string) ([]string, error) {
	var tags []string
	for _, n := range s.filter(userID, func(entity.Note) bool { return true }) {
		tags = append(tags, n.Tags...)
	}
	return tags, nil
}

func (s *memNotes) filter(userID string, keep func(entity.Note) bool) []entity.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.Note{}
	for _, n := range s.notes {
		if n.UserID == userID && keep(n) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsPinned != out[j].IsPinned {
			return out[i].IsPinned
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

var (
	_ repository.UserRepository = (*memUsers)(nil)
	_ repository.NoteRepository = (*memNotes)(nil)
)

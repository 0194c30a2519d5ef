package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/go-notes-api/internal/domain/entity"
)

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, n *entity.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNoteRepository) ListByUser(ctx context.Context, userID string) ([]entity.Note, error) {
	args := m.Called(ctx, userID)
	notes, _ := args.Get(0).([]entity.Note)
	return notes, args.Error(1)
}

func (m *MockNoteRepository) Update(ctx context.Context, userID, noteID string, upd entity.NoteUpdate) (*entity.Note, error) {
	args := m.Called(ctx, userID, noteID, upd)
	n, _ := args.Get(0).(*entity.Note)
	return n, args.Error(1)
}

func (m *MockNoteRepository) SetPinned(ctx context.Context, userID, noteID string, pinned bool) (*entity.Note, error) {
	args := m.Called(ctx, userID, noteID, pinned)
	n, _ := args.Get(0).(*entity.Note)
	return n, args.Error(1)
}

func (m *MockNoteRepository) Delete(ctx context.Context, userID, noteID string) error {
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}

func (m *MockNoteRepository) Search(ctx context.Context, userID, query string) ([]entity.Note, error) {
	args := m.Called(ctx, userID, query)
	notes, _ := args.Get(0).([]entity.Note)
	return notes, args.Error(1)
}

func (m *MockNoteRepository) ListTags(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	tags, _ := args.Get(0).([]string)
	return tags, args.Error(1)
}

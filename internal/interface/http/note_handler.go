package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-notes-api/internal/application"
	"github.com/oksasatya/go-notes-api/internal/domain/entity"
	"github.com/oksasatya/go-notes-api/pkg/response"
)

type NotesService interface {
	Create(ctx context.Context, userID string, in application.CreateNoteInput) (*entity.Note, error)
	List(ctx context.Context, userID string, tags []string) ([]entity.Note, error)
	Update(ctx context.Context, userID, noteID string, upd entity.NoteUpdate) (*entity.Note, error)
	SetPinned(ctx context.Context, userID, noteID string, pinned bool) (*entity.Note, error)
	Delete(ctx context.Context, userID, noteID string) error
	Search(ctx context.Context, userID, query string) ([]entity.Note, error)
	Tags(ctx context.Context, userID string) ([]string, error)
}

type NoteHandler struct {
	Svc    NotesService
	Logger *logrus.Logger
}

func NewNoteHandler(svc NotesService, logger *logrus.Logger) *NoteHandler {
	return &NoteHandler{Svc: svc, Logger: logger}
}

// Absent fields stay nil and are left untouched.
type editNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	IsPinned *bool     `json:"isPinned"`
}

type pinNoteRequest struct {
	IsPinned *bool `json:"isPinned"`
}

// AddNote POST /add-note
func (h *NoteHandler) AddNote(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req application.CreateNoteInput
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.Svc.Create(c.Request.Context(), id.UserID, req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Note added successfully", gin.H{"note": n})
}

// EditNote PUT /edit-note/:id
func (h *NoteHandler) EditNote(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req editNoteRequest
	if !bindJSON(c, &req) {
		return
	}
	upd := entity.NoteUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	}
	n, err := h.Svc.Update(c.Request.Context(), id.UserID, c.Param("id"), upd)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Note updated successfully", gin.H{"note": n})
}

// GetAllNotes GET /get-all-notes?tags=a,b
func (h *NoteHandler) GetAllNotes(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	notes, err := h.Svc.List(c.Request.Context(), id.UserID, tagFilter(c.QueryArray("tags")))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "All notes retrieved successfully", gin.H{"notes": notes})
}

// GetAllTags GET /get-all-tags
func (h *NoteHandler) GetAllTags(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	tags, err := h.Svc.Tags(c.Request.Context(), id.UserID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "All tags retrieved successfully", gin.H{"tags": tags})
}

// DeleteNote DELETE /delete-note/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id.UserID, c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Note deleted successfully", nil)
}

// UpdateNotePinned PUT /update-note-pinned/:id
func (h *NoteHandler) UpdateNotePinned(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req pinNoteRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.IsPinned == nil {
		response.Error(c, http.StatusBadRequest, "isPinned is required")
		return
	}
	n, err := h.Svc.SetPinned(c.Request.Context(), id.UserID, c.Param("id"), *req.IsPinned)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Note updated successfully", gin.H{"note": n})
}

// SearchNotes GET /search-notes?query=
func (h *NoteHandler) SearchNotes(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	notes, err := h.Svc.Search(c.Request.Context(), id.UserID, c.Query("query"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Notes matching the search query retrieved successfully", gin.H{"notes": notes})
}

// tagFilter accepts both ?tags=a,b and ?tags=a&tags=b.
func tagFilter(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, t := range strings.Split(r, ",") {
			if t = strings.TrimSpace(t); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-notes-api/internal/interface/http"
)

// NoteModule wires the note routes. All of them require a bearer token.
type NoteModule struct {
	Handler *handlers.NoteHandler
	Auth    gin.HandlerFunc
	RDB     *redis.Client
}

func NewNoteModule(h *handlers.NoteHandler, auth gin.HandlerFunc, rdb *redis.Client) *NoteModule {
	return &NoteModule{Handler: h, Auth: auth, RDB: rdb}
}

func (m *NoteModule) Register(rg *gin.RouterGroup) {
	notes := rg.Group("/")
	notes.Use(m.Auth, userLimiter(m.RDB))
	{
		notes.POST("/add-note", m.Handler.AddNote)
		notes.PUT("/edit-note/:id", m.Handler.EditNote)
		notes.GET("/get-all-notes", m.Handler.GetAllNotes)
		notes.GET("/get-all-tags", m.Handler.GetAllTags)
		notes.DELETE("/delete-note/:id", m.Handler.DeleteNote)
		notes.PUT("/update-note-pinned/:id", m.Handler.UpdateNotePinned)
		notes.GET("/search-notes", m.Handler.SearchNotes)
	}
}

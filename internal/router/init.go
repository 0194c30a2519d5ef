package router

import (
	"github.com/oksasatya/go-notes-api/internal/container"
	handlers "github.com/oksasatya/go-notes-api/internal/interface/http"
	"github.com/oksasatya/go-notes-api/internal/interface/middleware"
	"github.com/oksasatya/go-notes-api/internal/router/modules"
)

// InitModules builds handlers from c and adds every module to r.
// Call it once at startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	auth := middleware.Auth(c.JWT, c.Logger)

	userHandler := handlers.NewUserHandler(c.Users, c.Notifier, c.Logger)
	noteHandler := handlers.NewNoteHandler(c.Notes, c.Logger)

	r.Add(ModuleFunc(modules.RegisterRoot))
	r.Add(modules.NewAccountModule(userHandler, auth, c.Redis))
	r.Add(modules.NewNoteModule(noteHandler, auth, c.Redis))
	if c.Cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis))
	}
}

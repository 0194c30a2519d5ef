package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-notes-api/config"
	"github.com/oksasatya/go-notes-api/internal/application"
	pginfra "github.com/oksasatya/go-notes-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-notes-api/pkg/helpers"
)

// seed creates a demo account with a few notes. Running it twice reuses the
// existing account.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.DatabaseURL, 2, 0, 0)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	notes := application.NewNoteService(pginfra.NewNoteRepository(pool))

	const (
		email    = "demo@example.com"
		password = "password123"
		name     = "Demo User"
	)

	u, err := users.GetByEmail(ctx, email)
	if err != nil {
		svc := application.NewUserService(users, helpers.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenTTL), nil, cfg.BcryptCost)
		res, rerr := svc.Register(ctx, application.RegisterInput{
			FullName: name, Email: email, Password: password, ConfirmPassword: password,
		})
		if rerr != nil {
			log.Fatalf("failed to seed user: %v", rerr)
		}
		u = res.Account()
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, email, password)

	samples := []application.CreateNoteInput{
		{Title: "Welcome", Content: "Your first note.", Tags: []string{"getting-started"}},
		{Title: "Groceries", Content: "Milk, eggs, coffee", Tags: []string{"home", "shopping"}},
		{Title: "Sprint planning", Content: "Agenda and owners", Tags: []string{"work"}},
	}
	for _, in := range samples {
		n, err := notes.Create(ctx, u.ID, in)
		if err != nil {
			log.Fatalf("failed to seed note %q: %v", in.Title, err)
		}
		fmt.Printf("seeded note: id=%s title=%s\n", n.ID, n.Title)
	}
}

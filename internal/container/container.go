package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-notes-api/config"
	"github.com/oksasatya/go-notes-api/internal/application"
	pginfra "github.com/oksasatya/go-notes-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-notes-api/pkg/helpers"
)

// Container holds the components built once in main and shared by every
// router module. Nothing in it is mutated after New returns.
type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Redis  *redis.Client // nil disables rate limiting
	JWT    *helpers.JWTManager

	Users    *application.UserService
	Notes    *application.NoteService
	Notifier *application.AccountNotifier
}

// New wires repositories and services on top of db. rdb and pub may be nil.
func New(cfg *config.Config, logger *logrus.Logger, db pginfra.DBTX, rdb *redis.Client, pub application.Publisher) *Container {
	jwt := helpers.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenTTL)

	return &Container{
		Cfg:    cfg,
		Logger: logger,
		Redis:  rdb,
		JWT:    jwt,

		Users:    application.NewUserService(pginfra.NewUserRepository(db), jwt, logger, cfg.BcryptCost),
		Notes:    application.NewNoteService(pginfra.NewNoteRepository(db)),
		Notifier: application.NewAccountNotifier(pub, logger, cfg.AppName, cfg.AppURL, cfg.MailSendEnabled),
	}
}

var _ application.Publisher = (*helpers.RabbitPublisher)(nil)

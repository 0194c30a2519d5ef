package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-notes-api/internal/domain/entity"
	"github.com/oksasatya/go-notes-api/pkg/mailer"
	tpl "github.com/oksasatya/go-notes-api/pkg/mailer/templates"
)

// DefaultPublishTimeout bounds how long a request waits on the broker.
const DefaultPublishTimeout = 2 * time.Second

// Publisher puts a JSON message on the email queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AccountNotifier enqueues account emails. A nil notifier, a nil publisher or
// a disabled toggle turns every call into a no-op.
type AccountNotifier struct {
	Pub     Publisher
	Logger  *logrus.Logger
	AppName string
	AppURL  string
	Enabled bool
	Timeout time.Duration

	now func() time.Time
}

func NewAccountNotifier(pub Publisher, logger *logrus.Logger, appName, appURL string, enabled bool) *AccountNotifier {
	return &AccountNotifier{
		Pub:     pub,
		Logger:  logger,
		AppName: appName,
		AppURL:  appURL,
		Enabled: enabled,
		Timeout: DefaultPublishTimeout,
		now:     time.Now,
	}
}

func (n *AccountNotifier) active() bool {
	return n != nil && n.Pub != nil && n.Enabled
}

// Welcome enqueues the welcome email for a freshly created account.
func (n *AccountNotifier) Welcome(ctx context.Context, u *entity.User) {
	if !n.active() || u == nil {
		return
	}
	n.publish(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: tpl.Welcome,
		Data:     tpl.NewWelcomeData(n.AppName, n.AppURL, u.FullName, u.Email),
	}, u.ID)
}

// LoginNotification enqueues a "new login" email carrying the client ip and
// user agent.
func (n *AccountNotifier) LoginNotification(ctx context.Context, u *entity.User, ip, userAgent string) {
	if !n.active() || u == nil {
		return
	}
	now := time.Now
	if n.now != nil {
		now = n.now
	}
	n.publish(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: tpl.LoginNotification,
		Data: tpl.NewLoginNotificationData(n.AppName, n.AppURL, u.FullName, u.Email,
			tpl.WithIP(ip),
			tpl.WithUserAgent(userAgent),
			tpl.WithTime(now()),
		),
	}, u.ID)
}

// publish detaches from the request's cancellation so a client hang-up does
// not drop the email, and gives the broker at most Timeout.
func (n *AccountNotifier) publish(ctx context.Context, job mailer.EmailJob, userID string) {
	timeout := n.Timeout
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := n.Pub.PublishJSON(ctx, job); err != nil && n.Logger != nil {
		n.Logger.WithError(err).
			WithFields(logrus.Fields{"user_id": userID, "template": job.Template}).
			Warn("enqueue email failed")
	}
}

package messaging

import (
	"context"
	"time"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
	"github.com/oksasatya/recetario-api/pkg/mailer"
	"github.com/oksasatya/recetario-api/pkg/mailer/templates"
)

// Publisher is satisfied by helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, kind string, body any) error
}

// EmailNotifier queues transactional emails for the email worker.
type EmailNotifier struct {
	Pub        Publisher
	AppName    string
	SupportURL string
	now        func() time.Time
}

func NewEmailNotifier(pub Publisher, appName, supportURL string) *EmailNotifier {
	return &EmailNotifier{Pub: pub, AppName: appName, SupportURL: supportURL, now: time.Now}
}

// AccountCreated queues the welcome email for u.
func (n *EmailNotifier) AccountCreated(ctx context.Context, u *entity.User) error {
	opts := []templates.Option{
		templates.WithTime(n.now()),
		templates.WithCookingLevel(string(u.CookingLevel)),
	}
	if n.SupportURL != "" {
		opts = append(opts, templates.WithSupportURL(n.SupportURL))
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: templates.Welcome,
		Data:     templates.NewWelcomeData(n.AppName, u.Name, u.Email, opts...),
	}
	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return n.Pub.PublishJSON(c, mailer.JobKindEmail, job)
}

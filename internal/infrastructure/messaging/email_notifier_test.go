package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/recetario-api/internal/domain/entity"
	"github.com/oksasatya/recetario-api/pkg/mailer"
	"github.com/oksasatya/recetario-api/pkg/mailer/templates"
)

type capturePublisher struct {
	kind string
	body any
	err  error
}

func (c *capturePublisher) PublishJSON(_ context.Context, kind string, body any) error {
	c.kind, c.body = kind, body
	return c.err
}

func TestEmailNotifier_AccountCreated(t *testing.T) {
	pub := &capturePublisher{}
	n := NewEmailNotifier(pub, "Recetario", "https://recetario.example/ayuda")
	n.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

	u := &entity.User{ID: "u1", Name: "Ana", Email: "ana@example.com", CookingLevel: entity.LevelBeginner}
	require.NoError(t, n.AccountCreated(context.Background(), u))

	assert.Equal(t, mailer.JobKindEmail, pub.kind)
	job, ok := pub.body.(mailer.EmailJob)
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", job.To)
	assert.Equal(t, templates.Welcome, job.Template)
	assert.Equal(t, "Ana", job.Data["Name"])
	assert.Equal(t, "beginner", job.Data["CookingLevel"])
	assert.Equal(t, "https://recetario.example/ayuda", job.Data["SupportURL"])
}

func TestEmailNotifier_PropagatesPublishError(t *testing.T) {
	pub := &capturePublisher{err: errors.New("channel closed")}
	n := NewEmailNotifier(pub, "Recetario", "")
	err := n.AccountCreated(context.Background(), &entity.User{Email: "a@example.com"})
	assert.EqualError(t, err, "channel closed")
}

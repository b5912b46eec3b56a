package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/recetario-api/pkg/mailer"
	mailtpl "github.com/oksasatya/recetario-api/pkg/mailer/templates"
)

type sent struct {
	to, subject, text, html string
}

type fakeSender struct {
	got []sent
	err error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	f.got = append(f.got, sent{to, subject, text, html})
	return f.err
}

func delivery(t *testing.T, kind string, job mailer.EmailJob) amqp.Delivery {
	t.Helper()
	b, err := json.Marshal(job)
	require.NoError(t, err)
	return amqp.Delivery{Type: kind, Body: b}
}

func TestDeliver_WelcomeTemplate(t *testing.T) {
	s := &fakeSender{}
	job := mailer.EmailJob{
		To:       "ana@example.com",
		Template: mailtpl.Welcome,
		Data:     mailtpl.NewWelcomeData("Recetario", "Ana", ""),
	}
	require.NoError(t, deliver(context.Background(), s, delivery(t, mailer.JobKindEmail, job)))
	require.Len(t, s.got, 1)
	assert.Equal(t, "ana@example.com", s.got[0].to)
	assert.Equal(t, "Bienvenido a Recetario, Ana", s.got[0].subject)
	assert.Contains(t, s.got[0].html, "ana@example.com")
}

func TestDeliver_PlainMessage(t *testing.T) {
	s := &fakeSender{}
	job := mailer.EmailJob{To: "bea@example.com", Subject: "Hola", Text: "texto"}
	require.NoError(t, deliver(context.Background(), s, delivery(t, "", job)))
	assert.Equal(t, sent{"bea@example.com", "Hola", "texto", ""}, s.got[0])
}

func TestDeliver_Failures(t *testing.T) {
	s := &fakeSender{}
	err := deliver(context.Background(), s, amqp.Delivery{Type: mailer.JobKindEmail, Body: []byte("{")})
	assert.ErrorIs(t, err, errPermanent)

	err = deliver(context.Background(), s, delivery(t, "sms", mailer.EmailJob{To: "x@example.com"}))
	assert.ErrorIs(t, err, errPermanent)

	err = deliver(context.Background(), s, delivery(t, mailer.JobKindEmail, mailer.EmailJob{To: "x@example.com", Template: "missing"}))
	assert.ErrorIs(t, err, errPermanent)
	assert.Empty(t, s.got)

	s.err = errors.New("mailgun 503")
	err = deliver(context.Background(), s, delivery(t, mailer.JobKindEmail, mailer.EmailJob{To: "x@example.com", Subject: "s", Text: "t"}))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errPermanent)
}

package templates

import "time"

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) { d.Time = t.UTC().Format("02 January 2006, 15:04") }
}

func WithSupportURL(url string) Option { return func(d *EmailData) { d.SupportURL = url } }

func WithCookingLevel(level string) Option { return func(d *EmailData) { d.CookingLevel = level } }

// NewWelcomeData builds the data map for the welcome email sent after registration.
func NewWelcomeData(appName, name, email string, opts ...Option) map[string]any {
	d := EmailData{Name: name, Email: email, AppName: appName}
	for _, opt := range opts {
		opt(&d)
	}
	return ToMap(d)
}

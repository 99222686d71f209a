// Package telemetry wires Sentry error tracking. dsn may be empty, in
// which case every call is a no-op — local development needs no account.
package telemetry

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// Init initializes the Sentry SDK once at process startup.
func Init(dsn, release string) error {
	if dsn == "" {
		logrus.WithField("component", "telemetry").Debug("SENTRY_DSN not set, Sentry disabled")
		return nil
	}

	env := os.Getenv("SCREENFEED_ENV")
	if env == "" {
		env = "development"
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      env,
		Release:          release,
		AttachStacktrace: true,
	})
}

// CaptureError reports err with contextual tags. Safe to call when Sentry
// is disabled.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

// Flush drains queued events before shutdown.
func Flush() {
	sentry.Flush(2 * time.Second)
}

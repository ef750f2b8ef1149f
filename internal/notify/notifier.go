// Package notify delivers best-effort notifications about new contact messages.
// Notifiers never return errors: every outcome is reported as a Result and
// logged, so callers cannot accidentally fail a request because of them.
package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/saicharan1203/portfolio-backend/internal/metrics"
	"github.com/saicharan1203/portfolio-backend/internal/portfolio/domain"
)

type Result string

const (
	ResultSent     Result = "sent"
	ResultDisabled Result = "disabled"
	ResultFailed   Result = "failed"
)

// Notifier announces a persisted contact message to recipient.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, recipient string, msg domain.Message) Result
}

// Multi fans a message out to every notifier in order and combines the
// outcomes: failed if any failed, sent if any sent, otherwise disabled.
type Multi struct {
	notifiers []Notifier
	log       logrus.FieldLogger
}

var _ Notifier = (*Multi)(nil)

func NewMulti(log logrus.FieldLogger, notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers, log: log}
}

func (m *Multi) Name() string { return "multi" }

func (m *Multi) Notify(ctx context.Context, recipient string, msg domain.Message) Result {
	combined := ResultDisabled
	for _, n := range m.notifiers {
		res := m.notifyOne(ctx, n, recipient, msg)
		metrics.ObserveNotification(n.Name(), string(res))

		switch {
		case res == ResultFailed:
			combined = ResultFailed
		case res == ResultSent && combined == ResultDisabled:
			combined = ResultSent
		}
	}
	return combined
}

// notifyOne isolates a panicking notifier so the remaining ones still run.
func (m *Multi) notifyOne(ctx context.Context, n Notifier, recipient string, msg domain.Message) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			m.log.WithFields(logrus.Fields{"notifier": n.Name(), "panic": r}).Error("notifier panicked")
			res = ResultFailed
		}
	}()
	return n.Notify(ctx, recipient, msg)
}

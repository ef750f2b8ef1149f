package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saicharan1203/portfolio-backend/internal/logging"
	"github.com/saicharan1203/portfolio-backend/internal/portfolio/domain"
)

type stubNotifier struct {
	name   string
	result Result
	calls  int
	panics bool
}

func (s *stubNotifier) Name() string { return s.name }

func (s *stubNotifier) Notify(context.Context, string, domain.Message) Result {
	s.calls++
	if s.panics {
		panic("boom")
	}
	return s.result
}

func TestMulti_CombinesResults(t *testing.T) {
	cases := []struct {
		name    string
		results []Result
		want    Result
	}{
		{"all disabled", []Result{ResultDisabled, ResultDisabled}, ResultDisabled},
		{"one sent", []Result{ResultDisabled, ResultSent}, ResultSent},
		{"failure wins", []Result{ResultSent, ResultFailed}, ResultFailed},
		{"failure then sent", []Result{ResultFailed, ResultSent}, ResultFailed},
		{"no notifiers", nil, ResultDisabled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ns []Notifier
			for i, r := range tc.results {
				ns = append(ns, &stubNotifier{name: string(rune('a' + i)), result: r})
			}
			m := NewMulti(logging.Discard(), ns...)
			assert.Equal(t, tc.want, m.Notify(context.Background(), "to@example.com", ada))
		})
	}
}

func TestMulti_PanicIsContained(t *testing.T) {
	bad := &stubNotifier{name: "bad", panics: true}
	good := &stubNotifier{name: "good", result: ResultSent}

	m := NewMulti(logging.Discard(), bad, good)
	assert.Equal(t, ResultFailed, m.Notify(context.Background(), "to@example.com", ada))
	assert.Equal(t, 1, good.calls)
}

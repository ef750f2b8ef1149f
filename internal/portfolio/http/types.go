package http

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saicharan1203/portfolio-backend/internal/notify"
	"github.com/saicharan1203/portfolio-backend/internal/portfolio/repository"
)

// notifyTimeout bounds a detached contact notification.
const notifyTimeout = 30 * time.Second

// ErrorResponse is the body of every 400 and 500 reply.
type ErrorResponse struct {
	Message string  `json:"message"`
	Field   *string `json:"field,omitempty"`
}

// Handler serves the portfolio API.
type Handler struct {
	store     repository.Store
	notifier  notify.Notifier
	recipient string
	log       logrus.FieldLogger

	// mu orders pending.Add against Close so no Add races the final Wait.
	mu      sync.Mutex
	closed  bool
	pending sync.WaitGroup
}

// New creates a Handler. notifier may be nil, in which case contact messages
// are only persisted.
func New(store repository.Store, notifier notify.Notifier, recipient string, log logrus.FieldLogger) *Handler {
	return &Handler{
		store:     store,
		notifier:  notifier,
		recipient: recipient,
		log:       log,
	}
}

// Wait blocks until every in-flight contact notification has finished.
func (h *Handler) Wait() {
	h.pending.Wait()
}

// Close stops new contact notifications from being dispatched and waits for
// the in-flight ones. Contact messages accepted afterwards are still persisted.
func (h *Handler) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	h.pending.Wait()
}

// track registers one detached notification. It reports false once Close has
// been called.
func (h *Handler) track() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.pending.Add(1)
	return true
}

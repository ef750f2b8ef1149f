package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/saicharan1203/portfolio-backend/internal/api/http/middleware"
	"github.com/saicharan1203/portfolio-backend/internal/portfolio/domain"
)

// ListProjects returns all projects ordered by id.
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.store.ListProjects(c.Request.Context())
	if err != nil {
		h.fail(c, "list projects", err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) CreateProject(c *gin.Context) {
	in, err := parseBody(c, domain.ParseInsertProject)
	if err != nil {
		h.fail(c, "create project", err)
		return
	}

	p, err := h.store.CreateProject(c.Request.Context(), *in)
	if err != nil {
		h.fail(c, "create project", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) ListSkills(c *gin.Context) {
	skills, err := h.store.ListSkills(c.Request.Context())
	if err != nil {
		h.fail(c, "list skills", err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *Handler) CreateSkill(c *gin.Context) {
	in, err := parseBody(c, domain.ParseInsertSkill)
	if err != nil {
		h.fail(c, "create skill", err)
		return
	}

	sk, err := h.store.CreateSkill(c.Request.Context(), *in)
	if err != nil {
		h.fail(c, "create skill", err)
		return
	}
	c.JSON(http.StatusCreated, sk)
}

// CreateContact persists a contact message and replies 201. The owner
// notification is started afterwards in a detached goroutine; the handler does
// not wait for it and its outcome never changes the response.
func (h *Handler) CreateContact(c *gin.Context) {
	in, err := parseBody(c, domain.ParseInsertMessage)
	if err != nil {
		h.fail(c, "create contact message", err)
		return
	}

	msg, err := h.store.CreateMessage(c.Request.Context(), *in)
	if err != nil {
		h.fail(c, "create contact message", err)
		return
	}

	c.JSON(http.StatusCreated, msg)
	h.dispatch(c.Request.Context(), *msg)
}

func (h *Handler) dispatch(reqCtx context.Context, msg domain.Message) {
	if h.notifier == nil {
		return
	}

	entry := h.log.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(reqCtx),
		"message_id": msg.ID,
		"notifier":   h.notifier.Name(),
	})

	if !h.track() {
		entry.Warn("shutting down, contact notification skipped")
		return
	}

	// The request context is cancelled as soon as the response is written.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(reqCtx), notifyTimeout)

	go func() {
		defer h.pending.Done()
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				entry.WithField("panic", r).Error("contact notification panicked")
			}
		}()

		res := h.notifier.Notify(ctx, h.recipient, msg)
		entry.WithField("result", res).Info("contact notification finished")
	}()
}

func parseBody[T any](c *gin.Context, parse func([]byte) (*T, error)) (*T, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, domain.ErrInvalidBody
	}
	return parse(body)
}

// fail maps an error to the response: validation problems become 400 with the
// offending field, anything else is logged and hidden behind a generic 500.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		field := ve.Field
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: ve.Message, Field: &field})
		return
	case errors.Is(err, domain.ErrInvalidBody):
		field := ""
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body", Field: &field})
		return
	}

	h.log.WithFields(logrus.Fields{
		"request_id":          middleware.GetRequestID(c.Request.Context()),
		"operation":           op,
		"storage_unavailable": errors.Is(err, domain.ErrStorageUnavailable),
	}).WithError(err).Error("request failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal Server Error"})
}

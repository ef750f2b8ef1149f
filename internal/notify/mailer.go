package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"html"
	"io"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/saicharan1203/portfolio-backend/config"
	"github.com/saicharan1203/portfolio-backend/internal/portfolio/domain"
)

// Mailer emails contact messages through an authenticated SMTP relay. Without
// MAIL_USER and MAIL_PASS it reports ResultDisabled and makes no network call.
type Mailer struct {
	cfg  config.MailConfig
	log  logrus.FieldLogger
	send func(context.Context, *gomail.Message) error
}

var _ Notifier = (*Mailer)(nil)

func NewMailer(cfg config.MailConfig, log logrus.FieldLogger) *Mailer {
	m := &Mailer{cfg: cfg, log: log}
	m.send = m.deliver
	return m
}

func (m *Mailer) Name() string { return "smtp" }

func (m *Mailer) Notify(ctx context.Context, recipient string, msg domain.Message) Result {
	if !m.cfg.Enabled() {
		m.log.Info("MAIL_USER or MAIL_PASS not set, email sending disabled")
		return ResultDisabled
	}
	if recipient == "" {
		m.log.Info("no contact recipient configured, email sending disabled")
		return ResultDisabled
	}

	entry := m.log.WithFields(logrus.Fields{"message_id": msg.ID, "to": recipient})
	if err := m.send(ctx, buildMessage(m.cfg.User, recipient, msg)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		entry.WithError(err).Error("failed to send contact email")
		return ResultFailed
	}
	entry.Info("contact email sent")
	return ResultSent
}

// deliver runs the whole SMTP conversation on a connection bound to ctx. The
// context deadline is set on the socket and cancellation closes it.
func (m *Mailer) deliver(ctx context.Context, gm *gomail.Message) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return fmt.Errorf("set deadline: %w", err)
		}
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	tlsCfg := &tls.Config{ServerName: m.cfg.Host}
	if m.cfg.Port == 465 {
		conn = tls.Client(conn, tlsCfg)
	}

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp greeting: %w", err)
	}
	defer c.Close()

	if err := c.Hello("localhost"); err != nil {
		return fmt.Errorf("smtp hello: %w", err)
	}
	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(tlsCfg); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if ok, _ := c.Extension("AUTH"); !ok {
		return fmt.Errorf("smtp: %s does not support AUTH", addr)
	}
	if err := c.Auth(smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := gomail.Send(smtpSender{c}, gm); err != nil {
		return err
	}
	return c.Quit()
}

// smtpSender adapts an open smtp.Client to gomail.Sender.
type smtpSender struct {
	c *smtp.Client
}

func (s smtpSender) Send(from string, to []string, msg io.WriterTo) error {
	if err := s.c.Mail(from); err != nil {
		return err
	}
	for _, addr := range to {
		if err := s.c.Rcpt(addr); err != nil {
			return err
		}
	}
	w, err := s.c.Data()
	if err != nil {
		return err
	}
	if _, err := msg.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func buildMessage(from, to string, msg domain.Message) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetHeader("From", from)
	gm.SetHeader("To", to)
	gm.SetHeader("Reply-To", msg.Email)
	gm.SetHeader("Subject", fmt.Sprintf("New Contact Message from %s", msg.Name))

	gm.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\nMessage:\n%s\n", msg.Name, msg.Email, msg.Message))
	gm.AddAlternative("text/html", fmt.Sprintf(
		"<h3>New Contact Message</h3>\n<p><strong>Name:</strong> %s</p>\n<p><strong>Email:</strong> %s</p>\n<p><strong>Message:</strong></p>\n<p>%s</p>\n",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"),
	))
	return gm
}

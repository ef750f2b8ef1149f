package bootstrap

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/saicharan1203/portfolio-backend/config"
	"github.com/saicharan1203/portfolio-backend/internal/notify"
)

// BuildNotifier assembles the contact notifiers. The returned cleanup closes
// the Redis client, if one was created.
func BuildNotifier(cfg *config.Config, log logrus.FieldLogger) (notify.Notifier, func()) {
	if cfg.Mail.Enabled() {
		log.WithField("recipient", cfg.Mail.Recipient).Info("contact emails enabled")
	} else {
		log.Info("MAIL_USER or MAIL_PASS not set, contact emails disabled")
	}
	notifiers := []notify.Notifier{notify.NewMailer(cfg.Mail, log)}

	var client *redis.Client
	if cfg.Redis.URL != "" {
		c, err := notify.NewRedisClient(cfg.Redis.URL)
		if err != nil {
			log.WithError(err).Warn("invalid REDIS_URL, contact events disabled")
		} else {
			client = c
			log.WithField("channel", cfg.Redis.ContactChannel).Info("contact events enabled")
			notifiers = append(notifiers, notify.NewRedisPublisher(client, cfg.Redis.ContactChannel, log))
		}
	}

	cleanup := func() {
		if client != nil {
			client.Close()
		}
	}
	return notify.NewMulti(log, notifiers...), cleanup
}

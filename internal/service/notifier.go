package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"educafric/internal/config"
	"educafric/internal/domain"
	"educafric/internal/redis"
	"educafric/pkg/e"
)

// NotificationSender drains the Redis queue and delivers payloads to the
// notification webhook. Delivery failures are retried a few times and then
// dropped with a log line; the tracking path never blocks on delivery.
type NotificationSender struct {
	logger *slog.Logger
	cfg    config.NotifyConfig
	queue  *redis.NotifyQueue
	http   *http.Client
}

func NewNotificationSender(logger *slog.Logger, cfg config.NotifyConfig, q *redis.NotifyQueue) *NotificationSender {
	return &NotificationSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *NotificationSender) Run(ctx context.Context) {
	s.logger.Info("notificationSender STARTED", slog.String("url", s.cfg.WebhookURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("notificationSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if s.cfg.Disabled {
			s.logger.Debug("notifications disabled, dropping payload",
				slog.Int64("user_id", payload.UserID))
			continue
		}

		s.logger.Info("sending notification",
			slog.Int64("user_id", payload.UserID),
			slog.String("alert_type", string(payload.AlertType)),
			slog.Bool("urgent", payload.Urgent),
		)
		s.sendWithRetry(ctx, payload)
	}
}

func (s *NotificationSender) sendWithRetry(ctx context.Context, p domain.NotificationPayload) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal notification payload failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create notification request failed", slog.String("error", err.Error()))
			return
		}

		req.Header.Set("Content-Type", "application/json")
		if p.Urgent {
			req.Header.Set("X-Priority", "urgent")
		}

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("notification delivery failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.WebhookURL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}

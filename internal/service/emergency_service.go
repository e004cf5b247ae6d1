package service

import (
	"context"
	"log/slog"
	"time"

	"educafric/internal/domain"

	"github.com/google/uuid"
)

// Estimated responder dispatch time by panic type, in seconds.
var panicResponseSeconds = map[domain.PanicType]int{
	domain.PanicMedical:  300,
	domain.PanicAccident: 300,
	domain.PanicSecurity: 420,
	domain.PanicLost:     900,
}

type emergencyService struct {
	repo        EmergencyRepository
	users       UserDirectory
	notifyQueue NotifyQueue
	logger      *slog.Logger
	now         func() time.Time
}

func NewEmergencyService(
	repo EmergencyRepository,
	users UserDirectory,
	notifyQueue NotifyQueue,
	logger *slog.Logger,
	clock func() time.Time,
) EmergencyService {
	if clock == nil {
		clock = time.Now
	}
	return &emergencyService{
		repo:        repo,
		users:       users,
		notifyQueue: notifyQueue,
		logger:      logger,
		now:         clock,
	}
}

// TriggerPanic records the distress signal and queues an urgent notification
// for the user's emergency contacts. A failed directory lookup degrades to
// the placeholder name; a panic is never dropped because of it.
func (s *emergencyService) TriggerPanic(ctx context.Context, req domain.TriggerPanicRequest) (domain.TriggerPanicResponse, error) {
	now := s.now()

	rec := &domain.EmergencyPanic{
		ID:         uuid.New(),
		UserID:     req.UserID,
		DeviceID:   req.DeviceID,
		Lat:        req.Lat,
		Lng:        req.Lng,
		PanicType:  req.PanicType,
		Message:    req.Message,
		Timestamp:  now,
		IsResolved: false,
	}

	s.logger.Info("panic triggered",
		slog.Int64("user_id", req.UserID),
		slog.Int64("device_id", req.DeviceID),
		slog.String("panic_type", string(req.PanicType)),
	)

	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("panic save failed", slog.Any("error", err))
		return domain.TriggerPanicResponse{}, err
	}

	name, err := s.users.DisplayName(ctx, req.UserID)
	if err != nil || name == "" {
		s.logger.Warn("display name lookup failed",
			slog.Int64("user_id", req.UserID), slog.Any("error", err))
		name = UnknownUserName
	}

	msg := "URGENCE: " + name + " a déclenché une alerte " + string(req.PanicType)
	if req.Message != "" {
		msg += " — " + req.Message
	}

	payload := domain.NotificationPayload{
		UserID:    req.UserID,
		DeviceID:  req.DeviceID,
		AlertType: domain.AlertType("panic_" + string(req.PanicType)),
		Severity:  domain.SeverityHigh,
		Message:   msg,
		Urgent:    true,
		SentAt:    now,
	}
	if err := s.notifyQueue.Enqueue(ctx, payload); err != nil {
		s.logger.Error("enqueue panic notification failed", slog.Any("error", err))
	}

	seconds, ok := panicResponseSeconds[req.PanicType]
	if !ok {
		seconds = 600
	}

	return domain.TriggerPanicResponse{
		Success:             true,
		EmergencyID:         rec.ID,
		ResponseTimeSeconds: seconds,
	}, nil
}

func (s *emergencyService) Resolve(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Resolve(ctx, id); err != nil {
		return err
	}
	s.logger.Info("panic resolved", slog.String("id", id.String()))
	return nil
}

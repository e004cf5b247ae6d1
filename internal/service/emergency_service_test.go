package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"educafric/internal/domain"
	"educafric/internal/service"
	mock_service "educafric/internal/service/mocks"
	"educafric/pkg/e"
)

func newEmergencyService(ctrl *gomock.Controller) (service.EmergencyService, *mock_service.MockEmergencyRepository, *mock_service.MockUserDirectory, *mock_service.MockNotifyQueue) {
	repo := mock_service.NewMockEmergencyRepository(ctrl)
	users := mock_service.NewMockUserDirectory(ctrl)
	queue := mock_service.NewMockNotifyQueue(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return mondayMorning }
	return service.NewEmergencyService(repo, users, queue, logger, clock), repo, users, queue
}

func panicRequest() domain.TriggerPanicRequest {
	return domain.TriggerPanicRequest{
		UserID:    7,
		DeviceID:  42,
		Lat:       4.0511,
		Lng:       9.7679,
		PanicType: domain.PanicMedical,
		Message:   "Besoin d'aide",
	}
}

func TestTriggerPanic_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, users, queue := newEmergencyService(ctrl)
	ctx := context.Background()

	var saved *domain.EmergencyPanic
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.EmergencyPanic) error {
			saved = rec
			return nil
		})
	users.EXPECT().DisplayName(ctx, int64(7)).Return("Aminata Diallo", nil)

	var payload domain.NotificationPayload
	queue.EXPECT().Enqueue(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.NotificationPayload) error {
			payload = p
			return nil
		})

	resp, err := svc.TriggerPanic(ctx, panicRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success")
	}
	if resp.EmergencyID != saved.ID {
		t.Fatalf("response id must match the stored record")
	}
	if resp.ResponseTimeSeconds != 300 {
		t.Fatalf("medical response time must be 300s, got %d", resp.ResponseTimeSeconds)
	}
	if saved.IsResolved {
		t.Fatalf("new panics must start unresolved")
	}
	if !payload.Urgent || payload.Severity != domain.SeverityHigh {
		t.Fatalf("panic notification must be urgent/high: %+v", payload)
	}
	if payload.AlertType != domain.AlertType("panic_medical") {
		t.Fatalf("unexpected alert type: %s", payload.AlertType)
	}
	want := "URGENCE: Aminata Diallo a déclenché une alerte medical — Besoin d'aide"
	if payload.Message != want {
		t.Fatalf("unexpected message: %q", payload.Message)
	}
}

func TestTriggerPanic_ResponseTimes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		panicType domain.PanicType
		seconds   int
	}{
		{domain.PanicMedical, 300},
		{domain.PanicAccident, 300},
		{domain.PanicSecurity, 420},
		{domain.PanicLost, 900},
		{domain.PanicType("other"), 600},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.panicType), func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, users, queue := newEmergencyService(ctrl)
			ctx := context.Background()

			repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			users.EXPECT().DisplayName(ctx, int64(7)).Return("Aminata Diallo", nil)
			queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil)

			req := panicRequest()
			req.PanicType = tc.panicType
			resp, err := svc.TriggerPanic(ctx, req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.ResponseTimeSeconds != tc.seconds {
				t.Fatalf("%s: want %d, got %d", tc.panicType, tc.seconds, resp.ResponseTimeSeconds)
			}
		})
	}
}

func TestTriggerPanic_DirectoryFailureStillNotifies(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, users, queue := newEmergencyService(ctrl)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	users.EXPECT().DisplayName(ctx, int64(7)).Return("", e.ErrNotFound)

	var payload domain.NotificationPayload
	queue.EXPECT().Enqueue(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.NotificationPayload) error {
			payload = p
			return nil
		})

	req := panicRequest()
	req.Message = ""
	resp, err := svc.TriggerPanic(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success despite directory failure")
	}
	if payload.Message != "URGENCE: Utilisateur inconnu a déclenché une alerte medical" {
		t.Fatalf("unexpected message: %q", payload.Message)
	}
}

func TestTriggerPanic_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, _ := newEmergencyService(ctrl)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("pg down"))

	resp, err := svc.TriggerPanic(ctx, panicRequest())
	if err == nil {
		t.Fatalf("expected error when the panic cannot be stored")
	}
	if resp.Success {
		t.Fatalf("must not report success on store failure")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, _ := newEmergencyService(ctrl)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().Resolve(ctx, id).Return(nil)
	if err := svc.Resolve(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.EXPECT().Resolve(ctx, id).Return(e.ErrNotFound)
	if err := svc.Resolve(ctx, id); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

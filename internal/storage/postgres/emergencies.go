package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"educafric/internal/domain"
	"educafric/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EmergencyRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEmergencyRepo(pool *pgxpool.Pool, logger *slog.Logger) *EmergencyRepo {
	return &EmergencyRepo{pool: pool, logger: logger}
}

func (p *EmergencyRepo) Create(ctx context.Context, rec *domain.EmergencyPanic) error {
	const op = "postgres.Emergency.Create"

	if rec == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if rec.Lat < -90 || rec.Lat > 90 || rec.Lng < -180 || rec.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		INSERT INTO emergency_panics (
			id, user_id, device_id, lat, lng, panic_type, message,
			triggered_at, is_resolved, services_contacted
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		rec.ID,
		rec.UserID,
		rec.DeviceID,
		rec.Lat,
		rec.Lng,
		rec.PanicType,
		rec.Message,
		rec.Timestamp,
		rec.IsResolved,
		rec.EmergencyServicesContacted,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int64("user_id", rec.UserID),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *EmergencyRepo) Get(ctx context.Context, id uuid.UUID) (*domain.EmergencyPanic, error) {
	const op = "postgres.Emergency.Get"

	const query = `
		SELECT id, user_id, device_id, lat, lng, panic_type, message,
			   triggered_at, is_resolved, services_contacted
		FROM emergency_panics
		WHERE id = $1
	`

	var rec domain.EmergencyPanic
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.DeviceID,
		&rec.Lat,
		&rec.Lng,
		&rec.PanicType,
		&rec.Message,
		&rec.Timestamp,
		&rec.IsResolved,
		&rec.EmergencyServicesContacted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &rec, nil
}

func (p *EmergencyRepo) Resolve(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Emergency.Resolve"

	const query = `
		UPDATE emergency_panics
		SET is_resolved = TRUE
		WHERE id = $1 AND is_resolved = FALSE
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

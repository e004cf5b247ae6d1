package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"educafric/internal/domain"
	"educafric/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

func (p *AlertRepo) SaveAlerts(ctx context.Context, alerts []domain.Alert) error {
	const op = "postgres.Alert.SaveAlerts"

	if len(alerts) == 0 {
		return nil
	}

	const query = `
		INSERT INTO geofence_alerts (
			id, device_id, user_id, safe_zone_id,
			alert_type, severity, message, lat, lng, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	batch := &pgx.Batch{}
	for i := range alerts {
		a := &alerts[i]
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		if a.Timestamp.IsZero() {
			a.Timestamp = time.Now().UTC()
		}
		batch.Queue(query,
			a.ID,
			a.DeviceID,
			a.UserID,
			a.SafeZoneID,
			a.AlertType,
			a.Severity,
			a.Message,
			a.Lat,
			a.Lng,
			a.Timestamp,
		)
	}

	br := p.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range alerts {
		if _, err := br.Exec(); err != nil {
			p.logger.Error("db batch exec failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
	}

	return nil
}

func (p *AlertRepo) CountSince(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Alert.CountSince"

	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT COUNT(*)
		FROM geofence_alerts
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
	`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int("minutes", minutes),
		)
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}

func (p *AlertRepo) ListRecent(ctx context.Context, deviceID int64, limit int) ([]domain.Alert, error) {
	const op = "postgres.Alert.ListRecent"

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	const query = `
		SELECT id, device_id, user_id, safe_zone_id,
			   alert_type, severity, message, lat, lng, created_at
		FROM geofence_alerts
		WHERE device_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, deviceID, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	alerts := make([]domain.Alert, 0, limit)
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(
			&a.ID,
			&a.DeviceID,
			&a.UserID,
			&a.SafeZoneID,
			&a.AlertType,
			&a.Severity,
			&a.Message,
			&a.Lat,
			&a.Lng,
			&a.Timestamp,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return alerts, nil
}

package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"educafric/internal/domain"
	"educafric/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CheckRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCheckRepo(pool *pgxpool.Pool, logger *slog.Logger) *CheckRepo {
	return &CheckRepo{pool: pool, logger: logger}
}

func (p *CheckRepo) SaveCheck(ctx context.Context, check *domain.LocationCheck) error {
	const op = "postgres.LocationCheck.Save"

	if check == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if check.Lat < -90 || check.Lat > 90 || check.Lng < -180 || check.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		INSERT INTO location_checks (id, device_id, user_id, lat, lng, zone_ids, checked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if check.ID == uuid.Nil {
		check.ID = uuid.New()
	}
	if check.CheckedAt.IsZero() {
		check.CheckedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		check.ID,
		check.DeviceID,
		check.UserID,
		check.Lat,
		check.Lng,
		check.ZoneIDs,
		check.CheckedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int64("device_id", check.DeviceID),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *CheckRepo) CountTrackedDevices(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.LocationCheck.CountTrackedDevices"

	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT COUNT(DISTINCT device_id)
		FROM location_checks
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute')
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

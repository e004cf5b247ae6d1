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

type SafeZoneRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSafeZoneRepo(pool *pgxpool.Pool, logger *slog.Logger) *SafeZoneRepo {
	return &SafeZoneRepo{pool: pool, logger: logger}
}

const zoneColumns = `
	id,
	name,
	description,
	ST_Y(center::geometry) AS center_lat,
	ST_X(center::geometry) AS center_lng,
	radius_m,
	zone_type,
	scope_type,
	scope_id,
	created_by,
	allowed_time_start,
	allowed_time_end,
	allowed_days,
	notify_on_entry,
	notify_on_exit,
	is_active,
	created_at
`

func (p *SafeZoneRepo) Create(ctx context.Context, zone *domain.SafeZone) error {
	const op = "postgres.SafeZone.Create"

	const query = `
		INSERT INTO safe_zones (
			id, name, description, center, radius_m, zone_type,
			scope_type, scope_id, created_by,
			allowed_time_start, allowed_time_end, allowed_days,
			notify_on_entry, notify_on_exit, is_active, created_at
		)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7,
				$8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	if zone.CreatedAt.IsZero() {
		zone.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		zone.ID,
		zone.Name,
		zone.Description,
		zone.CenterLng,
		zone.CenterLat,
		zone.RadiusM,
		zone.ZoneType,
		zone.ScopeType,
		zone.ScopeID,
		zone.CreatedBy,
		zone.AllowedTimeStart,
		zone.AllowedTimeEnd,
		zone.AllowedDays,
		zone.NotifyOnEntry,
		zone.NotifyOnExit,
		zone.IsActive,
		zone.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *SafeZoneRepo) List(ctx context.Context, page, limit int) ([]*domain.SafeZone, int64, error) {
	const op = "postgres.SafeZone.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM safe_zones`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `SELECT ` + zoneColumns + `
		FROM safe_zones
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var zones []*domain.SafeZone
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return zones, total, nil
}

func (p *SafeZoneRepo) Get(ctx context.Context, id uuid.UUID) (*domain.SafeZone, error) {
	const op = "postgres.SafeZone.Get"

	query := `SELECT ` + zoneColumns + ` FROM safe_zones WHERE id = $1`

	rows, err := p.pool.Query(ctx, query, id)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	zone, err := scanZone(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return zone, nil
}

func (p *SafeZoneRepo) Update(ctx context.Context, zone *domain.SafeZone) error {
	const op = "postgres.SafeZone.Update"

	const query = `
		UPDATE safe_zones
		SET name               = $2,
			description        = $3,
			center             = ST_SetSRID(ST_MakePoint($4, $5), 4326),
			radius_m           = $6,
			zone_type          = $7,
			allowed_time_start = $8,
			allowed_time_end   = $9,
			allowed_days       = $10,
			notify_on_entry    = $11,
			notify_on_exit     = $12,
			is_active          = $13
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		zone.ID,
		zone.Name,
		zone.Description,
		zone.CenterLng,
		zone.CenterLat,
		zone.RadiusM,
		zone.ZoneType,
		zone.AllowedTimeStart,
		zone.AllowedTimeEnd,
		zone.AllowedDays,
		zone.NotifyOnEntry,
		zone.NotifyOnExit,
		zone.IsActive,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", zone.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *SafeZoneRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.SafeZone.Deactivate"

	const query = `
		UPDATE safe_zones
		SET is_active = FALSE
		WHERE id = $1 AND is_active = TRUE
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

func (p *SafeZoneRepo) ListActiveForScope(ctx context.Context, scopeType domain.ScopeType, scopeID int64) ([]domain.SafeZone, error) {
	const op = "postgres.SafeZone.ListActiveForScope"

	query := `SELECT ` + zoneColumns + `
		FROM safe_zones
		WHERE is_active = TRUE AND scope_type = $1 AND scope_id = $2
		ORDER BY created_at ASC
	`

	rows, err := p.pool.Query(ctx, query, scopeType, scopeID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	zones := make([]domain.SafeZone, 0, 8)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		zones = append(zones, *zone)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return zones, nil
}

func (p *SafeZoneRepo) ListScopes(ctx context.Context) ([]domain.ZoneScope, error) {
	const op = "postgres.SafeZone.ListScopes"

	const query = `
		SELECT DISTINCT scope_type, scope_id
		FROM safe_zones
		WHERE is_active = TRUE
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	scopes := make([]domain.ZoneScope, 0, 8)
	for rows.Next() {
		var sc domain.ZoneScope
		if err := rows.Scan(&sc.ScopeType, &sc.ScopeID); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		scopes = append(scopes, sc)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return scopes, nil
}

func scanZone(rows pgx.Rows) (*domain.SafeZone, error) {
	var zone domain.SafeZone
	err := rows.Scan(
		&zone.ID,
		&zone.Name,
		&zone.Description,
		&zone.CenterLat,
		&zone.CenterLng,
		&zone.RadiusM,
		&zone.ZoneType,
		&zone.ScopeType,
		&zone.ScopeID,
		&zone.CreatedBy,
		&zone.AllowedTimeStart,
		&zone.AllowedTimeEnd,
		&zone.AllowedDays,
		&zone.NotifyOnEntry,
		&zone.NotifyOnExit,
		&zone.IsActive,
		&zone.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

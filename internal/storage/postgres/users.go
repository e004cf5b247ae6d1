package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"educafric/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo is the read-only user directory: the platform owns the users
// table, this service only resolves display names for alert messages.
type UserRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUserRepo(pool *pgxpool.Pool, logger *slog.Logger) *UserRepo {
	return &UserRepo{pool: pool, logger: logger}
}

func (p *UserRepo) DisplayName(ctx context.Context, userID int64) (string, error) {
	const op = "postgres.User.DisplayName"

	const query = `
		SELECT first_name, last_name
		FROM users
		WHERE id = $1
	`

	var first, last string
	err := p.pool.QueryRow(ctx, query, userID).Scan(&first, &last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int64("user_id", userID),
		)
		return "", e.WrapError(ctx, op, err)
	}

	return strings.TrimSpace(first + " " + last), nil
}

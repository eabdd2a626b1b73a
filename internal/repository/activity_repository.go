package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// GetLastChecked возвращает водяную метку пользователя.
// Если пользователь ещё ни разу не проверял активность - нулевое время:
// первым циклом считается всё новым.
func (r *activityRepository) GetLastChecked(ctx context.Context, userID string) (time.Time, error) {
	var lastChecked time.Time

	query := `SELECT last_checked_at FROM activity_checks WHERE user_id = $1`

	err := r.db.GetContext(ctx, &lastChecked, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("ошибка при получении метки последней проверки: %w", err)
	}

	return lastChecked, nil
}

// AdvanceLastChecked двигает метку вперёд. GREATEST гарантирует,
// что метка никогда не откатывается назад.
func (r *activityRepository) AdvanceLastChecked(ctx context.Context, userID string, checkedAt time.Time) error {
	query := `
		INSERT INTO activity_checks (user_id, last_checked_at)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET last_checked_at = GREATEST(activity_checks.last_checked_at, EXCLUDED.last_checked_at)
	`

	_, err := r.db.ExecContext(ctx, query, userID, checkedAt)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении метки последней проверки: %w", err)
	}

	return nil
}

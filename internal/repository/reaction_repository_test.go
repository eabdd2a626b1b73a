package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpportal/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestReactionRepository_Set(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewReactionRepository(sqlxDB)

	ctx := context.Background()

	upsertQuery := `
		INSERT INTO reactions (reaction_id, post_id, post_type, reaction_type, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (post_id, post_type, created_by)
		DO UPDATE SET reaction_type = EXCLUDED.reaction_type, created_at = EXCLUDED.created_at
	`

	t.Run("Успешная установка реакции", func(t *testing.T) {
		reaction := &models.Reaction{
			PostID:       "post1",
			PostType:     models.KindFeed,
			ReactionType: "like",
			CreatedBy:    "user1",
		}

		mock.ExpectExec(upsertQuery).
			WithArgs(
				sqlmock.AnyArg(), // reaction_id генерируется в репозитории
				"post1",
				models.KindFeed,
				"like",
				"user1",
				sqlmock.AnyArg(), // created_at
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Set(ctx, reaction)

		assert.NoError(t, err)
		assert.NotEmpty(t, reaction.ReactionID)
		assert.False(t, reaction.CreatedAt.IsZero())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Замена реакции идёт тем же upsert-ом", func(t *testing.T) {
		// вторая реакция того же пользователя на тот же пост:
		// тот же запрос, конфликт разрешает БД - строк всё равно не больше одной
		reaction := &models.Reaction{
			PostID:       "post1",
			PostType:     models.KindFeed,
			ReactionType: "celebrate",
			CreatedBy:    "user1",
		}

		mock.ExpectExec(upsertQuery).
			WithArgs(
				sqlmock.AnyArg(),
				"post1",
				models.KindFeed,
				"celebrate",
				"user1",
				sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Set(ctx, reaction)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReactionRepository_Remove(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewReactionRepository(sqlxDB)

	ctx := context.Background()

	deleteQuery := `
		DELETE FROM reactions
		WHERE post_id = $1 AND post_type = $2 AND created_by = $3
	`

	t.Run("Успешное удаление", func(t *testing.T) {
		mock.ExpectExec(deleteQuery).
			WithArgs("post1", models.KindFeed, "user1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Remove(ctx, "post1", models.KindFeed, "user1")

		assert.NoError(t, err)
	})

	t.Run("Реакция не найдена", func(t *testing.T) {
		mock.ExpectExec(deleteQuery).
			WithArgs("post1", models.KindFeed, "user2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Remove(ctx, "post1", models.KindFeed, "user2")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "не найдена")
	})
}

func TestReactionRepository_RemoveByPost(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewReactionRepository(sqlxDB)

	ctx := context.Background()

	deleteQuery := `
		DELETE FROM reactions
		WHERE post_id = $1 AND post_type = $2
	`

	t.Run("Удаляются все реакции поста", func(t *testing.T) {
		mock.ExpectExec(deleteQuery).
			WithArgs("post1", models.KindFeed).
			WillReturnResult(sqlmock.NewResult(0, 3))

		err := repo.RemoveByPost(ctx, "post1", models.KindFeed)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пост без реакций - не ошибка", func(t *testing.T) {
		mock.ExpectExec(deleteQuery).
			WithArgs("post2", models.KindFeed).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RemoveByPost(ctx, "post2", models.KindFeed)

		assert.NoError(t, err)
	})
}

func TestReactionRepository_CountByType(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewReactionRepository(sqlxDB)

	ctx := context.Background()

	countQuery := `
		SELECT reaction_type, COUNT(*)
		FROM reactions
		WHERE post_id = $1 AND post_type = $2
		GROUP BY reaction_type
	`

	rows := sqlmock.NewRows([]string{"reaction_type", "count"}).
		AddRow("like", 3).
		AddRow("celebrate", 1)

	mock.ExpectQuery(countQuery).
		WithArgs("post1", models.KindFeed).
		WillReturnRows(rows)

	counts, err := repo.CountByType(ctx, "post1", models.KindFeed)

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"like": 3, "celebrate": 1}, counts)
}

func TestActivityRepository_Watermark(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewActivityRepository(sqlxDB)

	ctx := context.Background()

	t.Run("Нет строки - нулевое время", func(t *testing.T) {
		mock.ExpectQuery(`SELECT last_checked_at FROM activity_checks WHERE user_id = $1`).
			WithArgs("user1").
			WillReturnRows(sqlmock.NewRows([]string{"last_checked_at"}))

		lastChecked, err := repo.GetLastChecked(ctx, "user1")

		assert.NoError(t, err)
		assert.True(t, lastChecked.IsZero())
	})

	t.Run("Продвижение метки", func(t *testing.T) {
		checkedAt := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

		mock.ExpectExec(`
			INSERT INTO activity_checks (user_id, last_checked_at)
			VALUES ($1, $2)
			ON CONFLICT (user_id)
			DO UPDATE SET last_checked_at = GREATEST(activity_checks.last_checked_at, EXCLUDED.last_checked_at)
		`).
			WithArgs("user1", checkedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AdvanceLastChecked(ctx, "user1", checkedAt)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

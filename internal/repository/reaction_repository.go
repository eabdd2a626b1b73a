package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"corpportal/internal/models"
)

type ReactionRepositoryImpl struct {
	db *sqlx.DB
}

func NewReactionRepository(db *sqlx.DB) *ReactionRepositoryImpl {
	return &ReactionRepositoryImpl{db: db}
}

// Set ставит или заменяет реакцию пользователя на пост.
// Уникальность (post_id, post_type, created_by) держит БД,
// поэтому одновременные запросы сходятся к одной строке - побеждает последняя.
func (r *ReactionRepositoryImpl) Set(ctx context.Context, reaction *models.Reaction) error {
	if reaction.ReactionID == "" {
		reaction.ReactionID = uuid.New().String()
	}

	if reaction.CreatedAt.IsZero() {
		reaction.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO reactions (reaction_id, post_id, post_type, reaction_type, created_by, created_at)
		VALUES (:reaction_id, :post_id, :post_type, :reaction_type, :created_by, :created_at)
		ON CONFLICT (post_id, post_type, created_by)
		DO UPDATE SET reaction_type = EXCLUDED.reaction_type, created_at = EXCLUDED.created_at
	`

	_, err := r.db.NamedExecContext(ctx, query, reaction)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении реакции: %w", err)
	}

	return nil
}

func (r *ReactionRepositoryImpl) GetByPost(ctx context.Context, postID string, postType models.Kind) ([]models.Reaction, error) {
	query := `
		SELECT * FROM reactions
		WHERE post_id = $1 AND post_type = $2
		ORDER BY created_at
	`

	var reactions []models.Reaction
	err := r.db.SelectContext(ctx, &reactions, query, postID, postType)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении реакций: %w", err)
	}

	return reactions, nil
}

func (r *ReactionRepositoryImpl) GetByPostAndUser(ctx context.Context, postID string, postType models.Kind, userID string) (*models.Reaction, error) {
	query := `
		SELECT * FROM reactions
		WHERE post_id = $1 AND post_type = $2 AND created_by = $3
	`

	var reaction models.Reaction
	err := r.db.GetContext(ctx, &reaction, query, postID, postType, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении реакции: %w", err)
	}

	return &reaction, nil
}

func (r *ReactionRepositoryImpl) Remove(ctx context.Context, postID string, postType models.Kind, userID string) error {
	query := `
		DELETE FROM reactions
		WHERE post_id = $1 AND post_type = $2 AND created_by = $3
	`

	result, err := r.db.ExecContext(ctx, query, postID, postType, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении реакции: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("реакция не найдена")
	}

	return nil
}

// RemoveByPost удаляет все реакции поста. Вызывается при удалении самого
// поста: FK на контент нет, таблица общая для всех типов.
func (r *ReactionRepositoryImpl) RemoveByPost(ctx context.Context, postID string, postType models.Kind) error {
	query := `
		DELETE FROM reactions
		WHERE post_id = $1 AND post_type = $2
	`

	_, err := r.db.ExecContext(ctx, query, postID, postType)
	if err != nil {
		return fmt.Errorf("ошибка при удалении реакций поста: %w", err)
	}

	return nil
}

func (r *ReactionRepositoryImpl) CountByType(ctx context.Context, postID string, postType models.Kind) (map[string]int, error) {
	query := `
		SELECT reaction_type, COUNT(*)
		FROM reactions
		WHERE post_id = $1 AND post_type = $2
		GROUP BY reaction_type
	`

	rows, err := r.db.QueryxContext(ctx, query, postID, postType)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчёте реакций: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var reactionType string
		var count int
		if err := rows.Scan(&reactionType, &count); err != nil {
			return nil, fmt.Errorf("ошибка при чтении счётчика реакций: %w", err)
		}
		counts[reactionType] = count
	}

	return counts, rows.Err()
}

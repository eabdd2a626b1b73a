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

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (comment_id, post_id, post_type, content, image_url, parent_comment_id, created_by, created_at)
		VALUES (:comment_id, :post_id, :post_type, :content, :image_url, :parent_comment_id, :created_by, :created_at)
	`

	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	query := `SELECT * FROM comments WHERE comment_id = $1`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("комментарий с ID %s не найден", commentID)
		}
		return nil, fmt.Errorf("ошибка при получении комментария: %w", err)
	}

	return &comment, nil
}

func (r *CommentRepositoryImpl) GetByPost(ctx context.Context, postID string, postType models.Kind) ([]models.Comment, error) {
	query := `
		SELECT * FROM comments
		WHERE post_id = $1 AND post_type = $2
		ORDER BY created_at
	`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID, postType)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, commentID string) error {
	// ответы удаляются каскадом по parent_comment_id
	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("комментарий не найден")
	}

	return nil
}

func (r *CommentRepositoryImpl) DeleteByPost(ctx context.Context, postID string, postType models.Kind) error {
	query := `DELETE FROM comments WHERE post_id = $1 AND post_type = $2`

	_, err := r.db.ExecContext(ctx, query, postID, postType)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментариев поста: %w", err)
	}

	return nil
}

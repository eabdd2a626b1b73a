package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"corpportal/internal/models"
	"corpportal/internal/repository"
	"corpportal/internal/storage"
)

type CommentService interface {
	AddComment(ctx context.Context, actor Actor, comment *models.Comment) error
	GetComments(ctx context.Context, postID string, postType models.Kind) ([]models.Comment, error)
	DeleteComment(ctx context.Context, actor Actor, commentID string) error
	AttachImage(ctx context.Context, actor Actor, fileName string, file io.Reader, size int64) (string, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	storage     storage.Storage
}

func NewCommentService(commentRepo repository.CommentRepository, storage storage.Storage) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		storage:     storage,
	}
}

func (s *commentService) AddComment(ctx context.Context, actor Actor, comment *models.Comment) error {
	comment.CreatedBy = actor.ID

	// ответ обязан ссылаться на комментарий того же поста,
	// и только на корневой - вложенность одна
	if comment.ParentCommentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *comment.ParentCommentID)
		if err != nil {
			return fmt.Errorf("родительский комментарий не найден: %w", err)
		}

		if parent.PostID != comment.PostID || parent.PostType != comment.PostType {
			return fmt.Errorf("родительский комментарий относится к другому посту")
		}

		if parent.ParentCommentID != nil {
			return fmt.Errorf("отвечать можно только на комментарий верхнего уровня")
		}
	}

	return s.commentRepo.Create(ctx, comment)
}

func (s *commentService) GetComments(ctx context.Context, postID string, postType models.Kind) ([]models.Comment, error) {
	return s.commentRepo.GetByPost(ctx, postID, postType)
}

func (s *commentService) DeleteComment(ctx context.Context, actor Actor, commentID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if !canMutate(actor, comment.CreatedBy) {
		return ErrForbidden
	}

	if comment.ImageURL != nil {
		if objectName := objectNameFromURL(*comment.ImageURL); objectName != "" {
			if err := s.storage.DeleteImage(ctx, objectName); err != nil {
				log.Printf("Предупреждение: не удалось удалить из MinIO: %v", err)
			}
		}
	}

	return s.commentRepo.Delete(ctx, commentID)
}

func (s *commentService) AttachImage(ctx context.Context, actor Actor, fileName string, file io.Reader, size int64) (string, error) {
	_, imageURL, err := s.storage.UploadImage(ctx, "comments", actor.ID, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	return imageURL, nil
}

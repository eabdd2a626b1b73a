package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"corpportal/internal/changefeed"
	"corpportal/internal/config"
	"corpportal/internal/models"
	"corpportal/internal/repository"
	"corpportal/internal/storage"
)

type ContentService interface {
	Create(ctx context.Context, actor Actor, req repository.CreateContentRequest) (*models.ContentItem, error)
	Get(ctx context.Context, kind models.Kind, id string) (*models.ContentItem, error)
	List(ctx context.Context, kind models.Kind, limit, offset int) ([]models.ContentItem, int, error)
	Update(ctx context.Context, actor Actor, req repository.UpdateContentRequest) error
	Delete(ctx context.Context, actor Actor, kind models.Kind, id string) error
	AttachImage(ctx context.Context, actor Actor, kind models.Kind, id, fileName string, file io.Reader, size int64) (string, error)
}

type contentService struct {
	contentRepo  repository.ContentRepository
	commentRepo  repository.CommentRepository
	reactionRepo repository.ReactionRepository
	storage      storage.Storage
	hub          *changefeed.Hub
	cfg          *config.Config
}

func NewContentService(
	contentRepo repository.ContentRepository,
	commentRepo repository.CommentRepository,
	reactionRepo repository.ReactionRepository,
	storage storage.Storage,
	hub *changefeed.Hub,
	cfg *config.Config,
) ContentService {
	return &contentService{
		contentRepo:  contentRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
		storage:      storage,
		hub:          hub,
		cfg:          cfg,
	}
}

// Кто может создавать какой тип контента.
// Объявления и HR-посты - только админ, события и ссылки - сотрудники
// с ролью collaborator и выше, лента открыта всем авторизованным.
func canCreate(actor Actor, kind models.Kind) bool {
	switch kind {
	case models.KindAnnouncement, models.KindHR:
		return actor.Role == models.RoleAdmin
	case models.KindEvent, models.KindLink:
		return actor.Role == models.RoleAdmin || actor.Role == models.RoleCollaborator
	default:
		return true
	}
}

func (s *contentService) Create(ctx context.Context, actor Actor, req repository.CreateContentRequest) (*models.ContentItem, error) {
	if !canCreate(actor, req.Kind) {
		return nil, ErrForbidden
	}

	item := &models.ContentItem{
		Kind:      req.Kind,
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		EventDate: req.EventDate,
		URL:       req.URL,
		CreatedBy: actor.ID,
	}

	err := s.contentRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.hub.Publish(string(req.Kind))

	return item, nil
}

func (s *contentService) Get(ctx context.Context, kind models.Kind, id string) (*models.ContentItem, error) {
	return s.contentRepo.GetByID(ctx, kind, id)
}

func (s *contentService) List(ctx context.Context, kind models.Kind, limit, offset int) ([]models.ContentItem, int, error) {
	items, err := s.contentRepo.List(ctx, kind, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.contentRepo.Count(ctx, kind)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *contentService) Update(ctx context.Context, actor Actor, req repository.UpdateContentRequest) error {
	item, err := s.contentRepo.GetByID(ctx, req.Kind, req.ID)
	if err != nil {
		return err
	}

	// проверка прав до любого похода в хранилище на запись
	if !canMutate(actor, item.CreatedBy) {
		return ErrForbidden
	}

	item.Title = req.Title
	item.Content = req.Content
	if req.EventDate != nil {
		item.EventDate = req.EventDate
	}
	if req.URL != nil {
		item.URL = req.URL
	}

	err = s.contentRepo.Update(ctx, item)
	if err != nil {
		return err
	}

	s.hub.Publish(string(req.Kind))

	return nil
}

func (s *contentService) Delete(ctx context.Context, actor Actor, kind models.Kind, id string) error {
	item, err := s.contentRepo.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}

	if !canMutate(actor, item.CreatedBy) {
		return ErrForbidden
	}

	err = s.contentRepo.Delete(ctx, kind, id)
	if err != nil {
		return err
	}

	// комментарии и реакции поста уходят вместе с ним
	if err := s.commentRepo.DeleteByPost(ctx, id, kind); err != nil {
		log.Printf("Предупреждение: не удалось удалить комментарии поста %s: %v", id, err)
	}

	if err := s.reactionRepo.RemoveByPost(ctx, id, kind); err != nil {
		log.Printf("Предупреждение: не удалось удалить реакции поста %s: %v", id, err)
	}

	if item.ImageURL != nil {
		if objectName := objectNameFromURL(*item.ImageURL); objectName != "" {
			if err := s.storage.DeleteImage(ctx, objectName); err != nil {
				log.Printf("Предупреждение: не удалось удалить из MinIO: %v", err)
			}
		}
	}

	s.hub.Publish(string(kind))

	return nil
}

func (s *contentService) AttachImage(ctx context.Context, actor Actor, kind models.Kind, id, fileName string, file io.Reader, size int64) (string, error) {
	item, err := s.contentRepo.GetByID(ctx, kind, id)
	if err != nil {
		return "", err
	}

	if !canMutate(actor, item.CreatedBy) {
		return "", ErrForbidden
	}

	_, imageURL, err := s.storage.UploadImage(ctx, "posts", id, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	item.ImageURL = &imageURL

	err = s.contentRepo.Update(ctx, item)
	if err != nil {
		return "", fmt.Errorf("ошибка сохранения ссылки на изображение: %w", err)
	}

	s.hub.Publish(string(kind))

	return imageURL, nil
}

// objectNameFromURL выделяет имя объекта из публичного URL вида
// http://host/bucket/folder/.../file
func objectNameFromURL(imageURL string) string {
	parts := strings.SplitN(imageURL, "//", 2)
	if len(parts) == 2 {
		imageURL = parts[1]
	}

	// host / bucket / objectName
	segments := strings.SplitN(imageURL, "/", 3)
	if len(segments) < 3 {
		return ""
	}

	return segments[2]
}

package service

import (
	"context"
	"fmt"
	"io"

	"corpportal/internal/models"
	"corpportal/internal/repository"
	"corpportal/internal/storage"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	UpdateProfile(ctx context.Context, actor Actor, req repository.UpdateProfileRequest) error
	UpdateRole(ctx context.Context, actor Actor, userID, role string) error
	DeleteProfile(ctx context.Context, actor Actor, userID string) error
	UploadAvatar(ctx context.Context, actor Actor, fileName string, file io.Reader, size int64) (string, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	storage     storage.Storage
}

func NewProfileService(profileRepo repository.ProfileRepository, storage storage.Storage) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		storage:     storage,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.profileRepo.GetByID(ctx, userID)
}

func (s *profileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

func (s *profileService) UpdateProfile(ctx context.Context, actor Actor, req repository.UpdateProfileRequest) error {
	// профиль правит его владелец или админ
	if !canMutate(actor, req.UserID) {
		return ErrForbidden
	}

	profile, err := s.profileRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	profile.Name = req.Name
	profile.DepartmentID = req.DepartmentID
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}
	if req.Birthday != nil {
		profile.Birthday = req.Birthday
	}

	return s.profileRepo.Update(ctx, profile)
}

func (s *profileService) UpdateRole(ctx context.Context, actor Actor, userID, role string) error {
	// смена ролей - только админ
	if actor.Role != models.RoleAdmin {
		return ErrForbidden
	}

	// админ не может разжаловать сам себя - портал без админов неуправляем
	if actor.ID == userID && role != models.RoleAdmin {
		return fmt.Errorf("нельзя снять роль админа с самого себя")
	}

	return s.profileRepo.UpdateRole(ctx, userID, role)
}

func (s *profileService) DeleteProfile(ctx context.Context, actor Actor, userID string) error {
	if actor.Role != models.RoleAdmin {
		return ErrForbidden
	}

	if actor.ID == userID {
		return fmt.Errorf("нельзя удалить собственный профиль")
	}

	return s.profileRepo.Delete(ctx, userID)
}

func (s *profileService) UploadAvatar(ctx context.Context, actor Actor, fileName string, file io.Reader, size int64) (string, error) {
	_, avatarURL, err := s.storage.UploadImage(ctx, "avatars", actor.ID, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки аватара в MinIO: %w", err)
	}

	profile, err := s.profileRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return "", err
	}

	profile.AvatarURL = &avatarURL

	err = s.profileRepo.Update(ctx, profile)
	if err != nil {
		return "", fmt.Errorf("ошибка сохранения аватара: %w", err)
	}

	return avatarURL, nil
}

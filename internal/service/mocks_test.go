package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"corpportal/internal/models"
)

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(ctx context.Context, item *models.ContentItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockContentRepository) GetByID(ctx context.Context, kind models.Kind, id string) (*models.ContentItem, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContentItem), args.Error(1)
}

func (m *MockContentRepository) List(ctx context.Context, kind models.Kind, limit, offset int) ([]models.ContentItem, error) {
	args := m.Called(ctx, kind, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContentItem), args.Error(1)
}

func (m *MockContentRepository) ListRecent(ctx context.Context, kind models.Kind, limit int) ([]models.ContentItem, error) {
	args := m.Called(ctx, kind, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContentItem), args.Error(1)
}

func (m *MockContentRepository) Update(ctx context.Context, item *models.ContentItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockContentRepository) Delete(ctx context.Context, kind models.Kind, id string) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockContentRepository) Count(ctx context.Context, kind models.Kind) (int, error) {
	args := m.Called(ctx, kind)
	return args.Int(0), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByPost(ctx context.Context, postID string, postType models.Kind) ([]models.Comment, error) {
	args := m.Called(ctx, postID, postType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteByPost(ctx context.Context, postID string, postType models.Kind) error {
	args := m.Called(ctx, postID, postType)
	return args.Error(0)
}

type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) Set(ctx context.Context, reaction *models.Reaction) error {
	args := m.Called(ctx, reaction)
	return args.Error(0)
}

func (m *MockReactionRepository) GetByPost(ctx context.Context, postID string, postType models.Kind) ([]models.Reaction, error) {
	args := m.Called(ctx, postID, postType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reaction), args.Error(1)
}

func (m *MockReactionRepository) GetByPostAndUser(ctx context.Context, postID string, postType models.Kind, userID string) (*models.Reaction, error) {
	args := m.Called(ctx, postID, postType, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reaction), args.Error(1)
}

func (m *MockReactionRepository) RemoveByPost(ctx context.Context, postID string, postType models.Kind) error {
	args := m.Called(ctx, postID, postType)
	return args.Error(0)
}

func (m *MockReactionRepository) Remove(ctx context.Context, postID string, postType models.Kind, userID string) error {
	args := m.Called(ctx, postID, postType, userID)
	return args.Error(0)
}

func (m *MockReactionRepository) CountByType(ctx context.Context, postID string, postType models.Kind) (map[string]int, error) {
	args := m.Called(ctx, postID, postType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile, password string) error {
	args := m.Called(ctx, profile, password)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetNamesByIDs(ctx context.Context, userIDs []string) (map[string]string, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateRole(ctx context.Context, userID, role string) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockProfileRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Profile, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshToken, expiryTime)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (*models.Profile, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) GetLastChecked(ctx context.Context, userID string) (time.Time, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockActivityRepository) AdvanceLastChecked(ctx context.Context, userID string, checkedAt time.Time) error {
	args := m.Called(ctx, userID, checkedAt)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadImage(ctx context.Context, folder, ownerID, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, folder, ownerID, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *MockStorage) PublicURL(objectName string) string {
	args := m.Called(objectName)
	return args.String(0)
}

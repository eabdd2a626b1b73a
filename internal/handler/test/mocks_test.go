package test

import (
	"context"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"corpportal/internal/models"
	"corpportal/internal/repository"
	"corpportal/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.Profile, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.String(2), args.Error(3)
	}
	return args.Get(0).(*models.Profile), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.Profile, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.String(2), args.Error(3)
	}
	return args.Get(0).(*models.Profile), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Create(ctx context.Context, actor service.Actor, req repository.CreateContentRequest) (*models.ContentItem, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContentItem), args.Error(1)
}

func (m *MockContentService) Get(ctx context.Context, kind models.Kind, id string) (*models.ContentItem, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContentItem), args.Error(1)
}

func (m *MockContentService) List(ctx context.Context, kind models.Kind, limit, offset int) ([]models.ContentItem, int, error) {
	args := m.Called(ctx, kind, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.ContentItem), args.Int(1), args.Error(2)
}

func (m *MockContentService) Update(ctx context.Context, actor service.Actor, req repository.UpdateContentRequest) error {
	args := m.Called(ctx, actor, req)
	return args.Error(0)
}

func (m *MockContentService) Delete(ctx context.Context, actor service.Actor, kind models.Kind, id string) error {
	args := m.Called(ctx, actor, kind, id)
	return args.Error(0)
}

func (m *MockContentService) AttachImage(ctx context.Context, actor service.Actor, kind models.Kind, id, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, actor, kind, id, fileName, file, size)
	return args.String(0), args.Error(1)
}

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) DashboardFeed(ctx context.Context) ([]models.ActivityEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivityEvent), args.Error(1)
}

func (m *MockActivityService) CheckNewActivity(ctx context.Context, userID string) ([]models.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockActivityService) PollInterval() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

type MockReactionService struct {
	mock.Mock
}

func (m *MockReactionService) SetReaction(ctx context.Context, actor service.Actor, postID string, postType models.Kind, reactionType string) (*models.Reaction, error) {
	args := m.Called(ctx, actor, postID, postType, reactionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reaction), args.Error(1)
}

func (m *MockReactionService) RemoveReaction(ctx context.Context, actor service.Actor, postID string, postType models.Kind) error {
	args := m.Called(ctx, actor, postID, postType)
	return args.Error(0)
}

func (m *MockReactionService) GetReactions(ctx context.Context, userID, postID string, postType models.Kind) (*service.ReactionSummary, error) {
	args := m.Called(ctx, userID, postID, postType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReactionSummary), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) AddComment(ctx context.Context, actor service.Actor, comment *models.Comment) error {
	args := m.Called(ctx, actor, comment)
	return args.Error(0)
}

func (m *MockCommentService) GetComments(ctx context.Context, postID string, postType models.Kind) ([]models.Comment, error) {
	args := m.Called(ctx, postID, postType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, actor service.Actor, commentID string) error {
	args := m.Called(ctx, actor, commentID)
	return args.Error(0)
}

func (m *MockCommentService) AttachImage(ctx context.Context, actor service.Actor, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, actor, fileName, file, size)
	return args.String(0), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, actor service.Actor, req repository.UpdateProfileRequest) error {
	args := m.Called(ctx, actor, req)
	return args.Error(0)
}

func (m *MockProfileService) UpdateRole(ctx context.Context, actor service.Actor, userID, role string) error {
	args := m.Called(ctx, actor, userID, role)
	return args.Error(0)
}

func (m *MockProfileService) DeleteProfile(ctx context.Context, actor service.Actor, userID string) error {
	args := m.Called(ctx, actor, userID)
	return args.Error(0)
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, actor service.Actor, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, actor, fileName, file, size)
	return args.String(0), args.Error(1)
}

package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"corpportal/internal/models"
)

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile, password string) error
	GetByID(ctx context.Context, userID string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	GetNamesByIDs(ctx context.Context, userIDs []string) (map[string]string, error)
	Update(ctx context.Context, profile *models.Profile) error
	UpdateRole(ctx context.Context, userID, role string) error
	Delete(ctx context.Context, userID string) error
	VerifyPassword(ctx context.Context, email, password string) (*models.Profile, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetByRefreshToken(ctx context.Context, refreshToken string) (*models.Profile, error)
}

type ContentRepository interface {
	Create(ctx context.Context, item *models.ContentItem) error
	GetByID(ctx context.Context, kind models.Kind, id string) (*models.ContentItem, error)
	List(ctx context.Context, kind models.Kind, limit, offset int) ([]models.ContentItem, error)
	ListRecent(ctx context.Context, kind models.Kind, limit int) ([]models.ContentItem, error)
	Update(ctx context.Context, item *models.ContentItem) error
	Delete(ctx context.Context, kind models.Kind, id string) error
	Count(ctx context.Context, kind models.Kind) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	GetByPost(ctx context.Context, postID string, postType models.Kind) ([]models.Comment, error)
	Delete(ctx context.Context, commentID string) error
	DeleteByPost(ctx context.Context, postID string, postType models.Kind) error
}

type ReactionRepository interface {
	Set(ctx context.Context, reaction *models.Reaction) error
	GetByPost(ctx context.Context, postID string, postType models.Kind) ([]models.Reaction, error)
	GetByPostAndUser(ctx context.Context, postID string, postType models.Kind, userID string) (*models.Reaction, error)
	Remove(ctx context.Context, postID string, postType models.Kind, userID string) error
	RemoveByPost(ctx context.Context, postID string, postType models.Kind) error
	CountByType(ctx context.Context, postID string, postType models.Kind) (map[string]int, error)
}

type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, departmentID string) (*models.Department, error)
	List(ctx context.Context) ([]models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, departmentID string) error
}

type ActivityRepository interface {
	GetLastChecked(ctx context.Context, userID string) (time.Time, error)
	AdvanceLastChecked(ctx context.Context, userID string, checkedAt time.Time) error
}

type TablesRepository interface {
	CountTablesDB() (int, error)
	ContentCounts(ctx context.Context) (map[models.Kind]int, error)
}

type Repository struct {
	Profile    ProfileRepository
	Content    ContentRepository
	Comment    CommentRepository
	Reaction   ReactionRepository
	Department DepartmentRepository
	Activity   ActivityRepository
	Tables     TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Profile:    NewProfileRepository(db),
		Content:    NewContentRepository(db),
		Comment:    NewCommentRepository(db),
		Reaction:   NewReactionRepository(db),
		Department: NewDepartmentRepository(db),
		Activity:   NewActivityRepository(db),
		Tables:     NewTablesRepository(db),
	}
}

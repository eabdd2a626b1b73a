package models

import (
	"time"
)

// Роли пользователей портала
const (
	RoleUser         = "user"
	RoleCollaborator = "collaborator"
	RoleAdmin        = "admin"
)

// Kind - тип контента, каждый тип живёт в своей таблице
type Kind string

const (
	KindAnnouncement Kind = "announcement"
	KindFeed         Kind = "feed"
	KindEvent        Kind = "event"
	KindLink         Kind = "link"
	KindHR           Kind = "hr"
)

type Profile struct {
	UserID                 string     `json:"userId" db:"user_id"`
	Name                   string     `json:"name" db:"name"`
	Email                  string     `json:"email" db:"email"`
	PasswordHash           string     `json:"-" db:"password_hash"`
	Role                   string     `json:"role" db:"role"`
	DepartmentID           *string    `json:"departmentId" db:"department_id"`
	AvatarURL              *string    `json:"avatarUrl" db:"avatar_url"`
	Birthday               *time.Time `json:"birthday" db:"birthday"`
	RefreshToken           string     `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time  `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time  `json:"createdAt" db:"created_at"`
}

type Department struct {
	DepartmentID string  `json:"departmentId" db:"department_id"`
	Name         string  `json:"name" db:"name"`
	Description  *string `json:"description" db:"description"`
}

// ContentItem - общая форма всех типов контента.
// EventDate заполняется только для событий, URL - только для ссылок.
type ContentItem struct {
	Kind      Kind       `json:"kind" db:"-"`
	ID        string     `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	ImageURL  *string    `json:"imageUrl" db:"image_url"`
	EventDate *time.Time `json:"eventDate,omitempty" db:"event_date"`
	URL       *string    `json:"url,omitempty" db:"url"`
	CreatedBy string     `json:"createdBy" db:"created_by"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

type Comment struct {
	CommentID       string    `json:"commentId" db:"comment_id"`
	PostID          string    `json:"postId" db:"post_id"`
	PostType        Kind      `json:"postType" db:"post_type"`
	Content         string    `json:"content" db:"content"`
	ImageURL        *string   `json:"imageUrl" db:"image_url"`
	ParentCommentID *string   `json:"parentCommentId" db:"parent_comment_id"`
	CreatedBy       string    `json:"createdBy" db:"created_by"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

type Reaction struct {
	ReactionID   string    `json:"reactionId" db:"reaction_id"`
	PostID       string    `json:"postId" db:"post_id"`
	PostType     Kind      `json:"postType" db:"post_type"`
	ReactionType string    `json:"reactionType" db:"reaction_type"`
	CreatedBy    string    `json:"createdBy" db:"created_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// ActivityEvent - проекция ContentItem для агрегатора активности
type ActivityEvent struct {
	SourceType Kind      `json:"sourceType"`
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	AuthorID   string    `json:"-"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}

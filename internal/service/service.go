package service

import (
	"errors"

	"corpportal/internal/changefeed"
	"corpportal/internal/config"
	"corpportal/internal/models"
	"corpportal/internal/repository"
	"corpportal/internal/storage"
)

// ErrForbidden - попытка изменить чужую запись без прав админа
var ErrForbidden = errors.New("доступ запрещен")

// Actor - кто выполняет операцию, берётся из JWT
type Actor struct {
	ID   string
	Role string
}

// Единое правило доступа на изменение/удаление:
// админ или автор записи, больше никто.
func canMutate(actor Actor, ownerID string) bool {
	return actor.Role == models.RoleAdmin || actor.ID == ownerID
}

type Service struct {
	Auth       AuthService
	Profile    ProfileService
	Content    ContentService
	Comment    CommentService
	Reaction   ReactionService
	Department DepartmentService
	Activity   ActivityService
	Tables     TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, hub *changefeed.Hub) *Service {
	return &Service{
		Auth:       NewAuthService(rep.Profile, cfg),
		Profile:    NewProfileService(rep.Profile, storage),
		Content:    NewContentService(rep.Content, rep.Comment, rep.Reaction, storage, hub, cfg),
		Comment:    NewCommentService(rep.Comment, storage),
		Reaction:   NewReactionService(rep.Reaction),
		Department: NewDepartmentService(rep.Department),
		Activity:   NewActivityService(rep.Content, rep.Profile, rep.Activity, cfg),
		Tables:     NewTablesService(rep.Tables),
	}
}

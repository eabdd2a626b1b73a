package handlers

import (
	"github.com/go-playground/validator/v10"

	"corpportal/internal/changefeed"
	"corpportal/internal/config"
	"corpportal/internal/repository"
	"corpportal/internal/service"
)

type Handlers struct {
	AuthService       service.AuthService
	ProfileService    service.ProfileService
	ProfileRepo       repository.ProfileRepository
	ContentService    service.ContentService
	CommentService    service.CommentService
	ReactionService   service.ReactionService
	DepartmentService service.DepartmentService
	ActivityService   service.ActivityService
	TablesService     service.TablesService
	TablesRepo        repository.TablesRepository
	Hub               *changefeed.Hub
	Cfg               *config.Config
	Validate          *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, hub *changefeed.Hub, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:       service.Auth,
		ProfileService:    service.Profile,
		ProfileRepo:       repo.Profile,
		ContentService:    service.Content,
		CommentService:    service.Comment,
		ReactionService:   service.Reaction,
		DepartmentService: service.Department,
		ActivityService:   service.Activity,
		TablesService:     service.Tables,
		TablesRepo:        repo.Tables,
		Hub:               hub,
		Cfg:               config,
		Validate:          validator.New(),
	}
}

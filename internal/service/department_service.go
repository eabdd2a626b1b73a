package service

import (
	"context"

	"corpportal/internal/models"
	"corpportal/internal/repository"
)

type DepartmentService interface {
	CreateDepartment(ctx context.Context, actor Actor, department *models.Department) error
	ListDepartments(ctx context.Context) ([]models.Department, error)
	UpdateDepartment(ctx context.Context, actor Actor, department *models.Department) error
	DeleteDepartment(ctx context.Context, actor Actor, departmentID string) error
}

type departmentService struct {
	departmentRepo repository.DepartmentRepository
}

func NewDepartmentService(departmentRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{departmentRepo: departmentRepo}
}

func (s *departmentService) CreateDepartment(ctx context.Context, actor Actor, department *models.Department) error {
	if actor.Role != models.RoleAdmin {
		return ErrForbidden
	}

	return s.departmentRepo.Create(ctx, department)
}

func (s *departmentService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return s.departmentRepo.List(ctx)
}

func (s *departmentService) UpdateDepartment(ctx context.Context, actor Actor, department *models.Department) error {
	if actor.Role != models.RoleAdmin {
		return ErrForbidden
	}

	return s.departmentRepo.Update(ctx, department)
}

func (s *departmentService) DeleteDepartment(ctx context.Context, actor Actor, departmentID string) error {
	if actor.Role != models.RoleAdmin {
		return ErrForbidden
	}

	return s.departmentRepo.Delete(ctx, departmentID)
}

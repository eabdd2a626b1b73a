package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"corpportal/internal/models"
)

type departmentRepository struct {
	db *sqlx.DB
}

func NewDepartmentRepository(db *sqlx.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *models.Department) error {
	if department.DepartmentID == "" {
		department.DepartmentID = uuid.New().String()
	}

	query := `
		INSERT INTO departments (department_id, name, description)
		VALUES (:department_id, :name, :description)
	`

	_, err := r.db.NamedExecContext(ctx, query, department)
	if err != nil {
		return fmt.Errorf("ошибка при создании отдела: %w", err)
	}

	return nil
}

func (r *departmentRepository) GetByID(ctx context.Context, departmentID string) (*models.Department, error) {
	query := `SELECT * FROM departments WHERE department_id = $1`

	var department models.Department
	err := r.db.GetContext(ctx, &department, query, departmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("отдел с ID %s не найден", departmentID)
		}
		return nil, fmt.Errorf("ошибка при получении отдела: %w", err)
	}

	return &department, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]models.Department, error) {
	query := `SELECT * FROM departments ORDER BY name`

	var departments []models.Department
	err := r.db.SelectContext(ctx, &departments, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка отделов: %w", err)
	}

	return departments, nil
}

func (r *departmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET name = :name, description = :description
		WHERE department_id = :department_id
	`

	result, err := r.db.NamedExecContext(ctx, query, department)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении отдела: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("отдел с ID %s не найден", department.DepartmentID)
	}

	return nil
}

func (r *departmentRepository) Delete(ctx context.Context, departmentID string) error {
	query := `DELETE FROM departments WHERE department_id = $1`

	result, err := r.db.ExecContext(ctx, query, departmentID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении отдела: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("отдел не найден")
	}

	return nil
}

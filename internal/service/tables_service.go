package service

import (
	"context"

	"corpportal/internal/models"
	"corpportal/internal/repository"
)

type TablesService interface {
	GetCountTablesBD(req repository.TablesRepository) (int, error)
	ContentCounts(ctx context.Context) (map[models.Kind]int, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

func (t *tablesService) GetCountTablesBD(req repository.TablesRepository) (int, error) {
	countTables, err := req.CountTablesDB()
	if err != nil {
		return 0, err
	}

	return countTables, nil
}

func (t *tablesService) ContentCounts(ctx context.Context) (map[models.Kind]int, error) {
	return t.tablesRepo.ContentCounts(ctx)
}

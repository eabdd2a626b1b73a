package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"corpportal/internal/models"
)

type tablesRepository struct {
	db *sqlx.DB
}

func NewTablesRepository(db *sqlx.DB) TablesRepository {
	return &tablesRepository{db: db}
}

func (r *tablesRepository) CountTablesDB() (int, error) {
	var count int

	err := r.db.Get(&count, `
			SELECT COUNT(*)
			FROM information_schema.tables
			WHERE table_schema = 'public'
		`)

	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте таблиц базы данных: %w", err)
	}

	return count, nil
}

// ContentCounts - сколько записей лежит в каждой таблице контента.
// Имена таблиц берутся из kindTables, пользовательский ввод сюда не попадает.
func (r *tablesRepository) ContentCounts(ctx context.Context) (map[models.Kind]int, error) {
	counts := make(map[models.Kind]int, len(kindTables))

	for kind, table := range kindTables {
		var count int
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)

		if err := r.db.GetContext(ctx, &count, query); err != nil {
			return nil, fmt.Errorf("ошибка при подсчёте записей таблицы %s: %w", table, err)
		}

		counts[kind] = count
	}

	return counts, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"corpportal/internal/models"
)

// Каждый тип контента живёт в своей таблице, форма строк общая
// (у events добавляется event_date, у links - url).
var kindTables = map[models.Kind]string{
	models.KindAnnouncement: "announcements",
	models.KindFeed:         "feed_posts",
	models.KindEvent:        "events",
	models.KindLink:         "links",
	models.KindHR:           "hr_posts",
}

func tableFor(kind models.Kind) (string, error) {
	table, ok := kindTables[kind]
	if !ok {
		return "", fmt.Errorf("неизвестный тип контента: %s", kind)
	}
	return table, nil
}

type ContentRepositoryImpl struct {
	db *sqlx.DB
}

type CreateContentRequest struct {
	Kind      models.Kind `json:"kind"`
	AuthorID  string      `json:"author_id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	ImageURL  *string     `json:"image_url"`
	EventDate *time.Time  `json:"event_date"`
	URL       *string     `json:"url"`
}

type UpdateContentRequest struct {
	Kind      models.Kind `json:"kind"`
	ID        string      `json:"id"`
	ActorID   string      `json:"actor_id"`
	ActorRole string      `json:"actor_role"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	EventDate *time.Time  `json:"event_date"`
	URL       *string     `json:"url"`
}

func NewContentRepository(db *sqlx.DB) *ContentRepositoryImpl {
	return &ContentRepositoryImpl{db: db}
}

func insertQueryFor(kind models.Kind, table string) string {
	switch kind {
	case models.KindEvent:
		return fmt.Sprintf(`
			INSERT INTO %s (id, title, content, image_url, event_date, created_by, created_at, updated_at)
			VALUES (:id, :title, :content, :image_url, :event_date, :created_by, :created_at, :updated_at)
		`, table)
	case models.KindLink:
		return fmt.Sprintf(`
			INSERT INTO %s (id, title, content, image_url, url, created_by, created_at, updated_at)
			VALUES (:id, :title, :content, :image_url, :url, :created_by, :created_at, :updated_at)
		`, table)
	default:
		return fmt.Sprintf(`
			INSERT INTO %s (id, title, content, image_url, created_by, created_at, updated_at)
			VALUES (:id, :title, :content, :image_url, :created_by, :created_at, :updated_at)
		`, table)
	}
}

func (r *ContentRepositoryImpl) Create(ctx context.Context, item *models.ContentItem) error {
	table, err := tableFor(item.Kind)
	if err != nil {
		return err
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err = r.db.NamedExecContext(ctx, insertQueryFor(item.Kind, table), item)
	if err != nil {
		return fmt.Errorf("ошибка при создании записи %s: %w", item.Kind, err)
	}

	return nil
}

func (r *ContentRepositoryImpl) GetByID(ctx context.Context, kind models.Kind, id string) (*models.ContentItem, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, table)

	var item models.ContentItem
	err = r.db.GetContext(ctx, &item, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("запись %s с ID %s не найдена", kind, id)
		}
		return nil, fmt.Errorf("ошибка при получении записи %s: %w", kind, err)
	}

	item.Kind = kind
	return &item, nil
}

func (r *ContentRepositoryImpl) List(ctx context.Context, kind models.Kind, limit, offset int) ([]models.ContentItem, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT * FROM %s
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, table)

	var items []models.ContentItem
	err = r.db.SelectContext(ctx, &items, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка %s: %w", kind, err)
	}

	for i := range items {
		items[i].Kind = kind
	}

	return items, nil
}

// ListRecent - ограниченная выборка последних записей для агрегатора активности
func (r *ContentRepositoryImpl) ListRecent(ctx context.Context, kind models.Kind, limit int) ([]models.ContentItem, error) {
	return r.List(ctx, kind, limit, 0)
}

func (r *ContentRepositoryImpl) Update(ctx context.Context, item *models.ContentItem) error {
	table, err := tableFor(item.Kind)
	if err != nil {
		return err
	}

	existing, err := r.GetByID(ctx, item.Kind, item.ID)
	if err != nil {
		return err
	}

	if existing.CreatedBy != item.CreatedBy {
		return errors.New("нельзя изменить автора записи")
	}

	var query string
	switch item.Kind {
	case models.KindEvent:
		query = fmt.Sprintf(`
			UPDATE %s SET
				title = :title,
				content = :content,
				image_url = :image_url,
				event_date = :event_date,
				updated_at = :updated_at
			WHERE id = :id
		`, table)
	case models.KindLink:
		query = fmt.Sprintf(`
			UPDATE %s SET
				title = :title,
				content = :content,
				image_url = :image_url,
				url = :url,
				updated_at = :updated_at
			WHERE id = :id
		`, table)
	default:
		query = fmt.Sprintf(`
			UPDATE %s SET
				title = :title,
				content = :content,
				image_url = :image_url,
				updated_at = :updated_at
			WHERE id = :id
		`, table)
	}

	item.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении записи %s: %w", item.Kind, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("запись не найдена")
	}

	return nil
}

func (r *ContentRepositoryImpl) Delete(ctx context.Context, kind models.Kind, id string) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка при удалении записи %s: %w", kind, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("запись не найдена")
	}

	return nil
}

func (r *ContentRepositoryImpl) Count(ctx context.Context, kind models.Kind) (int, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)

	var count int
	err = r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте записей %s: %w", kind, err)
	}

	return count, nil
}

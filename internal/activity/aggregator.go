// Package activity сливает события создания контента из разных таблиц
// в одну ленту и считает "что нового с последней проверки".
package activity

import (
	"fmt"
	"sort"
	"time"

	"corpportal/internal/models"
)

// Events проецирует строки удачных источников в события активности.
// Порядок: источники в порядке переданных слотов, внутри - порядок выборки.
func Events(sources []Source) []models.ActivityEvent {
	var events []models.ActivityEvent

	for _, source := range sources {
		if source.Err != nil {
			continue
		}
		for _, item := range source.Items {
			events = append(events, models.ActivityEvent{
				SourceType: source.Kind,
				ID:         item.ID,
				Title:      item.Title,
				AuthorID:   item.CreatedBy,
				CreatedAt:  item.CreatedAt,
			})
		}
	}

	return events
}

// AuthorIDs - уникальные id авторов для пакетного запроса имён
func AuthorIDs(events []models.ActivityEvent) []string {
	seen := make(map[string]bool, len(events))
	var ids []string

	for _, event := range events {
		if !seen[event.AuthorID] {
			seen[event.AuthorID] = true
			ids = append(ids, event.AuthorID)
		}
	}

	return ids
}

// BuildFeed собирает ленту дашборда: события с именами авторов,
// по убыванию created_at, не больше limit штук.
// Сортировка стабильная - при равном времени порядок выборки сохраняется.
// Время сравнивается как time.Time, никогда как строки.
func BuildFeed(events []models.ActivityEvent, names map[string]string, limit int) []models.ActivityEvent {
	feed := make([]models.ActivityEvent, len(events))
	copy(feed, events)

	for i := range feed {
		feed[i].AuthorName = names[feed[i].AuthorID]
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})

	if limit > 0 && len(feed) > limit {
		feed = feed[:limit]
	}

	return feed
}

// BuildNotifications отбирает события строго новее watermark,
// созданные не самим пользователем, и разворачивает их в уведомления.
// Чистая функция: двигать водяную метку - обязанность вызывающего,
// и только после того, как набор уведомлений посчитан от старой метки.
func BuildNotifications(events []models.ActivityEvent, names map[string]string, watermark time.Time, currentUserID string) []models.Notification {
	var notifications []models.Notification

	for _, event := range events {
		if !event.CreatedAt.After(watermark) {
			continue
		}
		if event.AuthorID == currentUserID {
			continue
		}

		notifications = append(notifications, models.Notification{
			ID:        fmt.Sprintf("%s-%s", event.SourceType, event.ID),
			Message:   notificationMessage(event, names[event.AuthorID]),
			Read:      false,
			Timestamp: event.CreatedAt,
		})
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})

	return notifications
}

func notificationMessage(event models.ActivityEvent, authorName string) string {
	if authorName == "" {
		authorName = "кто-то"
	}

	switch event.SourceType {
	case models.KindAnnouncement:
		return fmt.Sprintf("%s опубликовал объявление «%s»", authorName, event.Title)
	case models.KindFeed:
		return fmt.Sprintf("%s добавил запись в ленту: «%s»", authorName, event.Title)
	case models.KindEvent:
		return fmt.Sprintf("%s создал событие «%s»", authorName, event.Title)
	case models.KindLink:
		return fmt.Sprintf("%s поделился ссылкой «%s»", authorName, event.Title)
	default:
		return fmt.Sprintf("%s добавил «%s»", authorName, event.Title)
	}
}

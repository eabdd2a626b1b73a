package activity

import (
	"context"
	"sync"

	"corpportal/internal/models"
)

// Source - результат выборки одного типа контента.
// Err выставлен - источник упал, Items тогда пустой.
type Source struct {
	Kind  models.Kind
	Items []models.ContentItem
	Err   error
}

type Fetcher func(ctx context.Context, kind models.Kind, limit int) ([]models.ContentItem, error)

// Gather запускает выборку всех типов параллельно и ждёт каждую.
// Источники пишут в свои слоты, порядок kinds сохраняется.
// Падение одного источника не прерывает остальные - частичный
// результат допустим, решает вызывающий.
func Gather(ctx context.Context, fetch Fetcher, kinds []models.Kind, limit int) []Source {
	sources := make([]Source, len(kinds))

	var wg sync.WaitGroup
	for i, kind := range kinds {
		wg.Add(1)
		go func(i int, kind models.Kind) {
			defer wg.Done()
			items, err := fetch(ctx, kind, limit)
			sources[i] = Source{Kind: kind, Items: items, Err: err}
		}(i, kind)
	}
	wg.Wait()

	return sources
}

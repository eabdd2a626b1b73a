package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"corpportal/internal/config"
	"corpportal/internal/models"
)

func activityConfig() *config.Config {
	return &config.Config{
		Activity: config.Activity{
			FeedLimit:      6,
			FetchPerSource: 10,
			PollInterval:   30 * time.Second,
		},
	}
}

func contentAt(id, author string, createdAt time.Time) models.ContentItem {
	return models.ContentItem{ID: id, Title: id, CreatedBy: author, CreatedAt: createdAt}
}

func TestActivityService_DashboardFeed(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	contentRepo := new(MockContentRepository)
	profileRepo := new(MockProfileRepository)
	activityRepo := new(MockActivityRepository)

	contentRepo.On("ListRecent", mock.Anything, models.KindAnnouncement, 10).
		Return([]models.ContentItem{contentAt("a1", "u1", base.Add(2*time.Hour))}, nil)
	contentRepo.On("ListRecent", mock.Anything, models.KindFeed, 10).
		Return([]models.ContentItem{contentAt("f1", "u2", base.Add(3*time.Hour))}, nil)
	// источник событий упал - лента строится без него
	contentRepo.On("ListRecent", mock.Anything, models.KindEvent, 10).
		Return(nil, errors.New("таблица недоступна"))
	contentRepo.On("ListRecent", mock.Anything, models.KindLink, 10).
		Return([]models.ContentItem{contentAt("l1", "u1", base.Add(time.Hour))}, nil)

	profileRepo.On("GetNamesByIDs", mock.Anything, mock.Anything).
		Return(map[string]string{"u1": "Анна", "u2": "Борис"}, nil)

	svc := NewActivityService(contentRepo, profileRepo, activityRepo, activityConfig())

	feed, err := svc.DashboardFeed(context.Background())

	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "f1", feed[0].ID)
	assert.Equal(t, "a1", feed[1].ID)
	assert.Equal(t, "l1", feed[2].ID)
	assert.Equal(t, "Борис", feed[0].AuthorName)

	// имена запрошены одним пакетом
	profileRepo.AssertNumberOfCalls(t, "GetNamesByIDs", 1)
}

func TestActivityService_CheckNewActivity(t *testing.T) {
	watermark := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	contentRepo := new(MockContentRepository)
	profileRepo := new(MockProfileRepository)
	activityRepo := new(MockActivityRepository)

	contentRepo.On("ListRecent", mock.Anything, models.KindFeed, 10).
		Return([]models.ContentItem{contentAt("new", "u2", watermark.Add(time.Hour))}, nil)
	contentRepo.On("ListRecent", mock.Anything, models.KindAnnouncement, 10).
		Return([]models.ContentItem{contentAt("old", "u3", watermark.Add(-time.Hour))}, nil)
	contentRepo.On("ListRecent", mock.Anything, models.KindEvent, 10).
		Return([]models.ContentItem{contentAt("mine", "u1", watermark.Add(2*time.Hour))}, nil)
	contentRepo.On("ListRecent", mock.Anything, models.KindLink, 10).
		Return([]models.ContentItem{}, nil)

	profileRepo.On("GetNamesByIDs", mock.Anything, mock.Anything).
		Return(map[string]string{"u2": "Борис", "u3": "Вера"}, nil)

	activityRepo.On("GetLastChecked", mock.Anything, "u1").Return(watermark, nil)

	var advancedTo time.Time
	activityRepo.On("AdvanceLastChecked", mock.Anything, "u1", mock.Anything).
		Run(func(args mock.Arguments) {
			advancedTo = args.Get(2).(time.Time)
		}).
		Return(nil)

	svc := NewActivityService(contentRepo, profileRepo, activityRepo, activityConfig())

	notifications, err := svc.CheckNewActivity(context.Background(), "u1")

	require.NoError(t, err)
	// старое событие за меткой, своё событие исключено
	require.Len(t, notifications, 1)
	assert.Equal(t, "feed-new", notifications[0].ID)

	// метка двигается только вперёд
	activityRepo.AssertCalled(t, "AdvanceLastChecked", mock.Anything, "u1", mock.Anything)
	assert.False(t, advancedTo.Before(watermark), "метка откатилась назад")
}

func TestActivityService_OverlapGuard(t *testing.T) {
	watermark := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	contentRepo := new(MockContentRepository)
	profileRepo := new(MockProfileRepository)
	activityRepo := new(MockActivityRepository)

	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once

	// первая проверка виснет в выборке, пока не отпустим
	contentRepo.On("ListRecent", mock.Anything, mock.Anything, 10).
		Run(func(args mock.Arguments) {
			once.Do(func() { close(started) })
			<-release
		}).
		Return([]models.ContentItem{}, nil)

	profileRepo.On("GetNamesByIDs", mock.Anything, mock.Anything).
		Return(map[string]string{}, nil)

	activityRepo.On("GetLastChecked", mock.Anything, "u1").Return(watermark, nil)
	activityRepo.On("AdvanceLastChecked", mock.Anything, "u1", mock.Anything).Return(nil)

	svc := NewActivityService(contentRepo, profileRepo, activityRepo, activityConfig())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.CheckNewActivity(context.Background(), "u1")
		assert.NoError(t, err)
	}()

	<-started

	// наложившийся цикл того же пользователя отбрасывается
	_, err := svc.CheckNewActivity(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrCheckInProgress)

	close(release)
	wg.Wait()

	// после завершения цикла проверка снова доступна
	_, err = svc.CheckNewActivity(context.Background(), "u1")
	assert.NoError(t, err)
}

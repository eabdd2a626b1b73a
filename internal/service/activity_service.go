package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"corpportal/internal/activity"
	"corpportal/internal/config"
	"corpportal/internal/models"
	"corpportal/internal/repository"
)

// ErrCheckInProgress - предыдущий цикл проверки пользователя ещё не завершён
var ErrCheckInProgress = errors.New("проверка активности уже выполняется")

// Лента и уведомления собираются по этим четырём источникам.
// HR-посты на дашборд не попадают.
var activityKinds = []models.Kind{
	models.KindAnnouncement,
	models.KindFeed,
	models.KindEvent,
	models.KindLink,
}

type ActivityService interface {
	DashboardFeed(ctx context.Context) ([]models.ActivityEvent, error)
	CheckNewActivity(ctx context.Context, userID string) ([]models.Notification, error)
	PollInterval() time.Duration
}

type activityService struct {
	contentRepo  repository.ContentRepository
	profileRepo  repository.ProfileRepository
	activityRepo repository.ActivityRepository
	cfg          *config.Config

	// по одному флагу "цикл идёт" на пользователя,
	// наложившиеся проверки отбрасываются, а не копятся
	mu       sync.Mutex
	inFlight map[string]bool
}

func NewActivityService(
	contentRepo repository.ContentRepository,
	profileRepo repository.ProfileRepository,
	activityRepo repository.ActivityRepository,
	cfg *config.Config,
) ActivityService {
	return &activityService{
		contentRepo:  contentRepo,
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
		cfg:          cfg,
		inFlight:     make(map[string]bool),
	}
}

func (s *activityService) PollInterval() time.Duration {
	return s.cfg.Activity.PollInterval
}

// gather собирает последние записи всех источников и имена их авторов.
// Упавший источник даёт ноль событий и пишется в лог, остальные живут.
func (s *activityService) gather(ctx context.Context) ([]models.ActivityEvent, map[string]string, error) {
	sources := activity.Gather(ctx, s.contentRepo.ListRecent, activityKinds, s.cfg.Activity.FetchPerSource)

	for _, source := range sources {
		if source.Err != nil {
			log.Printf("Источник %s недоступен, пропускаем: %v", source.Kind, source.Err)
		}
	}

	events := activity.Events(sources)

	// имена авторов - одним пакетным запросом на весь цикл
	names, err := s.profileRepo.GetNamesByIDs(ctx, activity.AuthorIDs(events))
	if err != nil {
		return nil, nil, err
	}

	return events, names, nil
}

func (s *activityService) DashboardFeed(ctx context.Context) ([]models.ActivityEvent, error) {
	events, names, err := s.gather(ctx)
	if err != nil {
		return nil, err
	}

	return activity.BuildFeed(events, names, s.cfg.Activity.FeedLimit), nil
}

// CheckNewActivity считает уведомления от сохранённой водяной метки
// и только потом двигает её. Порядок жёсткий: прочитать метку,
// посчитать набор, продвинуть - иначе события, пришедшие между чтением
// и продвижением, потерялись бы. Обратная сторона: событие, созданное
// между фиксацией checkedAt и выборкой, попадёт и в этот набор, и в
// следующий - дубль допустим, потеря нет.
func (s *activityService) CheckNewActivity(ctx context.Context, userID string) ([]models.Notification, error) {
	s.mu.Lock()
	if s.inFlight[userID] {
		s.mu.Unlock()
		return nil, ErrCheckInProgress
	}
	s.inFlight[userID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, userID)
		s.mu.Unlock()
	}()

	watermark, err := s.activityRepo.GetLastChecked(ctx, userID)
	if err != nil {
		return nil, err
	}

	// фиксируем "сейчас" до выборки: что создано позже, досчитается
	// следующим циклом, но не потеряется
	checkedAt := time.Now()

	events, names, err := s.gather(ctx)
	if err != nil {
		return nil, err
	}

	notifications := activity.BuildNotifications(events, names, watermark, userID)

	if err := s.activityRepo.AdvanceLastChecked(ctx, userID, checkedAt); err != nil {
		return nil, err
	}

	return notifications, nil
}

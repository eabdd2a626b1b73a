package service

import (
	"context"

	"corpportal/internal/models"
	"corpportal/internal/repository"
)

type ReactionService interface {
	SetReaction(ctx context.Context, actor Actor, postID string, postType models.Kind, reactionType string) (*models.Reaction, error)
	RemoveReaction(ctx context.Context, actor Actor, postID string, postType models.Kind) error
	GetReactions(ctx context.Context, userID, postID string, postType models.Kind) (*ReactionSummary, error)
}

// ReactionSummary - реакции поста глазами конкретного пользователя:
// кто отреагировал, счётчики по типам и его собственная реакция, если есть.
type ReactionSummary struct {
	Reactions []models.Reaction
	Counts    map[string]int
	Mine      *models.Reaction
}

type reactionService struct {
	reactionRepo repository.ReactionRepository
}

func NewReactionService(reactionRepo repository.ReactionRepository) ReactionService {
	return &reactionService{reactionRepo: reactionRepo}
}

// SetReaction ставит реакцию от имени actor. Реакция всегда ровно одна
// на пару (пользователь, пост): повторный вызов заменяет тип.
func (s *reactionService) SetReaction(ctx context.Context, actor Actor, postID string, postType models.Kind, reactionType string) (*models.Reaction, error) {
	reaction := &models.Reaction{
		PostID:       postID,
		PostType:     postType,
		ReactionType: reactionType,
		CreatedBy:    actor.ID,
	}

	err := s.reactionRepo.Set(ctx, reaction)
	if err != nil {
		return nil, err
	}

	return reaction, nil
}

// RemoveReaction снимает только собственную реакцию - чужие реакции
// недоступны по построению, удаление всегда ограничено actor.ID.
func (s *reactionService) RemoveReaction(ctx context.Context, actor Actor, postID string, postType models.Kind) error {
	return s.reactionRepo.Remove(ctx, postID, postType, actor.ID)
}

func (s *reactionService) GetReactions(ctx context.Context, userID, postID string, postType models.Kind) (*ReactionSummary, error) {
	reactions, err := s.reactionRepo.GetByPost(ctx, postID, postType)
	if err != nil {
		return nil, err
	}

	counts, err := s.reactionRepo.CountByType(ctx, postID, postType)
	if err != nil {
		return nil, err
	}

	summary := &ReactionSummary{Reactions: reactions, Counts: counts}

	// собственная реакция - точечным запросом по уникальному ключу,
	// а не перебором общего списка
	if userID != "" {
		mine, err := s.reactionRepo.GetByPostAndUser(ctx, postID, postType, userID)
		if err != nil {
			return nil, err
		}
		summary.Mine = mine
	}

	return summary, nil
}

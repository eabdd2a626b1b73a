package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"corpportal/internal/models"
)

func TestReactionService_GetReactions(t *testing.T) {
	reactions := []models.Reaction{
		{ReactionID: "r1", PostID: "post1", PostType: models.KindFeed, ReactionType: "like", CreatedBy: "u2"},
		{ReactionID: "r2", PostID: "post1", PostType: models.KindFeed, ReactionType: "celebrate", CreatedBy: "u1"},
	}
	counts := map[string]int{"like": 1, "celebrate": 1}

	t.Run("Своя реакция ищется точечным запросом", func(t *testing.T) {
		reactionRepo := new(MockReactionRepository)
		svc := NewReactionService(reactionRepo)

		reactionRepo.On("GetByPost", mock.Anything, "post1", models.KindFeed).Return(reactions, nil)
		reactionRepo.On("CountByType", mock.Anything, "post1", models.KindFeed).Return(counts, nil)
		reactionRepo.On("GetByPostAndUser", mock.Anything, "post1", models.KindFeed, "u1").
			Return(&reactions[1], nil)

		summary, err := svc.GetReactions(context.Background(), "u1", "post1", models.KindFeed)

		require.NoError(t, err)
		require.NotNil(t, summary.Mine)
		assert.Equal(t, "celebrate", summary.Mine.ReactionType)
		assert.Len(t, summary.Reactions, 2)
		reactionRepo.AssertExpectations(t)
	})

	t.Run("Без пользователя точечный запрос не выполняется", func(t *testing.T) {
		reactionRepo := new(MockReactionRepository)
		svc := NewReactionService(reactionRepo)

		reactionRepo.On("GetByPost", mock.Anything, "post1", models.KindFeed).Return(reactions, nil)
		reactionRepo.On("CountByType", mock.Anything, "post1", models.KindFeed).Return(counts, nil)

		summary, err := svc.GetReactions(context.Background(), "", "post1", models.KindFeed)

		require.NoError(t, err)
		assert.Nil(t, summary.Mine)
		reactionRepo.AssertNotCalled(t, "GetByPostAndUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Реакции нет - Mine пустой", func(t *testing.T) {
		reactionRepo := new(MockReactionRepository)
		svc := NewReactionService(reactionRepo)

		reactionRepo.On("GetByPost", mock.Anything, "post1", models.KindFeed).Return(reactions, nil)
		reactionRepo.On("CountByType", mock.Anything, "post1", models.KindFeed).Return(counts, nil)
		reactionRepo.On("GetByPostAndUser", mock.Anything, "post1", models.KindFeed, "u3").
			Return(nil, nil)

		summary, err := svc.GetReactions(context.Background(), "u3", "post1", models.KindFeed)

		require.NoError(t, err)
		assert.Nil(t, summary.Mine)
	})
}

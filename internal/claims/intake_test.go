package claims_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/claimithub/claimit/internal/claims"
	"github.com/claimithub/claimit/internal/clock"
	"github.com/claimithub/claimit/internal/repository"
)

func TestRegisterItem(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	now := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

	t.Run("assigns daily sequence and retention window", func(t *testing.T) {
		store := newMemStore()
		intake := claims.NewIntake(store, clock.Fixed{T: now}, logger)

		first, err := intake.RegisterItem(ctx, claims.RegisterItemInput{ItemName: "Wallet", Colour: "Black"})
		require.NoError(t, err)
		second, err := intake.RegisterItem(ctx, claims.RegisterItemInput{ItemName: "Keys"})
		require.NoError(t, err)

		assert.Equal(t, "2025/06/10-1", first.UniqueID)
		assert.Equal(t, "2025/06/10-2", second.UniqueID)
		assert.Equal(t, repository.StatusUnclaimed, first.Status)
		assert.Equal(t, "black", first.Colour)
		assert.Equal(t, now, first.ReceivedDate)
		assert.Equal(t, now.Add(claims.RetentionPeriod), first.ExpirationDate)
	})

	t.Run("known category is linked", func(t *testing.T) {
		store := newMemStore()
		store.categories["electronics"] = &repository.Category{ID: 3, Name: "electronics"}
		intake := claims.NewIntake(store, clock.Fixed{T: now}, logger)

		item, err := intake.RegisterItem(ctx, claims.RegisterItemInput{
			ItemName: "headphones",
			Category: "electronics",
		})
		require.NoError(t, err)
		require.NotNil(t, item.CategoryID)
		assert.Equal(t, int64(3), *item.CategoryID)
	})

	t.Run("unknown category is stored without one", func(t *testing.T) {
		store := newMemStore()
		intake := claims.NewIntake(store, clock.Fixed{T: now}, logger)

		item, err := intake.RegisterItem(ctx, claims.RegisterItemInput{
			ItemName: "headphones",
			Category: "gadgets",
		})
		require.NoError(t, err)
		assert.Nil(t, item.CategoryID)
	})

	t.Run("blank name is a validation error", func(t *testing.T) {
		store := newMemStore()
		intake := claims.NewIntake(store, clock.Fixed{T: now}, logger)

		_, err := intake.RegisterItem(ctx, claims.RegisterItemInput{ItemName: "   "})
		assert.ErrorIs(t, err, repository.ErrValidation)
	})
}

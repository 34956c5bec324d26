package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/claimithub/claimit/internal/db/mocks"
	"github.com/claimithub/claimit/internal/repository"
	"github.com/claimithub/claimit/internal/repository/postgresql"
)

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) > 0 {
		if p, ok := dest[0].(*int64); ok {
			*p = r.id
		}
		if p, ok := dest[0].(*int); ok {
			*p = int(r.id)
		}
	}
	return nil
}

func TestItemRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewItemRepo(mockDB)

		now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		item := &repository.Item{
			ItemName:       "wallet",
			Status:         repository.StatusUnclaimed,
			UniqueID:       "2025/06/10-1",
			ReceivedDate:   now,
			ExpirationDate: now.AddDate(0, 0, 30),
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		mockDB.EXPECT().ExecQueryRow(
			gomock.Any(), gomock.Any(),
			gomock.Eq(item.ItemName), gomock.Any(), gomock.Any(),
			gomock.Eq(item.Status), gomock.Any(), gomock.Any(),
			gomock.Eq(item.UniqueID), gomock.Any(), gomock.Any(),
			gomock.Eq(item.ReceivedDate), gomock.Eq(item.ExpirationDate),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(fakeRow{id: 17})

		id, err := repo.Create(ctx, item)
		assert.NoError(t, err)
		assert.Equal(t, int64(17), id)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewItemRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(),
		).Return(fakeRow{err: errors.New("database error")})

		_, err := repo.Create(ctx, &repository.Item{ItemName: "wallet"})
		assert.Error(t, err)
	})
}

func TestItemRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("item found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewItemRepo(mockDB)

		testItem := &repository.Item{
			ID:       7,
			ItemName: "wallet",
			Status:   repository.StatusUnclaimed,
			UniqueID: "2025/06/10-1",
		}

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(7))).
			DoAndReturn(func(_ context.Context, dest *repository.Item, _ string, _ int64) error {
				*dest = *testItem
				return nil
			})

		item, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, testItem, item)
	})

	t.Run("item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewItemRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		item, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, item)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewItemRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		item, err := repo.GetByID(ctx, 7)
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, item)
	})
}

func TestItemRepo_UpdateStatusIf(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewItemRepo(mockDB)

		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Eq(repository.StatusArchived), gomock.Eq(now),
			gomock.Eq(int64(7)), gomock.Eq(repository.StatusUnclaimed),
		).Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.UpdateStatusIf(ctx, 7, repository.StatusUnclaimed, repository.StatusArchived, now)
		assert.NoError(t, err)
	})

	t.Run("lost race returns ErrAlreadyUpdated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewItemRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateStatusIf(ctx, 7, repository.StatusUnclaimed, repository.StatusArchived, now)
		assert.ErrorIs(t, err, repository.ErrAlreadyUpdated)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewItemRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.UpdateStatusIf(ctx, 7, repository.StatusUnclaimed, repository.StatusArchived, now)
		assert.Equal(t, expectedErr, err)
	})
}

func TestItemRepo_UpdateClaimStateIf(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	claimant := int64(3)
	item := &repository.Item{
		ID:             7,
		Status:         repository.StatusPendingApproval,
		ClaimantUserID: &claimant,
		ReceivedDate:   now,
		ExpirationDate: now.AddDate(0, 0, 30),
		UpdatedAt:      now,
	}

	t.Run("guards on the expected pre-state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewItemRepo(mockDB)

		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Eq(repository.StatusPendingApproval), gomock.Eq(&claimant),
			gomock.Eq(now), gomock.Eq(now.AddDate(0, 0, 30)),
			gomock.Nil(), gomock.Eq(now),
			gomock.Eq(int64(7)), gomock.Eq(repository.StatusUnclaimed),
		).Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.UpdateClaimStateIf(ctx, item, repository.StatusUnclaimed)
		assert.NoError(t, err)
	})

	t.Run("zero rows means another writer won", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewItemRepo(mockDB)

		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateClaimStateIf(ctx, item, repository.StatusUnclaimed)
		assert.ErrorIs(t, err, repository.ErrAlreadyUpdated)
	})
}

func TestItemRepo_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("filters become ILIKE arguments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewItemRepo(mockDB)

		itemName := "bag"
		colour := "red"
		expected := []repository.ItemSummary{{ID: 3, ItemName: "red bag"}}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("%bag%"), gomock.Eq("%red%")).
			DoAndReturn(func(_ context.Context, dest *[]repository.ItemSummary, _ string, _ ...interface{}) error {
				*dest = expected
				return nil
			})

		items, err := repo.Search(ctx, &itemName, &colour, nil)
		assert.NoError(t, err)
		assert.Equal(t, expected, items)
	})

	t.Run("no filters means no arguments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewItemRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := repo.Search(ctx, nil, nil, nil)
		assert.NoError(t, err)
	})
}

func TestItemRepo_LatestDailySequence(t *testing.T) {
	ctx := context.Background()

	t.Run("returns highest assigned number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewItemRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("2025/06/10-%")).
			Return(fakeRow{id: 4})

		latest, err := repo.LatestDailySequence(ctx, "2025/06/10")
		assert.NoError(t, err)
		assert.Equal(t, 4, latest)
	})
}

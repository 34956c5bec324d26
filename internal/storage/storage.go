// Package storage is the single logical store shared by the workflow
// operations and the expiration sweep. It fronts the postgres repositories
// and exposes the narrow surface the lifecycle components consume.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/claimithub/claimit/internal/cache"
	"github.com/claimithub/claimit/internal/repository"
)

type ItemRepository interface {
	Create(ctx context.Context, item *repository.Item) (int64, error)
	GetByID(ctx context.Context, id int64) (*repository.Item, error)
	UpdateClaimStateIf(ctx context.Context, item *repository.Item, from string) error
	UpdateStatusIf(ctx context.Context, id int64, from, to string, updatedAt time.Time) error
	SetExpiration(ctx context.Context, id int64, expiration, updatedAt time.Time) error
	SetLastNotified(ctx context.Context, id int64, days int, updatedAt time.Time) error
	GetByStatus(ctx context.Context, status string) ([]*repository.Item, error)
	GetActive(ctx context.Context) ([]*repository.Item, error)
	GetSummaries(ctx context.Context) ([]repository.ItemSummary, error)
	Search(ctx context.Context, itemName, colour, category *string) ([]repository.ItemSummary, error)
	FindByCriteria(ctx context.Context, userID *int64, status *string, receivedDate *time.Time) ([]repository.ItemSummary, error)
	GetArchivedBetween(ctx context.Context, from, to time.Time) ([]*repository.Item, error)
	LatestDailySequence(ctx context.Context, datePrefix string) (int, error)
	StatusCountsByMonth(ctx context.Context, month string) ([]repository.StatusCountRow, error)
}

type ClaimRequestRepository interface {
	Create(ctx context.Context, req *repository.ClaimRequest) (int64, error)
	GetByItemIDAndStatus(ctx context.Context, itemID int64, status string) (*repository.ClaimRequest, error)
	GetOpenByItemID(ctx context.Context, itemID int64) (*repository.ClaimRequest, error)
	Update(ctx context.Context, req *repository.ClaimRequest) error
	GetByUserIDExcludingStatus(ctx context.Context, userID int64, excluded string) ([]*repository.ClaimRequest, error)
}

type ClaimHistoryRepository interface {
	Create(ctx context.Context, entry *repository.ClaimHistoryEntry) (int64, error)
	GetByID(ctx context.Context, id int64) (*repository.ClaimHistoryEntry, error)
	GetByEmail(ctx context.Context, email string) ([]*repository.ClaimHistoryEntry, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *repository.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*repository.User, error)
	FindByEmail(ctx context.Context, email string) (*repository.User, error)
	EmailsForItem(ctx context.Context, itemID int64) ([]string, error)
}

type CategoryRepository interface {
	FindByName(ctx context.Context, name string) (*repository.Category, error)
}

type PostgresStorage struct {
	itemRepo    ItemRepository
	claimRepo   ClaimRequestRepository
	historyRepo ClaimHistoryRepository
	userRepo    UserRepository
	catRepo     CategoryRepository
	catCache    *cache.CategoryCache
}

func NewPostgresStorage(
	itemRepo ItemRepository,
	claimRepo ClaimRequestRepository,
	historyRepo ClaimHistoryRepository,
	userRepo UserRepository,
	catRepo CategoryRepository,
	catCache *cache.CategoryCache,
) *PostgresStorage {
	return &PostgresStorage{
		itemRepo:    itemRepo,
		claimRepo:   claimRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		catRepo:     catRepo,
		catCache:    catCache,
	}
}

func (s *PostgresStorage) GetItem(ctx context.Context, id int64) (*repository.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *PostgresStorage) CreateItem(ctx context.Context, item *repository.Item) (int64, error) {
	return s.itemRepo.Create(ctx, item)
}

func (s *PostgresStorage) SaveItemIf(ctx context.Context, item *repository.Item, from string) error {
	return s.itemRepo.UpdateClaimStateIf(ctx, item, from)
}

func (s *PostgresStorage) UpdateItemStatusIf(ctx context.Context, id int64, from, to string) error {
	return s.itemRepo.UpdateStatusIf(ctx, id, from, to, time.Now())
}

func (s *PostgresStorage) SetItemExpiration(ctx context.Context, id int64, expiration time.Time) error {
	return s.itemRepo.SetExpiration(ctx, id, expiration, time.Now())
}

func (s *PostgresStorage) MarkItemNotified(ctx context.Context, id int64, days int) error {
	return s.itemRepo.SetLastNotified(ctx, id, days, time.Now())
}

func (s *PostgresStorage) FindItemsByStatus(ctx context.Context, status string) ([]*repository.Item, error) {
	return s.itemRepo.GetByStatus(ctx, status)
}

func (s *PostgresStorage) FindActiveItems(ctx context.Context) ([]*repository.Item, error) {
	return s.itemRepo.GetActive(ctx)
}

func (s *PostgresStorage) ListItems(ctx context.Context) ([]repository.ItemSummary, error) {
	return s.itemRepo.GetSummaries(ctx)
}

func (s *PostgresStorage) SearchItems(ctx context.Context, itemName, colour, category *string) ([]repository.ItemSummary, error) {
	return s.itemRepo.Search(ctx, itemName, colour, category)
}

func (s *PostgresStorage) FindItemsByCriteria(ctx context.Context, userID *int64, status *string, receivedDate *time.Time) ([]repository.ItemSummary, error) {
	return s.itemRepo.FindByCriteria(ctx, userID, status, receivedDate)
}

func (s *PostgresStorage) ArchivedItemsBetween(ctx context.Context, from, to time.Time) ([]*repository.Item, error) {
	return s.itemRepo.GetArchivedBetween(ctx, from, to)
}

func (s *PostgresStorage) StatusCountsByMonth(ctx context.Context, month string) ([]repository.StatusCountRow, error) {
	return s.itemRepo.StatusCountsByMonth(ctx, month)
}

// NextUniqueID assigns the next yyyy/MM/dd-N identifier for the calendar day
// of now. N is a per-day running counter starting at 1.
func (s *PostgresStorage) NextUniqueID(ctx context.Context, now time.Time) (string, error) {
	datePrefix := now.Format("2006/01/02")
	latest, err := s.itemRepo.LatestDailySequence(ctx, datePrefix)
	if err != nil {
		return "", fmt.Errorf("failed to assign unique id: %w", err)
	}
	return fmt.Sprintf("%s-%d", datePrefix, latest+1), nil
}

func (s *PostgresStorage) FindClaimRequest(ctx context.Context, itemID int64, status string) (*repository.ClaimRequest, error) {
	return s.claimRepo.GetByItemIDAndStatus(ctx, itemID, status)
}

func (s *PostgresStorage) FindOpenClaimRequest(ctx context.Context, itemID int64) (*repository.ClaimRequest, error) {
	return s.claimRepo.GetOpenByItemID(ctx, itemID)
}

func (s *PostgresStorage) CreateClaimRequest(ctx context.Context, req *repository.ClaimRequest) (int64, error) {
	return s.claimRepo.Create(ctx, req)
}

func (s *PostgresStorage) SaveClaimRequest(ctx context.Context, req *repository.ClaimRequest) error {
	return s.claimRepo.Update(ctx, req)
}

func (s *PostgresStorage) ClaimRequestsForUser(ctx context.Context, userID int64, excludedStatus string) ([]*repository.ClaimRequest, error) {
	return s.claimRepo.GetByUserIDExcludingStatus(ctx, userID, excludedStatus)
}

func (s *PostgresStorage) AppendClaimHistory(ctx context.Context, entry *repository.ClaimHistoryEntry) (int64, error) {
	return s.historyRepo.Create(ctx, entry)
}

func (s *PostgresStorage) GetClaimHistory(ctx context.Context, id int64) (*repository.ClaimHistoryEntry, error) {
	return s.historyRepo.GetByID(ctx, id)
}

func (s *PostgresStorage) ClaimHistoryByEmail(ctx context.Context, email string) ([]*repository.ClaimHistoryEntry, error) {
	return s.historyRepo.GetByEmail(ctx, email)
}

func (s *PostgresStorage) UpdateClaimHistoryStatus(ctx context.Context, id int64, status string) error {
	return s.historyRepo.UpdateStatus(ctx, id, status)
}

func (s *PostgresStorage) GetUser(ctx context.Context, id int64) (*repository.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *PostgresStorage) FindUserByEmail(ctx context.Context, email string) (*repository.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

func (s *PostgresStorage) SaveUser(ctx context.Context, user *repository.User) (int64, error) {
	return s.userRepo.Create(ctx, user)
}

func (s *PostgresStorage) UserEmailsForItem(ctx context.Context, itemID int64) ([]string, error) {
	return s.userRepo.EmailsForItem(ctx, itemID)
}

func (s *PostgresStorage) FindCategoryByName(ctx context.Context, name string) (*repository.Category, error) {
	if category, found := s.catCache.Get(name); found {
		return category, nil
	}
	category, err := s.catRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	s.catCache.Set(category)
	return category, nil
}

func (s *PostgresStorage) CategoryExists(ctx context.Context, name string) (bool, error) {
	return s.catCache.Exists(ctx, name)
}

package claims_test

import (
	"context"
	"fmt"
	"time"

	"github.com/claimithub/claimit/internal/repository"
)

// memStore is an in-memory claims.Store used across the package tests.
type memStore struct {
	items      map[int64]*repository.Item
	requests   map[int64]*repository.ClaimRequest
	history    map[int64]*repository.ClaimHistoryEntry
	users      map[int64]*repository.User
	categories map[string]*repository.Category

	nextItemID    int64
	nextRequestID int64
	nextHistoryID int64
	nextUserID    int64
	nextSequence  int
}

func newMemStore() *memStore {
	return &memStore{
		items:      make(map[int64]*repository.Item),
		requests:   make(map[int64]*repository.ClaimRequest),
		history:    make(map[int64]*repository.ClaimHistoryEntry),
		users:      make(map[int64]*repository.User),
		categories: make(map[string]*repository.Category),
	}
}

func (m *memStore) GetItem(_ context.Context, id int64) (*repository.Item, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	copied := *item
	return &copied, nil
}

func (m *memStore) CreateItem(_ context.Context, item *repository.Item) (int64, error) {
	m.nextItemID++
	item.ID = m.nextItemID
	copied := *item
	m.items[item.ID] = &copied
	return item.ID, nil
}

// SaveItem overwrites unconditionally; tests use it to seed state.
func (m *memStore) SaveItem(_ context.Context, item *repository.Item) error {
	if _, ok := m.items[item.ID]; !ok {
		return repository.ErrObjectNotFound
	}
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *memStore) SaveItemIf(_ context.Context, item *repository.Item, from string) error {
	stored, ok := m.items[item.ID]
	if !ok || stored.Status != from {
		return repository.ErrAlreadyUpdated
	}
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *memStore) UpdateItemStatusIf(_ context.Context, id int64, from, to string) error {
	item, ok := m.items[id]
	if !ok || item.Status != from {
		return repository.ErrAlreadyUpdated
	}
	item.Status = to
	return nil
}

func (m *memStore) NextUniqueID(_ context.Context, now time.Time) (string, error) {
	m.nextSequence++
	return fmt.Sprintf("%s-%d", now.Format("2006/01/02"), m.nextSequence), nil
}

func (m *memStore) FindClaimRequest(_ context.Context, itemID int64, status string) (*repository.ClaimRequest, error) {
	for _, req := range m.requests {
		if req.ItemID == itemID && req.Status == status {
			copied := *req
			return &copied, nil
		}
	}
	return nil, repository.ErrObjectNotFound
}

func (m *memStore) FindOpenClaimRequest(_ context.Context, itemID int64) (*repository.ClaimRequest, error) {
	for _, req := range m.requests {
		if req.ItemID == itemID && !repository.TerminalStatus(req.Status) {
			copied := *req
			return &copied, nil
		}
	}
	return nil, repository.ErrObjectNotFound
}

func (m *memStore) CreateClaimRequest(_ context.Context, req *repository.ClaimRequest) (int64, error) {
	m.nextRequestID++
	req.ID = m.nextRequestID
	copied := *req
	m.requests[req.ID] = &copied
	return req.ID, nil
}

func (m *memStore) SaveClaimRequest(_ context.Context, req *repository.ClaimRequest) error {
	if _, ok := m.requests[req.ID]; !ok {
		return repository.ErrObjectNotFound
	}
	copied := *req
	m.requests[req.ID] = &copied
	return nil
}

func (m *memStore) AppendClaimHistory(_ context.Context, entry *repository.ClaimHistoryEntry) (int64, error) {
	m.nextHistoryID++
	entry.ID = m.nextHistoryID
	copied := *entry
	m.history[entry.ID] = &copied
	return entry.ID, nil
}

func (m *memStore) GetClaimHistory(_ context.Context, id int64) (*repository.ClaimHistoryEntry, error) {
	entry, ok := m.history[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	copied := *entry
	return &copied, nil
}

func (m *memStore) UpdateClaimHistoryStatus(_ context.Context, id int64, status string) error {
	entry, ok := m.history[id]
	if !ok {
		return repository.ErrObjectNotFound
	}
	entry.Status = status
	return nil
}

func (m *memStore) GetUser(_ context.Context, id int64) (*repository.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *memStore) FindUserByEmail(_ context.Context, email string) (*repository.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrObjectNotFound
}

func (m *memStore) SaveUser(_ context.Context, user *repository.User) (int64, error) {
	m.nextUserID++
	user.ID = m.nextUserID
	copied := *user
	m.users[user.ID] = &copied
	return user.ID, nil
}

func (m *memStore) CategoryExists(_ context.Context, name string) (bool, error) {
	_, ok := m.categories[name]
	return ok, nil
}

func (m *memStore) FindCategoryByName(_ context.Context, name string) (*repository.Category, error) {
	category, ok := m.categories[name]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	copied := *category
	return &copied, nil
}

// countingNotifier records how many notifications of each kind went out.
type countingNotifier struct {
	confirmations int
	adminAlerts   int
	reminders     int
	archived      int
	statusNotices int
}

func (n *countingNotifier) SendClaimConfirmation(context.Context, string, *repository.Item) error {
	n.confirmations++
	return nil
}

func (n *countingNotifier) SendAdminClaimAlert(context.Context, *repository.Item) error {
	n.adminAlerts++
	return nil
}

func (n *countingNotifier) SendExpirationReminder(context.Context, string, *repository.Item, int) error {
	n.reminders++
	return nil
}

func (n *countingNotifier) SendArchivedNotice(context.Context, string, *repository.Item) error {
	n.archived++
	return nil
}

func (n *countingNotifier) SendStatusChangeNotice(context.Context, string, *repository.ClaimHistoryEntry) error {
	n.statusNotices++
	return nil
}

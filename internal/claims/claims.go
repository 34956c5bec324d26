// Package claims implements the item claim lifecycle: intake, claim
// submission, approval and rejection, and claim history bookkeeping.
package claims

import (
	"context"
	"time"

	"github.com/claimithub/claimit/internal/repository"
)

// RetentionPeriod is how long an item stays claimable after it is received
// or re-claimed before the sweep archives it.
const RetentionPeriod = 30 * 24 * time.Hour

// Store is the persistence surface the lifecycle operations consume.
type Store interface {
	GetItem(ctx context.Context, id int64) (*repository.Item, error)
	CreateItem(ctx context.Context, item *repository.Item) (int64, error)
	SaveItemIf(ctx context.Context, item *repository.Item, from string) error
	UpdateItemStatusIf(ctx context.Context, id int64, from, to string) error
	NextUniqueID(ctx context.Context, now time.Time) (string, error)

	FindClaimRequest(ctx context.Context, itemID int64, status string) (*repository.ClaimRequest, error)
	FindOpenClaimRequest(ctx context.Context, itemID int64) (*repository.ClaimRequest, error)
	CreateClaimRequest(ctx context.Context, req *repository.ClaimRequest) (int64, error)
	SaveClaimRequest(ctx context.Context, req *repository.ClaimRequest) error

	AppendClaimHistory(ctx context.Context, entry *repository.ClaimHistoryEntry) (int64, error)
	GetClaimHistory(ctx context.Context, id int64) (*repository.ClaimHistoryEntry, error)
	UpdateClaimHistoryStatus(ctx context.Context, id int64, status string) error

	GetUser(ctx context.Context, id int64) (*repository.User, error)
	FindUserByEmail(ctx context.Context, email string) (*repository.User, error)
	SaveUser(ctx context.Context, user *repository.User) (int64, error)
	CategoryExists(ctx context.Context, name string) (bool, error)
	FindCategoryByName(ctx context.Context, name string) (*repository.Category, error)
}

// Result reports the outcome of a lifecycle operation. Success false with a
// nil error means the operation was refused for a business reason, not that
// anything went wrong.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

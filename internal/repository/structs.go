package repository

import (
	"errors"
	"time"
)

var (
	// ErrObjectNotFound is returned by reads that match no row.
	ErrObjectNotFound = errors.New("not found")
	// ErrValidation marks bad or missing caller input. Never retried.
	ErrValidation = errors.New("invalid input")
	// ErrAlreadyUpdated reports a conditional status update that matched no
	// row because another writer got there first.
	ErrAlreadyUpdated = errors.New("status already updated")
)

type Item struct {
	ID               int64      `db:"id"`
	ItemName         string     `db:"item_name"`
	Title            string     `db:"title"`
	Description      string     `db:"description"`
	Status           string     `db:"status"`
	Colour           string     `db:"colour"`
	DetectedText     string     `db:"detected_text"`
	UniqueID         string     `db:"unique_id"`
	CategoryID       *int64     `db:"category_id"`
	SubcategoryID    *int64     `db:"subcategory_id"`
	ReceivedDate     time.Time  `db:"received_date"`
	ExpirationDate   time.Time  `db:"expiration_date"`
	LastNotifiedDays *int       `db:"last_notified_days"`
	ClaimantUserID   *int64     `db:"claimant_user_id"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// ItemSummary is the projection returned by listing and search queries.
type ItemSummary struct {
	ID             int64     `db:"id"`
	ItemName       string    `db:"item_name"`
	Title          string    `db:"title"`
	Status         string    `db:"status"`
	Colour         string    `db:"colour"`
	UniqueID       string    `db:"unique_id"`
	CategoryName   *string   `db:"category_name"`
	ReceivedDate   time.Time `db:"received_date"`
	ExpirationDate time.Time `db:"expiration_date"`
}

type ClaimRequest struct {
	ID             int64      `db:"id"`
	ItemID         int64      `db:"item_id"`
	UserID         int64      `db:"user_id"`
	Status         string     `db:"status"`
	ClaimedDate    *time.Time `db:"claimed_date"`
	RejectedReason *string    `db:"rejected_reason"`
	CreatedAt      time.Time  `db:"created_at"`
}

// ClaimHistoryEntry is append-only: rows are inserted once per
// status-changing workflow action and never mutated afterwards, except by
// the explicit status-update operation.
type ClaimHistoryEntry struct {
	ID        int64     `db:"id"`
	ItemID    int64     `db:"item_id"`
	RequestID int64     `db:"request_id"`
	Status    string    `db:"status"`
	ClaimDate time.Time `db:"claim_date"`
	UserID    int64     `db:"user_id"`
	UserEmail string    `db:"user_email"`
}

type User struct {
	ID       int64  `db:"id"`
	UserName string `db:"user_name"`
	Email    string `db:"email"`
}

type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// StatusCountRow aggregates item counts per calendar month.
type StatusCountRow struct {
	Month           string `db:"month"`
	TotalItems      int    `db:"total_items"`
	Unclaimed       int    `db:"unclaimed"`
	PendingApproval int    `db:"pending_approval"`
	PendingPickup   int    `db:"pending_pickup"`
	Claimed         int    `db:"claimed"`
	Rejected        int    `db:"rejected"`
	Archived        int    `db:"archived"`
}

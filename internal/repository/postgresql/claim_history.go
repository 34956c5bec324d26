package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/claimithub/claimit/internal/db"
	"github.com/claimithub/claimit/internal/repository"
)

type ClaimHistoryRepo struct {
	db db.DB
}

func NewClaimHistoryRepo(db db.DB) *ClaimHistoryRepo {
	return &ClaimHistoryRepo{db: db}
}

func (r *ClaimHistoryRepo) Create(ctx context.Context, entry *repository.ClaimHistoryEntry) (int64, error) {
	var id int64
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO claim_history (item_id, request_id, status, claim_date, user_id, user_email)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, entry.ItemID, entry.RequestID, entry.Status, entry.ClaimDate, entry.UserID, entry.UserEmail).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert claim history entry: %w", err)
	}
	return id, nil
}

func (r *ClaimHistoryRepo) GetByID(ctx context.Context, id int64) (*repository.ClaimHistoryEntry, error) {
	var entry repository.ClaimHistoryEntry
	err := r.db.Get(ctx, &entry, "SELECT * FROM claim_history WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *ClaimHistoryRepo) GetByEmail(ctx context.Context, email string) ([]*repository.ClaimHistoryEntry, error) {
	var entries []*repository.ClaimHistoryEntry
	err := r.db.Select(ctx, &entries, `
        SELECT * FROM claim_history
        WHERE user_email = $1
        ORDER BY claim_date DESC
    `, email)
	return entries, err
}

// UpdateStatus is the explicit status-update API; everything else about a
// history row is immutable once written.
func (r *ClaimHistoryRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE claim_history SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

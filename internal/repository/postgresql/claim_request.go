package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/claimithub/claimit/internal/db"
	"github.com/claimithub/claimit/internal/repository"
)

type ClaimRequestRepo struct {
	db db.DB
}

func NewClaimRequestRepo(db db.DB) *ClaimRequestRepo {
	return &ClaimRequestRepo{db: db}
}

func (r *ClaimRequestRepo) Create(ctx context.Context, req *repository.ClaimRequest) (int64, error) {
	var id int64
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO claim_requests (item_id, user_id, status, claimed_date, rejected_reason, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, req.ItemID, req.UserID, req.Status, req.ClaimedDate, req.RejectedReason, req.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert claim request: %w", err)
	}
	return id, nil
}

// GetByItemIDAndStatus returns the single claim request for the item in the
// given status. At most one request per item is ever PENDING_APPROVAL.
func (r *ClaimRequestRepo) GetByItemIDAndStatus(ctx context.Context, itemID int64, status string) (*repository.ClaimRequest, error) {
	var req repository.ClaimRequest
	err := r.db.Get(ctx, &req, `
        SELECT * FROM claim_requests
        WHERE item_id = $1 AND status = $2
        ORDER BY created_at DESC
        LIMIT 1
    `, itemID, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &req, nil
}

// GetOpenByItemID returns the latest claim request for the item that has not
// reached a terminal status.
func (r *ClaimRequestRepo) GetOpenByItemID(ctx context.Context, itemID int64) (*repository.ClaimRequest, error) {
	var req repository.ClaimRequest
	err := r.db.Get(ctx, &req, `
        SELECT * FROM claim_requests
        WHERE item_id = $1 AND status NOT IN ($2, $3, $4)
        ORDER BY created_at DESC
        LIMIT 1
    `, itemID, repository.StatusClaimed, repository.StatusRejected, repository.StatusArchived)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *ClaimRequestRepo) Update(ctx context.Context, req *repository.ClaimRequest) error {
	_, err := r.db.Exec(ctx, `
        UPDATE claim_requests
        SET status = $1, claimed_date = $2, rejected_reason = $3
        WHERE id = $4
    `, req.Status, req.ClaimedDate, req.RejectedReason, req.ID)
	return err
}

func (r *ClaimRequestRepo) GetByUserIDExcludingStatus(ctx context.Context, userID int64, excluded string) ([]*repository.ClaimRequest, error) {
	var reqs []*repository.ClaimRequest
	err := r.db.Select(ctx, &reqs, `
        SELECT * FROM claim_requests
        WHERE user_id = $1 AND status <> $2
        ORDER BY created_at DESC
    `, userID, excluded)
	return reqs, err
}

package claims

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/claimithub/claimit/internal/clock"
	"github.com/claimithub/claimit/internal/metrics"
	"github.com/claimithub/claimit/internal/notify"
	"github.com/claimithub/claimit/internal/repository"
)

// Engine applies the administrative status transitions. Item status writes
// are conditional on the expected current status so that two concurrent
// decisions cannot both take effect.
type Engine struct {
	store      Store
	notifier   notify.Notifier
	clk        clock.Clock
	adminEmail string
	logger     *zap.Logger
}

func NewEngine(store Store, notifier notify.Notifier, clk clock.Clock, adminEmail string, logger *zap.Logger) *Engine {
	return &Engine{
		store:      store,
		notifier:   notifier,
		clk:        clk,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// ApproveOrReject resolves the pending claim request of an item. newStatus
// must be PENDING_PICKUP, CLAIMED or REJECTED; a rejection requires a
// non-blank reason. When no pending request exists, or another decision won
// the race, the call reports an informational success instead of failing.
func (e *Engine) ApproveOrReject(ctx context.Context, itemID int64, newStatus, reason string) (Result, error) {
	if newStatus == "" {
		return Result{}, fmt.Errorf("%w: status must not be empty", repository.ErrValidation)
	}
	if !repository.ValidStatus(newStatus) {
		return Result{}, fmt.Errorf("%w: unknown status %q", repository.ErrValidation, newStatus)
	}
	switch newStatus {
	case repository.StatusPendingPickup, repository.StatusClaimed, repository.StatusRejected:
	default:
		return Result{}, fmt.Errorf("%w: cannot resolve a claim to %s", repository.ErrValidation, newStatus)
	}
	if newStatus == repository.StatusRejected && strings.TrimSpace(reason) == "" {
		return Result{}, fmt.Errorf("%w: a rejection requires a reason", repository.ErrValidation)
	}

	req, err := e.store.FindClaimRequest(ctx, itemID, repository.StatusPendingApproval)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return Result{
				Success: true,
				Message: fmt.Sprintf("item %d has no pending claim, status already updated", itemID),
			}, nil
		}
		return Result{}, fmt.Errorf("failed to look up claim request: %w", err)
	}

	now := e.clk.Now()
	req.Status = newStatus
	req.ClaimedDate = &now
	if newStatus == repository.StatusRejected {
		req.RejectedReason = &reason
	}
	if err := e.store.SaveClaimRequest(ctx, req); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("approve_or_reject").Inc()
		return Result{}, fmt.Errorf("failed to save claim request: %w", err)
	}

	err = e.store.UpdateItemStatusIf(ctx, itemID, repository.StatusPendingApproval, newStatus)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyUpdated) {
			return Result{
				Success: true,
				Message: fmt.Sprintf("item %d status already updated", itemID),
			}, nil
		}
		metrics.OperationErrorsTotal.WithLabelValues("approve_or_reject").Inc()
		return Result{}, fmt.Errorf("failed to update item status: %w", err)
	}

	e.logger.Info("claim resolved",
		zap.Int64("item_id", itemID),
		zap.String("status", newStatus))

	return Result{
		Success: true,
		Message: fmt.Sprintf("item %d moved to %s", itemID, newStatus),
	}, nil
}

// RecordClaimHistory appends a history entry for the item's open claim
// request. A zero claimDate defaults to now. Recording a CLAIMED entry also
// closes the request and the item.
func (e *Engine) RecordClaimHistory(ctx context.Context, entry *repository.ClaimHistoryEntry) (int64, error) {
	if entry.ItemID <= 0 {
		return 0, fmt.Errorf("%w: item id must be positive", repository.ErrValidation)
	}
	if entry.Status != "" && !repository.ValidStatus(entry.Status) {
		return 0, fmt.Errorf("%w: unknown status %q", repository.ErrValidation, entry.Status)
	}

	req, err := e.store.FindOpenClaimRequest(ctx, entry.ItemID)
	if err != nil {
		return 0, err
	}

	user, err := e.store.GetUser(ctx, req.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve claimant: %w", err)
	}

	entry.RequestID = req.ID
	entry.UserID = user.ID
	entry.UserEmail = user.Email
	if entry.Status == "" {
		entry.Status = req.Status
	}
	if entry.ClaimDate.IsZero() {
		entry.ClaimDate = e.clk.Now()
	}

	id, err := e.store.AppendClaimHistory(ctx, entry)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("record_claim_history").Inc()
		return 0, fmt.Errorf("failed to append claim history: %w", err)
	}
	entry.ID = id

	if entry.Status == repository.StatusClaimed {
		now := e.clk.Now()
		req.Status = repository.StatusClaimed
		req.ClaimedDate = &now
		if err := e.store.SaveClaimRequest(ctx, req); err != nil {
			return 0, fmt.Errorf("failed to close claim request: %w", err)
		}
		err = e.store.UpdateItemStatusIf(ctx, entry.ItemID, repository.StatusPendingPickup, repository.StatusClaimed)
		if err != nil && !errors.Is(err, repository.ErrAlreadyUpdated) {
			return 0, fmt.Errorf("failed to close item: %w", err)
		}
	}

	e.logger.Info("claim history recorded",
		zap.Int64("claim_id", id),
		zap.Int64("item_id", entry.ItemID),
		zap.String("status", entry.Status))
	return id, nil
}

// UpdateClaimStatusAndNotify changes the status of a recorded claim and
// notifies both the claimant and the admin channel.
func (e *Engine) UpdateClaimStatusAndNotify(ctx context.Context, claimID int64, newStatus string) (Result, error) {
	if !repository.ValidStatus(newStatus) {
		return Result{}, fmt.Errorf("%w: unknown status %q", repository.ErrValidation, newStatus)
	}

	entry, err := e.store.GetClaimHistory(ctx, claimID)
	if err != nil {
		return Result{}, err
	}

	if err := e.store.UpdateClaimHistoryStatus(ctx, claimID, newStatus); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_claim_status").Inc()
		return Result{}, fmt.Errorf("failed to update claim status: %w", err)
	}
	entry.Status = newStatus

	// Both the claimant and the admin channel hear about the change.
	for _, to := range []string{entry.UserEmail, e.adminEmail} {
		if err := e.notifier.SendStatusChangeNotice(ctx, to, entry); err != nil {
			e.logger.Error("failed to send status change notice",
				zap.Int64("claim_id", claimID),
				zap.String("to", to),
				zap.Error(err))
		}
	}

	e.logger.Info("claim status updated",
		zap.Int64("claim_id", claimID),
		zap.String("status", newStatus))

	return Result{
		Success: true,
		Message: fmt.Sprintf("claim %d moved to %s", claimID, newStatus),
	}, nil
}

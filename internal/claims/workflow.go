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

// Workflow handles user-initiated claim submissions.
type Workflow struct {
	store    Store
	notifier notify.Notifier
	clk      clock.Clock
	logger   *zap.Logger
}

func NewWorkflow(store Store, notifier notify.Notifier, clk clock.Clock, logger *zap.Logger) *Workflow {
	return &Workflow{
		store:    store,
		notifier: notifier,
		clk:      clk,
		logger:   logger,
	}
}

// ClaimItem records a claim for the item by the user with the given email,
// creating the user on first contact. Claiming restarts the retention clock:
// the item's received date is reset to now and the expiration date follows.
func (w *Workflow) ClaimItem(ctx context.Context, itemID int64, userName, email string) (Result, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Result{}, fmt.Errorf("%w: email must not be empty", repository.ErrValidation)
	}
	if itemID <= 0 {
		return Result{}, fmt.Errorf("%w: item id must be positive", repository.ErrValidation)
	}
	if userName = strings.TrimSpace(userName); userName == "" {
		userName = email
	}

	user, err := w.store.FindUserByEmail(ctx, email)
	if err != nil {
		if err != repository.ErrObjectNotFound {
			return Result{}, fmt.Errorf("failed to look up user: %w", err)
		}
		user = &repository.User{UserName: userName, Email: email}
		user.ID, err = w.store.SaveUser(ctx, user)
		if err != nil {
			return Result{}, fmt.Errorf("failed to create user: %w", err)
		}
	}

	item, err := w.store.GetItem(ctx, itemID)
	if err != nil {
		return Result{}, err
	}

	if item.ClaimantUserID != nil {
		return Result{
			Success: false,
			Message: fmt.Sprintf("item %s is already claimed", item.UniqueID),
		}, nil
	}

	now := w.clk.Now()
	from := item.Status
	item.ClaimantUserID = &user.ID
	item.Status = repository.StatusPendingApproval
	item.ReceivedDate = now
	item.ExpirationDate = now.Add(RetentionPeriod)
	item.LastNotifiedDays = nil
	item.UpdatedAt = now
	// Conditional on the status we read, so a sweep archiving the item in
	// the meantime makes the claim lose the race instead of un-archiving it.
	if err := w.store.SaveItemIf(ctx, item, from); err != nil {
		if errors.Is(err, repository.ErrAlreadyUpdated) {
			return Result{
				Success: false,
				Message: fmt.Sprintf("item %s was updated concurrently, claim not registered", item.UniqueID),
			}, nil
		}
		metrics.OperationErrorsTotal.WithLabelValues("claim_item").Inc()
		return Result{}, fmt.Errorf("failed to save claimed item: %w", err)
	}

	req := &repository.ClaimRequest{
		ItemID:    item.ID,
		UserID:    user.ID,
		Status:    repository.StatusPendingApproval,
		CreatedAt: now,
	}
	if req.ID, err = w.store.CreateClaimRequest(ctx, req); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("claim_item").Inc()
		return Result{}, fmt.Errorf("failed to create claim request: %w", err)
	}

	// Notification failures never fail the claim.
	if err := w.notifier.SendClaimConfirmation(ctx, user.Email, item); err != nil {
		w.logger.Error("failed to send claim confirmation",
			zap.Int64("item_id", item.ID), zap.Error(err))
	}
	if err := w.notifier.SendAdminClaimAlert(ctx, item); err != nil {
		w.logger.Error("failed to send admin claim alert",
			zap.Int64("item_id", item.ID), zap.Error(err))
	}

	metrics.ClaimsCreatedTotal.Inc()
	w.logger.Info("item claimed",
		zap.Int64("item_id", item.ID),
		zap.String("unique_id", item.UniqueID),
		zap.Int64("user_id", user.ID))

	return Result{
		Success: true,
		Message: fmt.Sprintf("claim for item %s registered, pending approval", item.UniqueID),
	}, nil
}

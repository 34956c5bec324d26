// Package notify renders lifecycle notifications and hands them to the
// transactional outbox. Delivery itself happens out of process: a publisher
// ships outbox rows to the broker and a consumer performs the actual send.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/claimithub/claimit/internal/metrics"
	"github.com/claimithub/claimit/internal/repository"
)

// Notifier is the collaborator surface the lifecycle components depend on.
// All sends are fire-and-forget from the caller's perspective: a returned
// error is logged by the caller, never propagated as a workflow failure.
type Notifier interface {
	SendClaimConfirmation(ctx context.Context, email string, item *repository.Item) error
	SendAdminClaimAlert(ctx context.Context, item *repository.Item) error
	SendExpirationReminder(ctx context.Context, email string, item *repository.Item, daysLeft int) error
	SendArchivedNotice(ctx context.Context, email string, item *repository.Item) error
	SendStatusChangeNotice(ctx context.Context, email string, claim *repository.ClaimHistoryEntry) error
}

// Message is the payload written to the outbox and carried over the broker.
type Message struct {
	To       string    `json:"to"`
	Subject  string    `json:"subject"`
	Body     string    `json:"body"`
	Kind     string    `json:"kind"`
	ItemID   int64     `json:"item_id,omitempty"`
	QueuedAt time.Time `json:"queued_at"`
}

type Outbox interface {
	Create(ctx context.Context, task *repository.OutboxTask) error
}

type OutboxNotifier struct {
	outbox     Outbox
	topic      string
	adminEmail string
	logger     *zap.Logger
}

func NewOutboxNotifier(outbox Outbox, topic, adminEmail string, logger *zap.Logger) *OutboxNotifier {
	return &OutboxNotifier{
		outbox:     outbox,
		topic:      topic,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

func (n *OutboxNotifier) enqueue(ctx context.Context, msg Message) error {
	msg.QueuedAt = time.Now().UTC()

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	task := &repository.OutboxTask{
		Topic:   n.topic,
		Payload: payload,
	}
	if err := n.outbox.Create(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}

	metrics.NotificationsEnqueuedTotal.Inc()
	n.logger.Debug("notification enqueued",
		zap.String("kind", msg.Kind),
		zap.String("to", msg.To),
		zap.Int64("item_id", msg.ItemID))
	return nil
}

func (n *OutboxNotifier) SendClaimConfirmation(ctx context.Context, email string, item *repository.Item) error {
	return n.enqueue(ctx, Message{
		To:      email,
		Subject: "Item Claim Confirmation",
		Body:    claimConfirmationBody(item),
		Kind:    "claim_confirmation",
		ItemID:  item.ID,
	})
}

func (n *OutboxNotifier) SendAdminClaimAlert(ctx context.Context, item *repository.Item) error {
	return n.enqueue(ctx, Message{
		To:      n.adminEmail,
		Subject: "New Item Claimed",
		Body:    adminClaimAlertBody(item),
		Kind:    "admin_claim_alert",
		ItemID:  item.ID,
	})
}

func (n *OutboxNotifier) SendExpirationReminder(ctx context.Context, email string, item *repository.Item, daysLeft int) error {
	return n.enqueue(ctx, Message{
		To:      email,
		Subject: "Reminder: Your item is about to expire!",
		Body:    ReminderBody(item, daysLeft),
		Kind:    "expiration_reminder",
		ItemID:  item.ID,
	})
}

func (n *OutboxNotifier) SendArchivedNotice(ctx context.Context, email string, item *repository.Item) error {
	return n.enqueue(ctx, Message{
		To:      email,
		Subject: "Item Has Been Archived",
		Body:    archivedNoticeBody(item),
		Kind:    "archived_notice",
		ItemID:  item.ID,
	})
}

func (n *OutboxNotifier) SendStatusChangeNotice(ctx context.Context, email string, claim *repository.ClaimHistoryEntry) error {
	return n.enqueue(ctx, Message{
		To:      email,
		Subject: "ClaimIt - Status Update",
		Body:    statusChangeBody(claim),
		Kind:    "status_change",
		ItemID:  claim.ItemID,
	})
}

// Package scheduler runs the periodic expiration sweep: it reminds
// claimants ahead of the expiration date and archives items once the date
// has passed.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/claimithub/claimit/internal/claims"
	"github.com/claimithub/claimit/internal/clock"
	"github.com/claimithub/claimit/internal/metrics"
	"github.com/claimithub/claimit/internal/notify"
	"github.com/claimithub/claimit/internal/repository"
)

// reminderThresholds are the days-left marks at which a reminder goes out.
var reminderThresholds = map[int]struct{}{30: {}, 10: {}, 2: {}, 1: {}}

type Store interface {
	GetItem(ctx context.Context, id int64) (*repository.Item, error)
	SaveItemIf(ctx context.Context, item *repository.Item, from string) error
	UpdateItemStatusIf(ctx context.Context, id int64, from, to string) error
	SetItemExpiration(ctx context.Context, id int64, expiration time.Time) error
	MarkItemNotified(ctx context.Context, id int64, days int) error
	FindActiveItems(ctx context.Context) ([]*repository.Item, error)
	ArchivedItemsBetween(ctx context.Context, from, to time.Time) ([]*repository.Item, error)
	UserEmailsForItem(ctx context.Context, itemID int64) ([]string, error)
}

type Scheduler struct {
	store      Store
	notifier   notify.Notifier
	clk        clock.Clock
	logger     *zap.Logger
	adminEmail string
	group      singleflight.Group
	cron       *cron.Cron
}

func New(store Store, notifier notify.Notifier, clk clock.Clock, adminEmail string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		store:      store,
		notifier:   notifier,
		clk:        clk,
		logger:     logger,
		adminEmail: adminEmail,
	}
}

// Start schedules the sweep at the given interval. The first run happens one
// interval after Start, not immediately.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) error {
	if s.cron != nil {
		return errors.New("scheduler already started")
	}
	s.cron = cron.New()
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		if err := s.RunSweep(ctx); err != nil {
			s.logger.Error("expiration sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule expiration sweep: %w", err)
	}
	s.cron.Start()
	s.logger.Info("expiration scheduler started", zap.Duration("interval", interval))
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("expiration scheduler stopped")
}

// RunSweep executes one sweep. Concurrent calls collapse into a single run.
func (s *Scheduler) RunSweep(ctx context.Context) error {
	_, err, _ := s.group.Do("expiration-sweep", func() (interface{}, error) {
		return nil, s.sweep(ctx)
	})
	return err
}

// sweep walks every non-archived item. A failure on one item is logged and
// the sweep moves on; it never aborts the whole pass.
func (s *Scheduler) sweep(ctx context.Context) error {
	items, err := s.store.FindActiveItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active items: %w", err)
	}

	now := s.clk.Now()
	s.logger.Info("expiration sweep started", zap.Int("items", len(items)))

	for _, item := range items {
		if err := s.sweepItem(ctx, item, now); err != nil {
			metrics.OperationErrorsTotal.WithLabelValues("expiration_sweep").Inc()
			s.logger.Error("failed to process item in sweep",
				zap.Int64("item_id", item.ID),
				zap.String("unique_id", item.UniqueID),
				zap.Error(err))
		}
	}
	return nil
}

func (s *Scheduler) sweepItem(ctx context.Context, item *repository.Item, now time.Time) error {
	// The expiration date is derived from the received date on every pass,
	// so a re-claimed item picks up its fresh window automatically.
	expiration := item.ReceivedDate.Add(claims.RetentionPeriod)
	if !expiration.Equal(item.ExpirationDate) {
		// Column-scoped write: the sweep owns expiration_date and must not
		// touch claimant or received date, which a concurrent claim may
		// have changed since this item was loaded.
		item.ExpirationDate = expiration
		if err := s.store.SetItemExpiration(ctx, item.ID, expiration); err != nil {
			return fmt.Errorf("failed to refresh expiration date: %w", err)
		}
	}

	if now.After(expiration) {
		return s.archiveExpired(ctx, item)
	}

	daysLeft := int(expiration.Sub(now).Hours() / 24)
	if _, due := reminderThresholds[daysLeft]; !due {
		return nil
	}
	if item.LastNotifiedDays != nil && *item.LastNotifiedDays == daysLeft {
		return nil
	}

	emails, err := s.store.UserEmailsForItem(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("failed to resolve claimant emails: %w", err)
	}
	for _, email := range emails {
		if err := s.notifier.SendExpirationReminder(ctx, email, item, daysLeft); err != nil {
			s.logger.Error("failed to send expiration reminder",
				zap.Int64("item_id", item.ID),
				zap.String("email", email),
				zap.Error(err))
			continue
		}
		metrics.RemindersSentTotal.WithLabelValues(strconv.Itoa(daysLeft)).Inc()
	}

	if err := s.store.MarkItemNotified(ctx, item.ID, daysLeft); err != nil {
		return fmt.Errorf("failed to record reminder mark: %w", err)
	}

	s.logger.Info("expiration reminder sent",
		zap.Int64("item_id", item.ID),
		zap.Int("days_left", daysLeft),
		zap.Int("recipients", len(emails)))
	return nil
}

func (s *Scheduler) archiveExpired(ctx context.Context, item *repository.Item) error {
	err := s.store.UpdateItemStatusIf(ctx, item.ID, item.Status, repository.StatusArchived)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyUpdated) {
			// Another writer changed the item under us; next pass decides.
			return nil
		}
		return fmt.Errorf("failed to archive item: %w", err)
	}
	item.Status = repository.StatusArchived
	metrics.ItemsArchivedTotal.Inc()

	if err := s.notifier.SendArchivedNotice(ctx, s.adminEmail, item); err != nil {
		s.logger.Error("failed to send archived notice to admin",
			zap.Int64("item_id", item.ID), zap.Error(err))
	}
	emails, err := s.store.UserEmailsForItem(ctx, item.ID)
	if err != nil {
		s.logger.Error("failed to resolve claimant emails for archived notice",
			zap.Int64("item_id", item.ID), zap.Error(err))
		return nil
	}
	for _, email := range emails {
		if err := s.notifier.SendArchivedNotice(ctx, email, item); err != nil {
			s.logger.Error("failed to send archived notice",
				zap.Int64("item_id", item.ID),
				zap.String("email", email),
				zap.Error(err))
		}
	}

	s.logger.Info("item archived",
		zap.Int64("item_id", item.ID),
		zap.String("unique_id", item.UniqueID))
	return nil
}

// ArchiveNow archives a single item immediately, regardless of expiration.
func (s *Scheduler) ArchiveNow(ctx context.Context, itemID int64) error {
	if itemID <= 0 {
		return fmt.Errorf("%w: item id must be positive", repository.ErrValidation)
	}
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item.Status == repository.StatusArchived {
		return nil
	}
	return s.archiveExpired(ctx, item)
}

// RestoreArchived moves items archived between from and to back to
// UNCLAIMED with a fresh retention window. When expirationOverride is
// non-nil it is used as the new expiration date instead of now plus the
// standard window.
func (s *Scheduler) RestoreArchived(ctx context.Context, from, to time.Time, expirationOverride *time.Time) (int, error) {
	items, err := s.store.ArchivedItemsBetween(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to load archived items: %w", err)
	}

	now := s.clk.Now()
	restored := 0
	for _, item := range items {
		item.Status = repository.StatusUnclaimed
		item.ClaimantUserID = nil
		item.LastNotifiedDays = nil
		item.ReceivedDate = now
		if expirationOverride != nil {
			item.ExpirationDate = *expirationOverride
		} else {
			item.ExpirationDate = now.Add(claims.RetentionPeriod)
		}
		item.UpdatedAt = now
		// Conditional on ARCHIVED: an item claimed or restored since the
		// listing was taken is skipped, not overwritten.
		if err := s.store.SaveItemIf(ctx, item, repository.StatusArchived); err != nil {
			if errors.Is(err, repository.ErrAlreadyUpdated) {
				s.logger.Debug("archived item changed under restore, skipping",
					zap.Int64("item_id", item.ID))
				continue
			}
			s.logger.Error("failed to restore archived item",
				zap.Int64("item_id", item.ID), zap.Error(err))
			continue
		}
		restored++
	}

	s.logger.Info("archived items restored",
		zap.Int("restored", restored), zap.Int("candidates", len(items)))
	return restored, nil
}

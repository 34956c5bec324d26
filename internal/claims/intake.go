package claims

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/claimithub/claimit/internal/clock"
	"github.com/claimithub/claimit/internal/repository"
)

// Intake registers found items into the system.
type Intake struct {
	store  Store
	clk    clock.Clock
	logger *zap.Logger
}

func NewIntake(store Store, clk clock.Clock, logger *zap.Logger) *Intake {
	return &Intake{store: store, clk: clk, logger: logger}
}

// RegisterItemInput carries the fields captured at the intake desk. Category
// is matched by name against the known categories; an unknown category is
// stored without a category link rather than rejected.
type RegisterItemInput struct {
	ItemName     string
	Title        string
	Description  string
	Colour       string
	DetectedText string
	Category     string
}

// RegisterItem stores a newly found item as UNCLAIMED, assigns it the next
// per-day unique identifier and starts its retention clock.
func (i *Intake) RegisterItem(ctx context.Context, input RegisterItemInput) (*repository.Item, error) {
	name := strings.TrimSpace(input.ItemName)
	if name == "" {
		return nil, fmt.Errorf("%w: item name must not be empty", repository.ErrValidation)
	}

	now := i.clk.Now()
	uniqueID, err := i.store.NextUniqueID(ctx, now)
	if err != nil {
		return nil, err
	}

	item := &repository.Item{
		ItemName:       name,
		Title:          strings.TrimSpace(input.Title),
		Description:    strings.TrimSpace(input.Description),
		Colour:         strings.ToLower(strings.TrimSpace(input.Colour)),
		DetectedText:   strings.TrimSpace(input.DetectedText),
		Status:         repository.StatusUnclaimed,
		UniqueID:       uniqueID,
		ReceivedDate:   now,
		ExpirationDate: now.Add(RetentionPeriod),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if category := strings.TrimSpace(input.Category); category != "" {
		cat, err := i.store.FindCategoryByName(ctx, category)
		switch {
		case err == nil:
			item.CategoryID = &cat.ID
		case errors.Is(err, repository.ErrObjectNotFound):
			i.logger.Warn("unknown category at intake, storing without one",
				zap.String("category", category))
		default:
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
	}

	if item.ID, err = i.store.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to register item: %w", err)
	}

	i.logger.Info("item registered",
		zap.Int64("item_id", item.ID),
		zap.String("unique_id", item.UniqueID))
	return item, nil
}

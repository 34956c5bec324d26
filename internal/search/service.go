package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/claimithub/claimit/internal/repository"
)

const receivedDateLayout = "2006-01-02"

type Store interface {
	CategoryLookup
	ListItems(ctx context.Context) ([]repository.ItemSummary, error)
	SearchItems(ctx context.Context, itemName, colour, category *string) ([]repository.ItemSummary, error)
	FindItemsByCriteria(ctx context.Context, userID *int64, status *string, receivedDate *time.Time) ([]repository.ItemSummary, error)
	FindUserByEmail(ctx context.Context, email string) (*repository.User, error)
}

type Service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Search runs a classified free-text search. A blank query lists every
// non-archived item. Zero matches return an empty slice, not an error.
func (s *Service) Search(ctx context.Context, query string) ([]repository.ItemSummary, error) {
	if strings.TrimSpace(query) == "" {
		return s.store.ListItems(ctx)
	}

	criteria, err := Classify(ctx, s.store, query)
	if err != nil {
		return nil, fmt.Errorf("failed to classify query: %w", err)
	}

	s.logger.Debug("query classified",
		zap.String("query", query),
		zap.Stringp("item_name", criteria.ItemName),
		zap.Stringp("colour", criteria.Colour),
		zap.Stringp("category", criteria.Category))

	items, err := s.store.SearchItems(ctx, criteria.ItemName, criteria.Colour, criteria.Category)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []repository.ItemSummary{}
	}
	return items, nil
}

// FieldQuery holds the optional structured search inputs as raw strings.
type FieldQuery struct {
	Email        string
	ReceivedDate string
	Status       string
}

// SearchByFields matches items against all supplied criteria. An email that
// matches no user fails softly with an empty result; a malformed date or an
// unknown status is a validation error.
func (s *Service) SearchByFields(ctx context.Context, q FieldQuery) ([]repository.ItemSummary, error) {
	var userID *int64
	if email := strings.TrimSpace(q.Email); email != "" {
		user, err := s.store.FindUserByEmail(ctx, email)
		if err != nil {
			if err == repository.ErrObjectNotFound {
				s.logger.Info("field search matched no users", zap.String("email", email))
				return []repository.ItemSummary{}, nil
			}
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		userID = &user.ID
	}

	var receivedDate *time.Time
	if raw := strings.TrimSpace(q.ReceivedDate); raw != "" {
		parsed, err := time.Parse(receivedDateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: receivedDate must be yyyy-MM-dd", repository.ErrValidation)
		}
		receivedDate = &parsed
	}

	var status *string
	if raw := strings.TrimSpace(q.Status); raw != "" {
		if !repository.ValidStatus(raw) {
			return nil, fmt.Errorf("%w: unknown status %q", repository.ErrValidation, raw)
		}
		status = &raw
	}

	items, err := s.store.FindItemsByCriteria(ctx, userID, status, receivedDate)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []repository.ItemSummary{}
	}
	return items, nil
}

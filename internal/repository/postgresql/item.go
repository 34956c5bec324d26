package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/claimithub/claimit/internal/db"
	"github.com/claimithub/claimit/internal/repository"
)

type ItemRepo struct {
	db db.DB
}

func NewItemRepo(db db.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

func (r *ItemRepo) Create(ctx context.Context, item *repository.Item) (int64, error) {
	var id int64
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO items (
            item_name, title, description, status, colour, detected_text, unique_id,
            category_id, subcategory_id, received_date, expiration_date,
            last_notified_days, claimant_user_id, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id
    `, item.ItemName, item.Title, item.Description, item.Status, item.Colour,
		item.DetectedText, item.UniqueID, item.CategoryID, item.SubcategoryID,
		item.ReceivedDate, item.ExpirationDate, item.LastNotifiedDays,
		item.ClaimantUserID, item.CreatedAt, item.UpdatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}
	return id, nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*repository.Item, error) {
	var item repository.Item
	err := r.db.Get(ctx, &item, "SELECT * FROM items WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

// UpdateClaimStateIf replaces the claim-related columns only when the item's
// current status matches the expected pre-state. Returns ErrAlreadyUpdated
// when another writer changed the item first, so a claim or restore never
// overwrites a concurrent transition.
func (r *ItemRepo) UpdateClaimStateIf(ctx context.Context, item *repository.Item, from string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE items
        SET
            status = $1,
            claimant_user_id = $2,
            received_date = $3,
            expiration_date = $4,
            last_notified_days = $5,
            updated_at = $6
        WHERE id = $7 AND status = $8
    `, item.Status, item.ClaimantUserID, item.ReceivedDate, item.ExpirationDate,
		item.LastNotifiedDays, item.UpdatedAt, item.ID, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrAlreadyUpdated
	}
	return nil
}

// SetExpiration writes only the expiration date. The sweep owns this column.
func (r *ItemRepo) SetExpiration(ctx context.Context, id int64, expiration, updatedAt time.Time) error {
	_, err := r.db.Exec(ctx, `
        UPDATE items
        SET expiration_date = $1, updated_at = $2
        WHERE id = $3
    `, expiration, updatedAt, id)
	return err
}

// SetLastNotified records the days-left mark of the last reminder sent.
func (r *ItemRepo) SetLastNotified(ctx context.Context, id int64, days int, updatedAt time.Time) error {
	_, err := r.db.Exec(ctx, `
        UPDATE items
        SET last_notified_days = $1, updated_at = $2
        WHERE id = $3
    `, days, updatedAt, id)
	return err
}

// UpdateStatusIf transitions the item only when its current status matches
// the expected pre-state. Returns ErrAlreadyUpdated when another writer won
// the race, so callers never overwrite a concurrent transition.
func (r *ItemRepo) UpdateStatusIf(ctx context.Context, id int64, from, to string, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE items
        SET status = $1, updated_at = $2
        WHERE id = $3 AND status = $4
    `, to, updatedAt, id, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrAlreadyUpdated
	}
	return nil
}

func (r *ItemRepo) GetByStatus(ctx context.Context, status string) ([]*repository.Item, error) {
	var items []*repository.Item
	err := r.db.Select(ctx, &items,
		"SELECT * FROM items WHERE status = $1 ORDER BY received_date ASC", status)
	return items, err
}

// GetActive returns every item the expiration sweep must consider.
func (r *ItemRepo) GetActive(ctx context.Context) ([]*repository.Item, error) {
	var items []*repository.Item
	err := r.db.Select(ctx, &items, `
        SELECT * FROM items
        WHERE status <> $1
        ORDER BY received_date ASC
    `, repository.StatusArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to get active items: %w", err)
	}
	return items, nil
}

func (r *ItemRepo) GetSummaries(ctx context.Context) ([]repository.ItemSummary, error) {
	var items []repository.ItemSummary
	err := r.db.Select(ctx, &items, `
        SELECT i.id, i.item_name, i.title, i.status, i.colour, i.unique_id,
               c.name AS category_name, i.received_date, i.expiration_date
        FROM items i
        LEFT JOIN categories c ON c.id = i.category_id
        WHERE i.status <> $1
        ORDER BY i.unique_id DESC
    `, repository.StatusArchived)
	return items, err
}

// Search matches name, colour and category as case-insensitive substrings.
// Nil criteria are unconstrained.
func (r *ItemRepo) Search(ctx context.Context, itemName, colour, category *string) ([]repository.ItemSummary, error) {
	query := `
        SELECT i.id, i.item_name, i.title, i.status, i.colour, i.unique_id,
               c.name AS category_name, i.received_date, i.expiration_date
        FROM items i
        LEFT JOIN categories c ON c.id = i.category_id
        WHERE 1=1
    `
	var args []interface{}

	if itemName != nil {
		args = append(args, "%"+*itemName+"%")
		query += fmt.Sprintf(" AND i.item_name ILIKE $%d", len(args))
	}
	if colour != nil {
		args = append(args, "%"+*colour+"%")
		query += fmt.Sprintf(" AND i.colour ILIKE $%d", len(args))
	}
	if category != nil {
		args = append(args, "%"+*category+"%")
		query += fmt.Sprintf(" AND c.name ILIKE $%d", len(args))
	}

	var items []repository.ItemSummary
	err := r.db.Select(ctx, &items, query, args...)
	return items, err
}

// FindByCriteria applies AND semantics over the supplied, non-nil filters.
func (r *ItemRepo) FindByCriteria(ctx context.Context, userID *int64, status *string, receivedDate *time.Time) ([]repository.ItemSummary, error) {
	query := `
        SELECT i.id, i.item_name, i.title, i.status, i.colour, i.unique_id,
               c.name AS category_name, i.received_date, i.expiration_date
        FROM items i
        LEFT JOIN categories c ON c.id = i.category_id
        WHERE 1=1
    `
	var args []interface{}

	if userID != nil {
		args = append(args, *userID)
		query += fmt.Sprintf(" AND i.claimant_user_id = $%d", len(args))
	}
	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(" AND i.status = $%d", len(args))
	}
	if receivedDate != nil {
		args = append(args, *receivedDate)
		query += fmt.Sprintf(" AND i.received_date::date = $%d::date", len(args))
	}

	var items []repository.ItemSummary
	err := r.db.Select(ctx, &items, query, args...)
	return items, err
}

// GetArchivedBetween returns ARCHIVED items received in [from, to]; the
// upper bound is extended to end of day.
func (r *ItemRepo) GetArchivedBetween(ctx context.Context, from, to time.Time) ([]*repository.Item, error) {
	endOfDay := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), to.Location())

	var items []*repository.Item
	err := r.db.Select(ctx, &items, `
        SELECT * FROM items
        WHERE status = $1 AND received_date BETWEEN $2 AND $3
        ORDER BY received_date ASC
    `, repository.StatusArchived, from, endOfDay)
	return items, err
}

// LatestDailySequence returns the highest running number already assigned
// for the given yyyy/MM/dd unique-id prefix, 0 when none exists.
func (r *ItemRepo) LatestDailySequence(ctx context.Context, datePrefix string) (int, error) {
	var latest int
	err := r.db.ExecQueryRow(ctx, `
        SELECT COALESCE(MAX(split_part(unique_id, '-', 2)::int), 0)
        FROM items
        WHERE unique_id LIKE $1
    `, datePrefix+"-%").Scan(&latest)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest daily sequence: %w", err)
	}
	return latest, nil
}

func (r *ItemRepo) StatusCountsByMonth(ctx context.Context, month string) ([]repository.StatusCountRow, error) {
	var rows []repository.StatusCountRow
	err := r.db.Select(ctx, &rows, `
        SELECT to_char(received_date, 'YYYY-MM') AS month,
               COUNT(*) AS total_items,
               COUNT(*) FILTER (WHERE status = 'UNCLAIMED') AS unclaimed,
               COUNT(*) FILTER (WHERE status = 'PENDING_APPROVAL') AS pending_approval,
               COUNT(*) FILTER (WHERE status = 'PENDING_PICKUP') AS pending_pickup,
               COUNT(*) FILTER (WHERE status = 'CLAIMED') AS claimed,
               COUNT(*) FILTER (WHERE status = 'REJECTED') AS rejected,
               COUNT(*) FILTER (WHERE status = 'ARCHIVED') AS archived
        FROM items
        WHERE to_char(received_date, 'YYYY-MM') = $1
        GROUP BY to_char(received_date, 'YYYY-MM')
    `, month)
	return rows, err
}

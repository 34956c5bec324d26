package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/claimithub/claimit/internal/db"
	"github.com/claimithub/claimit/internal/repository"
)

const outboxMaxAttempts = 5

type OutboxTaskRepo struct {
	db db.DB
}

func NewOutboxTaskRepo(db db.DB) *OutboxTaskRepo {
	return &OutboxTaskRepo{db: db}
}

func (r *OutboxTaskRepo) Create(ctx context.Context, task *repository.OutboxTask) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx, `
        INSERT INTO outbox_tasks (id, status, payload, topic, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, task.ID, repository.TaskStatusCreated, task.Payload, task.Topic, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert outbox task: %w", err)
	}
	return nil
}

func (r *OutboxTaskRepo) GetProcessableTasks(ctx context.Context, limit int) ([]*repository.OutboxTask, error) {
	var tasks []*repository.OutboxTask
	err := r.db.Select(ctx, &tasks, `
        SELECT id, status, payload, topic, attempts, last_error, created_at, updated_at, completed_at
        FROM outbox_tasks
        WHERE status = $1 OR (status = $2 AND attempts < $3)
        ORDER BY updated_at ASC
        LIMIT $4
        FOR UPDATE SKIP LOCKED
    `, repository.TaskStatusCreated, repository.TaskStatusFailed, outboxMaxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get processable outbox tasks: %w", err)
	}
	return tasks, nil
}

func (r *OutboxTaskRepo) MarkProcessingTx(ctx context.Context, tx db.Tx, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
        UPDATE outbox_tasks
        SET status = $2, updated_at = $3
        WHERE id = $1
    `, id, repository.TaskStatusProcessing, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to mark outbox task %s as processing: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OutboxTaskRepo) MarkDone(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx, `
        UPDATE outbox_tasks
        SET status = $2, completed_at = $3, updated_at = $3, last_error = NULL
        WHERE id = $1
    `, id, repository.TaskStatusDone, now)
	if err != nil {
		return fmt.Errorf("failed to mark outbox task %s as done: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OutboxTaskRepo) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE outbox_tasks
        SET status = $2, attempts = $3, last_error = $4, updated_at = $5
        WHERE id = $1
    `, id, repository.TaskStatusFailed, attempts, lastError, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to mark outbox task %s as failed: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

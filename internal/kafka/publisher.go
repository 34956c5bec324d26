package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/claimithub/claimit/internal/db"
	"github.com/claimithub/claimit/internal/repository"
)

type OutboxRepository interface {
	GetProcessableTasks(ctx context.Context, limit int) ([]*repository.OutboxTask, error)
	MarkProcessingTx(ctx context.Context, tx db.Tx, id uuid.UUID) error
	MarkDone(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string) error
}

type PublisherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// Publisher drains the notification outbox into the broker on a fixed poll
// interval. Tasks that exhaust their attempts stay FAILED for inspection.
type Publisher struct {
	db             db.DB
	repo           OutboxRepository
	producer       Producer
	config         PublisherConfig
	logger         *zap.Logger
	wg             sync.WaitGroup
	shutdownSignal chan struct{}
	stopOnce       sync.Once
}

func NewPublisher(db db.DB, repo OutboxRepository, producer Producer, config PublisherConfig, logger *zap.Logger) *Publisher {
	return &Publisher{
		db:             db,
		repo:           repo,
		producer:       producer,
		config:         config,
		logger:         logger,
		shutdownSignal: make(chan struct{}),
	}
}

func (p *Publisher) Run(ctx context.Context) {
	p.logger.Info("starting notification outbox publisher",
		zap.Duration("poll_interval", p.config.PollInterval),
		zap.Int("batch_size", p.config.BatchSize))

	p.wg.Add(1)
	defer p.wg.Done()

	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.processBatch(ctx); err != nil {
				p.logger.Error("outbox publisher failed to process batch", zap.Error(err))
			}
		case <-p.shutdownSignal:
			p.logger.Info("outbox publisher received shutdown signal, stopping")
			return
		case <-ctx.Done():
			p.Shutdown()
			return
		}
	}
}

func (p *Publisher) Shutdown() {
	p.stopOnce.Do(func() {
		close(p.shutdownSignal)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			p.logger.Info("outbox publisher shutdown complete")
		case <-shutdownCtx.Done():
			p.logger.Warn("outbox publisher shutdown timed out")
		}

		if err := p.producer.Close(); err != nil {
			p.logger.Error("failed to close producer", zap.Error(err))
		}
	})
}

func (p *Publisher) processBatch(ctx context.Context) error {
	tasks, err := p.repo.GetProcessableTasks(ctx, p.config.BatchSize)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}

	tx, err := p.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, task := range tasks {
		if err := p.repo.MarkProcessingTx(ctx, tx, task.ID); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	for _, task := range tasks {
		select {
		case <-p.shutdownSignal:
			p.logger.Warn("shutdown during batch processing, remaining tasks deferred")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := p.publishTask(ctx, task); err != nil {
			p.logger.Error("failed to publish outbox task",
				zap.String("task_id", task.ID.String()), zap.Error(err))
		}
	}

	return nil
}

func (p *Publisher) publishTask(ctx context.Context, task *repository.OutboxTask) error {
	key := []byte(task.ID.String())

	if err := p.producer.SendMessage(ctx, task.Topic, key, task.Payload); err != nil {
		attempts := task.Attempts + 1
		if attempts >= p.config.MaxAttempts {
			p.logger.Warn("outbox task reached max attempts",
				zap.String("task_id", task.ID.String()), zap.Int("attempts", attempts))
		}
		if updateErr := p.repo.MarkFailed(ctx, task.ID, attempts, err.Error()); updateErr != nil {
			return updateErr
		}
		return err
	}

	return p.repo.MarkDone(ctx, task.ID)
}
